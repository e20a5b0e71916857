package progress

import (
	"context"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ activityStore = &activityStoreMock{}

type activityStoreMock struct {
	ListActivityDatesFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)

	calls struct {
		ListActivityDates []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockListActivityDates sync.RWMutex
}

func (mock *activityStoreMock) ListActivityDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.ListActivityDatesFunc == nil {
		panic("activityStoreMock.ListActivityDatesFunc: method is nil but activityStore.ListActivityDates was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockListActivityDates.Lock()
	mock.calls.ListActivityDates = append(mock.calls.ListActivityDates, callInfo)
	mock.lockListActivityDates.Unlock()
	return mock.ListActivityDatesFunc(ctx, userID, since)
}

func (mock *activityStoreMock) ListActivityDatesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}
	mock.lockListActivityDates.RLock()
	calls = mock.calls.ListActivityDates
	mock.lockListActivityDates.RUnlock()
	return calls
}
