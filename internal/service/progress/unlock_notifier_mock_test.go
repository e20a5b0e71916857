package progress

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"sync"
)

var _ unlockNotifier = &unlockNotifierMock{}

type unlockNotifierMock struct {
	NotifyUnlockFunc func(ctx context.Context, ownerID uuid.UUID, m domain.Milestone)

	calls struct {
		NotifyUnlock []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			M       domain.Milestone
		}
	}
	lockNotifyUnlock sync.RWMutex
}

func (mock *unlockNotifierMock) NotifyUnlock(ctx context.Context, ownerID uuid.UUID, m domain.Milestone) {
	if mock.NotifyUnlockFunc == nil {
		panic("unlockNotifierMock.NotifyUnlockFunc: method is nil but unlockNotifier.NotifyUnlock was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		M       domain.Milestone
	}{Ctx: ctx, OwnerID: ownerID, M: m}
	mock.lockNotifyUnlock.Lock()
	mock.calls.NotifyUnlock = append(mock.calls.NotifyUnlock, callInfo)
	mock.lockNotifyUnlock.Unlock()
	mock.NotifyUnlockFunc(ctx, ownerID, m)
}

func (mock *unlockNotifierMock) NotifyUnlockCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	M       domain.Milestone
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		M       domain.Milestone
	}
	mock.lockNotifyUnlock.RLock()
	calls = mock.calls.NotifyUnlock
	mock.lockNotifyUnlock.RUnlock()
	return calls
}
