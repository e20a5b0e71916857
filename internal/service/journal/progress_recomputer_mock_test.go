package journal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
	"sync"
)

var _ progressRecomputer = &progressRecomputerMock{}

type progressRecomputerMock struct {
	RecomputeFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*progress.Snapshot, error)

	calls struct {
		Recompute []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			WindowDays int
		}
	}
	lockRecompute sync.RWMutex
}

func (mock *progressRecomputerMock) Recompute(ctx context.Context, userID uuid.UUID, windowDays int) (*progress.Snapshot, error) {
	if mock.RecomputeFunc == nil {
		panic("progressRecomputerMock.RecomputeFunc: method is nil but progressRecomputer.Recompute was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		WindowDays int
	}{Ctx: ctx, UserID: userID, WindowDays: windowDays}
	mock.lockRecompute.Lock()
	mock.calls.Recompute = append(mock.calls.Recompute, callInfo)
	mock.lockRecompute.Unlock()
	return mock.RecomputeFunc(ctx, userID, windowDays)
}

func (mock *progressRecomputerMock) RecomputeCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	WindowDays int
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		WindowDays int
	}
	mock.lockRecompute.RLock()
	calls = mock.calls.Recompute
	mock.lockRecompute.RUnlock()
	return calls
}
