package rest

import (
	"context"
	"github.com/heartmarshall/growth-journal-backend/internal/service/progress"
	"sync"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	GetProgressFunc func(ctx context.Context, input progress.GetProgressInput) (*progress.Snapshot, error)

	calls struct {
		GetProgress []struct {
			Ctx   context.Context
			Input progress.GetProgressInput
		}
	}
	lockGetProgress sync.RWMutex
}

func (mock *progressServiceMock) GetProgress(ctx context.Context, input progress.GetProgressInput) (*progress.Snapshot, error) {
	if mock.GetProgressFunc == nil {
		panic("progressServiceMock.GetProgressFunc: method is nil but progressService.GetProgress was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.GetProgressInput
	}{Ctx: ctx, Input: input}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx, input)
}

func (mock *progressServiceMock) GetProgressCalls() []struct {
	Ctx   context.Context
	Input progress.GetProgressInput
} {
	var calls []struct {
		Ctx   context.Context
		Input progress.GetProgressInput
	}
	mock.lockGetProgress.RLock()
	calls = mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}
