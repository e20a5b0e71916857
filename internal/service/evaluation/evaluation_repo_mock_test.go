package evaluation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"sync"
)

var _ evaluationRepo = &evaluationRepoMock{}

type evaluationRepoMock struct {
	CreateFunc     func(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error)
	GetLatestFunc  func(ctx context.Context, userID uuid.UUID) (*domain.Evaluation, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.Evaluation, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Evaluation
		}
		GetLatest []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate     sync.RWMutex
	lockGetLatest  sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *evaluationRepoMock) Create(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error) {
	if mock.CreateFunc == nil {
		panic("evaluationRepoMock.CreateFunc: method is nil but evaluationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Evaluation
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *evaluationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Evaluation
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Evaluation
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *evaluationRepoMock) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.Evaluation, error) {
	if mock.GetLatestFunc == nil {
		panic("evaluationRepoMock.GetLatestFunc: method is nil but evaluationRepo.GetLatest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetLatest.Lock()
	mock.calls.GetLatest = append(mock.calls.GetLatest, callInfo)
	mock.lockGetLatest.Unlock()
	return mock.GetLatestFunc(ctx, userID)
}

func (mock *evaluationRepoMock) GetLatestCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetLatest.RLock()
	calls = mock.calls.GetLatest
	mock.lockGetLatest.RUnlock()
	return calls
}

func (mock *evaluationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.Evaluation, int, error) {
	if mock.ListByUserFunc == nil {
		panic("evaluationRepoMock.ListByUserFunc: method is nil but evaluationRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{Ctx: ctx, UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *evaluationRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
