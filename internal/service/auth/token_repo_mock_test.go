package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"sync"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc          func(ctx context.Context, token *domain.RefreshToken) error
	DeleteExpiredFunc   func(ctx context.Context) (int, error)
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	RevokeByIDFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Token *domain.RefreshToken
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
		GetByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeAllByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		RevokeByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockDeleteExpired   sync.RWMutex
	lockGetByHash       sync.RWMutex
	lockRevokeAllByUser sync.RWMutex
	lockRevokeByID      sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token *domain.RefreshToken
	}{Ctx: ctx, Token: token}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, token)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Token *domain.RefreshToken
} {
	var calls []struct {
		Ctx   context.Context
		Token *domain.RefreshToken
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDeleteExpired.RLock()
	calls = mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	var calls []struct {
		Ctx       context.Context
		TokenHash string
	}
	mock.lockGetByHash.RLock()
	calls = mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockRevokeAllByUser.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, callInfo)
	mock.lockRevokeAllByUser.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockRevokeAllByUser.RLock()
	calls = mock.calls.RevokeAllByUser
	mock.lockRevokeAllByUser.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but tokenRepo.RevokeByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockRevokeByID.Lock()
	mock.calls.RevokeByID = append(mock.calls.RevokeByID, callInfo)
	mock.lockRevokeByID.Unlock()
	return mock.RevokeByIDFunc(ctx, id)
}

func (mock *tokenRepoMock) RevokeByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockRevokeByID.RLock()
	calls = mock.calls.RevokeByID
	mock.lockRevokeByID.RUnlock()
	return calls
}
