package progress

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"sync"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetSettingsFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)

	calls struct {
		GetSettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetSettings sync.RWMutex
}

func (mock *settingsRepoMock) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("settingsRepoMock.GetSettingsFunc: method is nil but settingsRepo.GetSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetSettingsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetSettings.RLock()
	calls = mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}
