package auth

import (
	"context"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"sync"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	UpsertSettingsFunc func(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		UpsertSettings []struct {
			Ctx context.Context
			S   domain.UserSettings
		}
	}
	lockUpsertSettings sync.RWMutex
}

func (mock *settingsRepoMock) UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	if mock.UpsertSettingsFunc == nil {
		panic("settingsRepoMock.UpsertSettingsFunc: method is nil but settingsRepo.UpsertSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.UserSettings
	}{Ctx: ctx, S: s}
	mock.lockUpsertSettings.Lock()
	mock.calls.UpsertSettings = append(mock.calls.UpsertSettings, callInfo)
	mock.lockUpsertSettings.Unlock()
	return mock.UpsertSettingsFunc(ctx, s)
}

func (mock *settingsRepoMock) UpsertSettingsCalls() []struct {
	Ctx context.Context
	S   domain.UserSettings
} {
	var calls []struct {
		Ctx context.Context
		S   domain.UserSettings
	}
	mock.lockUpsertSettings.RLock()
	calls = mock.calls.UpsertSettings
	mock.lockUpsertSettings.RUnlock()
	return calls
}
