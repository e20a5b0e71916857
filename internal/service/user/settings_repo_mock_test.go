package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"sync"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetSettingsFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertSettingsFunc func(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		GetSettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpsertSettings []struct {
			Ctx context.Context
			S   domain.UserSettings
		}
	}
	lockGetSettings    sync.RWMutex
	lockUpsertSettings sync.RWMutex
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
