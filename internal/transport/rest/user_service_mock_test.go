package rest

import (
	"context"
	"github.com/heartmarshall/growth-journal-backend/internal/domain"
	"github.com/heartmarshall/growth-journal-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc     func(ctx context.Context) (*domain.User, error)
	GetSettingsFunc    func(ctx context.Context) (*domain.UserSettings, error)
	UpdateProfileFunc  func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	UpdateSettingsFunc func(ctx context.Context, input user.UpdateSettingsInput) (*domain.UserSettings, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		GetSettings []struct {
			Ctx context.Context
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
		UpdateSettings []struct {
			Ctx   context.Context
			Input user.UpdateSettingsInput
		}
	}
	lockGetProfile     sync.RWMutex
	lockGetSettings    sync.RWMutex
	lockUpdateProfile  sync.RWMutex
	lockUpdateSettings sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("userServiceMock.GetSettingsFunc: method is nil but userService.GetSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx)
}

func (mock *userServiceMock) GetSettingsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetSettings.RLock()
	calls = mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userServiceMock.UpdateProfileFunc: method is nil but userService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *userServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateSettings(ctx context.Context, input user.UpdateSettingsInput) (*domain.UserSettings, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("userServiceMock.UpdateSettingsFunc: method is nil but userService.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateSettingsInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, input)
}

func (mock *userServiceMock) UpdateSettingsCalls() []struct {
	Ctx   context.Context
	Input user.UpdateSettingsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.UpdateSettingsInput
	}
	mock.lockUpdateSettings.RLock()
	calls = mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}
