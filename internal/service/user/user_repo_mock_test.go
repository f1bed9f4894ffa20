package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	DeactivateFunc        func(ctx context.Context, id uuid.UUID, at time.Time) error
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetPreferencesFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	UpdatePreferencesFunc func(ctx context.Context, p *domain.Preferences) (*domain.Preferences, error)
	UpdateProfileFunc     func(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch, now time.Time) (*domain.User, error)

	calls struct {
		Deactivate []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetPreferences []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdatePreferences []struct {
			Ctx context.Context
			P   *domain.Preferences
		}
		UpdateProfile []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.ProfilePatch
			Now   time.Time
		}
	}
	lockDeactivate        sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetPreferences    sync.RWMutex
	lockUpdatePreferences sync.RWMutex
	lockUpdateProfile     sync.RWMutex
}

func (mock *userRepoMock) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.DeactivateFunc == nil {
		panic("userRepoMock.DeactivateFunc: method is nil but userRepo.Deactivate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockDeactivate.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, callInfo)
	mock.lockDeactivate.Unlock()
	return mock.DeactivateFunc(ctx, id, at)
}

func (mock *userRepoMock) DeactivateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockDeactivate.RLock()
	calls := mock.calls.Deactivate
	mock.lockDeactivate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	if mock.GetPreferencesFunc == nil {
		panic("userRepoMock.GetPreferencesFunc: method is nil but userRepo.GetPreferences was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetPreferences.Lock()
	mock.calls.GetPreferences = append(mock.calls.GetPreferences, callInfo)
	mock.lockGetPreferences.Unlock()
	return mock.GetPreferencesFunc(ctx, userID)
}

func (mock *userRepoMock) GetPreferencesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetPreferences.RLock()
	calls := mock.calls.GetPreferences
	mock.lockGetPreferences.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePreferences(ctx context.Context, p *domain.Preferences) (*domain.Preferences, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("userRepoMock.UpdatePreferencesFunc: method is nil but userRepo.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Preferences
	}{Ctx: ctx, P: p}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, p)
}

func (mock *userRepoMock) UpdatePreferencesCalls() []struct {
	Ctx context.Context
	P   *domain.Preferences
} {
	mock.lockUpdatePreferences.RLock()
	calls := mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch, now time.Time) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.ProfilePatch
		Now   time.Time
	}{Ctx: ctx, ID: id, Patch: patch, Now: now}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, patch, now)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.ProfilePatch
	Now   time.Time
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
