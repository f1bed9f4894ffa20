package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc            func(ctx context.Context, user *domain.User) (*domain.User, error)
	CreatePreferencesFunc func(ctx context.Context, p *domain.Preferences) error
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TouchLastLoginFunc    func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		CreatePreferences []struct {
			Ctx context.Context
			P   *domain.Preferences
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		TouchLastLogin []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockCreate            sync.RWMutex
	lockCreatePreferences sync.RWMutex
	lockGetByEmail        sync.RWMutex
	lockGetByID           sync.RWMutex
	lockTouchLastLogin    sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) CreatePreferences(ctx context.Context, p *domain.Preferences) error {
	if mock.CreatePreferencesFunc == nil {
		panic("userRepoMock.CreatePreferencesFunc: method is nil but userRepo.CreatePreferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Preferences
	}{Ctx: ctx, P: p}
	mock.lockCreatePreferences.Lock()
	mock.calls.CreatePreferences = append(mock.calls.CreatePreferences, callInfo)
	mock.lockCreatePreferences.Unlock()
	return mock.CreatePreferencesFunc(ctx, p)
}

func (mock *userRepoMock) CreatePreferencesCalls() []struct {
	Ctx context.Context
	P   *domain.Preferences
} {
	mock.lockCreatePreferences.RLock()
	calls := mock.calls.CreatePreferences
	mock.lockCreatePreferences.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
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

func (mock *userRepoMock) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastLoginFunc == nil {
		panic("userRepoMock.TouchLastLoginFunc: method is nil but userRepo.TouchLastLogin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockTouchLastLogin.Lock()
	mock.calls.TouchLastLogin = append(mock.calls.TouchLastLogin, callInfo)
	mock.lockTouchLastLogin.Unlock()
	return mock.TouchLastLoginFunc(ctx, id, at)
}

func (mock *userRepoMock) TouchLastLoginCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockTouchLastLogin.RLock()
	calls := mock.calls.TouchLastLogin
	mock.lockTouchLastLogin.RUnlock()
	return calls
}
