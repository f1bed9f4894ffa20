package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
	"github.com/heartmarshall/quitsmoke-backend/internal/service/craving"
)

var _ cravingService = &cravingServiceMock{}

type cravingServiceMock struct {
	CreateFunc    func(ctx context.Context, input craving.CreateInput) (*domain.Craving, error)
	ListFunc      func(ctx context.Context, limit int, offset int) ([]domain.Craving, error)
	GetFunc       func(ctx context.Context, id uuid.UUID) (*domain.Craving, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, input craving.UpdateInput) (*domain.Craving, error)
	AnalyticsFunc func(ctx context.Context, days int) (*domain.CravingAnalytics, error)
	TriggersFunc  func(ctx context.Context) ([]domain.TriggerCount, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input craving.CreateInput
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input craving.UpdateInput
		}
		Analytics []struct {
			Ctx  context.Context
			Days int
		}
		Triggers []struct {
			Ctx context.Context
		}
	}
	lockCreate    sync.RWMutex
	lockList      sync.RWMutex
	lockGet       sync.RWMutex
	lockUpdate    sync.RWMutex
	lockAnalytics sync.RWMutex
	lockTriggers  sync.RWMutex
}

func (mock *cravingServiceMock) Create(ctx context.Context, input craving.CreateInput) (*domain.Craving, error) {
	if mock.CreateFunc == nil {
		panic("cravingServiceMock.CreateFunc: method is nil but cravingService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input craving.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *cravingServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input craving.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cravingServiceMock) List(ctx context.Context, limit int, offset int) ([]domain.Craving, error) {
	if mock.ListFunc == nil {
		panic("cravingServiceMock.ListFunc: method is nil but cravingService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *cravingServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *cravingServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Craving, error) {
	if mock.GetFunc == nil {
		panic("cravingServiceMock.GetFunc: method is nil but cravingService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *cravingServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *cravingServiceMock) Update(ctx context.Context, id uuid.UUID, input craving.UpdateInput) (*domain.Craving, error) {
	if mock.UpdateFunc == nil {
		panic("cravingServiceMock.UpdateFunc: method is nil but cravingService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input craving.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *cravingServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input craving.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cravingServiceMock) Analytics(ctx context.Context, days int) (*domain.CravingAnalytics, error) {
	if mock.AnalyticsFunc == nil {
		panic("cravingServiceMock.AnalyticsFunc: method is nil but cravingService.Analytics was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Days int
	}{Ctx: ctx, Days: days}
	mock.lockAnalytics.Lock()
	mock.calls.Analytics = append(mock.calls.Analytics, callInfo)
	mock.lockAnalytics.Unlock()
	return mock.AnalyticsFunc(ctx, days)
}

func (mock *cravingServiceMock) AnalyticsCalls() []struct {
	Ctx  context.Context
	Days int
} {
	mock.lockAnalytics.RLock()
	calls := mock.calls.Analytics
	mock.lockAnalytics.RUnlock()
	return calls
}

func (mock *cravingServiceMock) Triggers(ctx context.Context) ([]domain.TriggerCount, error) {
	if mock.TriggersFunc == nil {
		panic("cravingServiceMock.TriggersFunc: method is nil but cravingService.Triggers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTriggers.Lock()
	mock.calls.Triggers = append(mock.calls.Triggers, callInfo)
	mock.lockTriggers.Unlock()
	return mock.TriggersFunc(ctx)
}

func (mock *cravingServiceMock) TriggersCalls() []struct {
	Ctx context.Context
} {
	mock.lockTriggers.RLock()
	calls := mock.calls.Triggers
	mock.lockTriggers.RUnlock()
	return calls
}
