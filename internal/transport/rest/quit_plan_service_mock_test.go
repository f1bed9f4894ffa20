package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/quitsmoke-backend/internal/service/quitplan"
)

var _ quitPlanService = &quitPlanServiceMock{}

type quitPlanServiceMock struct {
	CreateFunc         func(ctx context.Context, input quitplan.CreateInput) (*quitplan.PlanResult, error)
	GetFunc            func(ctx context.Context) (*quitplan.PlanResult, error)
	UpdateFunc         func(ctx context.Context, input quitplan.UpdateInput) (*quitplan.PlanResult, error)
	UpdateQuitDateFunc func(ctx context.Context, quitDate time.Time) (*quitplan.PlanResult, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input quitplan.CreateInput
		}
		Get []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			Input quitplan.UpdateInput
		}
		UpdateQuitDate []struct {
			Ctx      context.Context
			QuitDate time.Time
		}
	}
	lockCreate         sync.RWMutex
	lockGet            sync.RWMutex
	lockUpdate         sync.RWMutex
	lockUpdateQuitDate sync.RWMutex
}

func (mock *quitPlanServiceMock) Create(ctx context.Context, input quitplan.CreateInput) (*quitplan.PlanResult, error) {
	if mock.CreateFunc == nil {
		panic("quitPlanServiceMock.CreateFunc: method is nil but quitPlanService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quitplan.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *quitPlanServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input quitplan.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *quitPlanServiceMock) Get(ctx context.Context) (*quitplan.PlanResult, error) {
	if mock.GetFunc == nil {
		panic("quitPlanServiceMock.GetFunc: method is nil but quitPlanService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *quitPlanServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *quitPlanServiceMock) Update(ctx context.Context, input quitplan.UpdateInput) (*quitplan.PlanResult, error) {
	if mock.UpdateFunc == nil {
		panic("quitPlanServiceMock.UpdateFunc: method is nil but quitPlanService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input quitplan.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *quitPlanServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input quitplan.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *quitPlanServiceMock) UpdateQuitDate(ctx context.Context, quitDate time.Time) (*quitplan.PlanResult, error) {
	if mock.UpdateQuitDateFunc == nil {
		panic("quitPlanServiceMock.UpdateQuitDateFunc: method is nil but quitPlanService.UpdateQuitDate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		QuitDate time.Time
	}{Ctx: ctx, QuitDate: quitDate}
	mock.lockUpdateQuitDate.Lock()
	mock.calls.UpdateQuitDate = append(mock.calls.UpdateQuitDate, callInfo)
	mock.lockUpdateQuitDate.Unlock()
	return mock.UpdateQuitDateFunc(ctx, quitDate)
}

func (mock *quitPlanServiceMock) UpdateQuitDateCalls() []struct {
	Ctx      context.Context
	QuitDate time.Time
} {
	mock.lockUpdateQuitDate.RLock()
	calls := mock.calls.UpdateQuitDate
	mock.lockUpdateQuitDate.RUnlock()
	return calls
}
