package milestone

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

var _ quitPlanRepo = &quitPlanRepoMock{}

type quitPlanRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.QuitPlan, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByUserID sync.RWMutex
}

func (mock *quitPlanRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.QuitPlan, error) {
	if mock.GetByUserIDFunc == nil {
		panic("quitPlanRepoMock.GetByUserIDFunc: method is nil but quitPlanRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *quitPlanRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}
