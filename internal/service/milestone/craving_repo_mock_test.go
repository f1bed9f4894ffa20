package milestone

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ cravingRepo = &cravingRepoMock{}

type cravingRepoMock struct {
	CountResolvedFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		CountResolved []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCountResolved sync.RWMutex
}

func (mock *cravingRepoMock) CountResolved(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountResolvedFunc == nil {
		panic("cravingRepoMock.CountResolvedFunc: method is nil but cravingRepo.CountResolved was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountResolved.Lock()
	mock.calls.CountResolved = append(mock.calls.CountResolved, callInfo)
	mock.lockCountResolved.Unlock()
	return mock.CountResolvedFunc(ctx, userID)
}

func (mock *cravingRepoMock) CountResolvedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountResolved.RLock()
	calls := mock.calls.CountResolved
	mock.lockCountResolved.RUnlock()
	return calls
}
