package milestone

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quitsmoke-backend/internal/domain"
)

var _ unlockRepo = &unlockRepoMock{}

type unlockRepoMock struct {
	GetFunc            func(ctx context.Context, userID uuid.UUID, milestoneID uuid.UUID) (*domain.UnlockRecord, error)
	InsertIfAbsentFunc func(ctx context.Context, userID uuid.UUID, milestoneID uuid.UUID, at time.Time) (*domain.UnlockRecord, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.UnlockRecord, error)
	SetSharedFunc      func(ctx context.Context, userID uuid.UUID, milestoneID uuid.UUID) (bool, error)

	calls struct {
		Get []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			MilestoneID uuid.UUID
		}
		InsertIfAbsent []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			MilestoneID uuid.UUID
			At          time.Time
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SetShared []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			MilestoneID uuid.UUID
		}
	}
	lockGet            sync.RWMutex
	lockInsertIfAbsent sync.RWMutex
	lockListByUser     sync.RWMutex
	lockSetShared      sync.RWMutex
}

func (mock *unlockRepoMock) Get(ctx context.Context, userID uuid.UUID, milestoneID uuid.UUID) (*domain.UnlockRecord, error) {
	if mock.GetFunc == nil {
		panic("unlockRepoMock.GetFunc: method is nil but unlockRepo.Get was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		MilestoneID uuid.UUID
	}{Ctx: ctx, UserID: userID, MilestoneID: milestoneID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, milestoneID)
}

func (mock *unlockRepoMock) GetCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	MilestoneID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *unlockRepoMock) InsertIfAbsent(ctx context.Context, userID uuid.UUID, milestoneID uuid.UUID, at time.Time) (*domain.UnlockRecord, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("unlockRepoMock.InsertIfAbsentFunc: method is nil but unlockRepo.InsertIfAbsent was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		MilestoneID uuid.UUID
		At          time.Time
	}{Ctx: ctx, UserID: userID, MilestoneID: milestoneID, At: at}
	mock.lockInsertIfAbsent.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, callInfo)
	mock.lockInsertIfAbsent.Unlock()
	return mock.InsertIfAbsentFunc(ctx, userID, milestoneID, at)
}

func (mock *unlockRepoMock) InsertIfAbsentCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	MilestoneID uuid.UUID
	At          time.Time
} {
	mock.lockInsertIfAbsent.RLock()
	calls := mock.calls.InsertIfAbsent
	mock.lockInsertIfAbsent.RUnlock()
	return calls
}

func (mock *unlockRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UnlockRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("unlockRepoMock.ListByUserFunc: method is nil but unlockRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *unlockRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *unlockRepoMock) SetShared(ctx context.Context, userID uuid.UUID, milestoneID uuid.UUID) (bool, error) {
	if mock.SetSharedFunc == nil {
		panic("unlockRepoMock.SetSharedFunc: method is nil but unlockRepo.SetShared was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		MilestoneID uuid.UUID
	}{Ctx: ctx, UserID: userID, MilestoneID: milestoneID}
	mock.lockSetShared.Lock()
	mock.calls.SetShared = append(mock.calls.SetShared, callInfo)
	mock.lockSetShared.Unlock()
	return mock.SetSharedFunc(ctx, userID, milestoneID)
}

func (mock *unlockRepoMock) SetSharedCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	MilestoneID uuid.UUID
} {
	mock.lockSetShared.RLock()
	calls := mock.calls.SetShared
	mock.lockSetShared.RUnlock()
	return calls
}
