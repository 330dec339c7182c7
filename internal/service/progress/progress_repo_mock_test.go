package progress

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
	"sync"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	CreateFunc     func(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.ProgressEntry
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *progressRepoMock) Create(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	if mock.CreateFunc == nil {
		panic("progressRepoMock.CreateFunc: method is nil but progressRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.ProgressEntry
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *progressRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.ProgressEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *progressRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error) {
	if mock.ListByUserFunc == nil {
		panic("progressRepoMock.ListByUserFunc: method is nil but progressRepo.ListByUser was just called")
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

func (mock *progressRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
