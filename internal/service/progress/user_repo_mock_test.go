package progress

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementStatsFunc func(ctx context.Context, id uuid.UUID, articlesDelta int, wordsDelta int) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IncrementStats []struct {
			Ctx           context.Context
			ID            uuid.UUID
			ArticlesDelta int
			WordsDelta    int
		}
	}
	lockGetByID        sync.RWMutex
	lockIncrementStats sync.RWMutex
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

func (mock *userRepoMock) IncrementStats(ctx context.Context, id uuid.UUID, articlesDelta int, wordsDelta int) (*domain.User, error) {
	if mock.IncrementStatsFunc == nil {
		panic("userRepoMock.IncrementStatsFunc: method is nil but userRepo.IncrementStats was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ID            uuid.UUID
		ArticlesDelta int
		WordsDelta    int
	}{Ctx: ctx, ID: id, ArticlesDelta: articlesDelta, WordsDelta: wordsDelta}
	mock.lockIncrementStats.Lock()
	mock.calls.IncrementStats = append(mock.calls.IncrementStats, callInfo)
	mock.lockIncrementStats.Unlock()
	return mock.IncrementStatsFunc(ctx, id, articlesDelta, wordsDelta)
}

func (mock *userRepoMock) IncrementStatsCalls() []struct {
	Ctx           context.Context
	ID            uuid.UUID
	ArticlesDelta int
	WordsDelta    int
} {
	mock.lockIncrementStats.RLock()
	calls := mock.calls.IncrementStats
	mock.lockIncrementStats.RUnlock()
	return calls
}
