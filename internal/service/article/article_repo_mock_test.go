package article

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
	"sync"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListFunc    func(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	CreateFunc  func(ctx context.Context, a *domain.Article) (*domain.Article, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams) (*domain.Article, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ArticleFilter
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Article
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.ArticleUpdateParams
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *articleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetByIDFunc == nil {
		panic("articleRepoMock.GetByIDFunc: method is nil but articleRepo.GetByID was just called")
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

func (mock *articleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *articleRepoMock) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("articleRepoMock.ListFunc: method is nil but articleRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ArticleFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *articleRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ArticleFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleRepoMock) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleRepoMock.CreateFunc: method is nil but articleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Article
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *articleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Article
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams) (*domain.Article, error) {
	if mock.UpdateFunc == nil {
		panic("articleRepoMock.UpdateFunc: method is nil but articleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.ArticleUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *articleRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.ArticleUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
