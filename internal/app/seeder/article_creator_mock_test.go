package seeder

import (
	"context"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/article"
	"sync"
)

var _ ArticleCreator = &ArticleCreatorMock{}

type ArticleCreatorMock struct {
	CreateFunc func(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error)
	ListFunc   func(ctx context.Context, input article.ListInput) ([]domain.Article, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input article.CreateArticleInput
		}
		List []struct {
			Ctx   context.Context
			Input article.ListInput
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *ArticleCreatorMock) Create(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("ArticleCreatorMock.CreateFunc: method is nil but ArticleCreator.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CreateArticleInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *ArticleCreatorMock) CreateCalls() []struct {
	Ctx   context.Context
	Input article.CreateArticleInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ArticleCreatorMock) List(ctx context.Context, input article.ListInput) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("ArticleCreatorMock.ListFunc: method is nil but ArticleCreator.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *ArticleCreatorMock) ListCalls() []struct {
	Ctx   context.Context
	Input article.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
