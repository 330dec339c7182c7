package rest

import (
	"context"
	"github.com/heartmarshall/lingoread/internal/service/adaptation"
	"sync"
)

var _ articleAdapter = &articleAdapterMock{}

type articleAdapterMock struct {
	AdaptFunc func(ctx context.Context, input adaptation.AdaptInput) (*adaptation.AdaptResult, error)

	calls struct {
		Adapt []struct {
			Ctx   context.Context
			Input adaptation.AdaptInput
		}
	}
	lockAdapt sync.RWMutex
}

func (mock *articleAdapterMock) Adapt(ctx context.Context, input adaptation.AdaptInput) (*adaptation.AdaptResult, error) {
	if mock.AdaptFunc == nil {
		panic("articleAdapterMock.AdaptFunc: method is nil but articleAdapter.Adapt was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input adaptation.AdaptInput
	}{Ctx: ctx, Input: input}
	mock.lockAdapt.Lock()
	mock.calls.Adapt = append(mock.calls.Adapt, callInfo)
	mock.lockAdapt.Unlock()
	return mock.AdaptFunc(ctx, input)
}

func (mock *articleAdapterMock) AdaptCalls() []struct {
	Ctx   context.Context
	Input adaptation.AdaptInput
} {
	mock.lockAdapt.RLock()
	calls := mock.calls.Adapt
	mock.lockAdapt.RUnlock()
	return calls
}
