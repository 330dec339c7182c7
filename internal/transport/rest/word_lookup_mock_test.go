package rest

import (
	"context"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/lookup"
	"sync"
)

var _ wordLookup = &wordLookupMock{}

type wordLookupMock struct {
	LookupFunc func(ctx context.Context, input lookup.LookupInput) (*domain.WordLookupResult, error)

	calls struct {
		Lookup []struct {
			Ctx   context.Context
			Input lookup.LookupInput
		}
	}
	lockLookup sync.RWMutex
}

func (mock *wordLookupMock) Lookup(ctx context.Context, input lookup.LookupInput) (*domain.WordLookupResult, error) {
	if mock.LookupFunc == nil {
		panic("wordLookupMock.LookupFunc: method is nil but wordLookup.Lookup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input lookup.LookupInput
	}{Ctx: ctx, Input: input}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, input)
}

func (mock *wordLookupMock) LookupCalls() []struct {
	Ctx   context.Context
	Input lookup.LookupInput
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
