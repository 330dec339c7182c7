package lookup

import (
	"context"
	"github.com/heartmarshall/lingoread/internal/provider"
	"sync"
)

var _ textGenerator = &textGeneratorMock{}

type textGeneratorMock struct {
	GenerateFunc func(ctx context.Context, p provider.Prompt) (string, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			P   provider.Prompt
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *textGeneratorMock) Generate(ctx context.Context, p provider.Prompt) (string, error) {
	if mock.GenerateFunc == nil {
		panic("textGeneratorMock.GenerateFunc: method is nil but textGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   provider.Prompt
	}{Ctx: ctx, P: p}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, p)
}

func (mock *textGeneratorMock) GenerateCalls() []struct {
	Ctx context.Context
	P   provider.Prompt
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
