package rest

import (
	"context"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/comprehension"
	"sync"
)

var _ questionGenerator = &questionGeneratorMock{}

type questionGeneratorMock struct {
	GenerateFunc func(ctx context.Context, input comprehension.GenerateInput) ([]domain.ComprehensionQuestion, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input comprehension.GenerateInput
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *questionGeneratorMock) Generate(ctx context.Context, input comprehension.GenerateInput) ([]domain.ComprehensionQuestion, error) {
	if mock.GenerateFunc == nil {
		panic("questionGeneratorMock.GenerateFunc: method is nil but questionGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comprehension.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *questionGeneratorMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input comprehension.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
