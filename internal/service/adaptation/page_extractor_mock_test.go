package adaptation

import (
	"context"
	"github.com/heartmarshall/lingoread/internal/provider"
	"sync"
)

var _ pageExtractor = &pageExtractorMock{}

type pageExtractorMock struct {
	ExtractFunc func(ctx context.Context, rawURL string) (*provider.Page, error)

	calls struct {
		Extract []struct {
			Ctx    context.Context
			RawURL string
		}
	}
	lockExtract sync.RWMutex
}

func (mock *pageExtractorMock) Extract(ctx context.Context, rawURL string) (*provider.Page, error) {
	if mock.ExtractFunc == nil {
		panic("pageExtractorMock.ExtractFunc: method is nil but pageExtractor.Extract was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RawURL string
	}{Ctx: ctx, RawURL: rawURL}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, rawURL)
}

func (mock *pageExtractorMock) ExtractCalls() []struct {
	Ctx    context.Context
	RawURL string
} {
	mock.lockExtract.RLock()
	calls := mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}
