package ingest

import (
	"context"
	"github.com/heartmarshall/lingoread/internal/provider"
	"sync"
)

var _ feedReader = &feedReaderMock{}

type feedReaderMock struct {
	FetchFunc func(ctx context.Context, feedURL string, limit int) ([]provider.FeedItem, error)

	calls struct {
		Fetch []struct {
			Ctx     context.Context
			FeedURL string
			Limit   int
		}
	}
	lockFetch sync.RWMutex
}

func (mock *feedReaderMock) Fetch(ctx context.Context, feedURL string, limit int) ([]provider.FeedItem, error) {
	if mock.FetchFunc == nil {
		panic("feedReaderMock.FetchFunc: method is nil but feedReader.Fetch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FeedURL string
		Limit   int
	}{Ctx: ctx, FeedURL: feedURL, Limit: limit}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, feedURL, limit)
}

func (mock *feedReaderMock) FetchCalls() []struct {
	Ctx     context.Context
	FeedURL string
	Limit   int
} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}
