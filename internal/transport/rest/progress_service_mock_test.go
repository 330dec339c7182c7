package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/progress"
	"sync"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error)
	RecordFunc     func(ctx context.Context, input progress.RecordInput) (*domain.ProgressEntry, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Record []struct {
			Ctx   context.Context
			Input progress.RecordInput
		}
	}
	lockListByUser sync.RWMutex
	lockRecord     sync.RWMutex
}

func (mock *progressServiceMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error) {
	if mock.ListByUserFunc == nil {
		panic("progressServiceMock.ListByUserFunc: method is nil but progressService.ListByUser was just called")
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

func (mock *progressServiceMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *progressServiceMock) Record(ctx context.Context, input progress.RecordInput) (*domain.ProgressEntry, error) {
	if mock.RecordFunc == nil {
		panic("progressServiceMock.RecordFunc: method is nil but progressService.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.RecordInput
	}{Ctx: ctx, Input: input}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *progressServiceMock) RecordCalls() []struct {
	Ctx   context.Context
	Input progress.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
