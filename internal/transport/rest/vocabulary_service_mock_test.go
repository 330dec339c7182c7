package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/vocabulary"
	"sync"
)

var _ vocabularyService = &vocabularyServiceMock{}

type vocabularyServiceMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error)
	ReviewFunc     func(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	SaveFunc       func(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, input vocabulary.UpdateInput) (*domain.VocabularyEntry, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Review []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Save []struct {
			Ctx   context.Context
			Input vocabulary.SaveInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input vocabulary.UpdateInput
		}
	}
	lockListByUser sync.RWMutex
	lockReview     sync.RWMutex
	lockSave       sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *vocabularyServiceMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error) {
	if mock.ListByUserFunc == nil {
		panic("vocabularyServiceMock.ListByUserFunc: method is nil but vocabularyService.ListByUser was just called")
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

func (mock *vocabularyServiceMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Review(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	if mock.ReviewFunc == nil {
		panic("vocabularyServiceMock.ReviewFunc: method is nil but vocabularyService.Review was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, id)
}

func (mock *vocabularyServiceMock) ReviewCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReview.RLock()
	calls := mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Save(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error) {
	if mock.SaveFunc == nil {
		panic("vocabularyServiceMock.SaveFunc: method is nil but vocabularyService.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vocabulary.SaveInput
	}{Ctx: ctx, Input: input}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *vocabularyServiceMock) SaveCalls() []struct {
	Ctx   context.Context
	Input vocabulary.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *vocabularyServiceMock) Update(ctx context.Context, id uuid.UUID, input vocabulary.UpdateInput) (*domain.VocabularyEntry, error) {
	if mock.UpdateFunc == nil {
		panic("vocabularyServiceMock.UpdateFunc: method is nil but vocabularyService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input vocabulary.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *vocabularyServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input vocabulary.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
