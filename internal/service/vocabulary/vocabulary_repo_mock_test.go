package vocabulary

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
	"sync"
)

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	CreateFunc          func(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, params domain.VocabularyUpdateParams) (*domain.VocabularyEntry, error)
	IncrementReviewFunc func(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.VocabularyEntry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.VocabularyUpdateParams
		}
		IncrementReview []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListByUser      sync.RWMutex
	lockUpdate          sync.RWMutex
	lockIncrementReview sync.RWMutex
}

func (mock *vocabularyRepoMock) Create(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error) {
	if mock.CreateFunc == nil {
		panic("vocabularyRepoMock.CreateFunc: method is nil but vocabularyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.VocabularyEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *vocabularyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.VocabularyEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabularyRepoMock.GetByIDFunc: method is nil but vocabularyRepo.GetByID was just called")
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

func (mock *vocabularyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error) {
	if mock.ListByUserFunc == nil {
		panic("vocabularyRepoMock.ListByUserFunc: method is nil but vocabularyRepo.ListByUser was just called")
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

func (mock *vocabularyRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.VocabularyUpdateParams) (*domain.VocabularyEntry, error) {
	if mock.UpdateFunc == nil {
		panic("vocabularyRepoMock.UpdateFunc: method is nil but vocabularyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.VocabularyUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *vocabularyRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.VocabularyUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) IncrementReview(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	if mock.IncrementReviewFunc == nil {
		panic("vocabularyRepoMock.IncrementReviewFunc: method is nil but vocabularyRepo.IncrementReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementReview.Lock()
	mock.calls.IncrementReview = append(mock.calls.IncrementReview, callInfo)
	mock.lockIncrementReview.Unlock()
	return mock.IncrementReviewFunc(ctx, id)
}

func (mock *vocabularyRepoMock) IncrementReviewCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementReview.RLock()
	calls := mock.calls.IncrementReview
	mock.lockIncrementReview.RUnlock()
	return calls
}
