package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
)

type vocabularyRepo interface {
	Create(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error)
	Update(ctx context.Context, id uuid.UUID, params domain.VocabularyUpdateParams) (*domain.VocabularyEntry, error)
	IncrementReview(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service manages learners' saved words.
type Service struct {
	log   *slog.Logger
	vocab vocabularyRepo
	users userRepo
}

// NewService creates a new vocabulary service.
func NewService(logger *slog.Logger, vocab vocabularyRepo, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "vocabulary"),
		vocab: vocab,
		users: users,
	}
}

// Save stores a looked-up word for a user.
// Returns ErrNotFound if the user does not exist.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.VocabularyEntry, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Insert; a missing user surfaces as a foreign key violation
	entry, err := s.vocab.Create(ctx, &domain.VocabularyEntry{
		UserID:            input.UserID,
		Word:              strings.TrimSpace(input.Word),
		Definition:        strings.TrimSpace(input.Definition),
		CulturalContext:   trimmedOrNil(input.CulturalContext),
		NativeTranslation: trimmedOrNil(input.NativeTranslation),
		ExampleSentence:   trimmedOrNil(input.ExampleSentence),
	})
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Save: %w", err)
	}

	s.log.InfoContext(ctx, "word saved",
		slog.String("user_id", input.UserID.String()),
		slog.String("entry_id", entry.ID.String()))

	return entry, nil
}

// ListByUser returns a user's saved words, most recent first.
// Returns ErrNotFound if the user does not exist.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("vocabulary.ListByUser: %w", err)
	}

	entries, err := s.vocab.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.ListByUser: %w", err)
	}
	return entries, nil
}

// Update edits the explicitly set fields of an entry.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.VocabularyEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.VocabularyUpdateParams{
		Definition:        trimmedPtr(input.Definition),
		CulturalContext:   trimmedPtr(input.CulturalContext),
		NativeTranslation: trimmedPtr(input.NativeTranslation),
		ExampleSentence:   trimmedPtr(input.ExampleSentence),
	}
	if params.IsEmpty() {
		entry, err := s.vocab.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("vocabulary.Update: %w", err)
		}
		return entry, nil
	}

	entry, err := s.vocab.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Update: %w", err)
	}
	return entry, nil
}

// Review records one more review of an entry.
func (s *Service) Review(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	entry, err := s.vocab.IncrementReview(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Review: %w", err)
	}

	s.log.DebugContext(ctx, "word reviewed",
		slog.String("entry_id", id.String()),
		slog.Int("review_count", entry.ReviewCount))

	return entry, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
