package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
)

type progressRepo interface {
	Create(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementStats(ctx context.Context, id uuid.UUID, articlesDelta, wordsDelta int) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records completed reading sessions and keeps user totals in step.
type Service struct {
	log      *slog.Logger
	progress progressRepo
	users    userRepo
	tx       txManager
}

// NewService creates a new progress service.
func NewService(logger *slog.Logger, progress progressRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "progress"),
		progress: progress,
		users:    users,
		tx:       tx,
	}
}

// Record stores a completed reading session and increments the user's
// article and word totals in the same transaction.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.ProgressEntry, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	words := domain.NormalizeWordList(input.WordsLearned)

	// Step 2: Insert and update totals atomically
	var (
		entry *domain.ProgressEntry
		user  *domain.User
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.progress.Create(ctx, &domain.ProgressEntry{
			UserID:             input.UserID,
			ArticleID:          input.ArticleID,
			WordsLearned:       words,
			ComprehensionScore: input.ComprehensionScore,
		})
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}

		user, err = s.users.IncrementStats(ctx, input.UserID, 1, len(words))
		if err != nil {
			return fmt.Errorf("increment stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("progress.Record: %w", err)
	}

	s.log.InfoContext(ctx, "progress recorded",
		slog.String("user_id", input.UserID.String()),
		slog.String("article_id", input.ArticleID.String()),
		slog.Int("words", len(words)),
		slog.Int("total_articles_read", user.TotalArticlesRead))

	return entry, nil
}

// ListByUser returns a user's reading history, most recent first.
// Returns ErrNotFound if the user does not exist.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("progress.ListByUser: %w", err)
	}

	entries, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.ListByUser: %w", err)
	}
	return entries, nil
}
