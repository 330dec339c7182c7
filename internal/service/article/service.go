package article

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
)

type articleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams) (*domain.Article, error)
}

// Service implements the article catalog.
type Service struct {
	log      *slog.Logger
	articles articleRepo
}

// NewService creates a new article service.
func NewService(logger *slog.Logger, articles articleRepo) *Service {
	return &Service{
		log:      logger.With("service", "article"),
		articles: articles,
	}
}

// List returns articles newest first. Category and level filters combine with AND.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Article, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ArticleFilter{
		Category: input.Category,
		Level:    input.Level,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	filter.Normalize()

	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("article.List: %w", err)
	}
	return articles, nil
}

// Get returns an article by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	a, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article.Get: %w", err)
	}
	return a, nil
}

// Create stores a hand-written article.
func (s *Service) Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Insert
	a, err := s.articles.Create(ctx, input.toArticle())
	if err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	s.log.InfoContext(ctx, "article created",
		slog.String("article_id", a.ID.String()),
		slog.String("category", a.Category.String()),
		slog.String("level", a.DifficultyLevel.String()))

	return a, nil
}

// Update applies an administrative partial update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateArticleInput) (*domain.Article, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.toParams()
	if params.IsEmpty() {
		return s.Get(ctx, id)
	}

	// Step 2: Update
	a, err := s.articles.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("article.Update: %w", err)
	}

	s.log.InfoContext(ctx, "article updated", slog.String("article_id", id.String()))

	return a, nil
}
