// Package vocabulary implements the saved-word repository using PostgreSQL.
package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lingoread/internal/adapter/postgres"
	"github.com/heartmarshall/lingoread/internal/domain"
)

const table = "vocabulary"

var columns = []string{
	"id", "user_id", "word", "definition", "cultural_context",
	"native_translation", "example_sentence", "learned_at", "review_count",
}

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a vocabulary entry. learned_at and review_count take their
// database defaults.
func (r *Repo) Create(ctx context.Context, e *domain.VocabularyEntry) (*domain.VocabularyEntry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "word", "definition", "cultural_context", "native_translation", "example_sentence").
		Values(e.UserID, e.Word, e.Definition, e.CulturalContext, e.NativeTranslation, e.ExampleSentence).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary insert: %w", err)
	}

	var created domain.VocabularyEntry
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary", e.Word)
	}
	return &created, nil
}

// GetByID returns a vocabulary entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary query: %w", err)
	}

	var e domain.VocabularyEntry
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &e, query, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary", id)
	}
	return &e, nil
}

// ListByUser returns the user's saved words, most recently learned first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("learned_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary list: %w", err)
	}

	var out []domain.VocabularyEntry
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary for user", userID)
	}
	if out == nil {
		out = []domain.VocabularyEntry{}
	}
	return out, nil
}

// Update applies the set fields of params and returns the updated entry.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.VocabularyUpdateParams) (*domain.VocabularyEntry, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).Where(squirrel.Eq{"id": id})
	if params.Definition != nil {
		b = b.Set("definition", *params.Definition)
	}
	if params.CulturalContext != nil {
		b = b.Set("cultural_context", *params.CulturalContext)
	}
	if params.NativeTranslation != nil {
		b = b.Set("native_translation", *params.NativeTranslation)
	}
	if params.ExampleSentence != nil {
		b = b.Set("example_sentence", *params.ExampleSentence)
	}

	return r.updateReturning(ctx, b, id)
}

// IncrementReview atomically bumps review_count by one.
func (r *Repo) IncrementReview(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	b := postgres.Builder().
		Update(table).
		Set("review_count", squirrel.Expr("review_count + 1")).
		Where(squirrel.Eq{"id": id})

	return r.updateReturning(ctx, b, id)
}

func (r *Repo) updateReturning(ctx context.Context, b squirrel.UpdateBuilder, id uuid.UUID) (*domain.VocabularyEntry, error) {
	query, args, err := b.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary update: %w", err)
	}

	var e domain.VocabularyEntry
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &e, query, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary", id)
	}
	return &e, nil
}
