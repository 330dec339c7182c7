// Package progress implements the reading-progress repository using PostgreSQL.
package progress

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

const table = "user_progress"

var columns = []string{
	"id", "user_id", "article_id", "completed_at", "words_learned", "comprehension_score",
}

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a progress record. Unknown user or article ids surface as
// domain.ErrNotFound through the foreign keys.
func (r *Repo) Create(ctx context.Context, p *domain.ProgressEntry) (*domain.ProgressEntry, error) {
	words, err := postgres.JSONB(p.WordsLearned)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "article_id", "words_learned", "comprehension_score").
		Values(p.UserID, p.ArticleID, words, p.ComprehensionScore).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress insert: %w", err)
	}

	var created domain.ProgressEntry
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "progress for user", p.UserID)
	}
	if created.WordsLearned == nil {
		created.WordsLearned = []string{}
	}
	return &created, nil
}

// ListByUser returns the user's completed readings, most recent first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("completed_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress list: %w", err)
	}

	var out []domain.ProgressEntry
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "progress for user", userID)
	}
	if out == nil {
		out = []domain.ProgressEntry{}
	}
	for i := range out {
		if out[i].WordsLearned == nil {
			out[i].WordsLearned = []string{}
		}
	}
	return out, nil
}
