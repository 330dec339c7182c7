// Package article implements the Article repository using PostgreSQL.
package article

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

const table = "articles"

var columns = []string{
	"id", "title", "content", "summary", "category", "difficulty_level",
	"estimated_read_time", "image_url", "tags", "cultural_notes", "created_at",
}

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new article repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns an article by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article query: %w", err)
	}

	var a domain.Article
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a, query, args...); err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	normalize(&a)
	return &a, nil
}

// List returns articles matching the filter, newest first. Ties on
// created_at are broken by id so pagination is stable.
func (r *Repo) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	filter.Normalize()

	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Category != nil {
		b = b.Where(squirrel.Eq{"category": string(*filter.Category)})
	}
	if filter.Level != nil {
		b = b.Where(squirrel.Eq{"difficulty_level": string(*filter.Level)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article list: %w", err)
	}

	var out []domain.Article
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "articles", "")
	}
	if out == nil {
		out = []domain.Article{}
	}
	for i := range out {
		normalize(&out[i])
	}
	return out, nil
}

// Create inserts a new article and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	tags, err := postgres.JSONB(a.Tags)
	if err != nil {
		return nil, err
	}
	notes, err := postgres.JSONB(a.CulturalNotes)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("title", "content", "summary", "category", "difficulty_level",
			"estimated_read_time", "image_url", "tags", "cultural_notes").
		Values(a.Title, a.Content, a.Summary, string(a.Category), string(a.DifficultyLevel),
			a.EstimatedReadTime, a.ImageURL, tags, notes).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article insert: %w", err)
	}

	var created domain.Article
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "article", a.Title)
	}
	normalize(&created)
	return &created, nil
}

// Update applies the set fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams) (*domain.Article, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).Where(squirrel.Eq{"id": id})
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Content != nil {
		b = b.Set("content", *params.Content)
	}
	if params.Summary != nil {
		b = b.Set("summary", *params.Summary)
	}
	if params.Category != nil {
		b = b.Set("category", string(*params.Category))
	}
	if params.DifficultyLevel != nil {
		b = b.Set("difficulty_level", string(*params.DifficultyLevel))
	}
	if params.EstimatedReadTime != nil {
		b = b.Set("estimated_read_time", *params.EstimatedReadTime)
	}
	if params.ImageURL != nil {
		// An empty string clears the image.
		if *params.ImageURL == "" {
			b = b.Set("image_url", nil)
		} else {
			b = b.Set("image_url", *params.ImageURL)
		}
	}
	if params.Tags != nil {
		tags, err := postgres.JSONB(*params.Tags)
		if err != nil {
			return nil, err
		}
		b = b.Set("tags", tags)
	}
	if params.CulturalNotes != nil {
		notes, err := postgres.JSONB(*params.CulturalNotes)
		if err != nil {
			return nil, err
		}
		b = b.Set("cultural_notes", notes)
	}

	query, args, err := b.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article update: %w", err)
	}

	var a domain.Article
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &a, query, args...); err != nil {
		return nil, postgres.MapError(err, "article", id)
	}
	normalize(&a)
	return &a, nil
}

func normalize(a *domain.Article) {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if a.CulturalNotes == nil {
		a.CulturalNotes = map[string]string{}
	}
}
