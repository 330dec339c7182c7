// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{
	"id", "username", "native_language", "current_level", "streak_days",
	"total_words_learned", "total_articles_read", "achievements", "created_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	normalize(&u)
	return &u, nil
}

// Create inserts a new user and returns the persisted row. The id, counters
// and created_at are assigned by the database.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	achievements, err := postgres.JSONB(u.Achievements)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("username", "native_language", "current_level", "achievements").
		Values(u.Username, string(u.NativeLanguage), string(u.CurrentLevel), achievements).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	var created domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	normalize(&created)
	return &created, nil
}

// Update applies the set fields of params and returns the updated row.
// An empty params behaves like GetByID.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder().Update(table).Where(squirrel.Eq{"id": id})
	if params.NativeLanguage != nil {
		b = b.Set("native_language", string(*params.NativeLanguage))
	}
	if params.CurrentLevel != nil {
		b = b.Set("current_level", string(*params.CurrentLevel))
	}
	if params.StreakDays != nil {
		b = b.Set("streak_days", *params.StreakDays)
	}
	if params.Achievements != nil {
		achievements, err := postgres.JSONB(*params.Achievements)
		if err != nil {
			return nil, err
		}
		b = b.Set("achievements", achievements)
	}

	query, args, err := b.Suffix("RETURNING " + returning()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	normalize(&u)
	return &u, nil
}

// IncrementStats atomically adds the deltas to the user's reading counters
// in a single statement, so concurrent completions never lose an update.
func (r *Repo) IncrementStats(ctx context.Context, id uuid.UUID, articlesDelta, wordsDelta int) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("total_articles_read", squirrel.Expr("total_articles_read + ?", articlesDelta)).
		Set("total_words_learned", squirrel.Expr("total_words_learned + ?", wordsDelta)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user stats update: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	normalize(&u)
	return &u, nil
}

func returning() string {
	return strings.Join(columns, ", ")
}

func normalize(u *domain.User) {
	if u.Achievements == nil {
		u.Achievements = []string{}
	}
}
