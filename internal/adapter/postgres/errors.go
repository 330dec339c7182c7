package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lingoread/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// key identifies the row (id, username, ...) and may be empty.
// Context errors (Canceled, DeadlineExceeded) pass through unmapped.
// Unrecognised storage failures are wrapped with domain.ErrPersistence.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	return mapError(err, entity, key)
}

func mapError(err error, entity string, key any) error {
	prefix := entity
	if s := fmt.Sprint(key); s != "" {
		prefix = entity + " " + s
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case "23514", "23502", "22P02": // check_violation, not_null_violation, invalid_text_representation
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w: %w", prefix, domain.ErrPersistence, err)
}
