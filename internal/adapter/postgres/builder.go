package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder with PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// JSONB marshals v for a jsonb column. Nil slices and maps are stored as
// empty arrays / objects rather than JSON null.
func JSONB[T any](v T) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	if string(b) == "null" {
		switch any(v).(type) {
		case map[string]string:
			return []byte("{}"), nil
		default:
			return []byte("[]"), nil
		}
	}
	return b, nil
}
