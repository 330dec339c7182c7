package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProgressEntry records one completed reading session.
type ProgressEntry struct {
	ID                 uuid.UUID `db:"id"`
	UserID             uuid.UUID `db:"user_id"`
	ArticleID          uuid.UUID `db:"article_id"`
	CompletedAt        time.Time `db:"completed_at"`
	WordsLearned       []string  `db:"words_learned"`
	ComprehensionScore *int      `db:"comprehension_score"`
}

const (
	MinComprehensionScore = 0
	MaxComprehensionScore = 100
)
