package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is a leveled reading text with its teaching annotations.
type Article struct {
	ID                uuid.UUID         `db:"id"`
	Title             string            `db:"title"`
	Content           string            `db:"content"`
	Summary           string            `db:"summary"`
	Category          Category          `db:"category"`
	DifficultyLevel   Level             `db:"difficulty_level"`
	EstimatedReadTime int               `db:"estimated_read_time"`
	ImageURL          *string           `db:"image_url"`
	Tags              []string          `db:"tags"`
	CulturalNotes     map[string]string `db:"cultural_notes"`
	CreatedAt         time.Time         `db:"created_at"`
}

// ArticleUpdateParams is a partial (administrative) update of an article.
type ArticleUpdateParams struct {
	Title             *string
	Content           *string
	Summary           *string
	Category          *Category
	DifficultyLevel   *Level
	EstimatedReadTime *int
	ImageURL          *string
	Tags              *[]string
	CulturalNotes     *map[string]string
}

// IsEmpty reports whether no field is set.
func (p ArticleUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Summary == nil && p.Category == nil &&
		p.DifficultyLevel == nil && p.EstimatedReadTime == nil && p.ImageURL == nil &&
		p.Tags == nil && p.CulturalNotes == nil
}

// ComprehensionQuestion is a multiple-choice question about an article.
type ComprehensionQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}
