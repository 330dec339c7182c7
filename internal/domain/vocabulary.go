package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordLookupResult is the merged definition and translation of a single word.
type WordLookupResult struct {
	Word              string
	Definition        string
	CulturalContext   string
	NativeTranslation string
	ExampleSentence   string
}

// VocabularyEntry is a word saved by a learner.
type VocabularyEntry struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	Word              string    `db:"word"`
	Definition        string    `db:"definition"`
	CulturalContext   *string   `db:"cultural_context"`
	NativeTranslation *string   `db:"native_translation"`
	ExampleSentence   *string   `db:"example_sentence"`
	LearnedAt         time.Time `db:"learned_at"`
	ReviewCount       int       `db:"review_count"`
}

// VocabularyUpdateParams is a partial update of a vocabulary entry.
type VocabularyUpdateParams struct {
	Definition        *string
	CulturalContext   *string
	NativeTranslation *string
	ExampleSentence   *string
}

// IsEmpty reports whether no field is set.
func (p VocabularyUpdateParams) IsEmpty() bool {
	return p.Definition == nil && p.CulturalContext == nil && p.NativeTranslation == nil && p.ExampleSentence == nil
}
