package progress

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
)

const (
	MaxWords      = 500
	MaxWordLength = 100
)

// RecordInput holds a completed reading session.
type RecordInput struct {
	UserID             uuid.UUID
	ArticleID          uuid.UUID
	WordsLearned       []string
	ComprehensionScore *int
}

// Validate validates the record input.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "articleId", Message: "required"})
	}

	if len(i.WordsLearned) > MaxWords {
		errs = append(errs, domain.FieldError{Field: "wordsLearned", Message: "too many words"})
	} else {
		for _, w := range i.WordsLearned {
			if utf8.RuneCountInString(w) > MaxWordLength {
				errs = append(errs, domain.FieldError{Field: "wordsLearned", Message: "word too long"})
				break
			}
		}
	}

	if i.ComprehensionScore != nil {
		if *i.ComprehensionScore < domain.MinComprehensionScore || *i.ComprehensionScore > domain.MaxComprehensionScore {
			errs = append(errs, domain.FieldError{Field: "comprehensionScore", Message: "must be between 0 and 100"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
