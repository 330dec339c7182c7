package comprehension

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lingoread/internal/domain"
)

// MaxContentChars bounds the article text sent to the generator.
const MaxContentChars = 20000

// GenerateInput holds parameters for question generation.
type GenerateInput struct {
	ArticleContent  string
	DifficultyLevel domain.Level
}

// Validate validates the generate input.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ArticleContent) == "" {
		errs = append(errs, domain.FieldError{Field: "articleContent", Message: "required"})
	} else if utf8.RuneCountInString(i.ArticleContent) > MaxContentChars {
		errs = append(errs, domain.FieldError{Field: "articleContent", Message: "too long"})
	}

	if !i.DifficultyLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficultyLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
