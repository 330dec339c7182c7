package lookup

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lingoread/internal/domain"
)

const (
	MaxWordLength    = 100
	MaxContextLength = 1000
)

// LookupInput holds parameters for a word lookup. Context is an optional
// sentence the word was seen in.
type LookupInput struct {
	Word           string
	NativeLanguage domain.Language
	Context        *string
}

// Validate validates the lookup input. An unsupported language is not a
// validation failure here; translation falls back to the word instead.
func (i LookupInput) Validate() error {
	var errs []domain.FieldError

	word := strings.TrimSpace(i.Word)
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if utf8.RuneCountInString(word) > MaxWordLength {
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
	}

	if strings.TrimSpace(string(i.NativeLanguage)) == "" {
		errs = append(errs, domain.FieldError{Field: "nativeLanguage", Message: "required"})
	}

	if i.Context != nil && utf8.RuneCountInString(*i.Context) > MaxContextLength {
		errs = append(errs, domain.FieldError{Field: "context", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
