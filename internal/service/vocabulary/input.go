package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
)

const (
	MaxWordLength = 100
	MaxTextLength = 2000
)

// SaveInput holds a lookup result to be saved for a user.
type SaveInput struct {
	UserID            uuid.UUID
	Word              string
	Definition        string
	CulturalContext   *string
	NativeTranslation *string
	ExampleSentence   *string
}

// Validate validates the save input.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}

	word := strings.TrimSpace(i.Word)
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if utf8.RuneCountInString(word) > MaxWordLength {
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
	}

	if strings.TrimSpace(i.Definition) == "" {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "required"})
	} else if utf8.RuneCountInString(i.Definition) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "too long"})
	}

	errs = append(errs, optionalText("culturalContext", i.CulturalContext)...)
	errs = append(errs, optionalText("nativeTranslation", i.NativeTranslation)...)
	errs = append(errs, optionalText("exampleSentence", i.ExampleSentence)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for editing an entry.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Definition        *string
	CulturalContext   *string
	NativeTranslation *string
	ExampleSentence   *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Definition != nil && strings.TrimSpace(*i.Definition) == "" {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "cannot be empty"})
	}
	errs = append(errs, optionalText("definition", i.Definition)...)
	errs = append(errs, optionalText("culturalContext", i.CulturalContext)...)
	errs = append(errs, optionalText("nativeTranslation", i.NativeTranslation)...)
	errs = append(errs, optionalText("exampleSentence", i.ExampleSentence)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func optionalText(field string, s *string) []domain.FieldError {
	if s != nil && utf8.RuneCountInString(*s) > MaxTextLength {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}
