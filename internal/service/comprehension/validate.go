package comprehension

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/lingoread/internal/domain"
)

// Question list limits.
const (
	MaxQuestions = 5
	MinOptions   = 2
	MaxOptions   = 6
)

// rawQuestion mirrors ComprehensionQuestion with pointers so that missing
// fields can be told apart from zero values.
type rawQuestion struct {
	Question      *string  `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

// ValidateQuestions decodes a JSON array of generated questions and checks
// every entry. An empty or malformed list is an error. The result is not
// truncated; callers cap it at MaxQuestions.
func ValidateQuestions(raw json.RawMessage) ([]domain.ComprehensionQuestion, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.New("questions: missing")
	}
	var list []rawQuestion
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}
	return validateRaw(list)
}

func validateRaw(list []rawQuestion) ([]domain.ComprehensionQuestion, error) {
	if len(list) == 0 {
		return nil, errors.New("questions: empty list")
	}

	out := make([]domain.ComprehensionQuestion, 0, len(list))
	for i, q := range list {
		valid, err := q.validate()
		if err != nil {
			return nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		out = append(out, valid)
	}
	return out, nil
}

func (q rawQuestion) validate() (domain.ComprehensionQuestion, error) {
	var zero domain.ComprehensionQuestion

	if q.Question == nil || strings.TrimSpace(*q.Question) == "" {
		return zero, errors.New("question: required")
	}
	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		return zero, fmt.Errorf("options: want %d..%d, got %d", MinOptions, MaxOptions, len(q.Options))
	}

	options := make([]string, len(q.Options))
	for i, o := range q.Options {
		o = strings.TrimSpace(o)
		if o == "" {
			return zero, fmt.Errorf("options[%d]: empty", i)
		}
		options[i] = o
	}

	if q.CorrectAnswer == nil {
		return zero, errors.New("correctAnswer: required")
	}
	if *q.CorrectAnswer < 0 || *q.CorrectAnswer >= len(options) {
		return zero, fmt.Errorf("correctAnswer: %d out of range", *q.CorrectAnswer)
	}
	if q.Explanation == nil || strings.TrimSpace(*q.Explanation) == "" {
		return zero, errors.New("explanation: required")
	}

	return domain.ComprehensionQuestion{
		Question:      strings.TrimSpace(*q.Question),
		Options:       options,
		CorrectAnswer: *q.CorrectAnswer,
		Explanation:   strings.TrimSpace(*q.Explanation),
	}, nil
}
