package comprehension

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/provider"
)

// textGenerator produces raw model completions.
type textGenerator interface {
	Generate(ctx context.Context, p provider.Prompt) (string, error)
}

var errMissingQuestions = errors.New("questions: missing")

// Service generates multiple-choice comprehension questions for a text.
type Service struct {
	log     *slog.Logger
	gen     textGenerator
	timeout time.Duration
}

// NewService creates a new comprehension service. A zero timeout means the
// caller's context is the only deadline.
func NewService(logger *slog.Logger, gen textGenerator, timeout time.Duration) *Service {
	return &Service{
		log:     logger.With("service", "comprehension"),
		gen:     gen,
		timeout: timeout,
	}
}

// generation is the expected shape of the model's answer.
type generation struct {
	Questions *[]rawQuestion `json:"questions"`
}

// Generate asks the text generator for questions about the given article.
func (s *Service) Generate(ctx context.Context, input GenerateInput) ([]domain.ComprehensionQuestion, error) {
	// Step 1: Validate input before any external call.
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Call the generator.
	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	completion, err := s.gen.Generate(genCtx, buildPrompt(input))
	if err != nil {
		return nil, domain.NewGenerationError("comprehension.Generate", err)
	}

	// Step 3: Parse and validate the question list.
	var out generation
	if err := provider.DecodeJSON(completion, &out); err != nil {
		return nil, domain.NewGenerationError("comprehension.Generate", err)
	}
	if out.Questions == nil {
		return nil, domain.NewGenerationError("comprehension.Generate", errMissingQuestions)
	}

	questions, err := validateRaw(*out.Questions)
	if err != nil {
		return nil, domain.NewGenerationError("comprehension.Generate", err)
	}

	if len(questions) > MaxQuestions {
		s.log.WarnContext(ctx, "truncating generated questions",
			slog.Int("received", len(questions)),
			slog.Int("kept", MaxQuestions),
		)
		questions = questions[:MaxQuestions]
	}

	s.log.InfoContext(ctx, "questions generated",
		slog.String("level", input.DifficultyLevel.String()),
		slog.Int("count", len(questions)),
	)

	return questions, nil
}
