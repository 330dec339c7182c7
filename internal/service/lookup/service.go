package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/provider"
)

type textGenerator interface {
	Generate(ctx context.Context, p provider.Prompt) (string, error)
}

type translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Service defines words for learners and translates them into their native language.
type Service struct {
	log        *slog.Logger
	gen        textGenerator
	translator translator
	timeout    time.Duration
}

// NewService creates a new lookup service. timeout bounds the generator
// call; zero means the caller's context is the only deadline.
func NewService(logger *slog.Logger, gen textGenerator, tr translator, timeout time.Duration) *Service {
	return &Service{
		log:        logger.With("service", "lookup"),
		gen:        gen,
		translator: tr,
		timeout:    timeout,
	}
}

type definition struct {
	Definition      string `json:"definition"`
	CulturalContext string `json:"culturalContext"`
	ExampleSentence string `json:"exampleSentence"`
}

// Lookup returns a definition, cultural context, example sentence and native
// translation for a word. Translation failures never fail the lookup.
func (s *Service) Lookup(ctx context.Context, input LookupInput) (*domain.WordLookupResult, error) {
	// Step 1: Validate input.
	if err := input.Validate(); err != nil {
		return nil, err
	}
	word := strings.TrimSpace(input.Word)

	// Step 2: Define and translate concurrently.
	var (
		def         *definition
		translation string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d, err := s.define(gctx, word, input)
		if err != nil {
			return err
		}
		def = d
		return nil
	})

	g.Go(func() error {
		translation = s.translate(gctx, word, input.NativeLanguage)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 3: Merge.
	return &domain.WordLookupResult{
		Word:              word,
		Definition:        def.Definition,
		CulturalContext:   def.CulturalContext,
		NativeTranslation: translation,
		ExampleSentence:   def.ExampleSentence,
	}, nil
}

func (s *Service) define(ctx context.Context, word string, input LookupInput) (*definition, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	completion, err := s.gen.Generate(ctx, buildPrompt(word, input.NativeLanguage.String(), input.Context))
	if err != nil {
		return nil, domain.NewGenerationError("lookup.Lookup", err)
	}

	var d definition
	if err := provider.DecodeJSON(completion, &d); err != nil {
		return nil, domain.NewGenerationError("lookup.Lookup", err)
	}

	d.Definition = strings.TrimSpace(d.Definition)
	d.CulturalContext = strings.TrimSpace(d.CulturalContext)
	d.ExampleSentence = strings.TrimSpace(d.ExampleSentence)

	switch {
	case d.Definition == "":
		return nil, domain.NewGenerationError("lookup.Lookup", errors.New("definition: required"))
	case d.CulturalContext == "":
		return nil, domain.NewGenerationError("lookup.Lookup", errors.New("culturalContext: required"))
	case d.ExampleSentence == "":
		return nil, domain.NewGenerationError("lookup.Lookup", errors.New("exampleSentence: required"))
	}

	return &d, nil
}

// translate never fails: on any error the word itself is returned.
func (s *Service) translate(ctx context.Context, word string, lang domain.Language) string {
	code, err := lang.TranslationCode()
	if err != nil {
		s.log.WarnContext(ctx, "translation skipped",
			slog.String("language", lang.String()),
			slog.String("error", err.Error()),
		)
		return word
	}

	translated, err := s.translator.Translate(ctx, word, code)
	if err != nil || strings.TrimSpace(translated) == "" {
		attrs := []any{slog.String("word", word), slog.String("target", code)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		s.log.WarnContext(ctx, "translation failed, using fallback", attrs...)
		return word
	}

	return strings.TrimSpace(translated)
}
