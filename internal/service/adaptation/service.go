package adaptation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/provider"
	"github.com/heartmarshall/lingoread/internal/service/comprehension"
)

type textGenerator interface {
	Generate(ctx context.Context, p provider.Prompt) (string, error)
}

type pageExtractor interface {
	Extract(ctx context.Context, rawURL string) (*provider.Page, error)
}

type articleRepo interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
}

// Options tunes the adaptation service.
type Options struct {
	DefaultCategory domain.Category
	MaxSourceChars  int
	// Timeout bounds a single generator call. Zero means no extra deadline.
	Timeout time.Duration
}

// Service turns source texts into leveled articles with teaching annotations.
type Service struct {
	log      *slog.Logger
	gen      textGenerator
	pages    pageExtractor
	articles articleRepo
	opts     Options
}

// NewService creates a new adaptation service.
func NewService(
	logger *slog.Logger,
	gen textGenerator,
	pages pageExtractor,
	articles articleRepo,
	opts Options,
) *Service {
	if !opts.DefaultCategory.IsValid() {
		opts.DefaultCategory = domain.CategoryGeneral
	}
	if opts.MaxSourceChars <= 0 {
		opts.MaxSourceChars = DefaultMaxSourceChars
	}
	return &Service{
		log:      logger.With("service", "adaptation"),
		gen:      gen,
		pages:    pages,
		articles: articles,
		opts:     opts,
	}
}

// AdaptResult is a stored article plus its generated questions.
// Questions are returned to the caller only; they are not stored.
type AdaptResult struct {
	Article   *domain.Article
	Questions []domain.ComprehensionQuestion
}

// generation is the expected shape of the model's answer.
type generation struct {
	Title                  *string            `json:"title"`
	Content                *string            `json:"content"`
	Summary                *string            `json:"summary"`
	DifficultyLevel        string             `json:"difficultyLevel"`
	EstimatedReadTime      *int               `json:"estimatedReadTime"`
	CulturalNotes          *map[string]string `json:"culturalNotes"`
	ComprehensionQuestions json.RawMessage    `json:"comprehensionQuestions"`
}

// Adapt rewrites a source text for the target level, stores the resulting
// article and returns it with its comprehension questions.
func (s *Service) Adapt(ctx context.Context, input AdaptInput) (*AdaptResult, error) {
	// Step 1: Validate input before any external call.
	if err := input.Validate(s.opts.MaxSourceChars); err != nil {
		return nil, err
	}

	// Step 2: Resolve the source text.
	source := strings.TrimSpace(input.Text)
	imageURL := input.ImageURL
	if source == "" {
		page, err := s.pages.Extract(ctx, strings.TrimSpace(input.URL))
		if err != nil {
			s.log.WarnContext(ctx, "source extraction failed",
				slog.String("url", input.URL),
				slog.String("error", err.Error()),
			)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("adaptation.Adapt: %w", err)
			}
			return nil, domain.NewValidationError("url", "could not extract article text")
		}
		source = truncateRunes(page.Text, s.opts.MaxSourceChars)
		if imageURL == nil && UsableImageURL(page.ImageURL) {
			img := page.ImageURL
			imageURL = &img
		}
	}

	// Step 3: Generate.
	genCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	completion, err := s.gen.Generate(genCtx, buildPrompt(source, input.TargetLevel, input.NativeLanguage))
	if err != nil {
		return nil, domain.NewGenerationError("adaptation.Adapt", err)
	}

	// Step 4: Strictly parse the completion.
	var out generation
	if err := provider.DecodeJSON(completion, &out); err != nil {
		return nil, domain.NewGenerationError("adaptation.Adapt", err)
	}
	if err := out.validate(); err != nil {
		return nil, domain.NewGenerationError("adaptation.Adapt", err)
	}

	questions, err := comprehension.ValidateQuestions(out.ComprehensionQuestions)
	if err != nil {
		return nil, domain.NewGenerationError("adaptation.Adapt", err)
	}
	if len(questions) > comprehension.MaxQuestions {
		s.log.WarnContext(ctx, "truncating generated questions",
			slog.Int("received", len(questions)),
			slog.Int("kept", comprehension.MaxQuestions),
		)
		questions = questions[:comprehension.MaxQuestions]
	}

	if lvl, err := domain.ParseLevel(out.DifficultyLevel); err != nil || lvl != input.TargetLevel {
		s.log.WarnContext(ctx, "generated level differs from requested",
			slog.String("requested", input.TargetLevel.String()),
			slog.String("generated", out.DifficultyLevel),
		)
	}

	// Step 5: Persist exactly one article.
	category := s.opts.DefaultCategory
	if input.Category != nil {
		category = *input.Category
	}
	if imageURL != nil && *imageURL == "" {
		imageURL = nil
	}

	article, err := s.articles.Create(ctx, &domain.Article{
		Title:             strings.TrimSpace(*out.Title),
		Content:           strings.TrimSpace(*out.Content),
		Summary:           strings.TrimSpace(*out.Summary),
		Category:          category,
		DifficultyLevel:   input.TargetLevel,
		EstimatedReadTime: *out.EstimatedReadTime,
		ImageURL:          imageURL,
		Tags:              domain.NormalizeWordList(input.Tags),
		CulturalNotes:     domain.NormalizeCulturalNotes(*out.CulturalNotes),
	})
	if err != nil {
		return nil, fmt.Errorf("adaptation.Adapt: %w", err)
	}

	s.log.InfoContext(ctx, "article adapted",
		slog.String("article_id", article.ID.String()),
		slog.String("level", article.DifficultyLevel.String()),
		slog.Int("questions", len(questions)),
	)

	return &AdaptResult{Article: article, Questions: questions}, nil
}

func (g generation) validate() error {
	if g.Title == nil || strings.TrimSpace(*g.Title) == "" {
		return errors.New("title: required")
	}
	if g.Content == nil || strings.TrimSpace(*g.Content) == "" {
		return errors.New("content: required")
	}
	if g.Summary == nil || strings.TrimSpace(*g.Summary) == "" {
		return errors.New("summary: required")
	}
	if g.EstimatedReadTime == nil {
		return errors.New("estimatedReadTime: required")
	}
	if *g.EstimatedReadTime < 1 {
		return fmt.Errorf("estimatedReadTime: %d is below 1", *g.EstimatedReadTime)
	}
	if g.CulturalNotes == nil {
		return errors.New("culturalNotes: required")
	}
	return nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
