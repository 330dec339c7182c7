package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingoread/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/lingoread/internal/adapter/postgres/article"
	progressrepo "github.com/heartmarshall/lingoread/internal/adapter/postgres/progress"
	userrepo "github.com/heartmarshall/lingoread/internal/adapter/postgres/user"
	vocabrepo "github.com/heartmarshall/lingoread/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/lingoread/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/lingoread/internal/adapter/provider/feed"
	"github.com/heartmarshall/lingoread/internal/adapter/provider/gemini"
	"github.com/heartmarshall/lingoread/internal/adapter/provider/readability"
	"github.com/heartmarshall/lingoread/internal/adapter/provider/translate"
	"github.com/heartmarshall/lingoread/internal/config"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/provider"
	"github.com/heartmarshall/lingoread/internal/service/adaptation"
	"github.com/heartmarshall/lingoread/internal/service/article"
	"github.com/heartmarshall/lingoread/internal/service/comprehension"
	"github.com/heartmarshall/lingoread/internal/service/ingest"
	"github.com/heartmarshall/lingoread/internal/service/lookup"
	"github.com/heartmarshall/lingoread/internal/service/progress"
	"github.com/heartmarshall/lingoread/internal/service/user"
	"github.com/heartmarshall/lingoread/internal/service/vocabulary"
	"github.com/heartmarshall/lingoread/internal/transport/rest"
)

// Services holds every wired domain service. It is shared by the HTTP server
// and the lingoctl commands.
type Services struct {
	Users         *user.Service
	Articles      *article.Service
	Vocabulary    *vocabulary.Service
	Progress      *progress.Service
	Lookup        *lookup.Service
	Comprehension *comprehension.Service
	Adaptation    *adaptation.Service
	Ingest        *ingest.Service
}

// NewGenerator builds the text generator selected by cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (provider.TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := gemini.New(ctx, gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.ModelOrDefault(),
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("create gemini generator: %w", err)
		}
		return gen, nil
	case config.ProviderAnthropic:
		return anthropic.New(anthropic.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.ModelOrDefault(),
			MaxTokens: cfg.MaxTokens,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// healthChecks lists the components reported by /ready and /health.
// The database is critical; a missing LLM key only degrades the service
// because the CRUD endpoints keep working without it.
func healthChecks(cfg *config.Config, pool *pgxpool.Pool) []rest.HealthCheck {
	return []rest.HealthCheck{
		{Name: "database", Critical: true, Check: pool.Ping},
		{Name: "llm", Check: func(context.Context) error {
			if cfg.LLM.APIKey == "" {
				return errors.New("llm api key not configured")
			}
			return nil
		}},
	}
}

type translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

func newTranslator(cfg config.TranslateConfig, logger *slog.Logger) translator {
	if cfg.Stub {
		logger.Warn("translation disabled, native translations fall back to the source word")
		return translate.NewStub()
	}
	return translate.NewProvider(cfg.BaseURL, cfg.Timeout, logger)
}

// NewServices wires repositories, providers and services on top of pool.
func NewServices(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Services, error) {
	gen, err := NewGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	articles := articlerepo.New(pool)
	vocab := vocabrepo.New(pool)
	progressRepo := progressrepo.New(pool)

	// External providers.
	pages := readability.NewExtractor(cfg.Adapter.FetchTimeout, logger)
	feeds := feed.NewReader(cfg.Adapter.FetchTimeout, logger)
	tr := newTranslator(cfg.Translate, logger)

	adaptSvc := adaptation.NewService(logger, gen, pages, articles, adaptation.Options{
		DefaultCategory: domain.Category(cfg.Adapter.DefaultCategory),
		MaxSourceChars:  cfg.Adapter.MaxSourceChars,
		Timeout:         cfg.LLM.Timeout,
	})

	return &Services{
		Users:         user.NewService(logger, users),
		Articles:      article.NewService(logger, articles),
		Vocabulary:    vocabulary.NewService(logger, vocab, users),
		Progress:      progress.NewService(logger, progressRepo, users, txm),
		Lookup:        lookup.NewService(logger, gen, tr, cfg.LLM.Timeout),
		Comprehension: comprehension.NewService(logger, gen, cfg.LLM.Timeout),
		Adaptation:    adaptSvc,
		Ingest:        ingest.NewService(logger, feeds, adaptSvc),
	}, nil
}
