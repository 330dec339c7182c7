package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/article"
)

// ArticleCreator is the subset of the article service the seeder needs.
type ArticleCreator interface {
	List(ctx context.Context, input article.ListInput) ([]domain.Article, error)
	Create(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error)
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline loads article records and stores them through the article service,
// so seeded rows pass the same validation as admin-created ones.
type Pipeline struct {
	log      *slog.Logger
	articles ArticleCreator
	cfg      Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, articles ArticleCreator, cfg Config) *Pipeline {
	return &Pipeline{log: log, articles: articles, cfg: cfg}
}

// Run seeds the catalog. Without Force an already populated catalog is left
// alone and every record is counted as skipped.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	// Step 1: Load records.
	records, err := loadRecords(p.cfg.DataPath)
	if err != nil {
		return res, fmt.Errorf("seeder: %w", err)
	}

	// Step 2: Leave a populated catalog alone unless forced.
	if !p.cfg.Force {
		existing, err := p.articles.List(ctx, article.ListInput{Limit: 1})
		if err != nil {
			return res, fmt.Errorf("seeder: check catalog: %w", err)
		}
		if len(existing) > 0 {
			res.Skipped = len(records)
			res.Duration = time.Since(start)
			p.log.InfoContext(ctx, "catalog not empty, skipping seed", slog.Int("records", len(records)))
			return res, nil
		}
	}

	// Step 3: Insert records one by one; a bad record does not stop the run.
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		input := rec.toInput()
		if p.cfg.DryRun {
			if err := input.Validate(); err != nil {
				res.Errors++
				p.log.WarnContext(ctx, "invalid record", slog.Int("index", i), slog.String("error", err.Error()))
				continue
			}
			res.Skipped++
			continue
		}

		a, err := p.articles.Create(ctx, input)
		if err != nil {
			res.Errors++
			p.log.WarnContext(ctx, "insert article failed",
				slog.Int("index", i),
				slog.String("title", rec.Title),
				slog.String("error", err.Error()),
			)
			continue
		}
		res.Inserted++
		p.log.DebugContext(ctx, "article seeded", slog.String("article_id", a.ID.String()))
	}

	res.Duration = time.Since(start)
	p.log.InfoContext(ctx, "seed completed",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
