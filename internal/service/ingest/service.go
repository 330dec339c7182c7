// Package ingest builds leveled articles from RSS and Atom feeds.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/provider"
	"github.com/heartmarshall/lingoread/internal/service/adaptation"
)

const (
	DefaultLimit = 5
	MaxLimit     = 50
)

type feedReader interface {
	Fetch(ctx context.Context, feedURL string, limit int) ([]provider.FeedItem, error)
}

type articleAdapter interface {
	Adapt(ctx context.Context, input adaptation.AdaptInput) (*adaptation.AdaptResult, error)
}

// Service adapts every linked article of a feed.
type Service struct {
	log     *slog.Logger
	feeds   feedReader
	adapter articleAdapter
}

// NewService creates a new ingest service.
func NewService(logger *slog.Logger, feeds feedReader, adapter articleAdapter) *Service {
	return &Service{
		log:     logger.With("service", "ingest"),
		feeds:   feeds,
		adapter: adapter,
	}
}

// FeedInput holds parameters for a feed ingestion run.
type FeedInput struct {
	FeedURL        string
	TargetLevel    domain.Level
	NativeLanguage domain.Language
	Category       *domain.Category
	Tags           []string
	Limit          int
}

// Validate validates the feed input.
func (i FeedInput) Validate() error {
	var errs []domain.FieldError

	u, err := url.Parse(strings.TrimSpace(i.FeedURL))
	if i.FeedURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, domain.FieldError{Field: "feedUrl", Message: "must be an http(s) URL"})
	}
	if !i.TargetLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "targetLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}
	if !i.NativeLanguage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "nativeLanguage", Message: "unsupported language"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 50"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Report summarizes an ingestion run.
type Report struct {
	Fetched    int
	Adapted    int
	Failed     int
	ArticleIDs []uuid.UUID
}

// FromFeed fetches a feed and adapts each item in order. A failing item is
// logged and counted; it never stops the run. Only a feed that cannot be
// read, or a cancelled context, ends the run with an error.
func (s *Service) FromFeed(ctx context.Context, input FeedInput) (*Report, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	// Step 2: Fetch the feed
	items, err := s.feeds.Fetch(ctx, strings.TrimSpace(input.FeedURL), limit)
	if err != nil {
		return nil, fmt.Errorf("ingest.FromFeed: %w", err)
	}

	report := &Report{Fetched: len(items), ArticleIDs: []uuid.UUID{}}

	// Step 3: Adapt each item
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("ingest.FromFeed: %w", err)
		}

		in := adaptation.AdaptInput{
			URL:            item.Link,
			TargetLevel:    input.TargetLevel,
			NativeLanguage: input.NativeLanguage,
			Category:       input.Category,
			Tags:           input.Tags,
		}
		// A bad feed image must not sink the whole item.
		if adaptation.UsableImageURL(item.ImageURL) {
			img := item.ImageURL
			in.ImageURL = &img
		}

		res, err := s.adapter.Adapt(ctx, in)
		if err != nil {
			report.Failed++
			s.log.WarnContext(ctx, "feed item skipped",
				slog.String("link", item.Link),
				slog.String("title", item.Title),
				slog.String("error", err.Error()))
			continue
		}

		report.Adapted++
		report.ArticleIDs = append(report.ArticleIDs, res.Article.ID)
		s.log.InfoContext(ctx, "feed item adapted",
			slog.String("link", item.Link),
			slog.String("article_id", res.Article.ID.String()))
	}

	s.log.InfoContext(ctx, "feed ingested",
		slog.String("feed", input.FeedURL),
		slog.Int("fetched", report.Fetched),
		slog.Int("adapted", report.Adapted),
		slog.Int("failed", report.Failed))

	return report, nil
}
