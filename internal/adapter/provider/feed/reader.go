// Package feed reads RSS and Atom feeds.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/heartmarshall/lingoread/internal/provider"
)

// Reader fetches and parses feeds.
type Reader struct {
	parser  *gofeed.Parser
	timeout time.Duration
	log     *slog.Logger
}

// NewReader creates a Reader.
func NewReader(timeout time.Duration, logger *slog.Logger) *Reader {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	p := gofeed.NewParser()
	p.UserAgent = "lingoread/1.0 (feed reader)"
	return &Reader{parser: p, timeout: timeout, log: logger.With("adapter", "feed")}
}

// Fetch returns up to limit items with a usable link, in feed order.
// A non-positive limit returns every item.
func (r *Reader) Fetch(ctx context.Context, feedURL string, limit int) ([]provider.FeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	f, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("feed: parse %s: %w", feedURL, err)
	}

	items := make([]provider.FeedItem, 0, len(f.Items))
	for _, it := range f.Items {
		if limit > 0 && len(items) >= limit {
			break
		}
		item, ok := toItem(it)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	r.log.InfoContext(ctx, "feed parsed",
		slog.String("feed", feedURL),
		slog.String("title", f.Title),
		slog.Int("items", len(items)),
	)
	return items, nil
}

func toItem(it *gofeed.Item) (provider.FeedItem, bool) {
	if it == nil {
		return provider.FeedItem{}, false
	}
	link := strings.TrimSpace(it.Link)
	if link == "" && strings.HasPrefix(it.GUID, "http") {
		link = it.GUID
	}
	if link == "" {
		return provider.FeedItem{}, false
	}

	item := provider.FeedItem{
		Title:       strings.TrimSpace(it.Title),
		Link:        link,
		Description: strings.TrimSpace(it.Description),
	}
	if it.Image != nil {
		item.ImageURL = it.Image.URL
	}
	switch {
	case it.PublishedParsed != nil:
		item.Published = it.PublishedParsed
	case it.UpdatedParsed != nil:
		item.Published = it.UpdatedParsed
	}
	return item, true
}
