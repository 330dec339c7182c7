// Package readability extracts the main article text from a web page.
package readability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/heartmarshall/lingoread/internal/provider"
)

const (
	userAgent    = "lingoread/1.0 (article adapter)"
	maxPageBytes = 5 << 20
	minTextChars = 100
)

// ErrNoContent is returned when a page has no extractable article text.
var ErrNoContent = errors.New("no extractable article content")

// Extractor fetches pages over HTTP and runs readability extraction.
type Extractor struct {
	client *http.Client
	log    *slog.Logger
}

// NewExtractor creates an Extractor with the given fetch timeout.
func NewExtractor(timeout time.Duration, logger *slog.Logger) *Extractor {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Extractor{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		log: logger.With("adapter", "readability"),
	}
}

// Extract downloads rawURL and returns its readable text.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*provider.Page, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("readability: invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("readability: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("readability: fetch %s: %w", parsed.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("readability: fetch %s: status %d", parsed.Host, resp.StatusCode)
	}

	article, err := readability.FromReader(io.LimitReader(resp.Body, maxPageBytes), parsed)
	if err != nil {
		return nil, fmt.Errorf("readability: parse %s: %w", parsed.Host, err)
	}

	text := strings.TrimSpace(article.TextContent)
	if len(text) < minTextChars {
		e.log.WarnContext(ctx, "page has too little text", slog.String("url", rawURL), slog.Int("chars", len(text)))
		return nil, ErrNoContent
	}

	e.log.DebugContext(ctx, "page extracted", slog.String("url", rawURL), slog.Int("chars", len(text)))

	return &provider.Page{
		Title:    strings.TrimSpace(article.Title),
		Text:     text,
		ImageURL: article.Image,
	}, nil
}
