// Package gemini adapts the Google Gen AI SDK to provider.TextGenerator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/lingoread/internal/provider"
)

// Generator calls a Gemini model and requests JSON output.
type Generator struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// Config holds generator settings.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint (tests).
	BaseURL string
}

// New creates a Generator backed by the Gemini API.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Generator, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: http.DefaultClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Generator{
		client: client,
		model:  cfg.Model,
		log:    logger.With("adapter", "gemini"),
	}, nil
}

// Generate sends the prompt with the system text as system instruction.
func (g *Generator) Generate(ctx context.Context, p provider.Prompt) (string, error) {
	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	if p.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: p.System}}}
	}

	g.log.DebugContext(ctx, "gemini request", slog.String("model", g.model), slog.Int("prompt_len", len(p.User)))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(p.User), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
