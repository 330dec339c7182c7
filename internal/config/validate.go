package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/lingoread/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.Translate.Timeout <= 0 {
		return fmt.Errorf("translate.timeout must be > 0 (got %v)", c.Translate.Timeout)
	}

	if err := c.Adapter.validate(); err != nil {
		return fmt.Errorf("adapter: %w", err)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.AIPerMinute < 0 {
		return fmt.Errorf("ratelimit.ai_per_minute must be >= 0 (got %d)", c.RateLimit.AIPerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("provider must be %q or %q (got %q)", ProviderAnthropic, ProviderGemini, l.Provider)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	return nil
}

func (a *AdapterConfig) validate() error {
	if !domain.Category(a.DefaultCategory).IsValid() {
		return fmt.Errorf("default_category %q is not a known category", a.DefaultCategory)
	}
	if a.MaxSourceChars <= 0 {
		return fmt.Errorf("max_source_chars must be > 0 (got %d)", a.MaxSourceChars)
	}
	if a.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 (got %v)", a.FetchTimeout)
	}
	return nil
}
