package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	Translate TranslateConfig `yaml:"translate"`
	Adapter   AdapterConfig   `yaml:"adapter"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// The zero value must be the default: cleanenv applies env-default over
	// an explicit false read from YAML.
	SkipMigrations bool `yaml:"skip_migrations" env:"DATABASE_SKIP_MIGRATIONS"`
}

// LLM provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// LLMConfig holds text-generation provider settings.
type LLMConfig struct {
	Provider  string        `yaml:"provider"   env:"LLM_PROVIDER"   env-default:"anthropic"`
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"`
	MaxTokens int           `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"4096"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"60s"`
}

// ModelOrDefault returns the configured model or the provider's default.
func (c LLMConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	if strings.EqualFold(c.Provider, ProviderGemini) {
		return "gemini-2.0-flash"
	}
	return "claude-sonnet-4-20250514"
}

// TranslateConfig holds machine-translation settings.
type TranslateConfig struct {
	BaseURL string        `yaml:"base_url" env:"TRANSLATE_BASE_URL" env-default:"https://translate.googleapis.com"`
	Timeout time.Duration `yaml:"timeout"  env:"TRANSLATE_TIMEOUT"  env-default:"10s"`
	// Stub disables outbound calls; every translation falls back to the source text.
	Stub bool `yaml:"stub" env:"TRANSLATE_STUB" env-default:"false"`
}

// AdapterConfig holds content adaptation settings.
type AdapterConfig struct {
	DefaultCategory string        `yaml:"default_category" env:"ADAPTER_DEFAULT_CATEGORY" env-default:"general"`
	MaxSourceChars  int           `yaml:"max_source_chars" env:"ADAPTER_MAX_SOURCE_CHARS" env-default:"20000"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"    env:"ADAPTER_FETCH_TIMEOUT"    env-default:"15s"`
}

// AuthConfig holds admin bearer-token settings. An empty secret disables admin routes.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"lingoread"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// Enabled reports whether bearer-token authentication is configured.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// RateLimitConfig holds per-IP request limits for generation endpoints.
type RateLimitConfig struct {
	AIPerMinute int `yaml:"ai_per_minute" env:"RATELIMIT_AI_PER_MINUTE" env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
