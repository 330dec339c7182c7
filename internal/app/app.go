package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/lingoread/internal/adapter/postgres"
	"github.com/heartmarshall/lingoread/internal/auth"
	"github.com/heartmarshall/lingoread/internal/config"
	"github.com/heartmarshall/lingoread/internal/transport/middleware"
	"github.com/heartmarshall/lingoread/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, wires services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
	)

	// Step 1: Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		for _, m := range applied {
			logger.Info("migration applied", slog.Int64("version", m.Version), slog.String("source", m.Source))
		}
	}

	// Step 2: Services.
	svcs, err := NewServices(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}

	// Step 3: HTTP handler.
	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(Version, healthChecks(cfg, pool)...),
		User:       rest.NewUserHandler(svcs.Users, logger),
		Article:    rest.NewArticleHandler(svcs.Articles, logger),
		Vocabulary: rest.NewVocabularyHandler(svcs.Vocabulary, logger),
		Progress:   rest.NewProgressHandler(svcs.Progress, logger),
		Generation: rest.NewGenerationHandler(svcs.Lookup, svcs.Adaptation, svcs.Comprehension, logger),
	}, limiter.Limit(cfg.RateLimit.AIPerMinute))

	var authMW middleware.Middleware
	if cfg.Auth.Enabled() {
		jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		authMW = middleware.Auth(jwtMgr)
	} else {
		logger.Warn("auth.jwt_secret not set, admin routes will reject every request")
	}

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		authMW,
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Step 4: Serve until ctx is cancelled.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
