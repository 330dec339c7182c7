package rest

import (
	"net/http"

	"github.com/heartmarshall/lingoread/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	User       *UserHandler
	Article    *ArticleHandler
	Vocabulary *VocabularyHandler
	Progress   *ProgressHandler
	Generation *GenerationHandler
}

// NewRouter registers all routes. aiLimit wraps the endpoints that call the
// text generator; admin routes are wrapped with middleware.AdminOnly.
// Global middleware (recovery, logging, auth) is applied by the caller.
func NewRouter(h Handlers, aiLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/users", h.User.Create)
	mux.HandleFunc("GET /api/users/{id}", h.User.Get)
	mux.HandleFunc("PATCH /api/users/{id}", h.User.Update)
	mux.HandleFunc("GET /api/usernames/{username}", h.User.GetByUsername)
	mux.HandleFunc("GET /api/users/{id}/vocabulary", h.Vocabulary.ListByUser)
	mux.HandleFunc("GET /api/users/{id}/progress", h.Progress.ListByUser)

	mux.HandleFunc("GET /api/articles", h.Article.List)
	mux.HandleFunc("GET /api/articles/{id}", h.Article.Get)
	mux.Handle("POST /api/articles", middleware.AdminOnly(http.HandlerFunc(h.Article.Create)))
	mux.Handle("PATCH /api/articles/{id}", middleware.AdminOnly(http.HandlerFunc(h.Article.Update)))

	mux.HandleFunc("POST /api/vocabulary", h.Vocabulary.Save)
	mux.HandleFunc("PATCH /api/vocabulary/{id}", h.Vocabulary.Update)
	mux.HandleFunc("POST /api/vocabulary/{id}/review", h.Vocabulary.Review)

	mux.HandleFunc("POST /api/progress", h.Progress.Record)

	if aiLimit == nil {
		aiLimit = func(next http.Handler) http.Handler { return next }
	}
	mux.Handle("POST /api/define", aiLimit(http.HandlerFunc(h.Generation.Define)))
	mux.Handle("POST /api/adapt-article", aiLimit(http.HandlerFunc(h.Generation.AdaptArticle)))
	mux.Handle("POST /api/comprehension-questions", aiLimit(http.HandlerFunc(h.Generation.ComprehensionQuestions)))

	return mux
}
