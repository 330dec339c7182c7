package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/article"
)

type articleService interface {
	List(ctx context.Context, input article.ListInput) ([]domain.Article, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Create(ctx context.Context, input article.CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, input article.UpdateArticleInput) (*domain.Article, error)
}

// ArticleHandler serves the article catalog. Create and Update are mounted
// behind the admin middleware.
type ArticleHandler struct {
	articles articleService
	log      *slog.Logger
}

func NewArticleHandler(articles articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, log: logger.With("handler", "article")}
}

type createArticleRequest struct {
	Title             string            `json:"title" validate:"required"`
	Content           string            `json:"content" validate:"required"`
	Summary           string            `json:"summary" validate:"required"`
	Category          string            `json:"category" validate:"required"`
	DifficultyLevel   string            `json:"difficultyLevel" validate:"required"`
	EstimatedReadTime int               `json:"estimatedReadTime" validate:"gte=1"`
	ImageURL          *string           `json:"imageUrl" validate:"omitempty,http_url"`
	Tags              []string          `json:"tags" validate:"max=10,dive,max=50"`
	CulturalNotes     map[string]string `json:"culturalNotes"`
}

type updateArticleRequest struct {
	Title             *string            `json:"title"`
	Content           *string            `json:"content"`
	Summary           *string            `json:"summary"`
	Category          *string            `json:"category"`
	DifficultyLevel   *string            `json:"difficultyLevel"`
	EstimatedReadTime *int               `json:"estimatedReadTime" validate:"omitempty,gte=1"`
	ImageURL          *string            `json:"imageUrl"`
	Tags              *[]string          `json:"tags" validate:"omitempty,max=10"`
	CulturalNotes     *map[string]string `json:"culturalNotes"`
}

// List handles GET /api/articles?category=&level=&limit=&offset=.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	articles, err := h.articles.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]articleResponse, 0, len(articles))
	for i := range articles {
		resp = append(resp, toArticleResponse(&articles[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseListQuery(q url.Values) (article.ListInput, error) {
	var (
		input article.ListInput
		errs  []domain.FieldError
	)

	if c := q.Get("category"); c != "" {
		input.Category = parseCategory(&c)
	}
	if l := q.Get("level"); l != "" {
		level, err := parseLevel("level", &l)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "level", Message: "must be one of A1, A2, B1, B2, C1, C2"})
		}
		input.Level = level
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = n
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// Get handles GET /api/articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.articles.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// Create handles POST /api/articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	level, err := parseLevel("difficultyLevel", &req.DifficultyLevel)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.articles.Create(r.Context(), article.CreateArticleInput{
		Title:             req.Title,
		Content:           req.Content,
		Summary:           req.Summary,
		Category:          *parseCategory(&req.Category),
		DifficultyLevel:   *level,
		EstimatedReadTime: req.EstimatedReadTime,
		ImageURL:          req.ImageURL,
		Tags:              req.Tags,
		CulturalNotes:     req.CulturalNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// Update handles PATCH /api/articles/{id}.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	level, err := parseLevel("difficultyLevel", req.DifficultyLevel)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.articles.Update(r.Context(), id, article.UpdateArticleInput{
		Title:             req.Title,
		Content:           req.Content,
		Summary:           req.Summary,
		Category:          parseCategory(req.Category),
		DifficultyLevel:   level,
		EstimatedReadTime: req.EstimatedReadTime,
		ImageURL:          req.ImageURL,
		Tags:              req.Tags,
		CulturalNotes:     req.CulturalNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(a))
}
