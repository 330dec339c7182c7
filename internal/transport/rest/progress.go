package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/progress"
)

type progressService interface {
	Record(ctx context.Context, input progress.RecordInput) (*domain.ProgressEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressEntry, error)
}

// ProgressHandler serves reading-progress endpoints.
type ProgressHandler struct {
	progress progressService
	log      *slog.Logger
}

func NewProgressHandler(progress progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, log: logger.With("handler", "progress")}
}

type recordProgressRequest struct {
	UserID             string   `json:"userId" validate:"required"`
	ArticleID          string   `json:"articleId" validate:"required"`
	WordsLearned       []string `json:"wordsLearned" validate:"max=500"`
	ComprehensionScore *int     `json:"comprehensionScore" validate:"omitempty,gte=0,lte=100"`
}

// Record handles POST /api/progress.
func (h *ProgressHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	userID, err := parseUUIDField("userId", req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	articleID, err := parseUUIDField("articleId", req.ArticleID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.progress.Record(r.Context(), progress.RecordInput{
		UserID:             userID,
		ArticleID:          articleID,
		WordsLearned:       req.WordsLearned,
		ComprehensionScore: req.ComprehensionScore,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(p))
}

// ListByUser handles GET /api/users/{id}/progress.
func (h *ProgressHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.progress.ListByUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]progressResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toProgressResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}
