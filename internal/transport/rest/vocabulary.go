package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/vocabulary"
)

type vocabularyService interface {
	Save(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VocabularyEntry, error)
	Update(ctx context.Context, id uuid.UUID, input vocabulary.UpdateInput) (*domain.VocabularyEntry, error)
	Review(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
}

// VocabularyHandler serves saved-word endpoints.
type VocabularyHandler struct {
	vocab vocabularyService
	log   *slog.Logger
}

func NewVocabularyHandler(vocab vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{vocab: vocab, log: logger.With("handler", "vocabulary")}
}

type saveVocabularyRequest struct {
	UserID            string  `json:"userId" validate:"required"`
	Word              string  `json:"word" validate:"required"`
	Definition        string  `json:"definition" validate:"required"`
	CulturalContext   *string `json:"culturalContext"`
	NativeTranslation *string `json:"nativeTranslation"`
	ExampleSentence   *string `json:"exampleSentence"`
}

type updateVocabularyRequest struct {
	Definition        *string `json:"definition"`
	CulturalContext   *string `json:"culturalContext"`
	NativeTranslation *string `json:"nativeTranslation"`
	ExampleSentence   *string `json:"exampleSentence"`
}

// Save handles POST /api/vocabulary.
func (h *VocabularyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveVocabularyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	userID, err := parseUUIDField("userId", req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.vocab.Save(r.Context(), vocabulary.SaveInput{
		UserID:            userID,
		Word:              req.Word,
		Definition:        req.Definition,
		CulturalContext:   req.CulturalContext,
		NativeTranslation: req.NativeTranslation,
		ExampleSentence:   req.ExampleSentence,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVocabularyResponse(e))
}

// ListByUser handles GET /api/users/{id}/vocabulary.
func (h *VocabularyHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.vocab.ListByUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]vocabularyResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toVocabularyResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/vocabulary/{id}.
func (h *VocabularyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateVocabularyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.vocab.Update(r.Context(), id, vocabulary.UpdateInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVocabularyResponse(e))
}

// Review handles POST /api/vocabulary/{id}/review.
func (h *VocabularyHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.vocab.Review(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVocabularyResponse(e))
}
