package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/adaptation"
	"github.com/heartmarshall/lingoread/internal/service/comprehension"
	"github.com/heartmarshall/lingoread/internal/service/lookup"
)

type wordLookup interface {
	Lookup(ctx context.Context, input lookup.LookupInput) (*domain.WordLookupResult, error)
}

type articleAdapter interface {
	Adapt(ctx context.Context, input adaptation.AdaptInput) (*adaptation.AdaptResult, error)
}

type questionGenerator interface {
	Generate(ctx context.Context, input comprehension.GenerateInput) ([]domain.ComprehensionQuestion, error)
}

// GenerationHandler serves the endpoints backed by the text generator.
// They are mounted behind the AI rate limiter.
type GenerationHandler struct {
	lookup    wordLookup
	adapter   articleAdapter
	questions questionGenerator
	log       *slog.Logger
}

func NewGenerationHandler(lookup wordLookup, adapter articleAdapter, questions questionGenerator, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		lookup:    lookup,
		adapter:   adapter,
		questions: questions,
		log:       logger.With("handler", "generation"),
	}
}

type defineRequest struct {
	Word           string  `json:"word" validate:"required"`
	NativeLanguage string  `json:"nativeLanguage" validate:"required"`
	Context        *string `json:"context"`
}

type adaptArticleRequest struct {
	Text           string   `json:"text"`
	URL            string   `json:"url"`
	TargetLevel    string   `json:"targetLevel" validate:"required"`
	NativeLanguage string   `json:"nativeLanguage" validate:"required"`
	Category       *string  `json:"category"`
	Tags           []string `json:"tags" validate:"max=10"`
	ImageURL       *string  `json:"imageUrl"`
}

type adaptArticleResponse struct {
	articleResponse
	ComprehensionQuestions []questionResponse `json:"comprehensionQuestions"`
}

type comprehensionRequest struct {
	ArticleContent  string `json:"articleContent" validate:"required"`
	DifficultyLevel string `json:"difficultyLevel" validate:"required"`
}

type comprehensionResponse struct {
	Questions []questionResponse `json:"questions"`
}

// Define handles POST /api/define.
func (h *GenerationHandler) Define(w http.ResponseWriter, r *http.Request) {
	var req defineRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang := parseLanguage(&req.NativeLanguage)
	if _, err := lang.TranslationCode(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.lookup.Lookup(r.Context(), lookup.LookupInput{
		Word:           req.Word,
		NativeLanguage: *lang,
		Context:        req.Context,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, definitionResponse(*res))
}

// AdaptArticle handles POST /api/adapt-article.
func (h *GenerationHandler) AdaptArticle(w http.ResponseWriter, r *http.Request) {
	var req adaptArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	level, err := parseLevel("targetLevel", &req.TargetLevel)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.adapter.Adapt(r.Context(), adaptation.AdaptInput{
		Text:           req.Text,
		URL:            req.URL,
		TargetLevel:    *level,
		NativeLanguage: *parseLanguage(&req.NativeLanguage),
		Category:       parseCategory(req.Category),
		Tags:           req.Tags,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, adaptArticleResponse{
		articleResponse:        toArticleResponse(res.Article),
		ComprehensionQuestions: toQuestionResponses(res.Questions),
	})
}

// ComprehensionQuestions handles POST /api/comprehension-questions.
func (h *GenerationHandler) ComprehensionQuestions(w http.ResponseWriter, r *http.Request) {
	var req comprehensionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	level, err := parseLevel("difficultyLevel", &req.DifficultyLevel)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	qs, err := h.questions.Generate(r.Context(), comprehension.GenerateInput{
		ArticleContent:  req.ArticleContent,
		DifficultyLevel: *level,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comprehensionResponse{Questions: toQuestionResponses(qs)})
}
