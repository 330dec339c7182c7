package rest

import (
	"strings"
	"time"

	"github.com/heartmarshall/lingoread/internal/domain"
)

type userResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	NativeLanguage    string    `json:"nativeLanguage"`
	CurrentLevel      string    `json:"currentLevel"`
	StreakDays        int       `json:"streakDays"`
	TotalWordsLearned int       `json:"totalWordsLearned"`
	TotalArticlesRead int       `json:"totalArticlesRead"`
	Achievements      []string  `json:"achievements"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                u.ID.String(),
		Username:          u.Username,
		NativeLanguage:    u.NativeLanguage.String(),
		CurrentLevel:      u.CurrentLevel.String(),
		StreakDays:        u.StreakDays,
		TotalWordsLearned: u.TotalWordsLearned,
		TotalArticlesRead: u.TotalArticlesRead,
		Achievements:      nonNil(u.Achievements),
		CreatedAt:         u.CreatedAt,
	}
}

type articleResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Content           string            `json:"content"`
	Summary           string            `json:"summary"`
	Category          string            `json:"category"`
	DifficultyLevel   string            `json:"difficultyLevel"`
	EstimatedReadTime int               `json:"estimatedReadTime"`
	ImageURL          *string           `json:"imageUrl"`
	Tags              []string          `json:"tags"`
	CulturalNotes     map[string]string `json:"culturalNotes"`
	CreatedAt         time.Time         `json:"createdAt"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	notes := a.CulturalNotes
	if notes == nil {
		notes = map[string]string{}
	}
	return articleResponse{
		ID:                a.ID.String(),
		Title:             a.Title,
		Content:           a.Content,
		Summary:           a.Summary,
		Category:          a.Category.String(),
		DifficultyLevel:   a.DifficultyLevel.String(),
		EstimatedReadTime: a.EstimatedReadTime,
		ImageURL:          a.ImageURL,
		Tags:              nonNil(a.Tags),
		CulturalNotes:     notes,
		CreatedAt:         a.CreatedAt,
	}
}

type questionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

func toQuestionResponses(qs []domain.ComprehensionQuestion) []questionResponse {
	out := make([]questionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionResponse(q))
	}
	return out
}

type vocabularyResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Word              string    `json:"word"`
	Definition        string    `json:"definition"`
	CulturalContext   *string   `json:"culturalContext"`
	NativeTranslation *string   `json:"nativeTranslation"`
	ExampleSentence   *string   `json:"exampleSentence"`
	LearnedAt         time.Time `json:"learnedAt"`
	ReviewCount       int       `json:"reviewCount"`
}

func toVocabularyResponse(e *domain.VocabularyEntry) vocabularyResponse {
	return vocabularyResponse{
		ID:                e.ID.String(),
		UserID:            e.UserID.String(),
		Word:              e.Word,
		Definition:        e.Definition,
		CulturalContext:   e.CulturalContext,
		NativeTranslation: e.NativeTranslation,
		ExampleSentence:   e.ExampleSentence,
		LearnedAt:         e.LearnedAt,
		ReviewCount:       e.ReviewCount,
	}
}

type progressResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	ArticleID          string    `json:"articleId"`
	CompletedAt        time.Time `json:"completedAt"`
	WordsLearned       []string  `json:"wordsLearned"`
	ComprehensionScore *int      `json:"comprehensionScore"`
}

func toProgressResponse(p *domain.ProgressEntry) progressResponse {
	return progressResponse{
		ID:                 p.ID.String(),
		UserID:             p.UserID.String(),
		ArticleID:          p.ArticleID.String(),
		CompletedAt:        p.CompletedAt,
		WordsLearned:       nonNil(p.WordsLearned),
		ComprehensionScore: p.ComprehensionScore,
	}
}

type definitionResponse struct {
	Word              string `json:"word"`
	Definition        string `json:"definition"`
	CulturalContext   string `json:"culturalContext"`
	NativeTranslation string `json:"nativeTranslation"`
	ExampleSentence   string `json:"exampleSentence"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// parseLevel accepts a level in any letter case. nil stays nil.
func parseLevel(field string, s *string) (*domain.Level, error) {
	if s == nil {
		return nil, nil
	}
	lvl, err := domain.ParseLevel(*s)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be one of A1, A2, B1, B2, C1, C2")
	}
	return &lvl, nil
}

func parseLanguage(s *string) *domain.Language {
	if s == nil {
		return nil
	}
	lang := domain.Language(strings.ToLower(strings.TrimSpace(*s)))
	return &lang
}

func parseCategory(s *string) *domain.Category {
	if s == nil {
		return nil
	}
	c := domain.Category(strings.ToLower(strings.TrimSpace(*s)))
	return &c
}
