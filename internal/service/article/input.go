package article

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lingoread/internal/domain"
)

const (
	MaxTitleLength    = 200
	MaxSummaryLength  = 1000
	MaxContentLength  = 50000
	MaxReadTime       = 240
	MaxTags           = 10
	MaxTagLength      = 50
	MaxImageURLLength = 2048
	MaxCulturalNotes  = 100
)

// ListInput holds filter and pagination parameters for listing articles.
type ListInput struct {
	Category *domain.Category
	Level    *domain.Level
	Limit    int
	Offset   int
}

// Validate validates the list input. Out-of-range limits are clamped, not rejected.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Level != nil && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be at least 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateArticleInput holds parameters for creating an article directly.
type CreateArticleInput struct {
	Title             string
	Content           string
	Summary           string
	Category          domain.Category
	DifficultyLevel   domain.Level
	EstimatedReadTime int
	ImageURL          *string
	Tags              []string
	CulturalNotes     map[string]string
}

// Validate validates the create article input.
func (i CreateArticleInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(&i.Title)...)
	errs = append(errs, validateContent(&i.Content)...)
	errs = append(errs, validateSummary(&i.Summary)...)

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if !i.DifficultyLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficultyLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}
	errs = append(errs, validateReadTime(&i.EstimatedReadTime)...)
	errs = append(errs, validateImageURL(i.ImageURL)...)
	errs = append(errs, validateTags(i.Tags)...)
	errs = append(errs, validateNotes(i.CulturalNotes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateArticleInput) toArticle() *domain.Article {
	var image *string
	if i.ImageURL != nil && *i.ImageURL != "" {
		image = i.ImageURL
	}
	return &domain.Article{
		Title:             strings.TrimSpace(i.Title),
		Content:           strings.TrimSpace(i.Content),
		Summary:           strings.TrimSpace(i.Summary),
		Category:          i.Category,
		DifficultyLevel:   i.DifficultyLevel,
		EstimatedReadTime: i.EstimatedReadTime,
		ImageURL:          image,
		Tags:              domain.NormalizeWordList(i.Tags),
		CulturalNotes:     domain.NormalizeCulturalNotes(i.CulturalNotes),
	}
}

// UpdateArticleInput holds parameters for an administrative article update.
// All fields are optional (nil = don't change). An empty ImageURL clears the image.
type UpdateArticleInput struct {
	Title             *string
	Content           *string
	Summary           *string
	Category          *domain.Category
	DifficultyLevel   *domain.Level
	EstimatedReadTime *int
	ImageURL          *string
	Tags              *[]string
	CulturalNotes     *map[string]string
}

// Validate validates the update article input.
func (i UpdateArticleInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = append(errs, validateTitle(i.Title)...)
	}
	if i.Content != nil {
		errs = append(errs, validateContent(i.Content)...)
	}
	if i.Summary != nil {
		errs = append(errs, validateSummary(i.Summary)...)
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.DifficultyLevel != nil && !i.DifficultyLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficultyLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}
	if i.EstimatedReadTime != nil {
		errs = append(errs, validateReadTime(i.EstimatedReadTime)...)
	}
	errs = append(errs, validateImageURL(i.ImageURL)...)
	if i.Tags != nil {
		errs = append(errs, validateTags(*i.Tags)...)
	}
	if i.CulturalNotes != nil {
		errs = append(errs, validateNotes(*i.CulturalNotes)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateArticleInput) toParams() domain.ArticleUpdateParams {
	p := domain.ArticleUpdateParams{
		Category:          i.Category,
		DifficultyLevel:   i.DifficultyLevel,
		EstimatedReadTime: i.EstimatedReadTime,
		ImageURL:          i.ImageURL,
	}
	if i.Title != nil {
		p.Title = ptr(strings.TrimSpace(*i.Title))
	}
	if i.Content != nil {
		p.Content = ptr(strings.TrimSpace(*i.Content))
	}
	if i.Summary != nil {
		p.Summary = ptr(strings.TrimSpace(*i.Summary))
	}
	if i.Tags != nil {
		p.Tags = ptr(domain.NormalizeWordList(*i.Tags))
	}
	if i.CulturalNotes != nil {
		p.CulturalNotes = ptr(domain.NormalizeCulturalNotes(*i.CulturalNotes))
	}
	return p
}

func ptr[T any](v T) *T { return &v }

func validateText(field string, s *string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(*s)
	if v == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if utf8.RuneCountInString(v) > maxLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func validateTitle(s *string) []domain.FieldError {
	return validateText("title", s, MaxTitleLength)
}

func validateContent(s *string) []domain.FieldError {
	return validateText("content", s, MaxContentLength)
}

func validateSummary(s *string) []domain.FieldError {
	return validateText("summary", s, MaxSummaryLength)
}

func validateReadTime(n *int) []domain.FieldError {
	if *n < 1 {
		return []domain.FieldError{{Field: "estimatedReadTime", Message: "must be at least 1"}}
	}
	if *n > MaxReadTime {
		return []domain.FieldError{{Field: "estimatedReadTime", Message: "must be at most 240"}}
	}
	return nil
}

func validateImageURL(s *string) []domain.FieldError {
	if s == nil || *s == "" {
		return nil
	}
	if len(*s) > MaxImageURLLength {
		return []domain.FieldError{{Field: "imageUrl", Message: "too long"}}
	}
	u, err := url.Parse(*s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []domain.FieldError{{Field: "imageUrl", Message: "must be an http(s) URL"}}
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	if len(tags) > MaxTags {
		return []domain.FieldError{{Field: "tags", Message: "too many tags"}}
	}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			return []domain.FieldError{{Field: "tags", Message: "tag cannot be empty"}}
		}
		if utf8.RuneCountInString(t) > MaxTagLength {
			return []domain.FieldError{{Field: "tags", Message: "tag too long"}}
		}
	}
	return nil
}

func validateNotes(notes map[string]string) []domain.FieldError {
	if len(notes) > MaxCulturalNotes {
		return []domain.FieldError{{Field: "culturalNotes", Message: "too many notes"}}
	}
	return nil
}
