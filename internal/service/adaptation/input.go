package adaptation

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lingoread/internal/domain"
)

// Input limits.
const (
	DefaultMaxSourceChars = 20000
	MaxTags               = 10
	MaxTagLength          = 50
	MaxImageURLLength     = 2048
)

// AdaptInput holds parameters for adapting a source text into an article.
// Exactly one of Text and URL must be set.
type AdaptInput struct {
	Text           string
	URL            string
	TargetLevel    domain.Level
	NativeLanguage domain.Language
	Category       *domain.Category
	Tags           []string
	ImageURL       *string
}

// Validate validates the adapt input. maxChars bounds the source text.
func (i AdaptInput) Validate(maxChars int) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	rawURL := strings.TrimSpace(i.URL)

	switch {
	case text == "" && rawURL == "":
		errs = append(errs, domain.FieldError{Field: "text", Message: "text or url is required"})
	case text != "" && rawURL != "":
		errs = append(errs, domain.FieldError{Field: "url", Message: "cannot be combined with text"})
	case text != "" && utf8.RuneCountInString(text) > maxChars:
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	case rawURL != "" && !isHTTPURL(rawURL):
		errs = append(errs, domain.FieldError{Field: "url", Message: "must be an http(s) URL"})
	}

	if !i.TargetLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "targetLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}

	if !i.NativeLanguage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "nativeLanguage", Message: "unsupported language"})
	}

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(i.Tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	} else {
		for _, tag := range i.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				errs = append(errs, domain.FieldError{Field: "tags", Message: "tag cannot be empty"})
				break
			}
			if utf8.RuneCountInString(tag) > MaxTagLength {
				errs = append(errs, domain.FieldError{Field: "tags", Message: "tag too long"})
				break
			}
		}
	}

	if i.ImageURL != nil {
		if len(*i.ImageURL) > MaxImageURLLength {
			errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "too long"})
		} else if *i.ImageURL != "" && !isHTTPURL(*i.ImageURL) {
			errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UsableImageURL reports whether s can be stored as an article image:
// an absolute http(s) URL within MaxImageURLLength. Images scraped from
// pages and feeds are dropped when this is false.
func UsableImageURL(s string) bool {
	return len(s) <= MaxImageURLLength && isHTTPURL(s)
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
