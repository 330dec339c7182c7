package domain

import (
	"fmt"
	"strings"
)

// Level is a CEFR proficiency tier used to grade text difficulty.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists every CEFR level from lowest to highest.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// ParseLevel accepts a level in any letter case ("b2" → B2).
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("invalid level %q", s)
	}
	return l, nil
}

// Language is a learner's native language.
type Language string

const (
	LanguageSpanish  Language = "spanish"
	LanguageFrench   Language = "french"
	LanguageMandarin Language = "mandarin"
)

// translationCodes maps supported native languages to translation-provider codes.
var translationCodes = map[Language]string{
	LanguageSpanish:  "es",
	LanguageFrench:   "fr",
	LanguageMandarin: "zh-cn",
}

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	_, ok := translationCodes[l]
	return ok
}

// TranslationCode returns the provider language code for l.
// Returns ErrUnsupportedLanguage for languages outside the table.
func (l Language) TranslationCode() (string, error) {
	code, ok := translationCodes[l]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(l))
	}
	return code, nil
}

// Category is the topical tag of an article.
type Category string

const (
	CategoryBusiness   Category = "business"
	CategoryTechnology Category = "technology"
	CategoryCulture    Category = "culture"
	CategoryTravel     Category = "travel"
	CategoryScience    Category = "science"
	CategoryGeneral    Category = "general"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryBusiness, CategoryTechnology, CategoryCulture,
		CategoryTravel, CategoryScience, CategoryGeneral:
		return true
	}
	return false
}

// UserRole represents the authorization level carried by a bearer token.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
