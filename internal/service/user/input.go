package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lingoread/internal/domain"
)

const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 50
	MaxAchievements      = 100
	MaxAchievementLength = 100
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.-]+$`)

// CreateUserInput holds parameters for user registration.
type CreateUserInput struct {
	Username       string
	NativeLanguage domain.Language
	CurrentLevel   *domain.Level
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateUsername(i.Username)...)

	if !i.NativeLanguage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "nativeLanguage", Message: "unsupported language"})
	}

	if i.CurrentLevel != nil && !i.CurrentLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "currentLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateUsername(username string) []domain.FieldError {
	username = strings.TrimSpace(username)
	n := utf8.RuneCountInString(username)
	switch {
	case n == 0:
		return []domain.FieldError{{Field: "username", Message: "required"}}
	case n < MinUsernameLength:
		return []domain.FieldError{{Field: "username", Message: "too short"}}
	case n > MaxUsernameLength:
		return []domain.FieldError{{Field: "username", Message: "too long"}}
	case !usernamePattern.MatchString(username):
		return []domain.FieldError{{Field: "username", Message: "may contain only letters, digits, '_', '.' and '-'"}}
	}
	return nil
}

// UpdateUserInput holds parameters for a user update.
// All fields are optional (nil = don't change).
type UpdateUserInput struct {
	NativeLanguage *domain.Language
	CurrentLevel   *domain.Level
	StreakDays     *int
	Achievements   *[]string
}

// Validate validates the update user input.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.NativeLanguage != nil && !i.NativeLanguage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "nativeLanguage", Message: "unsupported language"})
	}

	if i.CurrentLevel != nil && !i.CurrentLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "currentLevel", Message: "must be one of A1, A2, B1, B2, C1, C2"})
	}

	if i.StreakDays != nil && *i.StreakDays < 0 {
		errs = append(errs, domain.FieldError{Field: "streakDays", Message: "must be at least 0"})
	}

	if i.Achievements != nil {
		if len(*i.Achievements) > MaxAchievements {
			errs = append(errs, domain.FieldError{Field: "achievements", Message: "too many achievements"})
		} else {
			for _, a := range *i.Achievements {
				if utf8.RuneCountInString(strings.TrimSpace(a)) > MaxAchievementLength {
					errs = append(errs, domain.FieldError{Field: "achievements", Message: "achievement too long"})
					break
				}
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
