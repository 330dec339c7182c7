package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a learner with aggregate reading statistics.
type User struct {
	ID                uuid.UUID `db:"id"`
	Username          string    `db:"username"`
	NativeLanguage    Language  `db:"native_language"`
	CurrentLevel      Level     `db:"current_level"`
	StreakDays        int       `db:"streak_days"`
	TotalWordsLearned int       `db:"total_words_learned"`
	TotalArticlesRead int       `db:"total_articles_read"`
	Achievements      []string  `db:"achievements"`
	CreatedAt         time.Time `db:"created_at"`
}

// UserUpdateParams is a partial update of a user. Nil fields are left unchanged.
type UserUpdateParams struct {
	NativeLanguage *Language
	CurrentLevel   *Level
	StreakDays     *int
	Achievements   *[]string
}

// IsEmpty reports whether no field is set.
func (p UserUpdateParams) IsEmpty() bool {
	return p.NativeLanguage == nil && p.CurrentLevel == nil && p.StreakDays == nil && p.Achievements == nil
}
