package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingoread/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a learner with default counters and returns it as stored.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	var u domain.User
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, native_language, current_level)
		 VALUES ($1, 'spanish', 'B1')
		 RETURNING id, username, native_language, current_level, streak_days,
		           total_words_learned, total_articles_read, created_at`,
		"learner-"+uniqueSuffix(),
	).Scan(&u.ID, &u.Username, &u.NativeLanguage, &u.CurrentLevel, &u.StreakDays,
		&u.TotalWordsLearned, &u.TotalArticlesRead, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	u.Achievements = []string{}
	return u
}

// SeedArticle inserts a B1 culture article and returns it as stored.
func SeedArticle(t *testing.T, pool *pgxpool.Pool) domain.Article {
	t.Helper()

	a := domain.Article{
		Title:             "Coffee Culture " + uniqueSuffix(),
		Content:           "Coffee shops are gathering places in many cities.",
		Summary:           "How people meet over coffee.",
		Category:          domain.CategoryCulture,
		DifficultyLevel:   domain.LevelB1,
		EstimatedReadTime: 3,
		Tags:              []string{"coffee"},
		CulturalNotes:     map[string]string{"gathering places": "Cafés serve as social hubs."},
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO articles (title, content, summary, category, difficulty_level, estimated_read_time, tags, cultural_notes)
		 VALUES ($1, $2, $3, $4, $5, $6, '["coffee"]'::jsonb, '{"gathering places": "Cafés serve as social hubs."}'::jsonb)
		 RETURNING id, created_at`,
		a.Title, a.Content, a.Summary, string(a.Category), string(a.DifficultyLevel), a.EstimatedReadTime,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle: %v", err)
	}
	return a
}
