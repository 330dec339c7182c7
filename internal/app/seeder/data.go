package seeder

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/article"
)

//go:embed articles.json
var sampleArticles []byte

type articleRecord struct {
	Title             string            `json:"title"`
	Content           string            `json:"content"`
	Summary           string            `json:"summary"`
	Category          string            `json:"category"`
	DifficultyLevel   string            `json:"difficulty_level"`
	EstimatedReadTime int               `json:"estimated_read_time"`
	ImageURL          *string           `json:"image_url"`
	Tags              []string          `json:"tags"`
	CulturalNotes     map[string]string `json:"cultural_notes"`
}

func (r articleRecord) toInput() article.CreateArticleInput {
	return article.CreateArticleInput{
		Title:             r.Title,
		Content:           r.Content,
		Summary:           r.Summary,
		Category:          domain.Category(r.Category),
		DifficultyLevel:   domain.Level(r.DifficultyLevel),
		EstimatedReadTime: r.EstimatedReadTime,
		ImageURL:          r.ImageURL,
		Tags:              r.Tags,
		CulturalNotes:     r.CulturalNotes,
	}
}

// loadRecords reads articles from path, or the embedded sample set when path is empty.
func loadRecords(path string) ([]articleRecord, error) {
	raw := sampleArticles
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		raw = b
	}

	var records []articleRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return records, nil
}
