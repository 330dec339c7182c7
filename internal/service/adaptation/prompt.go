package adaptation

import (
	"fmt"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/provider"
)

const systemPrompt = "You are an expert ESL curriculum designer who creates culturally-aware learning materials. " +
	"Respond ONLY with a valid JSON object, no markdown and no commentary."

func buildPrompt(source string, level domain.Level, lang domain.Language) provider.Prompt {
	user := fmt.Sprintf(`Adapt this English text for a %[1]s level ESL learner whose native language is %[2]s.

Original text: %[3]q

Please:
1. Rewrite the content to match %[1]s vocabulary and grammar complexity
2. Add cultural notes for concepts that might be unfamiliar to %[2]s speakers; keys are words or phrases from the adapted content
3. Create 3-5 comprehension questions with multiple choice answers; "correctAnswer" is the zero-based index of the right option
4. Estimate reading time in whole minutes (at least 1)
5. Generate an engaging title and summary

Respond with JSON in this format:
{
  "title": "engaging title",
  "content": "adapted content",
  "summary": "brief summary",
  "difficultyLevel": "%[1]s",
  "estimatedReadTime": 3,
  "culturalNotes": {
    "word1": "cultural explanation",
    "word2": "cultural explanation"
  },
  "comprehensionQuestions": [
    {
      "question": "question text",
      "options": ["A", "B", "C", "D"],
      "correctAnswer": 0,
      "explanation": "why this is correct"
    }
  ]
}`, level, lang, source)

	return provider.Prompt{System: systemPrompt, User: user}
}
