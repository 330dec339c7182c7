package comprehension

import (
	"fmt"

	"github.com/heartmarshall/lingoread/internal/provider"
)

const systemPrompt = "You are an expert ESL assessment creator who designs effective comprehension questions. " +
	"Respond ONLY with a valid JSON object, no markdown and no commentary."

func buildPrompt(input GenerateInput) provider.Prompt {
	user := fmt.Sprintf(`Create exactly 5 comprehension questions for this %s level English article:

%q

Questions should test, one each:
- Main idea comprehension
- Detail recall
- Vocabulary understanding
- Inference skills
- Cultural understanding

Every question has 4 answer options. "correctAnswer" is the zero-based index of the right option.

Respond with JSON in this format:
{
  "questions": [
    {
      "question": "question text",
      "options": ["option A", "option B", "option C", "option D"],
      "correctAnswer": 0,
      "explanation": "detailed explanation of correct answer"
    }
  ]
}`, input.DifficultyLevel, input.ArticleContent)

	return provider.Prompt{System: systemPrompt, User: user}
}
