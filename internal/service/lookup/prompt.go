package lookup

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/lingoread/internal/provider"
)

const systemPrompt = "You are an expert ESL teacher who specializes in cross-cultural language learning. " +
	"Provide clear, educational definitions with cultural context. " +
	"Respond ONLY with a valid JSON object, no markdown and no commentary."

func buildPrompt(word, language string, context *string) provider.Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Define the English word %q for a native %s speaker learning English.\n", word, language)
	if context != nil && strings.TrimSpace(*context) != "" {
		fmt.Fprintf(&b, "Context: %q\n", strings.TrimSpace(*context))
	}
	fmt.Fprintf(&b, `
Provide:
1. A clear, simple definition
2. Cultural context explaining how this concept might differ in %s culture
3. An example sentence using the word

Do NOT include a translation.

Respond with JSON in this format:
{
  "word": %q,
  "definition": "clear definition",
  "culturalContext": "cultural explanation",
  "exampleSentence": "example sentence"
}`, language, word)

	return provider.Prompt{System: systemPrompt, User: b.String()}
}
