package domain

import (
	"maps"
	"slices"
	"strings"
)

// NormalizeText prepares a word or phrase for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// NormalizeWordList trims each word, drops empty ones, and removes
// case-insensitive duplicates while keeping first-seen order and spelling.
// Always returns a non-nil slice.
func NormalizeWordList(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.Join(strings.Fields(w), " ")
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}

// NormalizeCulturalNotes lowercases note keys and drops entries whose key or
// value is blank. When keys collide after normalization, the note stored under
// the lexically greatest original key wins, so the result does not depend on
// map iteration order.
func NormalizeCulturalNotes(notes map[string]string) map[string]string {
	out := make(map[string]string, len(notes))
	for _, k := range slices.Sorted(maps.Keys(notes)) {
		key := NormalizeText(k)
		v := strings.TrimSpace(notes[k])
		if key == "" || v == "" {
			continue
		}
		out[key] = v
	}
	return out
}
