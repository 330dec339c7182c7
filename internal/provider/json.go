package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when a completion contains no JSON object.
var ErrNoJSON = errors.New("no JSON object found in response")

// ExtractJSON finds the JSON object in a model completion. Markdown code
// fences are stripped, then the text between the first "{" and the last "}"
// is returned if it is valid JSON.
func ExtractJSON(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoJSON
	}

	out := s[start : end+1]
	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("%w: braces enclose invalid JSON", ErrNoJSON)
	}
	return out, nil
}

// DecodeJSON extracts the JSON object from a completion and decodes it into dst.
func DecodeJSON(completion string, dst any) error {
	raw, err := ExtractJSON(completion)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
