// Package provider holds the contracts shared by external content providers.
package provider

import "context"

// Prompt is a role-tagged instruction for a text generator.
type Prompt struct {
	System string
	User   string
}

// TextGenerator produces a completion for a prompt. Implementations are
// expected to return the raw model text; callers extract and validate JSON.
type TextGenerator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}
