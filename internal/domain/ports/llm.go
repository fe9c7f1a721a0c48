package ports

import (
	"context"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
)

// Generator is the external text-generation collaborator. It receives one
// opaque prompt and returns one opaque text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PromptBuilder renders a philosopher persona and a question into the
// prompt sent to a Generator.
type PromptBuilder interface {
	Build(p entities.Philosopher, question string) string
}
