package ports

import (
	"context"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
)

// ResponseArchive persists generated responses.
type ResponseArchive interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error

	// SaveResponse stores a generated response.
	SaveResponse(ctx context.Context, resp *entities.Response) error

	// FindResponsesByPhilosopher returns responses for a philosopher, newest first.
	FindResponsesByPhilosopher(ctx context.Context, philosopher string, limit int) ([]entities.Response, error)

	// CountResponses returns the number of archived responses.
	CountResponses(ctx context.Context) (int, error)
}
