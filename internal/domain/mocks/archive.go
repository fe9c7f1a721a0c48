package mocks

import (
	"context"
	"sort"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
)

// ResponseArchive is a mock implementation of ports.ResponseArchive.
type ResponseArchive struct {
	Responses []entities.Response
	Err       error

	// Call tracking
	SaveCallCount int
}

// NewResponseArchive creates a new mock ResponseArchive.
func NewResponseArchive() *ResponseArchive {
	return &ResponseArchive{}
}

// EnsureSchema creates the storage schema if it doesn't exist.
func (m *ResponseArchive) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close releases the underlying storage.
func (m *ResponseArchive) Close() error {
	return nil
}

// SaveResponse stores a generated response.
func (m *ResponseArchive) SaveResponse(_ context.Context, resp *entities.Response) error {
	m.SaveCallCount++
	if m.Err != nil {
		return m.Err
	}
	m.Responses = append(m.Responses, *resp)
	return nil
}

// FindResponsesByPhilosopher returns responses for a philosopher, newest first.
func (m *ResponseArchive) FindResponsesByPhilosopher(_ context.Context, philosopher string, limit int) ([]entities.Response, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.Response
	for _, r := range m.Responses {
		if r.Philosopher == philosopher {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// CountResponses returns the number of archived responses.
func (m *ResponseArchive) CountResponses(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Responses), nil
}
