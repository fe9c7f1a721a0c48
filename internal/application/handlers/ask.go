package handlers

import (
	"context"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/services"
)

// AskHandler handles questions answered in a philosopher's voice.
type AskHandler struct {
	generation *services.GenerationService
}

// NewAskHandler creates a new ask handler.
func NewAskHandler(generation *services.GenerationService) *AskHandler {
	return &AskHandler{
		generation: generation,
	}
}

// HistoryResult contains archived responses for one philosopher.
type HistoryResult struct {
	Philosopher string              `json:"philosopher"`
	Responses   []entities.Response `json:"responses"`
	Total       int                 `json:"total"`
}

// Handle answers question as name, after applying req when it is set.
func (h *AskHandler) Handle(ctx context.Context, name, question string, req *entities.ModificationRequest) (*services.GenerationResult, error) {
	return h.generation.Generate(ctx, name, question, req)
}

// HandleHistory returns archived responses for name, newest first.
func (h *AskHandler) HandleHistory(ctx context.Context, name string, limit int) (*HistoryResult, error) {
	responses, err := h.generation.History(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	return &HistoryResult{
		Philosopher: name,
		Responses:   responses,
		Total:       len(responses),
	}, nil
}
