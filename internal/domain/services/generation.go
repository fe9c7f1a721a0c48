package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/ports"
)

// DefaultHistoryLimit is the default number of archived responses returned.
const DefaultHistoryLimit = 20

// GenerationResult is the outcome of one Generate call.
type GenerationResult struct {
	Philosopher    entities.Philosopher     `json:"philosopher"`
	Transformation *entities.Transformation `json:"transformation,omitempty"`
	Score          float64                  `json:"score"`
	Response       entities.Response        `json:"response"`
}

// GenerationService answers questions in the voice of a philosopher through
// an external generator, optionally after a counterfactual transformation.
type GenerationService struct {
	materializer *EntityMaterializer
	transformer  *ContextTransformer
	prompts      ports.PromptBuilder
	generator    ports.Generator
	archive      ports.ResponseArchive
	logger       *zap.Logger
}

// NewGenerationService creates a new GenerationService. The archive may be
// nil, in which case responses are not kept.
func NewGenerationService(
	materializer *EntityMaterializer,
	transformer *ContextTransformer,
	prompts ports.PromptBuilder,
	generator ports.Generator,
	archive ports.ResponseArchive,
	logger *zap.Logger,
) *GenerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerationService{
		materializer: materializer,
		transformer:  transformer,
		prompts:      prompts,
		generator:    generator,
		archive:      archive,
		logger:       logger.Named("generation"),
	}
}

// Generate resolves name, applies req when it is non-nil and non-empty,
// and asks the generator to answer question.
func (s *GenerationService) Generate(ctx context.Context, name, question string, req *entities.ModificationRequest) (*GenerationResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.New("question is required")
	}

	philosopher, ok := s.materializer.GetEntity(name)
	if !ok {
		s.logger.Debug("Philosopher not resolved", zap.String("name", name))
		return nil, fmt.Errorf("philosopher %q: %w", name, entities.ErrNotFound)
	}

	result := &GenerationResult{Philosopher: philosopher}
	persona := philosopher
	if req != nil && !req.IsEmpty() {
		tr := s.transformer.Transform(philosopher, *req)
		result.Transformation = tr
		result.Score = PreservationScore(tr)
		persona = tr.Derived
	}

	prompt := s.prompts.Build(persona, question)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating response: %w", err)
	}

	result.Response = entities.Response{
		ID:          uuid.New().String(),
		Philosopher: philosopher.Name,
		Question:    question,
		Prompt:      prompt,
		Text:        text,
		CreatedAt:   timeNow(),
	}
	if result.Transformation != nil {
		result.Response.TransformationID = result.Transformation.ID
	}

	if s.archive != nil {
		if err := s.archive.SaveResponse(ctx, &result.Response); err != nil {
			s.logger.Warn("Archiving response failed",
				zap.String("philosopher", philosopher.Name),
				zap.Error(err))
		}
	}

	return result, nil
}

// History returns archived responses for a philosopher, newest first.
func (s *GenerationService) History(ctx context.Context, name string, limit int) ([]entities.Response, error) {
	if s.archive == nil {
		return []entities.Response{}, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	philosopher, ok := s.materializer.GetEntity(name)
	if !ok {
		return nil, fmt.Errorf("philosopher %q: %w", name, entities.ErrNotFound)
	}

	responses, err := s.archive.FindResponsesByPhilosopher(ctx, philosopher.Name, limit)
	if err != nil {
		return nil, fmt.Errorf("finding responses: %w", err)
	}
	return responses, nil
}
