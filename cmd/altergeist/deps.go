package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wjcesaretti/altergeist/internal/application/handlers"
	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/ports"
	"github.com/wjcesaretti/altergeist/internal/domain/services"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/archive/sqlite"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/config"
	llm "github.com/wjcesaretti/altergeist/internal/infrastructure/llm/openai"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/llm/prompt"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/ontology/turtle"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and stores are internal.
type Deps struct {
	Config           *config.Config
	Stats            services.ClosureStats
	EntityHandler    *handlers.EntityHandler
	QueryHandler     *handlers.QueryHandler
	TransformHandler *handlers.TransformHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	basePath     string
	materializer *services.EntityMaterializer
	transformer  *services.ContextTransformer
}

// withDeps loads config and the ontology, runs the closure and builds the
// handlers, then calls the provided function.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg)

	loader := turtle.NewLoader(cfg.Ontology, logger)
	store, err := loader.LoadFile(cfg.OntologyPath(cwd))
	if err != nil {
		return fmt.Errorf("loading ontology: %w", err)
	}

	vocab := vocabulary.New(cfg.Ontology.Namespace)
	reasoner := services.NewReasoner(store, vocab, logger)
	var stats services.ClosureStats
	if cfg.Reasoner.Closure {
		stats = reasoner.RunClosure()
	}

	classifier := services.NewKeywordRegionClassifier(regionTable(cfg.Regions))
	materializer := services.NewEntityMaterializer(store, vocab, classifier)
	transformer := services.NewContextTransformer(materializer, classifier)

	deps := &internalDeps{
		Deps: Deps{
			Config:           cfg,
			Stats:            stats,
			EntityHandler:    handlers.NewEntityHandler(materializer, reasoner),
			QueryHandler:     handlers.NewQueryHandler(reasoner, vocab),
			TransformHandler: handlers.NewTransformHandler(materializer, transformer),
		},
		basePath:     cwd,
		materializer: materializer,
		transformer:  transformer,
	}

	return fn(deps)
}

// withAskHandler adds the generation collaborators. The generator is only
// built when needGenerator is set, so history works without an API key.
func withAskHandler(ctx context.Context, needGenerator bool, fn func(*handlers.AskHandler, *Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		var generator ports.Generator
		if needGenerator {
			client, err := llm.NewClient(d.Config.LLM)
			if err != nil {
				return fmt.Errorf("creating llm client: %w", err)
			}
			generator = client
		}

		var archive ports.ResponseArchive
		repo, err := openArchive(ctx, d.Config.ArchivePath(d.basePath))
		if err != nil {
			logger.Warn("Response archive unavailable", zap.Error(err))
		} else {
			defer repo.Close()
			archive = repo
		}

		generation := services.NewGenerationService(
			d.materializer,
			d.transformer,
			prompt.NewBuilder(d.materializer.Label),
			generator,
			archive,
			logger,
		)
		return fn(handlers.NewAskHandler(generation), &d.Deps)
	})
}

// newArchive opens the sqlite response archive at path.
func newArchive(path string) (ports.ResponseArchive, error) {
	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// openArchive opens the sqlite response archive and ensures its schema.
func openArchive(ctx context.Context, path string) (ports.ResponseArchive, error) {
	repo, err := newArchive(path)
	if err != nil {
		return nil, err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}

func applyFlagOverrides(cfg *config.Config) {
	if globalOntology != "" {
		cfg.Ontology.Path = globalOntology
	}
	if globalStrict {
		cfg.Ontology.Strict = true
	}
}

func regionTable(rows []config.RegionConfig) []services.RegionKeywords {
	table := make([]services.RegionKeywords, 0, len(rows))
	for _, row := range rows {
		table = append(table, services.RegionKeywords{
			Region:   entities.Region(row.Name),
			Keywords: row.Keywords,
		})
	}
	return table
}

// exitError reports lookups that found nothing with a clean message.
func exitError(err error) error {
	var ambiguous *entities.AmbiguousMatchError
	switch {
	case errors.As(err, &ambiguous):
		return fmt.Errorf("%q matches several philosophers: %v", ambiguous.Query, ambiguous.Candidates)
	case errors.Is(err, entities.ErrNotFound):
		return fmt.Errorf("%w (try 'altergeist list')", err)
	default:
		return err
	}
}
