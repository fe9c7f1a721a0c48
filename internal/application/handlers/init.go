// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/wjcesaretti/altergeist/internal/domain/ports"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/config"
)

// ArchiveOpener opens the response archive stored at path.
type ArchiveOpener func(path string) (ports.ResponseArchive, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	openArchive ArchiveOpener
}

// NewInitHandler creates a new init handler. A nil opener skips archive
// creation.
func NewInitHandler(openArchive ArchiveOpener) *InitHandler {
	return &InitHandler{
		openArchive: openArchive,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath   string
	OntologyPath string
	ArchivePath  string
}

// Handle writes the default config and creates the response archive.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("altergeist already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := &InitResult{
		ConfigPath:   config.ConfigFilePath(basePath),
		OntologyPath: cfg.OntologyPath(basePath),
	}

	if h.openArchive != nil {
		result.ArchivePath = cfg.ArchivePath(basePath)
		archive, err := h.openArchive(result.ArchivePath)
		if err != nil {
			return nil, fmt.Errorf("opening archive: %w", err)
		}
		defer archive.Close()

		if err := archive.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating archive schema: %w", err)
		}
	}

	return result, nil
}
