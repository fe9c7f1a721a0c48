package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wjcesaretti/altergeist/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize an altergeist workspace",
		Long:  "Creates a .altergeist directory with default configuration and the response archive.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler(newArchive).Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(stdout, "Created response archive: %s\n", result.ArchivePath)
	if _, err := os.Stat(result.OntologyPath); err != nil {
		fmt.Fprintf(stdout, "Ontology not found at %s; add one or set ontology.path\n", result.OntologyPath)
	}
	fmt.Fprintln(stdout, "altergeist initialized successfully!")
	return nil
}
