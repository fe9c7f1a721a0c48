package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjcesaretti/altergeist/internal/application/handlers"
)

func newQueryCmd() *cobra.Command {
	var subject, predicate, object string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Match relations against a pattern",
		Long: `Matches relations after closure. Empty positions are free. Names without a
scheme are qualified against the ontology namespace; the predicates a, type,
label, subClassOf, equivalentClass and date are accepted as short names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(subject, predicate, object)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject identifier")
	cmd.Flags().StringVarP(&predicate, "predicate", "p", "", "Predicate identifier")
	cmd.Flags().StringVarP(&object, "object", "o", "", "Object identifier or literal value")

	return cmd
}

func runQuery(subject, predicate, object string) error {
	if subject == "" && predicate == "" && object == "" {
		return errors.New("at least one of --subject, --predicate or --object is required")
	}

	return withDeps(func(d *Deps) error {
		result := d.QueryHandler.HandlePattern(subject, predicate, object)
		if jsonOutput {
			return printJSON(stdout, result)
		}

		if result.Total == 0 {
			fmt.Fprintln(stdout, "No relations found.")
			return nil
		}

		fmt.Fprintf(stdout, "Found %d relations:\n\n", result.Total)
		for i, b := range result.Bindings {
			fmt.Fprintf(stdout, "%d. %s", i+1, formatRelation(b.Relation))
			if b.Inferred {
				fmt.Fprint(stdout, " [inferred]")
			}
			fmt.Fprintln(stdout)
		}
		return nil
	})
}

func newRelatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "related <class>",
		Short: "Show classes related through the hierarchy",
		Long:  "Lists superclasses, subclasses and equivalent classes of a class.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(func(h *handlers.QueryHandler) (*handlers.LookupResult, error) {
				return h.HandleRelated(args[0]), nil
			})
		},
	}
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <kind> <id>",
		Short: "Run a domain lookup",
		Long: fmt.Sprintf(`Runs a named lookup for an identifier. Kinds: %s.

beliefs, concepts, influences, influenced, cluster and contexts take a
philosopher; holders takes a belief and users takes a concept.`, strings.Join(handlers.LookupKinds, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(func(h *handlers.QueryHandler) (*handlers.LookupResult, error) {
				return h.HandleLookup(args[0], args[1])
			})
		},
	}
}

func runLookup(lookup func(*handlers.QueryHandler) (*handlers.LookupResult, error)) error {
	return withDeps(func(d *Deps) error {
		result, err := lookup(d.QueryHandler)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(stdout, result)
		}

		if result.Total == 0 {
			fmt.Fprintf(stdout, "No %s found for %s.\n", result.Kind, shortName(result.Subject))
			return nil
		}
		displayAnnotated(stdout, fmt.Sprintf("%s of %s", result.Kind, shortName(result.Subject)), result.Results)
		return nil
	})
}

func newFactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facts <subject>",
		Short: "List every relation about a subject",
		Long:  "Lists asserted and inferred relations with the subject, marking inferred ones.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacts(args[0])
		},
	}
}

func runFacts(subject string) error {
	return withDeps(func(d *Deps) error {
		result := d.QueryHandler.HandleFacts(subject)
		if jsonOutput {
			return printJSON(stdout, result)
		}

		if result.Total == 0 {
			fmt.Fprintf(stdout, "No facts about %s.\n", shortName(result.Subject))
			return nil
		}

		fmt.Fprintf(stdout, "%d facts about %s:\n\n", result.Total, shortName(result.Subject))
		for _, f := range result.Facts {
			marker := "asserted"
			if f.Inferred {
				marker = "inferred"
			}
			fmt.Fprintf(stdout, "  [%s] %s\n", marker, formatRelation(f.Relation))
		}
		return nil
	})
}
