package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

var stdout io.Writer = os.Stdout

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// shortName renders an identifier by its local name, and passes free text
// through unchanged.
func shortName(id string) string {
	if !vocabulary.IsAbsolute(id) {
		return id
	}
	if name := vocabulary.LocalName(id); name != "" {
		return name
	}
	return id
}

func joinShort(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = shortName(id)
	}
	return strings.Join(names, ", ")
}

func formatBirthYear(year *int) string {
	if year == nil {
		return "unknown"
	}
	return entities.FormatYear(*year)
}

func formatRegion(region *entities.RegionMatch) string {
	if region == nil {
		return "unknown"
	}
	if region.Keyword != "" {
		return fmt.Sprintf("%s (%s, matched %q)", region.Region, region.Confidence, region.Keyword)
	}
	return fmt.Sprintf("%s (%s)", region.Region, region.Confidence)
}

func displayPhilosopher(w io.Writer, p entities.Philosopher) {
	fmt.Fprintf(w, "%s\n", p.Name)
	fmt.Fprintf(w, "  ID:            %s\n", p.ID)
	fmt.Fprintf(w, "  Born:          %s\n", formatBirthYear(p.BirthYear))
	fmt.Fprintf(w, "  Region:        %s\n", formatRegion(p.Region))
	fmt.Fprintf(w, "  Beliefs:       %s\n", joinShort(p.Beliefs))
	fmt.Fprintf(w, "  Key concepts:  %s\n", joinShort(p.KeyConcepts))
	fmt.Fprintf(w, "  Contexts:      %s\n", joinShort(p.Contexts))
	if p.IdeologicalCluster != "" {
		fmt.Fprintf(w, "  Cluster:       %s\n", shortName(p.IdeologicalCluster))
	}
	fmt.Fprintf(w, "  Influenced by: %s\n", joinShort(p.InfluencedBy))
	fmt.Fprintf(w, "  Influenced:    %s\n", joinShort(p.Influenced))
}

func displayAnnotated(w io.Writer, title string, items []entities.Annotated) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, a := range items {
		fmt.Fprintf(w, "  - %s", displayName(a))
		if a.Inferred {
			fmt.Fprint(w, " [inferred]")
		}
		fmt.Fprintln(w)
		if a.Description != "" {
			fmt.Fprintf(w, "      %s\n", a.Description)
		}
	}
}

func displayName(a entities.Annotated) string {
	if a.Label != "" {
		return a.Label
	}
	return shortName(a.ID)
}

func formatTerm(t entities.Term) string {
	switch t.Kind {
	case entities.KindLiteral:
		out := fmt.Sprintf("%q", t.Value)
		if t.Lang != "" {
			out += "@" + t.Lang
		}
		return out
	default:
		return shortName(t.Value)
	}
}

func formatRelation(r entities.Relation) string {
	return fmt.Sprintf("%s %s %s", shortName(r.Subject), shortName(r.Predicate), formatTerm(r.Object))
}
