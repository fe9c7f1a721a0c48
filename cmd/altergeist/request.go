package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
)

// modificationFlags are the counterfactual flags shared by transform and ask.
type modificationFlags struct {
	year        string
	region      string
	event       string
	coreBeliefs []string
}

func (f *modificationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.year, "year", "", `New birth year, e.g. "1900" or "399 BCE"`)
	cmd.Flags().StringVar(&f.region, "region", "", "New region")
	cmd.Flags().StringVar(&f.event, "event", "", "Historical event to add as a context")
	cmd.Flags().StringSliceVar(&f.coreBeliefs, "belief", nil, "Core belief to preserve (repeatable)")
}

// request builds a modification request. Beliefs pass through resolve so
// that local names match materialized identifiers.
func (f *modificationFlags) request(resolve func(string) string) (entities.ModificationRequest, error) {
	var req entities.ModificationRequest

	if f.year != "" {
		year, ok := entities.ParseYear(f.year)
		if !ok {
			return req, fmt.Errorf("invalid year %q", f.year)
		}
		req.Year = &year
	}
	if region := strings.TrimSpace(f.region); region != "" {
		req.Region = &region
	}
	if event := strings.TrimSpace(f.event); event != "" {
		req.Event = &event
	}
	for _, b := range f.coreBeliefs {
		if b = strings.TrimSpace(b); b != "" {
			req.CoreBeliefs = append(req.CoreBeliefs, resolve(b))
		}
	}
	return req, nil
}
