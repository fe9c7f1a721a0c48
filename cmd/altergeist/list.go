package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List philosophers",
		Long:  "Lists every philosopher in the ontology with birth year and region.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	return withDeps(func(d *Deps) error {
		result := d.EntityHandler.HandleList()
		if jsonOutput {
			return printJSON(stdout, result)
		}

		if result.Total == 0 {
			fmt.Fprintln(stdout, "No philosophers found.")
			return nil
		}

		fmt.Fprintf(stdout, "Found %d philosophers:\n\n", result.Total)
		for _, p := range result.Philosophers {
			region := "unknown"
			if p.Region != nil {
				region = string(p.Region.Region)
			}
			fmt.Fprintf(stdout, "  %-28s born %-10s %s\n", p.Name, formatBirthYear(p.BirthYear), region)
		}
		if verbose {
			fmt.Fprintf(stdout, "\nClosure: %d asserted, %d inferred in %d iterations\n",
				d.Stats.Asserted, d.Stats.Inferred, d.Stats.Iterations)
		}
		return nil
	})
}

func newPeriodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "periods",
		Short: "List historical periods",
		Long:  "Lists every historical context with valid start and end years.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeriods()
		},
	}
}

func runPeriods() error {
	return withDeps(func(d *Deps) error {
		result := d.EntityHandler.HandlePeriods()
		if jsonOutput {
			return printJSON(stdout, result)
		}

		if result.Total == 0 {
			fmt.Fprintln(stdout, "No periods found.")
			return nil
		}

		fmt.Fprintf(stdout, "Found %d periods:\n\n", result.Total)
		for _, p := range result.Periods {
			fmt.Fprintf(stdout, "  %-32s %s to %s\n", p.Name, formatBirthYear(&p.StartYear), formatBirthYear(&p.EndYear))
		}
		return nil
	})
}
