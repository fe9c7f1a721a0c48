package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTransformCmd() *cobra.Command {
	var flags modificationFlags

	cmd := &cobra.Command{
		Use:   "transform <name>",
		Short: "Derive a counterfactual philosopher",
		Long: `Moves a philosopher to another year, region or event. A new year keeps
only the influences born strictly before it. The ideology preservation
score is the fraction of --belief values the derived philosopher still holds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(args[0], flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runTransform(name string, flags modificationFlags) error {
	return withDeps(func(d *Deps) error {
		req, err := flags.request(d.QueryHandler.ResolveTerm)
		if err != nil {
			return err
		}

		result, err := d.TransformHandler.Handle(name, req)
		if err != nil {
			return exitError(err)
		}
		if jsonOutput {
			return printJSON(stdout, result)
		}

		tr := result.Transformation
		fmt.Fprintf(stdout, "Transformation %s\n\n", tr.ID)
		displayPhilosopher(stdout, tr.Derived)
		if len(tr.Dropped) > 0 {
			fmt.Fprintf(stdout, "\nDropped influences: %s\n", joinShort(tr.Dropped))
		}
		if result.Context != nil {
			fmt.Fprintf(stdout, "\nSimulated context: %s, %s, %s\n",
				formatBirthYear(&result.Context.Year), result.Context.Region, result.Context.PeriodLabel)
		} else {
			fmt.Fprintf(stdout, "\nSimulated context: %s\n", result.ContextError)
		}
		fmt.Fprintf(stdout, "Ideology preservation: %.2f\n", result.Score)
		return nil
	})
}
