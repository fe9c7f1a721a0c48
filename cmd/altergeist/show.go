package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a philosopher",
		Long: `Shows a philosopher resolved by identifier or name. Names are matched by
their last word against labels; the first match wins unless --exact is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "exact", false, "Fail when the name matches more than one philosopher")

	return cmd
}

func runShow(name string, strict bool) error {
	return withDeps(func(d *Deps) error {
		detail, err := d.EntityHandler.HandleShow(name, strict)
		if err != nil {
			return exitError(err)
		}
		if jsonOutput {
			return printJSON(stdout, detail)
		}

		displayPhilosopher(stdout, detail.Philosopher)
		displayAnnotated(stdout, "\nBeliefs", detail.Beliefs)
		displayAnnotated(stdout, "Concepts", detail.Concepts)
		displayAnnotated(stdout, "Contexts", detail.Contexts)
		displayAnnotated(stdout, "Cluster", detail.Cluster)
		displayAnnotated(stdout, "Influences", detail.Influences)
		displayAnnotated(stdout, "Influenced", detail.Influenced)
		return nil
	})
}
