package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjcesaretti/altergeist/internal/application/handlers"
)

func newAskCmd() *cobra.Command {
	var flags modificationFlags

	cmd := &cobra.Command{
		Use:   "ask <name> <question>",
		Short: "Ask a philosopher a question",
		Long: `Answers a question in the voice of a philosopher through the configured
generation service. The counterfactual flags of transform apply first when set.
Answers are kept in the response archive.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args[0], args[1], flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runAsk(cmd *cobra.Command, name, question string, flags modificationFlags) error {
	return withAskHandler(cmd.Context(), true, func(h *handlers.AskHandler, d *Deps) error {
		cfg := d.Config
		req, err := flags.request(d.QueryHandler.ResolveTerm)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if cfg.LLM.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.LLM.Timeout)
			defer cancel()
		}

		result, err := h.Handle(ctx, name, question, &req)
		if err != nil {
			return exitError(err)
		}
		if jsonOutput {
			return printJSON(stdout, result)
		}

		persona := result.Philosopher.Name
		if result.Transformation != nil {
			persona += " (" + formatBirthYear(result.Transformation.Derived.BirthYear) + ")"
		}
		fmt.Fprintf(stdout, "%s:\n\n%s\n", persona, result.Response.Text)
		if result.Transformation != nil && len(req.CoreBeliefs) > 0 {
			fmt.Fprintf(stdout, "\nIdeology preservation: %.2f\n", result.Score)
		}
		return nil
	})
}
