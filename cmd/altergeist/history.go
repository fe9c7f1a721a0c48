package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjcesaretti/altergeist/internal/application/handlers"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <name>",
		Short: "Show archived answers",
		Long:  "Lists the answers archived for a philosopher, newest first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of answers to display")

	return cmd
}

func runHistory(cmd *cobra.Command, name string, limit int) error {
	ctx := cmd.Context()

	return withAskHandler(ctx, false, func(h *handlers.AskHandler, _ *Deps) error {
		result, err := h.HandleHistory(ctx, name, limit)
		if err != nil {
			return exitError(err)
		}
		if jsonOutput {
			return printJSON(stdout, result)
		}

		if result.Total == 0 {
			fmt.Fprintln(stdout, "No archived answers.")
			return nil
		}

		for _, r := range result.Responses {
			fmt.Fprintf(stdout, "[%s] %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Question)
			if r.TransformationID != "" {
				fmt.Fprintf(stdout, "  transformation: %s\n", r.TransformationID)
			}
			fmt.Fprintf(stdout, "  %s\n\n", r.Text)
		}
		return nil
	})
}
