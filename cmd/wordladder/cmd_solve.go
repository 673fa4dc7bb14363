package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/runner"
)

func newSolveCmd(a *app) *cobra.Command {
	var strategies []string
	cmd := &cobra.Command{
		Use:   "solve <start> <goal>",
		Short: "Find a ladder between two words",
		Long: "Find a ladder between two words with one or more strategies " +
			"(" + strings.Join(strategyNames(), ", ") + ", or all).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := runner.ParseStrategies(strategies)
			if err != nil {
				return err
			}
			r, err := a.runner(cmd.Context(), false)
			if err != nil {
				return err
			}

			start, goal := core.Normalize(args[0]), core.Normalize(args[1])
			recs := make([]runner.Record, 0, len(ss))
			for _, s := range ss {
				rec, err := r.Run(cmd.Context(), s, start, goal)
				if err != nil {
					return err
				}
				recs = append(recs, rec)
			}

			return a.outputRecords(cmd.OutOrStdout(), recs, recs)
		},
	}
	cmd.Flags().StringSliceVarP(&strategies, "strategy", "s", []string{"bfs"}, "Strategies to run (comma-separated, or all)")
	return cmd
}

func strategyNames() []string {
	all := runner.AllStrategies()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.String()
	}
	return out
}
