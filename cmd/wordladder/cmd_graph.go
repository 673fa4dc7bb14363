package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/cache"
	"github.com/katalvlaran/wordladder/core"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect and cache the word graph",
	}
	cmd.AddCommand(graphBuildCmd(a))
	cmd.AddCommand(graphStatsCmd(a))
	cmd.AddCommand(graphNeighborsCmd(a))
	return cmd
}

func graphBuildCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the graph and write its snapshot to the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.CacheDir == "" {
				return fmt.Errorf("no cache directory: set --cache-dir or WORDLADDER_CACHE_DIR")
			}
			if force {
				g, err := a.graph(cmd.Context())
				if err != nil {
					return err
				}
				if err = a.loader.Invalidate(cache.Key(g.Words())); err != nil {
					return err
				}
			}
			g, err := a.graph(cmd.Context())
			if err != nil {
				return err
			}
			key := cache.Key(g.Words())
			fmt.Fprintln(cmd.OutOrStdout(), a.loader.Path(key))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Rebuild even if a snapshot exists")
	return cmd
}

func graphStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print graph size and degree statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd.Context())
			if err != nil {
				return err
			}
			st := g.Stats()
			if a.flagFmt == "json" {
				return formatJSON(cmd.OutOrStdout(), st)
			}
			formatTable(cmd.OutOrStdout(),
				[]string{"LENGTH", "WORDS", "EDGES", "ISOLATED", "MAX DEGREE"},
				[][]string{{
					strconv.Itoa(st.WordLength), strconv.Itoa(st.Words), strconv.Itoa(st.Edges),
					strconv.Itoa(st.Isolated), strconv.Itoa(st.MaxDegree),
				}},
			)
			return nil
		},
	}
}

func graphNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List the words one letter away",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph(cmd.Context())
			if err != nil {
				return err
			}
			w := core.Normalize(args[0])
			if !g.HasWord(w) {
				return fmt.Errorf("%w: %q", core.ErrDomain, w)
			}
			if a.flagFmt == "json" {
				return formatJSON(cmd.OutOrStdout(), g.Neighbors(w))
			}
			for _, n := range g.Neighbors(w) {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
