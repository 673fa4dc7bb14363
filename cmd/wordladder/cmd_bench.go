package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/runner"
)

// benchPlan is the YAML file read by "wordladder bench".
//
//	workers: 4
//	strategies: [bfs, astar]   # or [all]
//	pairs:
//	  - {start: COLD, goal: WARM}
type benchPlan struct {
	Workers    int           `yaml:"workers"`
	Strategies []string      `yaml:"strategies"`
	Pairs      []runner.Pair `yaml:"pairs"`
}

func loadPlan(path string) (*benchPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var p benchPlan
	if err = yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if len(p.Pairs) == 0 {
		return nil, fmt.Errorf("plan %s has no pairs", path)
	}
	if len(p.Strategies) == 0 {
		p.Strategies = []string{"all"}
	}
	for i := range p.Pairs {
		p.Pairs[i].Start = core.Normalize(p.Pairs[i].Start)
		p.Pairs[i].Goal = core.Normalize(p.Pairs[i].Goal)
	}
	return &p, nil
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		planPath string
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a YAML plan of word pairs against several strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := loadPlan(planPath)
			if err != nil {
				return err
			}
			ss, err := runner.ParseStrategies(plan.Strategies)
			if err != nil {
				return err
			}

			// flag > plan > config
			n := a.cfg.Workers
			if plan.Workers > 0 {
				n = plan.Workers
			}
			if cmd.Flags().Changed("workers") {
				n = workers
			}

			r, err := a.runner(cmd.Context(), false)
			if err != nil {
				return err
			}
			batch, err := r.RunBatch(cmd.Context(), plan.Pairs, ss, n)
			if err != nil {
				return err
			}

			return a.outputRecords(cmd.OutOrStdout(), batch, batch.Records)
		},
	}
	cmd.Flags().StringVar(&planPath, "plan", "plan.yaml", "Bench plan file")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent searches (env: WORDLADDER_WORKERS)")
	return cmd
}
