package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/cache"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/runner"
)

// app is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	loader *cache.Loader

	flagDict      string
	flagLength    int
	flagCacheDir  string
	flagLogLevel  string
	flagLogFormat string
	flagFmt       string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "wordladder",
		Short:             "Find word ladders with BFS, IDS, UCS and A*",
		Version:           versionString(),
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flagDict, "dict", "", "Dictionary file, one word per line (env: WORDLADDER_DICT)")
	pf.IntVar(&a.flagLength, "length", 0, "Word length (env: WORDLADDER_WORD_LENGTH, default 5)")
	pf.StringVar(&a.flagCacheDir, "cache-dir", "", "Graph snapshot directory (env: WORDLADDER_CACHE_DIR)")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "Log level (env: WORDLADDER_LOG_LEVEL, default info)")
	pf.StringVar(&a.flagLogFormat, "log-format", "", "Log format: text|json (env: WORDLADDER_LOG_FORMAT)")
	pf.StringVar(&a.flagFmt, "format", "table", "Output format: table|json")

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newGraphCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger
// and graph loader. Flags take precedence over the environment and .env.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.DictPath = a.flagDict
	}
	if flags.Changed("length") {
		cfg.WordLength = a.flagLength
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = a.flagCacheDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flagLogFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if a.flagFmt != "table" && a.flagFmt != "json" {
		return fmt.Errorf("--format must be table or json, got %q", a.flagFmt)
	}

	a.cfg = cfg
	a.log = logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	a.loader, err = cache.NewLoader(
		cache.WithDir(cfg.CacheDir),
		cache.WithMemorySize(cfg.CacheSize),
		cache.WithLogger(a.log),
	)

	return err
}

// graph loads the configured dictionary through the cache.
func (a *app) graph(ctx context.Context) (*core.WordGraph, error) {
	if a.cfg.DictPath == "" {
		return nil, errors.New("no dictionary: set --dict or WORDLADDER_DICT")
	}
	f, err := os.Open(a.cfg.DictPath)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	g, err := a.loader.LoadDictionary(ctx, f, a.cfg.WordLength)
	if err != nil {
		return nil, err
	}
	metrics.SetGraph(g.Len(), g.Edges())
	a.log.WithFields(logrus.Fields{"dict": a.cfg.DictPath, "words": g.Len(), "edges": g.Edges()}).Debug("graph ready")

	return g, nil
}

// runner builds a Runner over the configured graph.
func (a *app) runner(ctx context.Context, withMetrics bool) (*runner.Runner, error) {
	g, err := a.graph(ctx)
	if err != nil {
		return nil, err
	}

	return runner.New(g,
		runner.WithLogger(a.log),
		runner.WithIDSMaxDepth(a.cfg.IDSMaxDepth),
		runner.WithIDSMaxExpansions(a.cfg.IDSMaxExpansions),
		runner.WithMetrics(withMetrics),
	)
}
