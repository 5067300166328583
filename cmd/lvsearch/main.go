package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
)

var (
	version   = "dev"
	cfgFile   string
	logFormat string
	logLevel  string
	logger    *slog.Logger
	cfg       *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	root := &cobra.Command{
		Use:          "lvsearch",
		Short:        "lvsearch: uninformed search over grids and graphs",
		Long:         "Breadth-first, bidirectional, depth-first, depth-limited and iterative deepening search on YAML problem files.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-format") {
				logFormat = cfg.Log.Format
			}
			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.Log.Level
			}

			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			opts := &slog.HandlerOptions{Level: level}
			switch logFormat {
			case "json":
				logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
			case "text":
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			default:
				return fmt.Errorf("invalid --log-format %q (use: text, json)", logFormat)
			}
			logger.Debug("config loaded", "algorithm", cfg.Search.Algorithm, "limit", cfg.Search.Limit,
				"max_bound", cfg.Search.MaxBound, "connectivity", cfg.Grid.Connectivity)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lvsearch.yaml)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text, json)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		bfsCmd(),
		bidiCmd(),
		dfsCmd(),
		dlsCmd(),
		idsCmd(),
		solveCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvsearch %s\n", version)
		},
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid --log-level %q (use: debug, info, warn, error)", s)
	}
}
