package main

import (
	"context"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphq/internal/config"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) error {
	input := &Input{stdout: os.Stdout, stderr: os.Stderr}
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if input.logger != nil {
			input.logger.Error(err)
		} else {
			log.Error(err)
		}
		return err
	}

	return nil
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "graphq",
		Short:             "Load an undirected weighted graph from an edge list and query it",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup(input),
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return dumpMetrics(input)
		},
	}
	rootCmd.SetOut(input.stdout)
	rootCmd.SetErr(input.stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&input.configPath, "config", "", "path to a YAML config file")
	pf.StringVarP(&input.input, "input", "i", "input.txt", "path to the edge-list file")
	pf.StringVarP(&input.output, "output", "o", "", "output file (stdout when empty)")
	pf.StringVarP(&input.format, "format", "f", "text", "output format: text, yaml or json")
	pf.BoolVar(&input.appendOut, "append", false, "append to the output file instead of truncating it")
	pf.StringVar(&input.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&input.logFormat, "log-format", "text", "log format: text or json")
	pf.IntVar(&input.parallelism, "parallelism", 4, "concurrent queries for run and multi-source paths")
	pf.BoolVar(&input.metrics, "metrics", false, "print query metrics to stderr on exit")

	rootCmd.AddCommand(
		newInfoCommand(input),
		newReprCommand(input),
		newDFSCommand(input),
		newBFSCommand(input),
		newComponentsCommand(input),
		newPathCommand(input),
		newRunCommand(ctx, input),
		newGenerateCommand(input),
	)

	return rootCmd
}

// setup loads configuration and builds the logger and metrics registry.
func setup(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(input.configPath, cmd.Flags())
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg.Log, input.stderr)
		if err != nil {
			return err
		}
		for _, w := range cfg.Validate() {
			logger.Warn(w)
		}
		cfg.Normalize()
		input.cfg = cfg
		input.logger = logger
		input.registry = prometheus.NewRegistry()

		return nil
	}
}

// dumpMetrics writes the registry in the Prometheus text format when --metrics is set.
func dumpMetrics(input *Input) error {
	if !input.metrics || input.registry == nil {
		return nil
	}
	families, err := input.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(input.stderr, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}

// vertexArg parses a positional vertex argument.
func vertexArg(args []string, i int, name string) (int, error) {
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, errors.Errorf("%s %q is not an integer vertex", name, args[i])
	}

	return v, nil
}
