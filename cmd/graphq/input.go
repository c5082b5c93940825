package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphq/core"
	"github.com/katalvlaran/graphq/edgelist"
	"github.com/katalvlaran/graphq/internal/config"
	"github.com/katalvlaran/graphq/query"
	"github.com/katalvlaran/graphq/report"
)

// Input holds the raw flag values and the state resolved from them.
type Input struct {
	configPath  string
	input       string
	output      string
	format      string
	appendOut   bool
	logLevel    string
	logFormat   string
	parallelism int
	metrics     bool

	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   *log.Logger
	registry *prometheus.Registry
}

// newLogger builds a logrus logger from the log section of the config.
func newLogger(cfg config.LogConfig, out io.Writer) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)

	level := log.InfoLevel
	if cfg.Level != "" {
		lvl, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "log level")
		}
		level = lvl
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}

	return logger, nil
}

// formatOf resolves the configured output format.
func (i *Input) formatOf() (report.Format, error) {
	return report.ParseFormat(i.cfg.Format)
}

// loadDocument reads the configured edge list.
func (i *Input) loadDocument() (*edgelist.Document, error) {
	i.logger.WithField("input", i.cfg.Input).Debug("loading edge list")
	return edgelist.ReadFile(i.cfg.Input)
}

// newEngine loads the input and wires an Engine with the logger and metrics.
func (i *Input) newEngine() (*query.Engine, error) {
	doc, err := i.loadDocument()
	if err != nil {
		return nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, errors.WithMessagef(err, "build graph from %s", i.cfg.Input)
	}
	i.logger.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debug("graph built")

	return query.New(g,
		query.WithLogger(i.logger),
		query.WithMetrics(query.NewMetrics(i.registry)),
		query.WithParallelism(i.cfg.Parallelism),
	)
}

// openOutput returns the configured sink: stdout, or a file truncated or
// appended to per the append setting. The returned closer is never nil.
func (i *Input) openOutput() (io.Writer, func() error, error) {
	if i.cfg.Output == "" || i.cfg.Output == "-" {
		return i.stdout, func() error { return nil }, nil
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if i.cfg.Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(i.cfg.Output, flags, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open output %s", i.cfg.Output)
	}

	return f, f.Close, nil
}

// emit writes value in the configured format to the configured output.
func (i *Input) emit(value interface{}) error {
	return i.withOutput(func(w io.Writer, f report.Format) error {
		return report.Encode(w, f, value)
	})
}

// emitOutcome renders the answer to req. An unknown vertex or a negative
// weight is a query outcome, not a command failure: the engine has already
// logged it, and it is rendered as the failed request. Any other error is
// returned.
func (i *Input) emitOutcome(req query.Request, value interface{}, err error) error {
	if err == nil {
		return i.emit(value)
	}
	if !errors.Is(err, core.ErrUnknownVertex) && !errors.Is(err, core.ErrNegativeWeight) {
		return err
	}

	return i.emit(query.Result{Request: req, Err: err})
}

// withOutput opens the output, runs fn and closes the output.
func (i *Input) withOutput(fn func(io.Writer, report.Format) error) error {
	format, err := i.formatOf()
	if err != nil {
		return err
	}
	w, closeFn, err := i.openOutput()
	if err != nil {
		return err
	}
	if err := fn(w, format); err != nil {
		_ = closeFn()
		return err
	}
	if i.cfg.Output != "" && i.cfg.Output != "-" {
		i.logger.WithField("output", i.cfg.Output).Info("output file updated")
	}

	return errors.Wrap(closeFn(), "close output")
}
