// SPDX-License-Identifier: MIT

// Package cmd holds the cobra command tree of the linsolve binary.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg   *config.Config
	log   *slog.Logger
	runID string
}

// NewRootCmd builds a fresh command tree. Every call is independent, so tests
// can run commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "linsolve",
		Short: "Solve linear systems by Gaussian elimination",
		Long: `linsolve reads systems of linear equations from plain numeric files
and solves them by Gaussian elimination with back substitution.

File format (whitespace separated):
  rows  columns-of-augmented-matrix
  a11 a12 ... b1
  a21 a22 ... b2

Examples:
  linsolve solve system.txt
  linsolve solve --pivot partial --verify a.txt b.txt
  linsolve det --lu system.txt
  linsolve inverse system.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file, .toml or .yaml (default: $"+config.EnvConfig+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newSolveCmd(a),
		newDetCmd(a),
		newInverseCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args and reports a failure on
// stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}

	return err
}

// setup loads the configuration, applies the persistent flag overrides and
// builds the run-scoped logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	a.runID = uuid.NewString()
	a.log, err = newLogger(cmd.ErrOrStderr(), a.cfg.Log)
	if err != nil {
		return err
	}
	a.log = a.log.With("run_id", a.runID)
	a.log.Debug("starting", "command", cmd.Name())

	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	lvl, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// errorKind names the class of a failure for the "error: <kind>: ..." line.
func errorKind(err error) string {
	switch {
	case errors.Is(err, linsys.ErrParse):
		return "parse"
	case errors.Is(err, matrix.ErrSingular):
		return "singular"
	case errors.Is(err, matrix.ErrNonSquare), errors.Is(err, matrix.ErrDimensionMismatch):
		return "dimension"
	case errors.Is(err, config.ErrInvalid):
		return "config"
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return "io"
	default:
		return "failed"
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s: %v\n", errorKind(err), err)
}
