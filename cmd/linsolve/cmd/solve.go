// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/linsys"
)

const promptFilename = "Enter filename of matrix data: "

var errNoFile = errors.New("no input file given")

type solveFlags struct {
	pivot    string
	singular string
	verify   bool
	echo     bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	c := &cobra.Command{
		Use:   "solve [FILE...]",
		Short: "Solve A·x = b for every input file",
		Long: `Solves the system stored in each FILE and prints one "x<i> = value"
line per unknown. Several files are solved concurrently; results are printed
in argument order. Without FILE the file name is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, &f)
		},
	}
	c.Flags().StringVar(&f.pivot, "pivot", "", "pivoting: none or partial (overrides config)")
	c.Flags().StringVar(&f.singular, "singular", "", "zero pivot policy: error or propagate (overrides config)")
	c.Flags().BoolVar(&f.verify, "verify", false, "print the residual max|Ax-b| after each solution")
	c.Flags().BoolVar(&f.echo, "echo", false, "print the parsed system before its solution")

	return c
}

type solveResult struct {
	out bytes.Buffer
	err error
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f *solveFlags) error {
	if len(args) == 0 {
		name, err := promptForFile(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		args = []string{name}
	}

	cfg := *a.cfg
	if cmd.Flags().Changed("pivot") {
		cfg.Solver.Pivoting = f.pivot
	}
	if cmd.Flags().Changed("singular") {
		cfg.Solver.Singular = f.singular
	}
	if cmd.Flags().Changed("verify") {
		cfg.Output.Verify = f.verify
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	opts = append(opts, gauss.WithLogger(a.log))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]solveResult, len(args))

	// Files are independent: one failure must not cancel the others.
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].err = err
				return err
			}
			results[i].err = a.solveFile(&results[i].out, path, opts, cfg.Output.Verify, f.echo)
			return results[i].err
		})
	}
	if g.Wait() != nil {
		a.log.Debug("some inputs failed", "files", len(args))
	}

	out := cmd.OutOrStdout()
	var errs []error
	for i := range results {
		res := &results[i]
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		if len(args) > 1 {
			fmt.Fprintf(out, "# %s\n", args[i])
		}
		if _, err := out.Write(res.out.Bytes()); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}

// solveFile parses path, solves it and renders the result into w.
func (a *app) solveFile(w *bytes.Buffer, path string, opts []gauss.Option, verify, echo bool) error {
	sys, err := linsys.ReadFile(path)
	if err != nil {
		return err
	}
	if echo {
		if err = sys.Encode(w); err != nil {
			return err
		}
	}

	x, err := gauss.Solve(sys.A, sys.B, append(slices.Clip(opts), gauss.WithOutput(w))...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			a.log.Warn("solution has non-finite components", "file", path)
			break
		}
	}
	a.log.Debug("solved", "file", path, "unknowns", len(x))

	if verify {
		r, err := gauss.Residual(sys.A, x, sys.B)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(w, "residual = %s\n", strconv.FormatFloat(r, 'g', 3, 64))
	}

	return nil
}

// promptForFile prints the prompt and reads one file name from in.
func promptForFile(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptFilename)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errNoFile
	}

	return name, nil
}
