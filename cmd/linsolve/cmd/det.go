// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/linsys"
)

func newDetCmd(a *app) *cobra.Command {
	var useLU bool
	c := &cobra.Command{
		Use:   "det FILE",
		Short: "Print the determinant of the coefficient matrix",
		Long: `Reads the system in FILE and prints the determinant of its coefficient
matrix A. The right-hand side column is ignored.

By default the determinant is the diagonal product of the upper triangular
form. --lu uses the Doolittle factorization instead and falls back to the
triangular form when LU meets a zero pivot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := linsys.ReadFile(args[0])
			if err != nil {
				return err
			}
			var det float64
			if useLU {
				det, err = sys.A.DeterminantLU()
			} else {
				det, err = sys.A.Determinant()
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.log.Debug("determinant", "file", args[0], "lu", useLU)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "det = %s\n",
				strconv.FormatFloat(det, 'g', a.cfg.Output.Precision, 64))

			return err
		},
	}
	c.Flags().BoolVar(&useLU, "lu", false, "compute via LU factorization")

	return c
}
