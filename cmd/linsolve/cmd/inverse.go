// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/linsys"
)

func newInverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse FILE",
		Short: "Print the inverse of the coefficient matrix",
		Long: `Reads the system in FILE and prints the inverse of its coefficient matrix
as "Row r, Column c = value" lines. The inverse is the adjoint scaled by
1/det, so it is meant for small matrices.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := linsys.ReadFile(args[0])
			if err != nil {
				return err
			}
			inv, err := sys.A.Inverse()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.log.Debug("inverted", "file", args[0], "n", inv.Rows())
			_, err = inv.WriteTo(cmd.OutOrStdout())

			return err
		},
	}
}
