// SPDX-License-Identifier: MIT

// Command linsolve solves linear systems read from numeric data files.
package main

import (
	"os"

	"github.com/katalvlaran/linsolve/cmd/linsolve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
