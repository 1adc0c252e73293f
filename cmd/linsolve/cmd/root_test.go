// SPDX-License-Identifier: MIT
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
)

const (
	sysIdentity = "3 4\n1 0 0 4\n0 1 0 5\n0 0 1 6\n"
	sysSmall    = "2 3\n2 1 4\n1 3 7\n" // x = (1, 2)
	sysSingular = "2 3\n1 2 3\n2 4 6\n"
	sysSwap     = "2 3\n0 1 1\n1 0 2\n" // needs a row exchange
	sysInvert   = "2 3\n2 1 0\n7 4 0\n" // det = 1
)

// execute runs one command line and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeSystem(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolve_SingleFile(t *testing.T) {
	out, _, err := execute(t, "", "solve", writeSystem(t, "id.txt", sysIdentity))
	require.NoError(t, err)
	assert.Equal(t, "x1 = 4\nx2 = 5\nx3 = 6\n", out)
}

func TestSolve_Verify(t *testing.T) {
	out, _, err := execute(t, "", "solve", "--verify", writeSystem(t, "s.txt", sysSmall))
	require.NoError(t, err)
	assert.Equal(t, "x1 = 1\nx2 = 2\nresidual = 0\n", out)
}

func TestSolve_Echo(t *testing.T) {
	out, _, err := execute(t, "", "solve", "--echo", writeSystem(t, "s.txt", sysSmall))
	require.NoError(t, err)
	assert.Equal(t, sysSmall+"x1 = 1\nx2 = 2\n", out)
}

func TestSolve_MultipleFilesInArgumentOrder(t *testing.T) {
	a := writeSystem(t, "a.txt", sysIdentity)
	b := writeSystem(t, "b.txt", sysSmall)

	out, _, err := execute(t, "", "solve", b, a)
	require.NoError(t, err)
	want := fmt.Sprintf("# %s\nx1 = 1\nx2 = 2\n# %s\nx1 = 4\nx2 = 5\nx3 = 6\n", b, a)
	assert.Equal(t, want, out)
}

func TestSolve_OneBadFileDoesNotHideTheOthers(t *testing.T) {
	good := writeSystem(t, "good.txt", sysSmall)
	bad := writeSystem(t, "bad.txt", "2 3\n1 2\n")

	out, _, err := execute(t, "", "solve", bad, good)
	require.Error(t, err)
	require.ErrorIs(t, err, linsys.ErrParse)
	assert.Equal(t, "parse", errorKind(err))
	assert.Contains(t, err.Error(), "bad.txt")
	assert.Equal(t, fmt.Sprintf("# %s\nx1 = 1\nx2 = 2\n", good), out)
}

func TestSolve_SingularPolicies(t *testing.T) {
	path := writeSystem(t, "sing.txt", sysSingular)

	out, _, err := execute(t, "", "solve", path)
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, "singular", errorKind(err))
	assert.Empty(t, out)

	out, errOut, err := execute(t, "", "solve", "--singular", "propagate", path)
	require.NoError(t, err)
	assert.Equal(t, "x1 = NaN\nx2 = NaN\n", out)
	assert.Contains(t, errOut, "non-finite")
}

func TestSolve_Pivoting(t *testing.T) {
	path := writeSystem(t, "swap.txt", sysSwap)

	_, _, err := execute(t, "", "solve", path)
	require.ErrorIs(t, err, matrix.ErrSingular)

	out, _, err := execute(t, "", "solve", "--pivot", "partial", path)
	require.NoError(t, err)
	assert.Equal(t, "x1 = 2\nx2 = 1\n", out)

	_, _, err = execute(t, "", "solve", "--pivot", "rook", path)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, "config", errorKind(err))
}

func TestSolve_NonSquare(t *testing.T) {
	_, _, err := execute(t, "", "solve", writeSystem(t, "rect.txt", "3 3 1 2 3 4 5 6 7 8 9"))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.Equal(t, "dimension", errorKind(err))
}

func TestSolve_Prompt(t *testing.T) {
	path := writeSystem(t, "id.txt", sysIdentity)

	out, _, err := execute(t, path+"\n", "solve")
	require.NoError(t, err)
	assert.Equal(t, promptFilename+"x1 = 4\nx2 = 5\nx3 = 6\n", out)

	_, _, err = execute(t, "\n", "solve")
	require.ErrorIs(t, err, errNoFile)

	_, _, err = execute(t, filepath.Join(t.TempDir(), "nope.txt"), "solve")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "io", errorKind(err))
}

func TestSolve_ConfigFile(t *testing.T) {
	cfg := writeSystem(t, "linsolve.toml", `
[solver]
pivoting = "partial"

[output]
precision = 3
verify = true
`)
	out, _, err := execute(t, "", "--config", cfg, "solve", writeSystem(t, "swap.txt", sysSwap))
	require.NoError(t, err)
	assert.Equal(t, "x1 = 2\nx2 = 1\nresidual = 0\n", out)

	// command line flags win over the file
	out, _, err = execute(t, "", "--config", cfg, "solve", "--verify=false", writeSystem(t, "s.txt", sysSmall))
	require.NoError(t, err)
	assert.Equal(t, "x1 = 1\nx2 = 2\n", out)
}

func TestSolve_ConfigFromEnv(t *testing.T) {
	cfg := writeSystem(t, "env.yaml", "output:\n  verify: true\n")
	path := writeSystem(t, "s.txt", sysSmall)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"solve", path})
	t.Setenv(config.EnvConfig, cfg)
	require.NoError(t, root.Execute())
	assert.Equal(t, "x1 = 1\nx2 = 2\nresidual = 0\n", out.String())
}

func TestLogging_JSONCarriesRunID(t *testing.T) {
	_, errOut, err := execute(t, "", "--log-level", "debug", "--log-format", "json",
		"solve", writeSystem(t, "s.txt", sysSmall))
	require.NoError(t, err)
	assert.Contains(t, errOut, `"run_id":"`)
	assert.Contains(t, errOut, `"msg":"solved"`)

	_, errOut, err = execute(t, "", "solve", writeSystem(t, "s.txt", sysSmall))
	require.NoError(t, err)
	assert.Empty(t, errOut, "info level hides debug traces")
}

func TestLogging_BadFlag(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "chatty", "version")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestDet(t *testing.T) {
	path := writeSystem(t, "s.txt", "2 3\n2 1 11\n5 7 13\n")

	out, _, err := execute(t, "", "det", path)
	require.NoError(t, err)
	assert.Equal(t, "det = 9\n", out)

	out, _, err = execute(t, "", "det", "--lu", path)
	require.NoError(t, err)
	assert.Equal(t, "det = 9\n", out)

	out, _, err = execute(t, "", "det", writeSystem(t, "sing.txt", sysSingular))
	require.NoError(t, err)
	assert.Equal(t, "det = 0\n", out)

	_, _, err = execute(t, "", "det")
	require.Error(t, err)
}

func TestInverse(t *testing.T) {
	out, _, err := execute(t, "", "inverse", writeSystem(t, "inv.txt", sysInvert))
	require.NoError(t, err)
	assert.Equal(t, "Row 1, Column 1 = 4\nRow 1, Column 2 = -1\nRow 2, Column 1 = -7\nRow 2, Column 2 = 2\n", out)

	_, _, err = execute(t, "", "inverse", writeSystem(t, "sing.txt", sysSingular))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "linsolve v"+Version+"\n"))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, fmt.Errorf("a.txt: %w", matrix.ErrSingular))
	assert.Equal(t, "error: singular: a.txt: "+matrix.ErrSingular.Error()+"\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "error: failed: boom\n", buf.String())
}
