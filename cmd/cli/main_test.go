package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsNormalizedTable(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--", "-VRI", "--noVRI", "--bar=1", "-noqux"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "-VRI\n-bar=1\n", out.String())
}

func TestRun_Eval(t *testing.T) {
	t.Parallel()

	args := []string{`-eval=bool("VRI", true)`, `-eval=upper(str("mode", "quiet"))`, "--", "-noVRI"}
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, args)

	require.NoError(t, err)
	require.Equal(t, "false\nQUIET\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag", "--"}
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_EvalError(t *testing.T) {
	t.Parallel()

	args := []string{"-eval=arg.", "--", "-VRI"}

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse expression")
}
