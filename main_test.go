package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stdinFile returns a regular file holding content, so it is never a terminal.
func stdinFile(t *testing.T, content string) *os.File {
	t.Helper()
	name := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644), "failed to write file %q", name)
	f, err := os.Open(name)
	require.NoError(t, err, "failed to open file %q", name)
	t.Cleanup(func() { _ = f.Close() }) // Best effort.
	return f
}

type testCase struct {
	name     string
	args     []string
	stdin    string
	stdout   string
	exitCode int
}

func TestRun(t *testing.T) {
	tests := []testCase{
		{name: "single expression", args: []string{"2+3×4"}, stdout: "14\n"},
		{name: "many expressions", args: []string{"(2+3)×4", "8÷2÷2", "5÷2"}, stdout: "20\n2\n2.5\n"},
		{name: "division by zero", args: []string{"5÷0"}, stdout: "Error\n", exitCode: 1},
		{name: "partial failure", args: []string{"1+1", "(1+2"}, stdout: "2\nError\n", exitCode: 1},
		{name: "precision", args: []string{"-precision", "3", "2÷3"}, stdout: "0.667\n"},
		{name: "lines", stdin: "1+1\n\n  6÷3  \n5÷2\n", stdout: "2\n2\n2.5\n"},
		{name: "lines with error", stdin: "1+\n2×2\n", stdout: "Error\n4\n", exitCode: 1},
		{name: "empty stdin", stdin: "", stdout: ""},
		{name: "bad flag", args: []string{"-nope"}, exitCode: 2},
		{name: "help", args: []string{"-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			exitCode, err := run(tt.args, stdinFile(t, tt.stdin), &stdout, &stderr)
			require.NoError(t, err)
			assert.Equal(t, tt.exitCode, exitCode, "stderr: %s", stderr.String())
			assert.Equal(t, tt.stdout, stdout.String())
		})
	}
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode, err := run([]string{"-v", "1÷0"}, stdinFile(t, ""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error\n", stdout.String())
	assert.Contains(t, stderr.String(), "DivisionByZero")
}

func TestRunDumpAST(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode, err := run([]string{"-ast", "1+2"}, stdinFile(t, ""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "3\n", stdout.String())
	assert.Contains(t, stderr.String(), "ast.BinaryExpr")
}
