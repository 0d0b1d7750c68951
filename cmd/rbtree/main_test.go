package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithLog(t, args...)
	return out, err
}

func runWithLog(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	err := app.Run(append([]string{"rbtree"}, args...))
	return out.String(), errOut.String(), err
}

func TestInsertCommand(t *testing.T) {
	out, err := run(t, "insert", "10", "5", "15", "3", "7", "10")
	require.NoError(t, err)

	want := strings.Join([]string{
		"└─10 (Black)",
		"  ├─5 (Black)",
		"  | ├─3 (Red)",
		"  | └─7 (Red)",
		"  └─15 (Black)",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestInsertCommandNoColor(t *testing.T) {
	out, err := run(t, "--no-color", "insert", "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "└─2\n  ├─1\n  └─3\n", out)
}

func TestInsertCommandErrors(t *testing.T) {
	_, err := run(t, "insert")
	assert.Error(t, err)

	_, err = run(t, "insert", "1", "two")
	assert.ErrorContains(t, err, `invalid key "two"`)
}

func TestRandomCommand(t *testing.T) {
	out, err := run(t, "--verbose", "random", "--count", "500", "--seed", "7")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "random", "-c", "20", "-p")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 20)

	_, err = run(t, "random", "-c", "-1")
	assert.Error(t, err)

	_, err = run(t, "random", "-c", strconv.Itoa(maxRandomCount+1))
	assert.ErrorContains(t, err, "count must be between 0 and")
}

func TestVersionAndVerboseFlags(t *testing.T) {
	out, err := run(t, "-v")
	require.NoError(t, err)
	assert.Equal(t, "rbtree version "+version+"\n", out)

	out, logs, err := runWithLog(t, "--verbose", "insert", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "└─1 (Black)\n", out)
	assert.Contains(t, logs, "duplicate key ignored: 1")
	assert.Contains(t, logs, "DEBUG")
}

func TestLogsGoToErrWriter(t *testing.T) {
	out, logs, err := runWithLog(t, "random", "-c", "10")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, `"msg":"random tree built"`)
	assert.Contains(t, logs, `"size":10`)
	assert.NotContains(t, logs, "DEBUG")
}
