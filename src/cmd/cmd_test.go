package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopsort/src/seqio"
)

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"loopsort"}, args...))
	return out.String(), errOut.String(), err
}

func TestSortCommands(t *testing.T) {
	tests := []struct {
		command string
		stdin   string
		stdout  string
	}{
		{"insertion", "6\n3 5 4 6 2 1\n", "1 2 3 4 5 6\n"},
		{"rev-insertion", "6 3 5 4 6 2 1", "1 2 3 4 5 6\n"},
		{"linear", "3\n3 1 2\n", "1 2 3\n"},
		{"selection", "3 5 5 5", "5 5 5\n"},
		{"insertion", "1 42", "42\n"},
		{"linear", "4 -1 0 -7 3 extra", "-7 -1 0 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out, _, err := runApp(t, tt.stdin, tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, out)
		})
	}
}

func TestMalformedInput(t *testing.T) {
	for _, stdin := range []string{"", "x", "0", "-1", "3 1 2", "2 1 b"} {
		out, _, err := runApp(t, stdin, "insertion")
		assert.Error(t, err, "stdin %q", stdin)
		assert.Empty(t, out)
	}
}

func TestInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.txt")
	require.NoError(t, os.WriteFile(path, []byte("4\n9 8 7 6\n"), 0644))

	out, _, err := runApp(t, "", "rev-insertion", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "6 7 8 9\n", out)

	_, _, err = runApp(t, "", "rev-insertion", "-i", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := runApp(t, "1 1", "linear", "extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linear takes at most 0 arguments, got 1")
}

func TestStats(t *testing.T) {
	out, errOut, err := runApp(t, "4 4 3 2 1", "insertion", "--stats")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4\n", out)
	assert.Contains(t, errOut, "insertion: passes=3 comparisons=6 shifts=6 swaps=0")
}

func TestSteps(t *testing.T) {
	out, errOut, err := runApp(t, "3 3 1 2", "linear", "--steps")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n", out)

	assert.True(t, strings.HasPrefix(errOut, "linear: 3 1 2\n"), errOut)
	assert.Contains(t, errOut, "├── i=0 a[i]=3 | 3 1 2\n")
	assert.Contains(t, errOut, "│   └── swap a[0], a[1] | 1 3 2\n")
	assert.Contains(t, errOut, "└── i=1 a[i]=3 | 1 3 2\n")
	assert.Contains(t, errOut, "    └── swap a[1], a[2] | 1 2 3\n")
}

func TestCompare(t *testing.T) {
	out, _, err := runApp(t, "5 9 7 5 3 1", "compare")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for i, name := range []string{"insertion", "rev-insertion", "linear"} {
		assert.True(t, strings.HasPrefix(lines[i], name), lines[i])
		assert.Contains(t, lines[i], seqio.Format([]int{1, 3, 5, 7, 9}))
	}
}
