package seqio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loopsort/src/sort"
)

func TestRead(t *testing.T) {
	a, err := Read(strings.NewReader("6\n3 5 4\n6 2 1\n"))
	require.NoError(t, err)
	assert.Equal(t, sort.IntArray{3, 5, 4, 6, 2, 1}, a)
}

func TestReadIgnoresTrailingTokens(t *testing.T) {
	a, err := Read(strings.NewReader("2 -1 4 99 junk"))
	require.NoError(t, err)
	assert.Equal(t, sort.IntArray{-1, 4}, a)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", ErrBadCount},
		{"three 1 2 3", ErrBadCount},
		{"0", ErrNonPositive},
		{"-2 1 2", ErrNonPositive},
		{"3 1 x 3", ErrBadValue},
		{"3 1 2", ErrShortInput},
		{"4\n", ErrShortInput},
	}

	for _, tt := range tests {
		_, err := Read(strings.NewReader(tt.input))
		assert.ErrorIs(t, err, tt.err, "input %q", tt.input)
	}
}

func TestPrompt(t *testing.T) {
	var prompt bytes.Buffer
	a, err := NewReader(strings.NewReader("1 8")).WithPrompt(&prompt).ReadSequence()
	require.NoError(t, err)
	assert.Equal(t, sort.IntArray{8}, a)
	assert.Equal(t, "How many numbers to sort? What numbers? ", prompt.String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "-3 0 12", Format(sort.IntArray{-3, 0, 12}))
	assert.Equal(t, "7", Format(sort.IntArray{7}))
	assert.Empty(t, Format(sort.IntArray{}))
}

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, sort.IntArray{1, 2, 3}))
	assert.Equal(t, "1 2 3\n", out.String())

	out.Reset()
	require.NoError(t, Write(&out, sort.IntArray{}))
	assert.Equal(t, "\n", out.String())
}
