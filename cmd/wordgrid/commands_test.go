package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/wordgrid/gridfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateAndSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt.zst")

	out, err := execute(t, "generate", "--rows", "20", "--cols", "30", "--alphabet", "xyz", "--word", "needle", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 20x30 grid")
	assert.Contains(t, out, "(zstd)")
	assert.Contains(t, out, "planted 1/1 words")

	g, err := gridfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, g.Rows())

	out, err = execute(t, "solve", "--word", "needle", "--size", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+4)
	assert.Contains(t, lines[0], "grid 20x30")
	assert.Contains(t, lines[1], "SIZE")
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		assert.Equal(t, "needle", fields[1])
		assert.Equal(t, "1", fields[2])
	}
}

func TestSolveStrategyFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	_, err := execute(t, "generate", "--rows", "3", "--cols", "3", "--alphabet", "a", path)
	require.NoError(t, err)

	out, err := execute(t, "solve", "-w", "aa", "-w", "aaa", "--strategy", "hash,linear", "--word-len", "2", path)
	require.NoError(t, err)

	assert.Contains(t, out, "hash")
	assert.Contains(t, out, "linear")
	assert.NotContains(t, out, "trie")
	// Runs of two: 6 per row and column family, 4 per diagonal family.
	assert.Regexp(t, `hash\s+aa\s+20`, out)
	assert.Regexp(t, `linear\s+aaa\s+8`, out)
}

func TestSolveErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "solve", "--word", "x", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)

	_, err = execute(t, "solve", filepath.Join(dir, "missing.txt"))
	require.ErrorContains(t, err, "word")

	path := filepath.Join(dir, "grid.txt")
	_, err = execute(t, "generate", "--rows", "2", "--cols", "2", path)
	require.NoError(t, err)

	_, err = execute(t, "solve", "-w", "ab", "--strategy", "bogus", path)
	require.ErrorContains(t, err, "unknown strategy")

	_, err = execute(t, "solve", "-w", "ab", "--word-len", "0", path)
	require.ErrorContains(t, err, "hash.word_len")
}

func TestGenerateErrors(t *testing.T) {
	_, err := execute(t, "generate", "--rows", "0", filepath.Join(t.TempDir(), "g.txt"))
	require.Error(t, err)

	_, err = execute(t, "generate")
	require.Error(t, err)
}
