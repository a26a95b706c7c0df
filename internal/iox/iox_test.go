package iox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicCreatesFileWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("hello"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestWriteFileAtomicPreservesExistingMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFileAtomicLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, WriteFileAtomic(path, []byte("x"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.txt", entries[0].Name())
}

func TestRaceDetectedFalseWhenEitherInfoNil(t *testing.T) {
	assert.False(t, RaceDetected(nil, nil))
}

func TestRaceDetectedTrueOnSizeChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))
	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("ab"), 0o644))
	after, err := os.Stat(path)
	require.NoError(t, err)

	assert.True(t, RaceDetected(before, after))
}

func TestExpandGlobsPassesThroughStdinMarker(t *testing.T) {
	out, err := ExpandGlobs([]string{"-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-"}, out)
}

func TestExpandGlobsExpandsDoubleStarPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.go"), []byte("x"), 0o644))

	out, err := ExpandGlobs([]string{filepath.Join(dir, "**", "*.go")})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestExpandGlobsPassesThroughNonMatchingLiteral(t *testing.T) {
	out, err := ExpandGlobs([]string{"/nonexistent/path/file.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/nonexistent/path/file.go"}, out)
}
