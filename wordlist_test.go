package passcomp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadWordlistFileSortsStablyByLength(t *testing.T) {
	path := writeTempFile(t, "ccc\na\nbb\nzzz\nb\n")
	wl, err := LoadWordlistFile(path)
	require.NoError(t, err)
	require.Equal(t, 5, wl.Len())

	var lens []int
	for i := 0; i < wl.Len(); i++ {
		lens = append(lens, len(wl.At(i)))
	}
	for i := 1; i < len(lens); i++ {
		assert.LessOrEqual(t, lens[i-1], lens[i], "wordlist must be sorted by ascending length")
	}
	// Among the two length-1 entries, "a" appeared before "b" in the file.
	assert.Equal(t, "a", string(wl.At(0)))
	assert.Equal(t, "b", string(wl.At(1)))
}

func TestLoadWordlistFileSkipsEmptyLines(t *testing.T) {
	path := writeTempFile(t, "foo\n\nbar\n\n")
	wl, err := LoadWordlistFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Len())
}

func TestLoadWordlistFileAcceptsMissingTrailingNewline(t *testing.T) {
	path := writeTempFile(t, "foo\nbar")
	wl, err := LoadWordlistFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Len())
}

func TestLoadWordlistFilesConcatenatesInOrder(t *testing.T) {
	p1 := writeTempFile(t, "a\nbb\n")
	p2 := writeTempFile(t, "ccc\n")
	wl, err := LoadWordlistFiles(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, 3, wl.Len())
	assert.Equal(t, "a", string(wl.At(0)))
	assert.Equal(t, "bb", string(wl.At(1)))
	assert.Equal(t, "ccc", string(wl.At(2)))
}

func TestLoadWordlistFileMissingIsIOError(t *testing.T) {
	_, err := LoadWordlistFile("/does/not/exist/wordlist.txt")
	require.Error(t, err)
	assert.True(t, Is(err, KindIO))
}
