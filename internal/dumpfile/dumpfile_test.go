package dumpfile

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveEmptyMeansStdout(t *testing.T) {
	require.Equal(t, "", Resolve(""))
}

func TestResolvePlainFilePassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	require.Equal(t, path, Resolve(path))
}

func TestResolveDirectoryGetsTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	resolved := Resolve(dir)
	require.True(t, filepath.Dir(resolved) == dir)
	require.Regexp(t, regexp.MustCompile(`^\d{8}_\d{6}_hid\.txt$`), filepath.Base(resolved))
}
