package rom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644))
}

func TestLoadSetSucceedsWithCorrectSizes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "basic.rom", BasicSize)
	writeFile(t, dir, "kernal.rom", KernalSize)
	writeFile(t, dir, "char.rom", CharSize)

	set, err := LoadSet(dir)
	require.NoError(t, err)
	assert.Len(t, set.Basic, BasicSize)
	assert.Len(t, set.Kernal, KernalSize)
	assert.Len(t, set.Char, CharSize)
}

func TestLoadSetRejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "basic.rom", BasicSize-1)
	writeFile(t, dir, "kernal.rom", KernalSize)
	writeFile(t, dir, "char.rom", CharSize)

	_, err := LoadSet(dir)
	require.Error(t, err)
}

func TestLoadSetMissingFileWrapsError(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadSet(dir)
	require.Error(t, err)
}
