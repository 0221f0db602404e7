package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesMissingAncestors(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "nested", "items.txt")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Join(tmp, "data", "nested"))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")
}

func TestEnsureParentDir_NoParent(t *testing.T) {
	require.NoError(t, EnsureParentDir("items.txt"))
}

func TestEnsureParentDir_ExistingDirIsFine(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "items.txt")
	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir(path))
}
