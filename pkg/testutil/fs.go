package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/fuga/pkg/filesystem"
	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemFS returns an afero-backed types.FS populated with files. Keys ending
// in "/" create directories.
func MemFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	writeTree(t, fsys, "", files)
	return fsys
}

// TempTree creates files below a fresh temp dir and returns its path. The
// returned path has symlinks resolved so it compares equal to getwd results.
func TempTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeTree(t, filesystem.NewOS(), root, files)
	return root
}

func writeTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fsys.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
}

// ReadFile reads path from the OS, failing the test on error
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
