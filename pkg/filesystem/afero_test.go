package filesystem

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFSStreams(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/d", 0755))

	w, err := fsys.Create("/d/f", 0600)
	require.NoError(t, err)
	_, err = io.WriteString(w, "payload")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fsys.Open("/d/f")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "payload", string(data))

	entries, err := fsys.ReadDir("/d")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f", entries[0].Name())
}

func TestAferoFSSymlinkFallback(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.Symlink("/target", "/link"))
	dest, err := fsys.Readlink("/link")
	require.NoError(t, err)
	assert.Equal(t, "/target", dest)
}

func TestAferoFSReadFileOnDirectory(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/d", 0755))

	_, err := fsys.ReadFile("/d")
	assert.Error(t, err)
}
