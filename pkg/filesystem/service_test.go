// pkg/filesystem/service_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir), afero MemMapFs
// PURPOSE: Test describe, path resolution, copy, move and link behavior

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/filesystem"
	"github.com/arthur-debert/fuga/pkg/testutil"
	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(root string, opts ...filesystem.Option) *filesystem.Service {
	opts = append([]filesystem.Option{
		filesystem.WithGetwd(func() (string, error) { return root, nil }),
	}, opts...)
	return filesystem.NewService(filesystem.NewOS(), opts...)
}

func TestDescribe(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		"a.txt": "hello",
		"dir/":  "",
	})
	svc := newService(root)

	tests := []struct {
		name string
		path string
		want types.FileInfo
	}{
		{"file", filepath.Join(root, "a.txt"), types.FileInfo{Exists: true, IsFile: true, Name: "a.txt"}},
		{"dir", filepath.Join(root, "dir"), types.FileInfo{Exists: true, IsDir: true, Name: "dir"}},
		{"missing", filepath.Join(root, "nope"), types.FileInfo{}},
		{"root has no name", "/", types.FileInfo{Exists: true, IsDir: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Describe(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAbsolute(t *testing.T) {
	svc := newService("/work/dir")

	abs, err := svc.Absolute("/already/abs/../x")
	require.NoError(t, err)
	assert.Equal(t, "/already/x", abs)

	abs, err = svc.Absolute("/x/d/")
	require.NoError(t, err)
	assert.Equal(t, "/x/d", abs, "trailing separators are dropped")

	abs, err = svc.Absolute("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/work/dir/notes.txt", abs)

	failing := filesystem.NewService(filesystem.NewOS(), filesystem.WithGetwd(func() (string, error) {
		return "", os.ErrPermission
	}))
	_, err = failing.Absolute("x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrOperationFailed))
}

func TestKind(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{"f": "x", "d/": ""})
	svc := newService(root)

	assert.Equal(t, types.TargetFile, svc.Kind(filepath.Join(root, "f")))
	assert.Equal(t, types.TargetDir, svc.Kind(filepath.Join(root, "d")))
	assert.Equal(t, types.TargetNone, svc.Kind(filepath.Join(root, "missing")))
}

func TestCopy(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"a.txt": "alpha"})
		svc := newService(root)

		require.NoError(t, svc.Copy("a.txt", "b.txt"))

		assert.Equal(t, "alpha", testutil.ReadFile(t, filepath.Join(root, "b.txt")))
		assert.Equal(t, "alpha", testutil.ReadFile(t, filepath.Join(root, "a.txt")))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"a.txt": "new", "b.txt": "old content"})
		svc := newService(root)

		require.NoError(t, svc.Copy("a.txt", "b.txt"))
		assert.Equal(t, "new", testutil.ReadFile(t, filepath.Join(root, "b.txt")))
	})

	t.Run("directory tree", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{
			"src/one.txt":        "1",
			"src/nested/two.txt": "22",
			"src/empty/":         "",
		})
		svc := newService(root)

		require.NoError(t, svc.Copy(filepath.Join(root, "src"), filepath.Join(root, "dst")))

		assert.Equal(t, "1", testutil.ReadFile(t, filepath.Join(root, "dst", "one.txt")))
		assert.Equal(t, "22", testutil.ReadFile(t, filepath.Join(root, "dst", "nested", "two.txt")))
		assert.DirExists(t, filepath.Join(root, "dst", "empty"))
		assert.DirExists(t, filepath.Join(root, "src"))
	})

	t.Run("same path", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"source.txt": "x"})
		svc := newService(root)

		err := svc.Copy(filepath.Join(root, "source.txt"), "source.txt")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePath))
		assert.Contains(t, err.Error(), "Source and destination are the same")
	})

	t.Run("directory into itself", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"d/keep.txt": "precious"})
		svc := newService(root)

		err := svc.Copy("d", filepath.Join("d", "sub", "d"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileSystem))
		assert.Contains(t, err.Error(), "cannot copy "+filepath.Join(root, "d")+" into itself")
		assert.NoDirExists(t, filepath.Join(root, "d", "sub"))
	})

	t.Run("trailing slash is the same path", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"d/keep.txt": "precious"})
		svc := newService(root)

		err := svc.Copy(filepath.Join(root, "d")+"/", "d")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePath))
		assert.Equal(t, "precious", testutil.ReadFile(t, filepath.Join(root, "d", "keep.txt")))
	})

	t.Run("sibling with shared prefix is allowed", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"d/keep.txt": "x"})
		svc := newService(root)

		require.NoError(t, svc.Copy("d", "d2"))
		assert.Equal(t, "x", testutil.ReadFile(t, filepath.Join(root, "d2", "keep.txt")))
	})

	t.Run("missing source", func(t *testing.T) {
		root := testutil.TempTree(t, nil)
		svc := newService(root)

		err := svc.Copy("ghost", "other")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
		assert.Equal(t, "File not found: "+filepath.Join(root, "ghost"), err.Error())
	})

	t.Run("destination parent missing", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"a.txt": "x"})
		svc := newService(root)

		err := svc.Copy("a.txt", filepath.Join("no", "such", "dir", "a.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileSystem))
		assert.Contains(t, err.Error(), "Copy failed")
	})
}

func TestCopyReportsProgress(t *testing.T) {
	fsys := testutil.MemFS(t, map[string]string{
		"/src/a": "12345",
		"/src/b": "678",
	})
	sink := &testutil.RecordingSink{}
	svc := filesystem.NewService(fsys,
		filesystem.WithGetwd(func() (string, error) { return "/", nil }),
		filesystem.WithProgress(func() types.ProgressSink { return sink }),
	)

	require.NoError(t, svc.Copy("/src", "/out"))

	require.NotEmpty(t, sink.Reports)
	last := sink.Last()
	assert.Equal(t, int64(8), last.Copied)
	assert.Equal(t, int64(8), last.Total)
	assert.Equal(t, "/out", last.Label)
	assert.Equal(t, 1, sink.Closed)

	data, err := fsys.ReadFile("/out/b")
	require.NoError(t, err)
	assert.Equal(t, "678", string(data))
}

func TestMove(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"a.txt": "alpha", "out/": ""})
		svc := newService(root)

		require.NoError(t, svc.Move("a.txt", filepath.Join("out", "a.txt")))

		assert.NoFileExists(t, filepath.Join(root, "a.txt"))
		assert.Equal(t, "alpha", testutil.ReadFile(t, filepath.Join(root, "out", "a.txt")))
	})

	t.Run("directory", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"src/x": "x"})
		svc := newService(root)

		require.NoError(t, svc.Move("src", "moved"))

		assert.NoDirExists(t, filepath.Join(root, "src"))
		assert.Equal(t, "x", testutil.ReadFile(t, filepath.Join(root, "moved", "x")))
	})

	t.Run("same path", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"a.txt": "x"})
		svc := newService(root)

		err := svc.Move("a.txt", filepath.Join(root, "a.txt"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePath))
		assert.FileExists(t, filepath.Join(root, "a.txt"))
	})

	t.Run("directory into itself", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"d/keep.txt": "precious"})

		err := newService(root).Move("d", filepath.Join("d", "d"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileSystem))
		assert.Contains(t, err.Error(), "cannot move")
		assert.NoDirExists(t, filepath.Join(root, "d", "d"))
		assert.Equal(t, "precious", testutil.ReadFile(t, filepath.Join(root, "d", "keep.txt")))
	})

	t.Run("missing source", func(t *testing.T) {
		root := testutil.TempTree(t, nil)
		err := newService(root).Move("ghost", "x")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})
}

func TestLink(t *testing.T) {
	t.Run("creates absolute symlink", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"target.txt": "data"})
		svc := newService(root)

		require.NoError(t, svc.Link("target.txt", "alias.txt"))

		dest, err := os.Readlink(filepath.Join(root, "alias.txt"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "target.txt"), dest)
		assert.Equal(t, types.TargetFile, svc.Kind(filepath.Join(root, "alias.txt")))
	})

	t.Run("existing destination fails", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"a": "1", "b": "2"})
		err := newService(root).Link("a", "b")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileSystem))
		assert.Contains(t, err.Error(), "Link failed")
	})

	t.Run("same path", func(t *testing.T) {
		root := testutil.TempTree(t, map[string]string{"a": "1"})
		err := newService(root).Link("a", "a")
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePath))
	})

	t.Run("missing source", func(t *testing.T) {
		root := testutil.TempTree(t, nil)
		err := newService(root).Link("ghost", "x")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})
}

func TestBaseName(t *testing.T) {
	tests := map[string]string{
		"/a/b/c.txt": "c.txt",
		"/a/b/":      "b",
		"rel":        "rel",
		"/":          "",
		".":          "",
		"..":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, filesystem.BaseName(in), in)
	}
}
