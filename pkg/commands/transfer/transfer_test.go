// pkg/commands/transfer/transfer_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir), MockConfigRepository
// PURPOSE: Test copy, move and link over the mark list

package transfer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fuga/pkg/commands/transfer"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/filesystem"
	"github.com/arthur-debert/fuga/pkg/testutil"
	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	root string
	repo *testutil.MockConfigRepository
	out  *bytes.Buffer
}

func newFixture(t *testing.T, files map[string]string, marks ...string) *fixture {
	t.Helper()
	root := testutil.TempTree(t, files)
	abs := make([]string, len(marks))
	for i, m := range marks {
		abs[i] = filepath.Join(root, m)
	}
	return &fixture{
		root: root,
		repo: testutil.NewMockConfigRepository(abs...),
		out:  &bytes.Buffer{},
	}
}

func (f *fixture) opts(cwd, dest string) transfer.Options {
	fsys := filesystem.NewService(filesystem.NewOS(), filesystem.WithGetwd(func() (string, error) {
		return filepath.Join(f.root, cwd), nil
	}))
	return transfer.Options{
		Services: types.Services{
			Config: f.repo,
			FS:     fsys,
			UI:     testutil.PlainUI{},
			Out:    f.out,
		},
		Destination: dest,
	}
}

func (f *fixture) path(rel string) string {
	return filepath.Join(f.root, rel)
}

func TestCopyIntoDirectory(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a.txt": "alpha",
		"b.txt": "beta",
		"out/":  "",
	}, "a.txt", "b.txt")
	before := f.repo.Marks()

	err := transfer.Copy(f.opts("", f.path("out")))
	require.NoError(t, err)

	assert.Equal(t, "alpha", testutil.ReadFile(t, f.path("out/a.txt")))
	assert.Equal(t, "beta", testutil.ReadFile(t, f.path("out/b.txt")))
	assert.FileExists(t, f.path("a.txt"))
	assert.FileExists(t, f.path("b.txt"))
	assert.Equal(t, before, f.repo.Marks(), "copy keeps the mark list")

	out := f.out.String()
	assert.Contains(t, out, "[i]  : Copying [FILE] "+f.path("a.txt")+" -> "+f.path("out/a.txt"))
	assert.Contains(t, out, "[ok] : [FILE] "+f.path("out/b.txt")+" copied.")
}

func TestCopyWithoutDestinationUsesWorkingDirectory(t *testing.T) {
	f := newFixture(t, map[string]string{
		"source/note.txt": "hello",
		"dest/":           "",
	}, "source/note.txt")

	require.NoError(t, transfer.Copy(f.opts("dest", "")))

	assert.Equal(t, "hello", testutil.ReadFile(t, f.path("dest/note.txt")))
	assert.Contains(t, f.out.String(), "-> note.txt")
}

func TestCopyDirectory(t *testing.T) {
	f := newFixture(t, map[string]string{
		"tree/one.txt":     "1",
		"tree/sub/two.txt": "2",
		"out/":             "",
	}, "tree")

	require.NoError(t, transfer.Copy(f.opts("", f.path("out"))))

	assert.Equal(t, "2", testutil.ReadFile(t, f.path("out/tree/sub/two.txt")))
	assert.Contains(t, f.out.String(), "[ok] : [DIR] "+f.path("out/tree")+" copied.")
}

func TestCopySamePath(t *testing.T) {
	f := newFixture(t, map[string]string{"source.txt": "x"}, "source.txt")

	err := transfer.Copy(f.opts("", ""))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePath))
	assert.Contains(t, err.Error(), "Source and destination are the same")
}

func TestCopySamePathWithTrailingSlash(t *testing.T) {
	f := newFixture(t, map[string]string{"d/keep.txt": "precious"})
	f.repo = testutil.NewMockConfigRepository(f.path("d") + string(filepath.Separator))

	err := transfer.Copy(f.opts("", ""))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicatePath))
	assert.Equal(t, "precious", testutil.ReadFile(t, f.path("d/keep.txt")))
}

func TestTransferDirectoryIntoItself(t *testing.T) {
	run := map[string]func(transfer.Options) error{
		"copy": transfer.Copy,
		"move": transfer.Move,
	}
	for name, fn := range run {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, map[string]string{"d/keep.txt": "precious"}, "d")

			err := fn(f.opts("", f.path("d")))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrFileSystem))
			assert.Contains(t, err.Error(), "into itself")
			assert.NoDirExists(t, f.path("d/d"))
			assert.Equal(t, "precious", testutil.ReadFile(t, f.path("d/keep.txt")))
			assert.Len(t, f.repo.Marks(), 1)
		})
	}
}

func TestMultipleTargetsToSingleFile(t *testing.T) {
	tests := []struct {
		name string
		run  func(transfer.Options) error
		verb string
	}{
		{"copy", transfer.Copy, "copy"},
		{"move", transfer.Move, "move"},
		{"link", transfer.Link, "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, map[string]string{
				"a.txt":      "alpha",
				"b.txt":      "beta",
				"single.txt": "keep",
			}, "a.txt", "b.txt")

			err := tt.run(f.opts("", f.path("single.txt")))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrOperationFailed))
			assert.Contains(t, err.Error(), "Cannot "+tt.verb+" multiple items to a single file path.")

			assert.Equal(t, "keep", testutil.ReadFile(t, f.path("single.txt")))
			assert.FileExists(t, f.path("a.txt"))
			assert.FileExists(t, f.path("b.txt"))
			assert.Empty(t, f.out.String(), "nothing runs before the guard")
			assert.Len(t, f.repo.Marks(), 2)
		})
	}
}

func TestMultipleTargetsToMissingPath(t *testing.T) {
	f := newFixture(t, map[string]string{"a.txt": "a", "b.txt": "b"}, "a.txt", "b.txt")

	err := transfer.Copy(f.opts("", f.path("nowhere")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single file path")
	assert.NoFileExists(t, f.path("nowhere"))
}

func TestSingleTargetToFilePath(t *testing.T) {
	f := newFixture(t, map[string]string{"a.txt": "alpha"}, "a.txt")

	require.NoError(t, transfer.Copy(f.opts("", f.path("renamed.txt"))))
	assert.Equal(t, "alpha", testutil.ReadFile(t, f.path("renamed.txt")))
}

func TestMoveClearsMarks(t *testing.T) {
	f := newFixture(t, map[string]string{
		"move_me.txt": "move me",
		"move_dest/":  "",
	}, "move_me.txt")

	require.NoError(t, transfer.Move(f.opts("move_dest", "")))

	assert.Equal(t, "move me", testutil.ReadFile(t, f.path("move_dest/move_me.txt")))
	assert.NoFileExists(t, f.path("move_me.txt"))
	assert.Empty(t, f.repo.Marks())
	assert.Contains(t, f.out.String(), "Moving [FILE]")
	assert.Contains(t, f.out.String(), "moved.")
}

func TestMoveFailureKeepsMarks(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a.txt": "a",
		"out/":  "",
	}, "a.txt", "gone.txt")

	err := transfer.Move(f.opts("", f.path("out")))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	assert.FileExists(t, f.path("out/a.txt"))
	assert.Len(t, f.repo.Marks(), 2, "marks are only cleared when every target moved")
}

func TestLinkCreatesSymlink(t *testing.T) {
	f := newFixture(t, map[string]string{
		"source.txt": "hello",
		"links/":     "",
	}, "source.txt")
	before := f.repo.Marks()

	require.NoError(t, transfer.Link(f.opts("links", "")))

	target, err := os.Readlink(f.path("links/source.txt"))
	require.NoError(t, err)
	assert.Equal(t, f.path("source.txt"), target)
	assert.Equal(t, before, f.repo.Marks(), "link keeps the mark list")
	assert.Contains(t, f.out.String(), "linked.")
}

func TestNoTargetsMarked(t *testing.T) {
	f := newFixture(t, nil)

	for _, run := range []func(transfer.Options) error{transfer.Copy, transfer.Move, transfer.Link} {
		err := run(f.opts("", ""))
		require.Error(t, err)
		assert.Equal(t, "Operation failed: No targets marked.", err.Error())
	}
}

func TestMissingMarkAbortsLoop(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a.txt": "a",
		"c.txt": "c",
		"out/":  "",
	}, "a.txt", "gone.txt", "c.txt")

	err := transfer.Copy(f.opts("", f.path("out")))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	assert.Contains(t, err.Error(), f.path("gone.txt"))

	assert.FileExists(t, f.path("out/a.txt"), "earlier targets stay done")
	assert.NoFileExists(t, f.path("out/c.txt"), "later targets are skipped")
}

func TestConfigErrorPropagates(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.WithError("GetMarkedTargets", errors.ConfigPathMissing())

	err := transfer.Copy(f.opts("", ""))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigPathMissing))
}
