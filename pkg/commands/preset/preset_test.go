// pkg/commands/preset/preset_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, MockConfigRepository
// PURPOSE: Test saving, loading, listing, showing and deleting presets

package preset_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/fuga/pkg/commands/preset"
	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/filesystem"
	"github.com/arthur-debert/fuga/pkg/testutil"
	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, marks ...string) (types.Services, *testutil.MockConfigRepository, *bytes.Buffer) {
	t.Helper()
	fsys := testutil.MemFS(t, map[string]string{
		"/p/a.txt": "a",
		"/p/dir/":  "",
	})
	repo := testutil.NewMockConfigRepository(marks...)
	out := &bytes.Buffer{}
	return types.Services{
		Config: repo,
		FS:     filesystem.NewService(fsys),
		UI:     testutil.PlainUI{},
		Out:    out,
	}, repo, out
}

func run(svc types.Services, action preset.Action, name string) error {
	return preset.Preset(preset.Options{Services: svc, Action: action, Name: name})
}

func TestPresetRoundTrip(t *testing.T) {
	svc, repo, out := setup(t, "/p/a.txt", "/p/dir")

	require.NoError(t, run(svc, preset.Save, "work"))
	assert.Contains(t, out.String(), "[ok] : Preset 'work' saved with 2 target(s).")

	require.NoError(t, repo.SetMarkedTargets([]string{"/elsewhere"}))

	require.NoError(t, run(svc, preset.Load, "work"))
	assert.Equal(t, []string{"/p/a.txt", "/p/dir"}, repo.Marks())
	assert.Contains(t, out.String(), "[ok] : Preset 'work' loaded. Mark list now tracks 2 target(s).")
}

func TestPresetNameIsTrimmed(t *testing.T) {
	svc, repo, _ := setup(t, "/p/a.txt")

	require.NoError(t, run(svc, preset.Save, "  work  "))

	names, err := repo.ListPresets()
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, names)
}

func TestPresetEmptyName(t *testing.T) {
	svc, _, _ := setup(t)

	for _, action := range []preset.Action{preset.Save, preset.Load, preset.Show, preset.Delete} {
		err := run(svc, action, "   ")
		require.Error(t, err, action.String())
		assert.Equal(t, "Operation failed: Preset name cannot be empty.", err.Error())
	}
}

func TestPresetNotFound(t *testing.T) {
	svc, repo, _ := setup(t, "/p/a.txt")

	for _, action := range []preset.Action{preset.Load, preset.Show, preset.Delete} {
		err := run(svc, action, "ghost")
		require.Error(t, err, action.String())
		assert.True(t, errors.IsErrorCode(err, errors.ErrOperationFailed))
		assert.Contains(t, err.Error(), "Preset 'ghost' not found.")
	}
	assert.Equal(t, []string{"/p/a.txt"}, repo.Marks())
}

func TestPresetList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc, _, out := setup(t)
		require.NoError(t, run(svc, preset.List, ""))
		assert.Equal(t, "[i]  : No presets saved.\n", out.String())
	})

	t.Run("sorted names", func(t *testing.T) {
		svc, repo, out := setup(t)
		repo.WithPreset("zeta").WithPreset("alpha", "/p/a.txt")
		require.NoError(t, run(svc, preset.List, ""))
		assert.Equal(t, "[i]  : Saved presets:\n- alpha\n- zeta\n", out.String())
	})
}

func TestPresetShow(t *testing.T) {
	svc, repo, out := setup(t)
	repo.WithPreset("mixed", "/p/dir", "/p/a.txt", "/p/gone")

	require.NoError(t, run(svc, preset.Show, "mixed"))

	assert.Equal(t,
		"[i]  : Preset 'mixed':\n[DIR] /p/dir\n[FILE] /p/a.txt\n[ERR] /p/gone\n",
		out.String())
}

func TestPresetDelete(t *testing.T) {
	svc, repo, out := setup(t)
	repo.WithPreset("old", "/p/a.txt")

	require.NoError(t, run(svc, preset.Delete, "old"))
	assert.Contains(t, out.String(), "[ok] : Preset 'old' deleted.")

	_, ok, err := repo.GetPreset("old")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPresetRepositoryError(t *testing.T) {
	svc, repo, _ := setup(t)
	repo.WithError("ListPresets", errors.ConfigPathMissing())

	err := run(svc, preset.List, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigPathMissing))
}
