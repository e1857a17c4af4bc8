package dashboard

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/types"
)

// Entry is one row of the directory listing.
type Entry struct {
	Name   string
	Path   string
	IsDir  bool
	Hidden bool
	Size   int64
}

// readDir lists dir with directories first, then by case-insensitive name.
// Symlinks are classified by what they point to.
func readDir(fsys types.FS, dir string) ([]Entry, error) {
	dirEntries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.FromIOError(err, dir)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		entry := Entry{
			Name:   name,
			Path:   filepath.Join(dir, name),
			IsDir:  de.IsDir(),
			Hidden: strings.HasPrefix(name, "."),
		}

		if de.Type()&fs.ModeSymlink != 0 {
			if info, err := fsys.Stat(entry.Path); err == nil {
				entry.IsDir = info.IsDir()
				entry.Size = info.Size()
			}
		} else if info, err := de.Info(); err == nil && !entry.IsDir {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	return entries, nil
}
