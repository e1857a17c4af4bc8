package targets

import (
	"path/filepath"

	"github.com/arthur-debert/fuga/pkg/types"
)

// Plan returns the destination for src. An empty dest means none was
// given: the result is the source's base name, relative to the working
// directory. An existing directory receives dest/<name>. Anything else is
// used verbatim.
func Plan(fsys types.FileSystemService, src string, info types.FileInfo, dest string) (string, error) {
	if dest == "" {
		if info.Name == "" {
			return src, nil
		}
		return info.Name, nil
	}

	destInfo, err := fsys.Describe(dest)
	if err != nil {
		return "", err
	}
	if destInfo.Exists && destInfo.IsDir && info.Name != "" {
		return filepath.Join(dest, info.Name), nil
	}
	return dest, nil
}

// AcceptsMany reports whether dest can receive more than one target. No
// destination means each target lands under its own name in the working
// directory.
func AcceptsMany(fsys types.FileSystemService, dest string) (bool, error) {
	if dest == "" {
		return true, nil
	}
	info, err := fsys.Describe(dest)
	if err != nil {
		return false, err
	}
	return info.Exists && info.IsDir, nil
}
