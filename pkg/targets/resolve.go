package targets

import (
	"path/filepath"

	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/types"
)

var log = logging.GetLogger("targets")

// Target is an absolute path with the snapshot taken when it was resolved.
type Target struct {
	Path string
	Info types.FileInfo
}

// Resolve absolutizes and describes every raw path in order. The first
// missing path fails with FileNotFound naming the path as the user typed it.
func Resolve(fsys types.FileSystemService, raw []string) ([]Target, error) {
	resolved := make([]Target, 0, len(raw))
	for _, path := range raw {
		abs, err := fsys.Absolute(path)
		if err != nil {
			return nil, err
		}
		info, err := fsys.Describe(abs)
		if err != nil {
			return nil, err
		}
		if !info.Exists {
			return nil, errors.FileNotFound(path)
		}
		resolved = append(resolved, Target{Path: abs, Info: info})
	}

	log.Debug().Int("count", len(resolved)).Msg("Resolved targets")
	return resolved, nil
}

// Paths extracts the absolute paths of targets.
func Paths(targets []Target) []string {
	paths := make([]string, len(targets))
	for i, t := range targets {
		paths[i] = t.Path
	}
	return paths
}

// Dedupe cleans paths and drops repeats, keeping the first occurrence.
// "/x/d/" and "/x/d" count as the same path.
func Dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
