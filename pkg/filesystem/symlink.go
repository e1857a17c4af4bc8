package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	synthfsfs "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
)

// linkFunc creates newname pointing at oldname. Both paths are absolute.
type linkFunc func(oldname, newname string) error

// symlinkItem is the item synthfs attaches to a symlink operation.
type symlinkItem struct {
	path   string
	target string
}

func (s *symlinkItem) Path() string   { return s.path }
func (s *symlinkItem) Type() string   { return "symlink" }
func (s *symlinkItem) Target() string { return s.target }

// synthfsLink runs a one-operation synthfs pipeline over the root
// filesystem. The link path is made relative to "/"; the target stays
// absolute so the link resolves from any directory.
func synthfsLink(oldname, newname string) error {
	if _, err := os.Lstat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: os.ErrExist}
	}

	relPath, err := filepath.Rel("/", newname)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileSystem, "failed to convert path: %s", newname)
	}

	op := operations.NewCreateSymlinkOperation(core.OperationID(fmt.Sprintf("link-%s", newname)), relPath)
	op.SetDescriptionDetail("target", oldname)
	op.SetItem(&symlinkItem{path: relPath, target: oldname})

	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(op)); err != nil {
		return err
	}

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, synthfsfs.NewOSFileSystem("/"))
	if err := result.GetError(); err != nil {
		return err
	}

	log.Debug().Str("target", oldname).Str("link", newname).Msg("synthfs pipeline created symlink")
	return nil
}
