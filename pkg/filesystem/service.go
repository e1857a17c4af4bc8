package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fuga/pkg/errors"
	"github.com/arthur-debert/fuga/pkg/logging"
	"github.com/arthur-debert/fuga/pkg/types"
)

var log = logging.GetLogger("filesystem")

// Service is the FileSystemService used by every command. All mutation goes
// through a types.FS so tests can run against afero.
type Service struct {
	fs       types.FS
	getwd    func() (string, error)
	progress func() types.ProgressSink
	link     linkFunc
}

// Option configures a Service.
type Option func(*Service)

// WithGetwd replaces os.Getwd as the base for relative paths.
func WithGetwd(getwd func() (string, error)) Option {
	return func(s *Service) { s.getwd = getwd }
}

// WithProgress installs a factory for the sink that receives byte progress.
// A fresh sink is requested for every copy or move.
func WithProgress(factory func() types.ProgressSink) Option {
	return func(s *Service) { s.progress = factory }
}

// NewService creates a Service over fsys.
func NewService(fsys types.FS, opts ...Option) *Service {
	s := &Service{
		fs:    fsys,
		getwd: os.Getwd,
		link:  fsys.Symlink,
	}
	// Links on the real disk go through a synthfs pipeline.
	if _, ok := fsys.(*osFS); ok {
		s.link = synthfsLink
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Describe snapshots path. A missing path is not an error. Relative paths
// are resolved against the working directory.
func (s *Service) Describe(path string) (types.FileInfo, error) {
	abs, err := s.Absolute(path)
	if err != nil {
		return types.FileInfo{}, err
	}
	info, err := s.fs.Stat(abs)
	if os.IsNotExist(err) {
		return types.FileInfo{}, nil
	}
	if err != nil {
		return types.FileInfo{}, errors.FromIOError(err, abs)
	}
	return types.FileInfo{
		Exists: true,
		IsFile: info.Mode().IsRegular(),
		IsDir:  info.IsDir(),
		Name:   BaseName(path),
	}, nil
}

// Absolute joins relative paths onto the working directory. The result is
// always clean, so "/x/d/" and "/x/d" name the same target.
func (s *Service) Absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	cwd, err := s.getwd()
	if err != nil {
		return "", errors.OperationFailed(fmt.Sprintf("Failed to get current directory: %v", err))
	}
	return filepath.Join(cwd, path), nil
}

// Kind classifies path; any error reads as TargetNone.
func (s *Service) Kind(path string) types.TargetType {
	info, err := s.Describe(path)
	if err != nil {
		return types.TargetNone
	}
	return info.Kind()
}

// Copy copies a file or a directory tree onto dst, overwriting existing files.
func (s *Service) Copy(src, dst string) error {
	absSrc, absDst, err := s.resolvePair(src, dst)
	if err != nil {
		return err
	}

	kind := s.Kind(absSrc)
	if kind == types.TargetNone {
		return errors.FileNotFound(absSrc)
	}
	if kind == types.TargetDir && isWithin(absDst, absSrc) {
		return errors.FileSystem(fmt.Sprintf("Copy failed: cannot copy %s into itself at %s", absSrc, absDst))
	}

	done := logging.Track(log, "copy", absSrc)
	defer done()

	if err := s.copyTree(absSrc, absDst, dst); err != nil {
		return errors.FileSystem(fmt.Sprintf("Copy failed: %v", err))
	}
	return nil
}

// Move renames src onto dst, falling back to copy and delete when the
// rename is refused (for example across devices).
func (s *Service) Move(src, dst string) error {
	absSrc, absDst, err := s.resolvePair(src, dst)
	if err != nil {
		return err
	}

	kind := s.Kind(absSrc)
	if kind == types.TargetNone {
		return errors.FileNotFound(absSrc)
	}
	if kind == types.TargetDir && isWithin(absDst, absSrc) {
		return errors.FileSystem(fmt.Sprintf("Move failed: cannot move %s into itself at %s", absSrc, absDst))
	}

	done := logging.Track(log, "move", absSrc)
	defer done()

	err = s.fs.Rename(absSrc, absDst)
	if err == nil {
		return nil
	}
	log.Debug().Err(err).Str("src", absSrc).Msg("Rename refused, copying instead")

	if err := s.copyTree(absSrc, absDst, dst); err != nil {
		return errors.FileSystem(fmt.Sprintf("Move failed: %v", err))
	}
	if err := s.fs.RemoveAll(absSrc); err != nil {
		return errors.FileSystem(fmt.Sprintf("Move failed: %v", err))
	}
	return nil
}

// Link creates a symlink at dst pointing to the absolute source.
func (s *Service) Link(src, dst string) error {
	absSrc, absDst, err := s.resolvePair(src, dst)
	if err != nil {
		return err
	}

	if s.Kind(absSrc) == types.TargetNone {
		return errors.FileNotFound(absSrc)
	}

	if err := s.link(absSrc, absDst); err != nil {
		return errors.FileSystem(fmt.Sprintf("Link failed: %v", err))
	}
	log.Debug().Str("src", absSrc).Str("dst", absDst).Msg("Created symlink")
	return nil
}

func (s *Service) resolvePair(src, dst string) (string, string, error) {
	absSrc, err := s.Absolute(src)
	if err != nil {
		return "", "", err
	}
	absDst, err := s.Absolute(dst)
	if err != nil {
		return "", "", err
	}
	if absSrc == absDst {
		return "", "", errors.DuplicatePath(absSrc, absDst)
	}
	return absSrc, absDst, nil
}

// isWithin reports whether path lies strictly below dir. Both are clean
// absolute paths.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// copyTree copies src onto dst. A directory source becomes dst itself;
// when dst already exists as a directory the trees are merged.
func (s *Service) copyTree(src, dst, label string) error {
	total, err := s.size(src)
	if err != nil {
		return err
	}

	var sink types.ProgressSink
	if s.progress != nil {
		sink = s.progress()
		defer sink.Done()
	}
	counter := &progressCounter{sink: sink, total: total, label: label}

	return s.copyEntry(src, dst, counter)
}

func (s *Service) copyEntry(src, dst string, counter *progressCounter) error {
	info, err := s.fs.Stat(src)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return s.copyFile(src, dst, info.Mode().Perm(), counter)
	}

	if err := s.fs.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return err
	}
	entries, err := s.fs.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if err := s.copyEntry(filepath.Join(src, name), filepath.Join(dst, name), counter); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) copyFile(src, dst string, perm fs.FileMode, counter *progressCounter) error {
	in, err := s.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := s.fs.Create(dst, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(io.MultiWriter(out, counter), in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// size sums the regular file sizes below path.
func (s *Service) size(path string) (int64, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}
	entries, err := s.fs.ReadDir(path)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, entry := range entries {
		n, err := s.size(filepath.Join(path, entry.Name()))
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// progressCounter forwards cumulative byte counts to a sink.
type progressCounter struct {
	sink   types.ProgressSink
	copied int64
	total  int64
	label  string
}

func (p *progressCounter) Write(b []byte) (int, error) {
	p.copied += int64(len(b))
	if p.sink != nil {
		p.sink.Report(p.copied, p.total, p.label)
	}
	return len(b), nil
}

// BaseName returns the final path element, or "" for paths without one
// ("/", ".", "..").
func BaseName(path string) string {
	name := filepath.Base(filepath.Clean(path))
	switch name {
	case string(filepath.Separator), ".", "..":
		return ""
	}
	return name
}
