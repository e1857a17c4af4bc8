package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for fuga operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (io.ReadCloser, error)
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}

// Pather provides paths for fuga operations
type Pather interface {
	// ConfigDir returns the directory holding fuga.toml and settings.toml
	ConfigDir() string

	// ConfigFile returns the path of the persisted mark/preset state
	ConfigFile() string

	// SettingsFile returns the path of the optional user settings file
	SettingsFile() string

	// BoxPath returns the default box directory
	BoxPath() string

	// StateDir returns the XDG state directory for fuga
	StateDir() string

	// LogFilePath returns the path of the log file
	LogFilePath() string
}

// FileSystemService performs the filesystem side of every command. Paths
// handed to Copy, Move and Link may be relative; they are resolved against
// the working directory before anything is touched.
type FileSystemService interface {
	Describe(path string) (FileInfo, error)
	Absolute(path string) (string, error)
	Kind(path string) TargetType
	Copy(src, dst string) error
	Move(src, dst string) error
	Link(src, dst string) error
}

// ConfigRepository persists the mark list and presets.
type ConfigRepository interface {
	Load() (*AppConfig, error)
	Store(cfg *AppConfig) error

	GetMarkedTargets() ([]string, error)
	SetMarkedTargets(targets []string) error
	ResetMarks() error

	ListPresets() ([]string, error)
	GetPreset(name string) ([]string, bool, error)
	SavePreset(name string, targets []string) error
	DeletePreset(name string) (bool, error)
}

// UIService is pure presentation: colors and glyphs.
type UIService interface {
	Colorize(text string, bold bool) string
	InformationIcon() string
	SuccessIcon() string
	ErrorIcon() string
	IconFor(kind TargetType) string
}

// ProgressSink receives byte progress from copy and move. Report is called
// synchronously from inside the operation and must not block.
type ProgressSink interface {
	Report(copied, total int64, label string)
	Done()
}
