package types

// TargetType classifies a path.
type TargetType int

const (
	TargetNone TargetType = iota
	TargetFile
	TargetDir
)

// String returns the string representation of the target type
func (t TargetType) String() string {
	switch t {
	case TargetFile:
		return "file"
	case TargetDir:
		return "dir"
	default:
		return "none"
	}
}

// FileInfo is a snapshot of one path taken once per logical step.
// Name is empty when the path has no final element (for example "/").
type FileInfo struct {
	Exists bool
	IsFile bool
	IsDir  bool
	Name   string
}

// Kind derives the TargetType of the snapshot.
func (f FileInfo) Kind() TargetType {
	switch {
	case !f.Exists:
		return TargetNone
	case f.IsDir:
		return TargetDir
	case f.IsFile:
		return TargetFile
	default:
		return TargetNone
	}
}
