package types

import "io"

// Services bundles the collaborators every command runs against.
type Services struct {
	Config ConfigRepository
	FS     FileSystemService
	UI     UIService
	Out    io.Writer
}
