package fuga

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Mark files once, copy, move or link them anywhere"
	MsgMarkShort       = "Set, extend, list or clear the mark list"
	MsgCopyShort       = "Copy the marked targets"
	MsgMoveShort       = "Move the marked targets and clear the marks"
	MsgLinkShort       = "Symlink the marked targets"
	MsgPresetShort     = "Manage named snapshots of the mark list"
	MsgPresetSaveShort = "Save the mark list as a preset"
	MsgPresetLoadShort = "Replace the mark list with a preset"
	MsgPresetListShort = "List saved presets"
	MsgPresetShowShort = "Show the targets of a preset"
	MsgPresetDelShort  = "Delete a preset"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = "Generate the completion script for bash, zsh, fish or powershell and print it to stdout."
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Print the man page"

	// Version output
	MsgVersionFormat = "fuga version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrInitServices = "failed to initialize fuga: %w"
	MsgErrWorkingDir   = "failed to read working directory: %w"
	MsgErrManPage      = "failed to generate man page: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagAdd     = "Add paths to the mark list instead of replacing it"
	MsgFlagList    = "List the marked targets"
	MsgFlagReset   = "Clear the mark list"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/mark-long.txt
	msgMarkLongRaw string
	MsgMarkLong    = strings.TrimSpace(msgMarkLongRaw)

	//go:embed msgs/mark-example.txt
	msgMarkExampleRaw string
	MsgMarkExample    = strings.TrimSpace(msgMarkExampleRaw)

	//go:embed msgs/transfer-long.txt
	msgTransferLongRaw string
	MsgTransferLong    = strings.TrimSpace(msgTransferLongRaw)

	//go:embed msgs/transfer-example.txt
	msgTransferExampleRaw string
	MsgTransferExample    = strings.TrimSpace(msgTransferExampleRaw)

	//go:embed msgs/preset-long.txt
	msgPresetLongRaw string
	MsgPresetLong    = strings.TrimSpace(msgPresetLongRaw)

	//go:embed msgs/preset-example.txt
	msgPresetExampleRaw string
	MsgPresetExample    = strings.TrimSpace(msgPresetExampleRaw)
)
