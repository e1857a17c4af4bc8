// Package dashboard implements the interactive file browser started when
// fuga runs without a subcommand.
//
// The session is a bubbletea model. Every key is routed by the active Mode,
// derived in strict precedence order:
//
//	Help > Prompt > Confirm > PresetPopup > Filter > Browse
//
// Browse moves through the current directory, toggles marks and exits with
// a copy, move or link request for the directory being shown. Errors never
// end the session; they become an inline error status.
package dashboard
