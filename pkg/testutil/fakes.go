package testutil

import (
	"github.com/arthur-debert/fuga/pkg/types"
)

// ProgressReport is one recorded ProgressSink.Report call
type ProgressReport struct {
	Copied int64
	Total  int64
	Label  string
}

// RecordingSink keeps every progress report
type RecordingSink struct {
	Reports []ProgressReport
	Closed  int
}

func (r *RecordingSink) Report(copied, total int64, label string) {
	r.Reports = append(r.Reports, ProgressReport{Copied: copied, Total: total, Label: label})
}

func (r *RecordingSink) Done() { r.Closed++ }

// Last returns the final report, or the zero value
func (r *RecordingSink) Last() ProgressReport {
	if len(r.Reports) == 0 {
		return ProgressReport{}
	}
	return r.Reports[len(r.Reports)-1]
}

// PlainUI renders fixed ASCII glyphs with no color so output can be
// compared literally.
type PlainUI struct{}

func (PlainUI) Colorize(text string, _ bool) string { return text }
func (PlainUI) InformationIcon() string             { return "[i] " }
func (PlainUI) SuccessIcon() string                 { return "[ok]" }
func (PlainUI) ErrorIcon() string                   { return "[x]" }

func (PlainUI) IconFor(kind types.TargetType) string {
	switch kind {
	case types.TargetFile:
		return "[FILE]"
	case types.TargetDir:
		return "[DIR]"
	default:
		return "[ERR]"
	}
}
