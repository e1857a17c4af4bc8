package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/fuga/pkg/types"
	"github.com/pterm/pterm"
)

// ProgressBar is a ProgressSink drawing a pterm bar. The bar is created on
// the first report so zero-byte operations draw nothing.
type ProgressBar struct {
	out     io.Writer
	bar     *pterm.ProgressbarPrinter
	current int64
}

var _ types.ProgressSink = (*ProgressBar)(nil)

// NewProgressBar writes to out, or stderr when out is nil.
func NewProgressBar(out io.Writer) *ProgressBar {
	if out == nil {
		out = os.Stderr
	}
	return &ProgressBar{out: out}
}

// ProgressFactory returns a constructor suitable for filesystem.WithProgress.
func ProgressFactory(out io.Writer) func() types.ProgressSink {
	return func() types.ProgressSink { return NewProgressBar(out) }
}

func (p *ProgressBar) Report(copied, total int64, label string) {
	if p.bar == nil {
		if total <= 0 {
			return
		}
		bar, err := pterm.DefaultProgressbar.
			WithTotal(int(total)).
			WithTitle(label).
			WithWriter(p.out).
			WithShowElapsedTime(false).
			WithRemoveWhenDone(true).
			Start()
		if err != nil {
			return
		}
		p.bar = bar
	}
	if delta := copied - p.current; delta > 0 {
		p.bar.Add(int(delta))
		p.current = copied
	}
}

func (p *ProgressBar) Done() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}
