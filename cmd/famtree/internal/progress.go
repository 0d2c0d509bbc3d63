package internal

import (
	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps schollz/progressbar/v3 with the describe-then-set
// shape the teacher's own CLI commands use for long file operations.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar over max steps, or an
// indeterminate spinner if max is unknown (<= 0).
func NewProgressBar(max int64, description string) *ProgressBar {
	if IsQuietMode() {
		return &ProgressBar{}
	}
	return &ProgressBar{
		bar: progressbar.DefaultBytes(max, description),
	}
}

// Set advances the bar to an absolute value.
func (p *ProgressBar) Set(n int) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Set(n)
}

// Add advances the bar by delta.
func (p *ProgressBar) Add(delta int) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(delta)
}

// Finish closes out the bar, leaving the terminal line intact.
func (p *ProgressBar) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}
