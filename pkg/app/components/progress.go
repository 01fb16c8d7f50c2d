package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/quran/pkg/app/styles"
	"github.com/kerbaras/quran/pkg/services"
)

// ProgressTracker follows the progress of a seed run.
type ProgressTracker struct {
	last    services.SeedProgress
	started bool
	width   int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{width: width}
}

func (p *ProgressTracker) Update(progress services.SeedProgress) {
	p.last = progress
	p.started = true
}

func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

// Stage returns the stage of the last update, empty before the first one.
func (p *ProgressTracker) Stage() string {
	return p.last.Stage
}

// Percent returns how much of the run is done, between 0 and 1.
func (p *ProgressTracker) Percent() float64 {
	switch p.last.Stage {
	case services.StageDone, services.StageSkipped:
		return 1
	}
	if p.last.Total == 0 {
		return 0
	}
	pct := float64(p.last.Done) / float64(p.last.Total)
	if pct > 1 {
		pct = 1
	}
	return pct
}

func (p *ProgressTracker) View() string {
	if !p.started {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderProgressBar(p.Percent(), p.width))
	b.WriteString("\n")

	statusText := p.last.Stage
	if p.last.Total > 0 {
		statusText = fmt.Sprintf("%s (%d/%d - %.0f%%)", p.last.Stage, p.last.Done, p.last.Total, p.Percent()*100)
	}
	b.WriteString(styles.MutedStyle.Render(statusText))
	return b.String()
}

func renderProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	if total == 0 {
		return ""
	}
	return renderProgressBar(float64(current)/float64(total), width)
}
