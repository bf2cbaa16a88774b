package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/ui/theme"
)

// Progress displays answered-out-of-total drill progress as a bar with a
// fraction caption.
type Progress struct {
	Done  int
	Total int
	Width int
}

// NewProgress creates a progress bar for done out of total steps.
func NewProgress(done, total, width int) Progress {
	return Progress{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View renders the progress bar.
func (p Progress) View() string {
	caption := fmt.Sprintf("%d/%d", p.Done, p.Total)
	captionWidth := len(caption) + 2

	barWidth := p.Width - captionWidth
	if barWidth < 4 {
		barWidth = 4
	}

	var pct float64
	if p.Total > 0 {
		pct = float64(p.Done) / float64(p.Total)
	}

	filled := int(float64(barWidth) * pct)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	return bar + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  "+caption)
}
