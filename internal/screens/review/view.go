package review

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	rev "github.com/abhisek/skilldrill/internal/review"
	"github.com/abhisek/skilldrill/internal/ui/theme"
)

func (s *ReviewScreen) View(width, height int) string {
	switch {
	case s.confirmSkip:
		return s.renderConfirmSkip(width)
	case s.tracker.Phase() == rev.PhaseError:
		return s.renderError(width)
	case s.tracker.Phase() == rev.PhaseCompleted:
		return s.renderCompleted(width)
	case s.tracker.Phase() == rev.PhaseSkipped:
		return s.renderSkipped(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	case s.busy() || s.tracker.CurrentQuestion() == nil:
		return s.renderLoading(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *ReviewScreen) renderInfoLine(width int) string {
	tv := s.tracker.View()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  reinforcement")

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("reviewed %d/%d   %s %d reinforced",
			tv.ReviewedCount,
			tv.TotalToReview,
			lipgloss.NewStyle().Foreground(theme.Success).Render("↻"),
			tv.ReinforcedCount,
		))

	line := left
	rightPad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if rightPad > 0 {
		line += strings.Repeat(" ", rightPad) + right
	}
	return line
}

func (s *ReviewScreen) renderQuestion(width int) string {
	q := s.tracker.CurrentQuestion()
	if q == nil {
		return s.renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	if q.Topic != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Missed earlier · " + q.Topic))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter · S skips the round"))

	return b.String()
}

func (s *ReviewScreen) renderFeedback(width int) string {
	res := s.lastResult

	var b strings.Builder
	b.WriteString("\n\n")

	if res != nil && res.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
		if res.Reinforced {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render("↻ Concept reinforced"))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Still not quite"))
	}
	b.WriteString("\n\n")

	if res != nil && res.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(res.Explanation)))
		b.WriteString("\n\n")
	}

	if res != nil && res.Remaining > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d to go", res.Remaining)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (s *ReviewScreen) renderCompleted(width int) string {
	sum := s.tracker.Summary()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Review complete!"))
	b.WriteString("\n\n")

	if sum != nil {
		line := fmt.Sprintf("Reviewed: %d/%d        Reinforced: %d",
			sum.ReviewedCount, sum.TotalToReview, sum.ReinforcedCount)
		if sum.StillIncorrectCount > 0 {
			line += fmt.Sprintf("        Still missed: %d", sum.StillIncorrectCount)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(line))
		b.WriteString("\n\n")

		rate := rev.Rate(sum.ReviewedCount, sum.ReinforcedCount)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Reinforcement rate: %.0f%%", rate*100)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (s *ReviewScreen) renderSkipped(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Bold(true).
		Render("Review skipped"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Those questions will come back another time. Press any key..."))
	return b.String()
}

func (s *ReviewScreen) renderError(width int) string {
	tv := s.tracker.View()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("The review hit a snag"))
	b.WriteString("\n\n")
	if tv.ErrMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(tv.ErrMsg)))
		b.WriteString("\n\n")
	}
	hint := "Enter to retry"
	if tv.Selected != "" {
		hint = "Enter to resend your answer"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint+" · S to skip the round"))
	return b.String()
}

func (s *ReviewScreen) renderLoading(width int) string {
	label := "Fetching the next question..."
	if s.submitting {
		label = "Checking your answer..."
	} else if s.skipping {
		label = "Skipping the round..."
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + s.spin.View() + " " + label)
}

func (s *ReviewScreen) renderConfirmSkip(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Skip the rest of this review?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Y to skip · N to keep going"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
