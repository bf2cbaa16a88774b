package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/session"
	"github.com/abhisek/skilldrill/internal/ui/components"
	"github.com/abhisek/skilldrill/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	switch {
	case s.confirmEnd:
		return s.renderConfirmEnd(width)
	case s.ctl.Status() == session.StatusError:
		return s.renderConflict(width)
	case s.errMsg != "":
		return s.renderError(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	case s.ctl.Status() == session.StatusPaused:
		return s.renderPaused(width)
	case s.exhausted:
		return s.renderExhausted(width)
	case s.busy() || s.ctl.CurrentQuestion() == nil:
		return s.renderLoading(width)
	default:
		return s.renderQuestion(width)
	}
}

// renderInfoLine renders the progress strip above the question.
func (s *DrillScreen) renderInfoLine(width int) string {
	view := s.ctl.View()

	kindLabel := string(view.Kind)
	if view.IsResumed {
		kindLabel += " · resumed"
	}
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + kindLabel)

	correct := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d correct",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			view.CorrectCount,
		))

	barWidth := width / 3
	if barWidth < 16 {
		barWidth = 16
	}
	bar := components.NewProgress(view.Answered, view.TotalQuestions, barWidth).View()

	right := bar + "   " + correct

	line := left
	rightPad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if rightPad > 0 {
		line += strings.Repeat(" ", rightPad) + right
	}
	return line
}

// renderQuestion renders the active question display.
func (s *DrillScreen) renderQuestion(width int) string {
	q := s.ctl.CurrentQuestion()
	if q == nil {
		return s.renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	if q.Topic != "" {
		topic := q.Topic
		if q.Difficulty > 0 {
			topic = fmt.Sprintf("%s · L%d", topic, q.Difficulty)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(topic))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter"))

	return b.String()
}

// renderFeedback renders the verdict overlay after a graded answer.
func (s *DrillScreen) renderFeedback(width int) string {
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
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	if res != nil && res.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(res.Explanation)))
		b.WriteString("\n\n")
	}

	if res != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Answered %d · Correct %d", res.Stats.Answered, res.Stats.CorrectCount)))
		b.WriteString("\n\n")
	}

	hint := "Press any key to continue..."
	if res != nil && res.Completed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Session complete!"))
		b.WriteString("\n\n")
		hint = "Press any key for your summary..."
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

// renderPaused renders the paused card.
func (s *DrillScreen) renderPaused(width int) string {
	view := s.ctl.View()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Paused"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d answered · %d correct",
			view.Answered, view.TotalQuestions, view.CorrectCount)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("P to resume · Esc to end the session"))

	return b.String()
}

// renderExhausted renders the no-more-questions prompt.
func (s *DrillScreen) renderExhausted(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("That's every question in this session"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to end and see your results"))
	return b.String()
}

// renderConflict renders the out-of-sync view with its recovery options.
func (s *DrillScreen) renderConflict(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Session out of sync"))
	b.WriteString("\n\n")

	detail := "Another device changed this session."
	if conflict := s.ctl.Conflict(); conflict != nil {
		detail = fmt.Sprintf("Another device changed this session (local version %d, server version %d).",
			conflict.Expected, conflict.ServerVersion)
	} else if err := s.ctl.Err(); err != nil {
		detail = err.Error()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(detail)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("R to pick up the server's view · X to abandon"))
	return b.String()
}

// renderError renders a transient failure with its retry hint.
func (s *DrillScreen) renderError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(s.errMsg)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter to retry · Esc to leave"))
	return b.String()
}

// renderLoading renders the spinner with a label for what is in flight.
func (s *DrillScreen) renderLoading(width int) string {
	label := "Fetching the next question..."
	switch {
	case s.ctl.Status() == session.StatusLoading || s.ctl.Status() == session.StatusIdle:
		label = "Starting your session..."
	case s.submitting:
		label = "Checking your answer..."
	case s.mutating:
		label = "Syncing with the platform..."
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + s.spin.View() + " " + label)
}

// renderConfirmEnd renders the end-session confirmation.
func (s *DrillScreen) renderConfirmEnd(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved on the platform. Y to end · N to keep going"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
