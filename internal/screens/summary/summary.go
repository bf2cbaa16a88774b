package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/review"
	"github.com/abhisek/skilldrill/internal/router"
	"github.com/abhisek/skilldrill/internal/screen"
	reviewscreen "github.com/abhisek/skilldrill/internal/screens/review"
	"github.com/abhisek/skilldrill/internal/session"
	"github.com/abhisek/skilldrill/internal/store"
	"github.com/abhisek/skilldrill/internal/ui/layout"
	"github.com/abhisek/skilldrill/internal/ui/theme"
)

// availabilityMsg is sent when the review-availability probe settles.
type availabilityMsg struct {
	Err error
}

// reviewStartedMsg is sent when opening a review round settles.
type reviewStartedMsg struct {
	Err error
}

// dismissedMsg is sent when the learner declines the review offer.
type dismissedMsg struct {
	Err error
}

// SummaryScreen displays the results of an ended session and, when the
// platform has misses worth revisiting, offers a reinforcement round.
type SummaryScreen struct {
	tracker  *review.Tracker
	sessView session.View
	sum      *gateway.SessionSummary

	checking bool
	starting bool
	errMsg   string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for an ended session.
func New(gw gateway.Gateway, events store.EventRepo, sessView session.View, sum *gateway.SessionSummary) *SummaryScreen {
	return &SummaryScreen{
		tracker:  review.NewTracker(gw, events, sessView.SessionID),
		sessView: sessView,
		sum:      sum,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	// One probe per ended session; the tracker enforces the once-only
	// contract even if the screen is rebuilt.
	s.checking = true
	return func() tea.Msg {
		return availabilityMsg{Err: s.tracker.CheckAvailability(context.Background())}
	}
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.tracker.Phase() == review.PhasePrompt {
		return []layout.KeyHint{
			{Key: "Y", Description: "Review misses"},
			{Key: "N", Description: "Not now"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case availabilityMsg:
		s.checking = false
		// A failed probe just means no offer; the summary stands alone.
		return s, nil

	case reviewStartedMsg:
		s.starting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		tracker := s.tracker
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: reviewscreen.New(tracker)}
		}

	case dismissedMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SummaryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.tracker.Phase() == review.PhasePrompt && !s.starting {
		switch key {
		case "y", "Y", "enter":
			s.starting = true
			s.errMsg = ""
			return s, func() tea.Msg {
				return reviewStartedMsg{Err: s.tracker.Start(context.Background())}
			}
		case "n", "N", "esc":
			return s, func() tea.Msg {
				return dismissedMsg{Err: s.tracker.Dismiss(context.Background())}
			}
		}
		return s, nil
	}

	// A failed round opening leaves the offer standing; Y retries it.
	if s.tracker.Phase() == review.PhaseError && !s.starting {
		switch key {
		case "y", "Y", "enter":
			s.starting = true
			s.errMsg = ""
			return s, func() tea.Msg {
				return reviewStartedMsg{Err: s.tracker.Start(context.Background())}
			}
		case "n", "N", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch key {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.sum
	if sum == nil {
		return ""
	}

	var b strings.Builder

	// Title.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	// Kind and duration.
	mins := sum.DurationSecs / 60
	secs := sum.DurationSecs % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %d:%02d", s.sessView.Kind, mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %s",
		sum.TotalQuestions, sum.CorrectCount, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if sum.IncorrectCount > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Missed: %d", sum.IncorrectCount)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Review offer.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	switch {
	case s.tracker.Phase() == review.PhasePrompt:
		tv := s.tracker.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		offer := fmt.Sprintf("Review your %d missed question", tv.IncorrectCount)
		if tv.IncorrectCount != 1 {
			offer += "s"
		}
		offer += " now?"
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(offer))
		b.WriteString("\n\n")
		hint := "Y to start · N to skip"
		if s.starting {
			hint = "Opening your review..."
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(hint))

	case s.errMsg != "":
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Couldn't open the review: "+s.errMsg))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Y to try again · N to skip"))

	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to continue"))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
