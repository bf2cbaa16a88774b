package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/review"
	"github.com/abhisek/skilldrill/internal/router"
	"github.com/abhisek/skilldrill/internal/screen"
	"github.com/abhisek/skilldrill/internal/store"
	"github.com/abhisek/skilldrill/internal/ui/layout"
	"github.com/abhisek/skilldrill/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Reviews  *store.ReviewTotals
	Err      error
}

// HistoryScreen displays past sessions from the local journal.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	reviews   *store.ReviewTotals
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.SessionHistory(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Review totals are a bonus line; a failed aggregate should not
		// blank the whole screen.
		reviews, err := s.eventRepo.ReviewStats(ctx)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}

		return historyLoadedMsg{Sessions: sessions, Reviews: reviews}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.reviews = msg.Reviews
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start a drill!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.EndedAt.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		var accuracy float64
		if sess.Answered > 0 {
			accuracy = float64(sess.CorrectCount) / float64(sess.Answered) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-10s  %d questions  %.0f%% accuracy  %s",
			prefix, dateStr, sess.Kind, sess.Answered, accuracy, durationStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	if s.reviews != nil && s.reviews.Rounds > 0 {
		rate := review.Rate(s.reviews.ReviewedCount, s.reviews.ReinforcedCount)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("Review rounds: %d   reviewed: %d   reinforced: %d (%.0f%%)",
					s.reviews.Rounds, s.reviews.ReviewedCount, s.reviews.ReinforcedCount, rate*100))))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
