package review

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skilldrill/internal/gateway"
	rev "github.com/abhisek/skilldrill/internal/review"
	"github.com/abhisek/skilldrill/internal/router"
	"github.com/abhisek/skilldrill/internal/screen"
	"github.com/abhisek/skilldrill/internal/ui/components"
	"github.com/abhisek/skilldrill/internal/ui/layout"
	"github.com/abhisek/skilldrill/internal/ui/theme"
)

// reviewQuestionMsg is sent when a next-review-question fetch settles.
// Done means the round is exhausted and the tracker has completed.
type reviewQuestionMsg struct {
	Question *gateway.Question
	Done     bool
	Err      error
}

// reviewAnswerMsg is sent when a review answer submission settles.
type reviewAnswerMsg struct {
	Result *gateway.ReviewAnswerResult
	Err    error
}

// skippedMsg is sent when abandoning the round settles.
type skippedMsg struct {
	Err error
}

// ReviewScreen walks the learner through a reinforcement round. All round
// state lives in the tracker; the screen renders and forwards intent.
type ReviewScreen struct {
	tracker *rev.Tracker

	spin spinner.Model
	mc   components.MultiChoice

	loading         bool
	submitting      bool
	skipping        bool
	showingFeedback bool
	confirmSkip     bool
	lastResult      *gateway.ReviewAnswerResult
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over an already-opened round.
func New(tracker *rev.Tracker) *ReviewScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(theme.Secondary)

	return &ReviewScreen{
		tracker: tracker,
		spin:    sp,
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return s.proceed()
}

func (s *ReviewScreen) Title() string {
	return "Reinforcement"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmSkip:
		return []layout.KeyHint{
			{Key: "Y", Description: "Skip round"},
			{Key: "N", Description: "Keep reviewing"},
		}
	case s.tracker.Phase() == rev.PhaseCompleted || s.tracker.Phase() == rev.PhaseSkipped:
		return []layout.KeyHint{
			{Key: "Any key", Description: "Back"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "S", Description: "Skip round"},
		}
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case reviewQuestionMsg:
		return s.handleQuestion(msg)

	case reviewAnswerMsg:
		return s.handleAnswer(msg)

	case skippedMsg:
		s.skipping = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ReviewScreen) handleQuestion(msg reviewQuestionMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil || msg.Done {
		// Errors park the tracker in its error phase; Done lands it on
		// the completed summary. The view keys off the phase either way.
		return s, nil
	}

	choices := make([]components.Choice, 0, len(msg.Question.Options))
	for _, opt := range msg.Question.Options {
		choices = append(choices, components.Choice{ID: opt.ID, Text: opt.Text})
	}
	s.mc = components.NewMultiChoice(msg.Question.Prompt, choices)
	s.lastResult = nil
	return s, nil
}

func (s *ReviewScreen) handleAnswer(msg reviewAnswerMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		return s, nil
	}
	s.lastResult = msg.Result
	s.mc.MarkResult(msg.Result.Correct)
	s.showingFeedback = true
	return s, nil
}

func (s *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmSkip {
		switch key {
		case "y", "Y":
			s.confirmSkip = false
			return s, s.skip()
		case "n", "N", "esc":
			s.confirmSkip = false
		}
		return s, nil
	}

	phase := s.tracker.Phase()

	if phase == rev.PhaseCompleted || phase == rev.PhaseSkipped {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if phase == rev.PhaseError {
		switch key {
		case "enter", "r":
			// A kept selection is an unresolved submission; re-send it
			// with the same idempotency key. Otherwise the fetch failed.
			if s.tracker.View().Selected != "" {
				return s, s.submit()
			}
			return s, s.proceed()
		case "s", "esc":
			s.confirmSkip = true
		}
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		return s, s.proceed()
	}

	if s.busy() {
		return s, nil
	}

	switch key {
	case "s", "esc":
		s.confirmSkip = true
		return s, nil
	case "enter":
		if choice := s.mc.SelectedChoice(); choice != nil {
			if err := s.tracker.SelectAnswer(choice.ID); err != nil {
				return s, nil
			}
			s.mc.Submit()
			return s, s.submit()
		}
		return s, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.mc.Choices) {
			s.mc.Select(idx)
			if err := s.tracker.SelectAnswer(s.mc.Choices[idx].ID); err != nil {
				return s, nil
			}
			s.mc.Submit()
			return s, s.submit()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

func (s *ReviewScreen) busy() bool {
	return s.loading || s.submitting || s.skipping
}

func (s *ReviewScreen) proceed() tea.Cmd {
	s.loading = true
	fetch := func() tea.Msg {
		q, err := s.tracker.ProceedToNext(context.Background())
		if err != nil {
			return reviewQuestionMsg{Err: err}
		}
		if q == nil {
			return reviewQuestionMsg{Done: true}
		}
		return reviewQuestionMsg{Question: q}
	}
	return tea.Batch(s.spin.Tick, fetch)
}

func (s *ReviewScreen) submit() tea.Cmd {
	s.submitting = true
	send := func() tea.Msg {
		res, err := s.tracker.SubmitAnswer(context.Background())
		return reviewAnswerMsg{Result: res, Err: err}
	}
	return tea.Batch(s.spin.Tick, send)
}

func (s *ReviewScreen) skip() tea.Cmd {
	s.skipping = true
	abandon := func() tea.Msg {
		return skippedMsg{Err: s.tracker.Skip(context.Background())}
	}
	return tea.Batch(s.spin.Tick, abandon)
}
