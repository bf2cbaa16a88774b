package drill

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/router"
	"github.com/abhisek/skilldrill/internal/screen"
	"github.com/abhisek/skilldrill/internal/screens/summary"
	"github.com/abhisek/skilldrill/internal/session"
	"github.com/abhisek/skilldrill/internal/store"
	"github.com/abhisek/skilldrill/internal/ui/components"
	"github.com/abhisek/skilldrill/internal/ui/layout"
	"github.com/abhisek/skilldrill/internal/ui/theme"
)

// DrillScreen runs one assessment session against the platform. The
// lifecycle controller owns all session state; the screen only tracks
// what it is currently presenting on top of it.
type DrillScreen struct {
	gw     gateway.Gateway
	events store.EventRepo
	ctl    *session.Controller
	cfg    session.StartConfig

	spin spinner.Model
	mc   components.MultiChoice

	loading         bool // start or next-question fetch in flight
	submitting      bool
	mutating        bool // pause, resume, end, or reconcile in flight
	showingFeedback bool
	exhausted       bool
	confirmEnd      bool
	lastResult      *gateway.AnswerResult
	pendingOption   string // selected option of an unresolved submission
	errMsg          string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen that starts (or resumes) a session with cfg.
func New(gw gateway.Gateway, events store.EventRepo, cfg session.StartConfig) *DrillScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(theme.Primary)

	return &DrillScreen{
		gw:     gw,
		events: events,
		ctl:    session.New(gw, events),
		cfg:    cfg,
		spin:   sp,
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	s.loading = true
	return tea.Batch(s.spin.Tick, s.startSession())
}

func (s *DrillScreen) Title() string {
	switch s.cfg.Kind {
	case gateway.KindDiagnostic:
		return "Diagnostic"
	case gateway.KindFocused:
		return "Focused Drill"
	default:
		return "Drill"
	}
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmEnd:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.ctl.Status() == session.StatusError:
		return []layout.KeyHint{
			{Key: "R", Description: "Reconcile"},
			{Key: "X", Description: "Abandon"},
		}
	case s.ctl.Status() == session.StatusPaused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "End"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "End"},
		}
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case startedMsg:
		return s.handleStarted(msg)

	case questionMsg:
		return s.handleQuestion(msg)

	case answerMsg:
		return s.handleAnswer(msg)

	case pauseToggledMsg:
		s.mutating = false
		if msg.Err != nil && !errors.Is(msg.Err, session.ErrReconcileRequired) {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		// A resume can land on a session with no question fetched yet.
		if s.ctl.Status() == session.StatusActive && s.ctl.CurrentQuestion() == nil && !s.exhausted {
			return s, s.fetchNext()
		}
		return s, nil

	case endedMsg:
		return s.handleEnded(msg)

	case reconciledMsg:
		return s.handleReconciled(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *DrillScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	// A resumed session may come back paused; hold at the paused view
	// instead of fetching.
	if s.ctl.Status() == session.StatusPaused {
		return s, nil
	}
	return s, s.fetchNext()
}

func (s *DrillScreen) handleQuestion(msg questionMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		if !errors.Is(msg.Err, session.ErrReconcileRequired) {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}
	if msg.Exhausted {
		s.exhausted = true
		return s, nil
	}

	choices := make([]components.Choice, 0, len(msg.Question.Options))
	for _, opt := range msg.Question.Options {
		choices = append(choices, components.Choice{ID: opt.ID, Text: opt.Text})
	}
	s.mc = components.NewMultiChoice(msg.Question.Prompt, choices)
	s.pendingOption = ""
	s.lastResult = nil
	return s, nil
}

func (s *DrillScreen) handleAnswer(msg answerMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		if !errors.Is(msg.Err, session.ErrReconcileRequired) {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}

	s.pendingOption = ""
	s.lastResult = msg.Result
	s.mc.MarkResult(msg.Result.Correct)
	s.showingFeedback = true
	return s, nil
}

func (s *DrillScreen) handleEnded(msg endedMsg) (screen.Screen, tea.Cmd) {
	s.mutating = false
	if msg.Err != nil {
		if !errors.Is(msg.Err, session.ErrReconcileRequired) {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}
	return s, s.showSummary()
}

func (s *DrillScreen) handleReconciled(msg reconciledMsg) (screen.Screen, tea.Cmd) {
	s.mutating = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	// The server's view won. Land wherever it says the session is.
	s.pendingOption = ""
	s.showingFeedback = false
	s.exhausted = false
	switch s.ctl.Status() {
	case session.StatusEnded:
		return s, s.showSummary()
	case session.StatusActive:
		return s, s.fetchNext()
	}
	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// End confirmation takes precedence over everything.
	if s.confirmEnd {
		switch key {
		case "y", "Y":
			s.confirmEnd = false
			return s, s.endSession()
		case "n", "N", "esc":
			s.confirmEnd = false
		}
		return s, nil
	}

	// Out of sync: only reconcile or abandon moves forward.
	if s.ctl.Status() == session.StatusError {
		switch key {
		case "r", "R", "enter":
			return s, s.reconcile()
		case "x", "X":
			s.ctl.Reset()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Transient error: retry whatever failed, or walk away.
	if s.errMsg != "" {
		switch key {
		case "enter", "r":
			s.errMsg = ""
			return s, s.retry()
		case "esc":
			if s.ctl.Status() == session.StatusIdle {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			s.confirmEnd = true
		}
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		if s.lastResult != nil && s.lastResult.Completed {
			return s, s.showSummary()
		}
		return s, s.fetchNext()
	}

	if s.ctl.Status() == session.StatusPaused {
		switch key {
		case "p", "r":
			return s, s.togglePause()
		case "esc":
			s.confirmEnd = true
		}
		return s, nil
	}

	if s.exhausted {
		switch key {
		case "enter", "e":
			return s, s.endSession()
		case "esc":
			s.confirmEnd = true
		}
		return s, nil
	}

	if s.busy() {
		if key == "esc" {
			switch s.ctl.Status() {
			case session.StatusIdle, session.StatusLoading:
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			default:
				s.confirmEnd = true
			}
		}
		return s, nil
	}

	// Active question.
	switch key {
	case "esc":
		s.confirmEnd = true
		return s, nil
	case "p":
		return s, s.togglePause()
	case "enter":
		if choice := s.mc.SelectedChoice(); choice != nil {
			s.mc.Submit()
			return s, s.submitAnswer(choice.ID)
		}
		return s, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.mc.Choices) {
			s.mc.Select(idx)
			s.mc.Submit()
			return s, s.submitAnswer(s.mc.Choices[idx].ID)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

func (s *DrillScreen) busy() bool {
	return s.loading || s.submitting || s.mutating
}

// retry re-runs the newest failed operation: an unresolved submission
// first, then the start that never landed, then the next-question fetch.
func (s *DrillScreen) retry() tea.Cmd {
	if s.pendingOption != "" {
		return s.submitAnswer(s.pendingOption)
	}
	if s.ctl.Status() == session.StatusIdle {
		s.loading = true
		return tea.Batch(s.spin.Tick, s.startSession())
	}
	return s.fetchNext()
}

func (s *DrillScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{Err: s.ctl.Start(context.Background(), s.cfg)}
	}
}

func (s *DrillScreen) fetchNext() tea.Cmd {
	s.loading = true
	fetch := func() tea.Msg {
		q, err := s.ctl.FetchNextQuestion(context.Background())
		if err != nil {
			return questionMsg{Err: err}
		}
		if q == nil {
			return questionMsg{Exhausted: true}
		}
		return questionMsg{Question: q}
	}
	return tea.Batch(s.spin.Tick, fetch)
}

func (s *DrillScreen) submitAnswer(optionID string) tea.Cmd {
	s.submitting = true
	s.pendingOption = optionID
	submit := func() tea.Msg {
		res, err := s.ctl.SubmitAnswer(context.Background(), optionID)
		return answerMsg{Result: res, Err: err}
	}
	return tea.Batch(s.spin.Tick, submit)
}

func (s *DrillScreen) togglePause() tea.Cmd {
	s.mutating = true
	paused := s.ctl.Status() == session.StatusPaused
	toggle := func() tea.Msg {
		if paused {
			return pauseToggledMsg{Err: s.ctl.Resume(context.Background())}
		}
		return pauseToggledMsg{Err: s.ctl.Pause(context.Background())}
	}
	return tea.Batch(s.spin.Tick, toggle)
}

func (s *DrillScreen) endSession() tea.Cmd {
	s.mutating = true
	end := func() tea.Msg {
		return endedMsg{Err: s.ctl.End(context.Background())}
	}
	return tea.Batch(s.spin.Tick, end)
}

func (s *DrillScreen) reconcile() tea.Cmd {
	s.mutating = true
	s.errMsg = ""
	rec := func() tea.Msg {
		return reconciledMsg{Err: s.ctl.Reconcile(context.Background())}
	}
	return tea.Batch(s.spin.Tick, rec)
}

func (s *DrillScreen) showSummary() tea.Cmd {
	view := s.ctl.View()
	sum := s.ctl.Summary()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(s.gw, s.events, view, sum),
		}
	}
}
