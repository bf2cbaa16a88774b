package drill

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/router"
	"github.com/abhisek/skilldrill/internal/session"
)

func activeSnapshot(id string, version int64) *gateway.SessionSnapshot {
	return &gateway.SessionSnapshot{
		SessionID: id,
		Kind:      gateway.KindAdaptive,
		Status:    gateway.SessionActive,
		Version:   version,
		StartedAt: time.Now(),
	}
}

func testQuestion(id string) *gateway.Question {
	return &gateway.Question{
		ID:     id,
		Prompt: "Which layer does TCP live in?",
		Topic:  "networking",
		Options: []gateway.Option{
			{ID: "opt-a", Text: "Transport"},
			{ID: "opt-b", Text: "Network"},
			{ID: "opt-c", Text: "Session"},
		},
	}
}

// startedScreen builds a screen whose controller has already started a
// session and presented the first question, without going through the
// async command plumbing.
func startedScreen(t *testing.T, mock *gateway.Mock) *DrillScreen {
	t.Helper()
	s := New(mock, nil, session.StartConfig{Kind: gateway.KindAdaptive})
	if err := s.ctl.Start(context.Background(), s.cfg); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	q, err := s.ctl.FetchNextQuestion(context.Background())
	if err != nil {
		t.Fatalf("FetchNextQuestion() error = %v", err)
	}
	s.Update(questionMsg{Question: q})
	return s
}

func TestDrillScreen_Title(t *testing.T) {
	s := New(gateway.NewMock(), nil, session.StartConfig{Kind: gateway.KindDiagnostic})
	if got := s.Title(); got != "Diagnostic" {
		t.Errorf("Title() = %q, want %q", got, "Diagnostic")
	}
}

func TestDrillScreen_LoadingBeforeFirstQuestion(t *testing.T) {
	s := New(gateway.NewMock(), nil, session.StartConfig{Kind: gateway.KindAdaptive})
	s.Init()

	view := s.View(80, 24)
	if !strings.Contains(view, "Starting your session") {
		t.Errorf("expected loading view, got:\n%s", view)
	}
}

func TestDrillScreen_QuestionRendersPromptAndOptions(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}

	s := startedScreen(t, mock)

	view := s.View(80, 24)
	if !strings.Contains(view, "Which layer does TCP live in?") {
		t.Errorf("expected question prompt, got:\n%s", view)
	}
	if !strings.Contains(view, "Transport") || !strings.Contains(view, "Network") {
		t.Errorf("expected answer options, got:\n%s", view)
	}
}

func TestDrillScreen_NumberKeyStagesSubmission(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}

	s := startedScreen(t, mock)

	_, cmd := s.Update(tea.KeyPressMsg{Code: '2'})
	if cmd == nil {
		t.Fatal("expected a submission command")
	}
	if !s.submitting {
		t.Error("expected screen to be submitting")
	}
	if s.pendingOption != "opt-b" {
		t.Errorf("pendingOption = %q, want %q", s.pendingOption, "opt-b")
	}
	if !s.mc.Submitted {
		t.Error("expected the choice list to lock in")
	}
}

func TestDrillScreen_FeedbackShowsVerdict(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}
	mock.AnswerQueue = []gateway.MockAnswer{{Result: &gateway.AnswerResult{
		Correct:     true,
		Explanation: "TCP is the transport layer's workhorse.",
		Stats:       gateway.AnswerStats{Answered: 1, CorrectCount: 1, Version: 2},
	}}}

	s := startedScreen(t, mock)
	res, err := s.ctl.SubmitAnswer(context.Background(), "opt-a")
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	s.Update(answerMsg{Result: res})

	if !s.showingFeedback {
		t.Fatal("expected feedback state")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Errorf("expected verdict, got:\n%s", view)
	}
	if !strings.Contains(view, "transport layer") {
		t.Errorf("expected explanation, got:\n%s", view)
	}
}

func TestDrillScreen_FinalAnswerHandsOffToSummary(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}
	mock.AnswerQueue = []gateway.MockAnswer{{Result: &gateway.AnswerResult{
		Correct:   true,
		Stats:     gateway.AnswerStats{Answered: 10, CorrectCount: 7, Version: 11},
		Completed: true,
		Summary: &gateway.SessionSummary{
			TotalQuestions: 10,
			CorrectCount:   7,
			Accuracy:       0.7,
		},
	}}}

	s := startedScreen(t, mock)
	res, err := s.ctl.SubmitAnswer(context.Background(), "opt-a")
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	s.Update(answerMsg{Result: res})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a hand-off command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Fatal("expected a summary screen in the replace message")
	}
}

func TestDrillScreen_ExhaustedOffersEnd(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}

	s := startedScreen(t, mock)
	s.Update(questionMsg{Exhausted: true})

	view := s.View(80, 24)
	if !strings.Contains(view, "every question") {
		t.Errorf("expected exhausted view, got:\n%s", view)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an end-session command")
	}
	if !s.mutating {
		t.Error("expected screen to be ending the session")
	}
}

func TestDrillScreen_ConflictOffersReconcileOrAbandon(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}
	mock.EndQueue = []gateway.MockMutate{
		{Err: &gateway.Error{Kind: gateway.KindVersionConflict, Status: 409, CurrentVersion: 4}},
	}

	s := startedScreen(t, mock)
	err := s.ctl.End(context.Background())
	if err == nil {
		t.Fatal("expected End() to conflict")
	}
	s.Update(endedMsg{Err: err})

	if s.ctl.Status() != session.StatusError {
		t.Fatalf("Status = %v, want %v", s.ctl.Status(), session.StatusError)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "out of sync") {
		t.Errorf("expected conflict view, got:\n%s", view)
	}

	// X abandons the session locally and pops back home.
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x'})
	if cmd == nil {
		t.Fatal("expected an abandon command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if s.ctl.Status() != session.StatusIdle {
		t.Errorf("Status after abandon = %v, want %v", s.ctl.Status(), session.StatusIdle)
	}
}

func TestDrillScreen_ConflictReconcileKey(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}
	mock.EndQueue = []gateway.MockMutate{
		{Err: &gateway.Error{Kind: gateway.KindVersionConflict, Status: 409, CurrentVersion: 4}},
	}

	s := startedScreen(t, mock)
	s.Update(endedMsg{Err: s.ctl.End(context.Background())})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r'})
	if cmd == nil {
		t.Fatal("expected a reconcile command")
	}
	if !s.mutating {
		t.Error("expected screen to be reconciling")
	}
}

func TestDrillScreen_RetryResubmitsSameOption(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}

	s := startedScreen(t, mock)
	s.Update(tea.KeyPressMsg{Code: '2'})
	s.Update(answerMsg{Err: &gateway.Error{Kind: gateway.KindTransport, Message: "connection refused"}})

	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if s.pendingOption != "opt-b" {
		t.Fatalf("pendingOption = %q, want it kept for retry", s.pendingOption)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	if !s.submitting || s.pendingOption != "opt-b" {
		t.Errorf("retry should resubmit opt-b; submitting=%v pendingOption=%q",
			s.submitting, s.pendingOption)
	}
}

func TestDrillScreen_EscAsksBeforeEnding(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}

	s := startedScreen(t, mock)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if !s.confirmEnd {
		t.Fatal("expected end confirmation")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Y to end") {
		t.Errorf("expected confirmation prompt, got:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: 'n'})
	if s.confirmEnd {
		t.Error("expected N to cancel the confirmation")
	}
}
