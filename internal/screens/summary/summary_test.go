package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/session"
)

func testView() session.View {
	return session.View{
		SessionID:      "s-1",
		Kind:           gateway.KindAdaptive,
		Status:         session.StatusEnded,
		TotalQuestions: 10,
		Answered:       10,
		CorrectCount:   7,
	}
}

func testSummary() *gateway.SessionSummary {
	return &gateway.SessionSummary{
		TotalQuestions: 10,
		CorrectCount:   7,
		Accuracy:       0.7,
		DurationSecs:   410,
		IncorrectCount: 3,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(gateway.NewMock(), nil, testView(), testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(gateway.NewMock(), nil, testView(), testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "70%") {
		t.Errorf("expected accuracy in view, got:\n%s", view)
	}
	if !strings.Contains(view, "6:50") {
		t.Errorf("expected duration in view, got:\n%s", view)
	}
}

func TestSummaryScreen_ReviewOfferShown(t *testing.T) {
	mock := gateway.NewMock()
	mock.AvailabilityQueue = []gateway.MockAvailability{
		{Avail: &gateway.ReviewAvailability{Available: true, IncorrectCount: 3}},
	}

	s := New(mock, nil, testView(), testSummary())
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected an availability probe command")
	}
	updated, _ := s.Update(cmd())
	s = updated.(*SummaryScreen)

	view := s.View(80, 24)
	if !strings.Contains(view, "Review your 3 missed questions") {
		t.Errorf("expected review offer in view, got:\n%s", view)
	}
}

func TestSummaryScreen_NoOfferWithoutMisses(t *testing.T) {
	mock := gateway.NewMock()
	mock.AvailabilityQueue = []gateway.MockAvailability{
		{Avail: &gateway.ReviewAvailability{Available: false}},
	}

	s := New(mock, nil, testView(), testSummary())
	updated, _ := s.Update(s.Init()())
	s = updated.(*SummaryScreen)

	view := s.View(80, 24)
	if strings.Contains(view, "Review your") {
		t.Errorf("expected no review offer, got:\n%s", view)
	}
}

func TestSummaryScreen_DeclineKeepsSummary(t *testing.T) {
	mock := gateway.NewMock()
	mock.AvailabilityQueue = []gateway.MockAvailability{
		{Avail: &gateway.ReviewAvailability{Available: true, IncorrectCount: 2}},
	}

	s := New(mock, nil, testView(), testSummary())
	updated, _ := s.Update(s.Init()())
	s = updated.(*SummaryScreen)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: 'n'})
	s = updated.(*SummaryScreen)
	if cmd == nil {
		t.Fatal("expected a dismiss command on N")
	}
	updated, _ = s.Update(cmd())
	s = updated.(*SummaryScreen)

	if got := mock.CallCount("StartReview"); got != 0 {
		t.Errorf("StartReview calls = %d, want 0", got)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Press Enter to continue") {
		t.Errorf("expected plain summary after decline, got:\n%s", view)
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(gateway.NewMock(), nil, testView(), testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(gateway.NewMock(), nil, testView(), testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
