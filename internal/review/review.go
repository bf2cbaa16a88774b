// Package review tracks one reinforcement round over an ended session.
//
// A round walks the questions the learner missed. Every answered review
// question bumps the reviewed count; the reinforced count moves only when
// the platform reports the answer as correct and as reinforcement of a
// previously-missed concept. The rate is always derived from those two
// counts, never stored, so it cannot drift from them.
package review

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/store"
)

// Phase is the tracker's position in the review flow.
type Phase string

const (
	PhaseIdle      Phase = "idle"      // Availability not yet confirmed
	PhasePrompt    Phase = "prompt"    // Offer shown, awaiting the learner's choice
	PhaseLoading   Phase = "loading"   // Start call in flight
	PhaseActive    Phase = "active"    // Serving review questions
	PhaseCompleted Phase = "completed" // All questions exhausted, summary held
	PhaseSkipped   Phase = "skipped"   // Declined or abandoned
	PhaseError     Phase = "error"     // Last call failed; the learner may re-trigger
)

var (
	// ErrAlreadyChecked is returned when availability was already probed
	// for this tracker.
	ErrAlreadyChecked = errors.New("availability already checked")

	// ErrNotOffered is returned by Start before an offer is on the table.
	ErrNotOffered = errors.New("no review offered")

	// ErrNotActive is returned when an operation needs a running round.
	ErrNotActive = errors.New("review round is not active")

	// ErrNoQuestion is returned when no review question is pending.
	ErrNoQuestion = errors.New("no review question pending")

	// ErrNoSelection is returned by SubmitAnswer before SelectAnswer.
	ErrNoSelection = errors.New("no option selected")

	// ErrBusy is returned when another review call is still in flight.
	ErrBusy = errors.New("another review call is in flight")
)

// View is a read-only copy of the tracker's state.
type View struct {
	Phase           Phase
	SessionID       string
	ReviewID        string
	Available       bool
	IncorrectCount  int
	TotalToReview   int
	ReviewedCount   int
	ReinforcedCount int
	Selected        string
	ErrMsg          string
}

// Tracker runs the reinforcement flow for one ended session. Methods are
// safe for concurrent use; network calls run outside the state mutex.
type Tracker struct {
	gw      gateway.Gateway
	journal store.EventRepo // nil disables journaling

	mu              sync.Mutex
	phase           Phase
	sessionID       string
	reviewID        string
	available       bool
	incorrectCount  int
	totalToReview   int
	reviewedCount   int
	reinforcedCount int
	current         *gateway.Question
	selected        string
	answerKey       string // idempotency key for the current question
	lastResult      *gateway.ReviewAnswerResult
	summary         *gateway.ReviewSummary
	checked         bool
	summaryFetched  bool
	busy            bool
	errMsg          string
	lastErr         error
}

// NewTracker creates a tracker keyed to a prior ended session. journal may
// be nil to disable local journaling.
func NewTracker(gw gateway.Gateway, journal store.EventRepo, sessionID string) *Tracker {
	return &Tracker{gw: gw, journal: journal, sessionID: sessionID, phase: PhaseIdle}
}

// CheckAvailability asks the platform whether the session left anything to
// review, and moves to the prompt phase when it did. It runs at most once
// per tracker; later calls return ErrAlreadyChecked without a network call.
func (t *Tracker) CheckAvailability(ctx context.Context) error {
	t.mu.Lock()
	if t.checked {
		t.mu.Unlock()
		return ErrAlreadyChecked
	}
	t.checked = true
	id := t.sessionID
	t.mu.Unlock()

	avail, err := t.gw.ReviewAvailability(ctx, id)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		// The offer quietly stays off the table; the prompt is advisory
		// and a failed probe must not block the rest of the flow.
		t.lastErr = err
		return err
	}
	t.available = avail.Available
	t.incorrectCount = avail.IncorrectCount
	if avail.Available {
		t.phase = PhasePrompt
		t.record(ctx, "offered", false, false)
	}
	return nil
}

// Start opens the review round on the platform. Legal from the prompt
// phase, and from the error phase left by a failed start so the learner
// can trigger it again.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	retriggered := t.phase == PhaseError && t.reviewID == "" && t.available
	if t.phase != PhasePrompt && !retriggered {
		t.mu.Unlock()
		return ErrNotOffered
	}
	t.phase = PhaseLoading
	id := t.sessionID
	t.mu.Unlock()

	snap, err := t.gw.StartReview(ctx, gateway.StartReviewRequest{SessionID: id})

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.phase = PhaseError
		t.fail(err)
		return err
	}
	t.reviewID = snap.ReviewID
	t.totalToReview = snap.TotalToReview
	t.reviewedCount = snap.ReviewedCount
	t.phase = PhaseActive
	t.errMsg = ""
	t.record(ctx, "start", false, false)
	return nil
}

// SelectAnswer stages an option for the pending question. Selection is
// local; nothing is sent until SubmitAnswer.
func (t *Tracker) SelectAnswer(optionID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhaseActive && t.phase != PhaseError {
		return ErrNotActive
	}
	if t.current == nil {
		return ErrNoQuestion
	}
	t.selected = optionID
	return nil
}

// SubmitAnswer sends the staged selection. The reviewed count always
// increments on success; the reinforced count only when the platform
// reports the answer correct and reinforcing. A failed submission parks
// the tracker in the error phase with the selection kept, so the learner
// can re-trigger the same submission; the idempotency key is reused.
func (t *Tracker) SubmitAnswer(ctx context.Context) (*gateway.ReviewAnswerResult, error) {
	t.mu.Lock()
	if t.phase != PhaseActive && t.phase != PhaseError {
		t.mu.Unlock()
		return nil, ErrNotActive
	}
	if t.current == nil {
		t.mu.Unlock()
		return nil, ErrNoQuestion
	}
	if t.selected == "" {
		t.mu.Unlock()
		return nil, ErrNoSelection
	}
	if t.busy {
		t.mu.Unlock()
		return nil, ErrBusy
	}
	t.busy = true
	if t.answerKey == "" {
		t.answerKey = uuid.NewString()
	}
	reviewID, key := t.reviewID, t.answerKey
	req := gateway.ReviewAnswerRequest{QuestionID: t.current.ID, SelectedOption: t.selected}
	t.mu.Unlock()

	res, err := t.gw.SubmitReviewAnswer(ctx, reviewID, req, key)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy = false
	if err != nil {
		t.phase = PhaseError
		t.fail(err)
		return nil, err
	}
	if t.current == nil || t.current.ID != req.QuestionID {
		// The round moved on while this reply was in flight; drop it.
		return nil, ErrNoQuestion
	}
	t.reviewedCount++
	if res.Correct && res.Reinforced {
		t.reinforcedCount++
	}
	t.lastResult = res
	t.selected = ""
	t.answerKey = ""
	t.phase = PhaseActive
	t.errMsg = ""
	t.record(ctx, "answer", res.Correct, res.Reinforced)
	return res, nil
}

// ProceedToNext fetches the next review question. When the platform says
// none remain, the terminal summary is fetched exactly once and the
// tracker completes.
func (t *Tracker) ProceedToNext(ctx context.Context) (*gateway.Question, error) {
	t.mu.Lock()
	// Legal from the error phase only when no submission is staged: a
	// kept selection means an unresolved answer that must be re-sent
	// first, not stepped over.
	if t.phase != PhaseActive && !(t.phase == PhaseError && t.selected == "") {
		t.mu.Unlock()
		return nil, ErrNotActive
	}
	if t.busy {
		t.mu.Unlock()
		return nil, ErrBusy
	}
	t.busy = true
	reviewID := t.reviewID
	t.mu.Unlock()

	q, err := t.gw.NextReviewQuestion(ctx, reviewID)

	t.mu.Lock()
	if err != nil {
		t.busy = false
		t.phase = PhaseError
		t.fail(err)
		t.mu.Unlock()
		return nil, err
	}
	if q != nil {
		t.busy = false
		t.current = q
		t.selected = ""
		t.answerKey = ""
		t.lastResult = nil
		t.phase = PhaseActive
		t.errMsg = ""
		t.mu.Unlock()
		return q, nil
	}
	if t.summaryFetched {
		t.busy = false
		t.mu.Unlock()
		return nil, nil
	}
	// busy stays held across the summary fetch so nothing else can slip
	// into the round between exhaustion and completion.
	t.summaryFetched = true
	t.current = nil
	t.mu.Unlock()

	summary, err := t.gw.ReviewSummary(ctx, reviewID)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy = false
	if err != nil {
		// The round is over either way; fold the local tallies into a
		// summary so the learner still gets a closing screen.
		t.summary = &gateway.ReviewSummary{
			TotalToReview:   t.totalToReview,
			ReviewedCount:   t.reviewedCount,
			ReinforcedCount: t.reinforcedCount,
		}
	} else {
		t.summary = summary
	}
	t.phase = PhaseCompleted
	t.record(ctx, "complete", false, false)
	return nil, nil
}

// Skip abandons the running round on the platform.
func (t *Tracker) Skip(ctx context.Context) error {
	t.mu.Lock()
	if t.phase != PhaseActive && t.phase != PhaseError {
		t.mu.Unlock()
		return ErrNotActive
	}
	if t.busy {
		t.mu.Unlock()
		return ErrBusy
	}
	t.busy = true
	reviewID := t.reviewID
	t.mu.Unlock()

	err := t.gw.SkipReview(ctx, reviewID)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy = false
	if err != nil {
		t.phase = PhaseError
		t.fail(err)
		return err
	}
	t.phase = PhaseSkipped
	t.current = nil
	t.selected = ""
	t.errMsg = ""
	t.record(ctx, "skip", false, false)
	return nil
}

// Dismiss declines the offer without touching the platform.
func (t *Tracker) Dismiss(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhasePrompt {
		return ErrNotOffered
	}
	t.phase = PhaseSkipped
	t.record(ctx, "dismiss", false, false)
	return nil
}

// ReinforcementRate derives the share of reviewed questions that
// reinforced a previously-missed concept. Zero when nothing was reviewed.
func (t *Tracker) ReinforcementRate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Rate(t.reviewedCount, t.reinforcedCount)
}

// Rate is the reinforcement rate for the given counts. Zero when reviewed
// is zero.
func Rate(reviewed, reinforced int) float64 {
	if reviewed == 0 {
		return 0
	}
	return float64(reinforced) / float64(reviewed)
}

// View returns a copy of the current state.
func (t *Tracker) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return View{
		Phase:           t.phase,
		SessionID:       t.sessionID,
		ReviewID:        t.reviewID,
		Available:       t.available,
		IncorrectCount:  t.incorrectCount,
		TotalToReview:   t.totalToReview,
		ReviewedCount:   t.reviewedCount,
		ReinforcedCount: t.reinforcedCount,
		Selected:        t.selected,
		ErrMsg:          t.errMsg,
	}
}

// Phase returns the current phase.
func (t *Tracker) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// CurrentQuestion returns the pending review question, or nil.
func (t *Tracker) CurrentQuestion() *gateway.Question {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// LastResult returns the grading of the most recent answer, or nil.
func (t *Tracker) LastResult() *gateway.ReviewAnswerResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastResult
}

// Summary returns the terminal summary, or nil before completion.
func (t *Tracker) Summary() *gateway.ReviewSummary {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.summary == nil {
		return nil
	}
	s := *t.summary
	return &s
}

// Err returns the last failure, or nil.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// fail stores the failure with the server's structured message when one
// came back. Callers hold t.mu.
func (t *Tracker) fail(err error) {
	t.lastErr = err
	t.errMsg = errorMessage(err)
}

// errorMessage prefers the platform's structured message over transport
// text.
func errorMessage(err error) string {
	var ge *gateway.Error
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	return err.Error()
}

// record journals one review event with the current tallies. Journal
// failures only warn.
func (t *Tracker) record(ctx context.Context, action string, correct, reinforced bool) {
	if t.journal == nil {
		return
	}
	err := t.journal.AppendReviewEvent(ctx, store.ReviewEventData{
		SessionID:       t.sessionID,
		ReviewID:        t.reviewID,
		Action:          action,
		Correct:         correct,
		Reinforced:      reinforced,
		ReviewedCount:   t.reviewedCount,
		ReinforcedCount: t.reinforcedCount,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to journal review event:", err)
	}
}
