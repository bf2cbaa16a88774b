// Package session coordinates one assessment session against the platform.
//
// The controller owns the session identity, lifecycle status, server version
// and current question. Network calls always run outside the state mutex;
// when a response arrives the controller re-checks that the session it was
// issued for is still the current one (epoch plus session id) and discards
// the response otherwise, so a slow reply can never resurrect stale state.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/abhisek/skilldrill/internal/dispatch"
	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/occ"
	"github.com/abhisek/skilldrill/internal/store"
)

// StartConfig selects what kind of session to ask the platform for.
type StartConfig struct {
	Kind     gateway.SessionKind
	Strategy string

	// RequestedQuestions is advisory; the platform's planner decides the
	// actual total.
	RequestedQuestions int
}

// Controller drives the session lifecycle: idle, loading, active, paused,
// ended, with an error state entered on version conflicts. All methods are
// safe for concurrent use.
type Controller struct {
	gw      gateway.Gateway
	journal store.EventRepo // nil disables journaling

	mu             sync.Mutex
	epoch          uint64
	status         Status
	sessionID      string
	kind           gateway.SessionKind
	strategy       string
	version        int64
	isResumed      bool
	totalQuestions int
	answered       int
	correctCount   int
	startedAt      time.Time
	current        *gateway.Question
	exhausted      bool
	summary        *gateway.SessionSummary
	conflict       *occ.ConflictError
	lastErr        error
	mutating       bool // a pause/resume/end call is in flight
	endInFlight    bool // the in-flight mutation is an end
	dispatcher     *dispatch.Dispatcher

	fetch singleflight.Group
}

// New creates a controller. journal may be nil to disable local journaling.
func New(gw gateway.Gateway, journal store.EventRepo) *Controller {
	return &Controller{gw: gw, journal: journal, status: StatusIdle}
}

// Start begins a session. The platform may hand back an existing active
// session instead of creating one (IsResumed on the view); that is the
// normal resume path, not an error. Start is rejected while a session is in
// progress, except when an end call for it is already in flight; the late
// end response is then discarded.
func (c *Controller) Start(ctx context.Context, cfg StartConfig) error {
	c.mu.Lock()
	switch {
	case c.status == StatusError:
		c.mu.Unlock()
		return ErrReconcileRequired
	case c.status == StatusLoading:
		c.mu.Unlock()
		return ErrBusy
	case (c.status == StatusActive || c.status == StatusPaused) && !c.endInFlight:
		c.mu.Unlock()
		return ErrSessionActive
	}

	// The previous session, if any, is abandoned here. Bumping the epoch
	// makes every response still in flight for it land as stale.
	c.epoch++
	epoch := c.epoch
	c.clearLocked()
	c.status = StatusLoading
	c.kind = cfg.Kind
	c.strategy = cfg.Strategy
	c.mu.Unlock()

	snap, err := c.gw.StartSession(ctx, gateway.StartSessionRequest{
		Kind:               cfg.Kind,
		Strategy:           cfg.Strategy,
		RequestedQuestions: cfg.RequestedQuestions,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return ErrStale
	}
	if err != nil {
		c.status = StatusIdle
		return err
	}

	c.sessionID = snap.SessionID
	c.kind = snap.Kind
	c.strategy = snap.Strategy
	c.version = snap.Version
	c.isResumed = snap.IsResumed
	c.totalQuestions = snap.TotalQuestions
	c.correctCount = snap.CorrectCount
	c.startedAt = snap.StartedAt
	c.status = statusFromServer(snap.Status)

	var j dispatch.Journal
	if c.journal != nil {
		j = c.journal
	}
	c.dispatcher = dispatch.New(c.gw, j, snap.SessionID)
	if snap.IsResumed {
		// Re-adopt keys minted before a restart so interrupted submissions
		// retry with their original identity.
		if err := c.dispatcher.Seed(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to reload pending submissions:", err)
		}
	}

	c.record(ctx, store.SessionEventData{
		SessionID:    snap.SessionID,
		Action:       "start",
		Kind:         string(snap.Kind),
		Strategy:     snap.Strategy,
		Resumed:      snap.IsResumed,
		Version:      snap.Version,
		CorrectCount: snap.CorrectCount,
	})
	return nil
}

// Pause suspends the active session, carrying the current version.
func (c *Controller) Pause(ctx context.Context) error {
	return c.mutate(ctx, "pause", false)
}

// Resume reactivates a paused session, carrying the current version.
func (c *Controller) Resume(ctx context.Context) error {
	return c.mutate(ctx, "resume", false)
}

// End terminates the session. Ending an already-ended session is a no-op.
func (c *Controller) End(ctx context.Context) error {
	return c.mutate(ctx, "end", true)
}

// mutate runs one guarded lifecycle mutation. On a version conflict the
// controller enters the error state and refuses further mutations until
// Reconcile or Reset; transport failures leave state untouched so the
// caller can retry at its own discretion.
func (c *Controller) mutate(ctx context.Context, action string, isEnd bool) error {
	c.mu.Lock()
	if isEnd && c.status == StatusEnded {
		c.mu.Unlock()
		return nil
	}
	if c.status == StatusError {
		c.mu.Unlock()
		return ErrReconcileRequired
	}
	if c.sessionID == "" {
		c.mu.Unlock()
		return ErrNoSession
	}
	switch action {
	case "pause":
		if c.status != StatusActive {
			c.mu.Unlock()
			return ErrNotActive
		}
	case "resume":
		if c.status != StatusPaused {
			c.mu.Unlock()
			return ErrNotPaused
		}
	case "end":
		if c.status != StatusActive && c.status != StatusPaused {
			c.mu.Unlock()
			return ErrNoSession
		}
	}
	if c.mutating {
		c.mu.Unlock()
		return ErrBusy
	}
	c.mutating = true
	c.endInFlight = isEnd
	epoch, id, expected := c.epoch, c.sessionID, c.version
	c.mu.Unlock()

	resp, err := occ.Apply(ctx, expected, func(ctx context.Context, req gateway.MutateSessionRequest) (*gateway.MutateSessionResponse, error) {
		switch action {
		case "pause":
			return c.gw.PauseSession(ctx, id, req)
		case "resume":
			return c.gw.ResumeSession(ctx, id, req)
		default:
			return c.gw.EndSession(ctx, id, req)
		}
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch || id != c.sessionID {
		return ErrStale
	}
	c.mutating = false
	c.endInFlight = false
	if err != nil {
		var conflict *occ.ConflictError
		var mono *occ.MonotonicityError
		switch {
		case errors.As(err, &conflict):
			c.status = StatusError
			c.conflict = conflict
			c.lastErr = err
			c.record(ctx, store.SessionEventData{
				SessionID: id,
				Action:    "conflict",
				Kind:      string(c.kind),
				Version:   conflict.ServerVersion,
			})
		case errors.As(err, &mono):
			c.status = StatusError
			c.lastErr = err
		}
		return err
	}

	c.version = resp.Version
	c.status = statusFromServer(resp.Status)
	ev := store.SessionEventData{
		SessionID:    id,
		Action:       action,
		Kind:         string(c.kind),
		Strategy:     c.strategy,
		Version:      resp.Version,
		Answered:     c.answered,
		CorrectCount: c.correctCount,
	}
	if action == "end" {
		ev.DurationSecs = c.elapsedSecsLocked()
	}
	c.record(ctx, ev)
	return nil
}

// FetchNextQuestion draws the next question. Concurrent calls share a
// single network request and observe the same resolved question. A nil
// question with a nil error means the planned questions are exhausted.
func (c *Controller) FetchNextQuestion(ctx context.Context) (*gateway.Question, error) {
	c.mu.Lock()
	if c.status == StatusError {
		c.mu.Unlock()
		return nil, ErrReconcileRequired
	}
	if c.status != StatusActive {
		c.mu.Unlock()
		if c.sessionID == "" {
			return nil, ErrNoSession
		}
		return nil, ErrNotActive
	}
	epoch, id := c.epoch, c.sessionID
	c.mu.Unlock()

	v, err, _ := c.fetch.Do(id, func() (interface{}, error) {
		return c.gw.NextQuestion(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	q, _ := v.(*gateway.Question)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch || id != c.sessionID {
		return nil, ErrStale
	}
	if q == nil {
		c.current = nil
		c.exhausted = true
		return nil, nil
	}
	c.current = q
	c.exhausted = false
	return q, nil
}

// SubmitAnswer records the selected option for the current question through
// the idempotent dispatcher and adopts the server-reported statistics. When
// the response marks the session complete the controller moves straight to
// ended and keeps the inline summary.
func (c *Controller) SubmitAnswer(ctx context.Context, optionID string) (*gateway.AnswerResult, error) {
	c.mu.Lock()
	if c.status == StatusError {
		c.mu.Unlock()
		return nil, ErrReconcileRequired
	}
	if c.status != StatusActive {
		c.mu.Unlock()
		if c.sessionID == "" {
			return nil, ErrNoSession
		}
		return nil, ErrNotActive
	}
	if c.current == nil {
		c.mu.Unlock()
		return nil, ErrNoQuestion
	}
	epoch, id, qid := c.epoch, c.sessionID, c.current.ID
	d := c.dispatcher
	c.mu.Unlock()

	res, err := d.Submit(ctx, qid, optionID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch || id != c.sessionID {
		return nil, ErrStale
	}
	version, err := occ.Accept(c.version, res.Stats.Version)
	if err != nil {
		return nil, err
	}
	c.version = version
	c.answered = res.Stats.Answered
	c.correctCount = res.Stats.CorrectCount
	if c.current != nil && c.current.ID == qid {
		c.current = nil
	}
	if res.Completed {
		c.status = StatusEnded
		c.summary = res.Summary
		c.record(ctx, store.SessionEventData{
			SessionID:    id,
			Action:       "end",
			Kind:         string(c.kind),
			Strategy:     c.strategy,
			Version:      version,
			Answered:     res.Stats.Answered,
			CorrectCount: res.Stats.CorrectCount,
			DurationSecs: c.elapsedSecsLocked(),
		})
	}
	return res, nil
}

// Reconcile refetches the session from the server and adopts its state
// wholesale. This is the way out of the error state after a version
// conflict: the server's status, version and counters replace the local
// ones and any pending question is dropped.
func (c *Controller) Reconcile(ctx context.Context) error {
	c.mu.Lock()
	if c.sessionID == "" {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.mutating {
		c.mu.Unlock()
		return ErrBusy
	}
	epoch, id := c.epoch, c.sessionID
	c.mu.Unlock()

	snap, err := c.gw.GetSession(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch || id != c.sessionID {
		return ErrStale
	}
	if err != nil {
		return err
	}

	c.version = snap.Version
	c.status = statusFromServer(snap.Status)
	c.totalQuestions = snap.TotalQuestions
	c.correctCount = snap.CorrectCount
	c.current = nil
	c.conflict = nil
	c.lastErr = nil
	c.record(ctx, store.SessionEventData{
		SessionID:    id,
		Action:       "reconcile",
		Kind:         string(c.kind),
		Version:      snap.Version,
		CorrectCount: snap.CorrectCount,
	})
	return nil
}

// Reset discards all local session state and returns to idle. Responses
// still in flight for the discarded session are ignored when they land.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.clearLocked()
}

// View returns a copy of the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		SessionID:      c.sessionID,
		Kind:           c.kind,
		Strategy:       c.strategy,
		Status:         c.status,
		Version:        c.version,
		IsResumed:      c.isResumed,
		TotalQuestions: c.totalQuestions,
		Answered:       c.answered,
		CorrectCount:   c.correctCount,
		Exhausted:      c.exhausted,
		StartedAt:      c.startedAt,
	}
}

// Status returns the current lifecycle status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// CurrentQuestion returns the question awaiting an answer, or nil.
func (c *Controller) CurrentQuestion() *gateway.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Summary returns the completion summary, or nil before the session ends.
// When the server never sent an inline summary the counters are folded into
// one locally so the caller always has something to render.
func (c *Controller) Summary() *gateway.SessionSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.summary != nil {
		s := *c.summary
		return &s
	}
	if c.status != StatusEnded {
		return nil
	}
	s := &gateway.SessionSummary{
		TotalQuestions: c.totalQuestions,
		CorrectCount:   c.correctCount,
		DurationSecs:   c.elapsedSecsLocked(),
	}
	if c.answered > 0 {
		s.Accuracy = float64(c.correctCount) / float64(c.answered)
		s.IncorrectCount = c.answered - c.correctCount
	}
	return s
}

// Conflict returns the pending version conflict, or nil.
func (c *Controller) Conflict() *occ.ConflictError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conflict
}

// Err returns the error that put the controller into the error state.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// clearLocked wipes all per-session state. Callers hold c.mu.
func (c *Controller) clearLocked() {
	c.status = StatusIdle
	c.sessionID = ""
	c.kind = ""
	c.strategy = ""
	c.version = 0
	c.isResumed = false
	c.totalQuestions = 0
	c.answered = 0
	c.correctCount = 0
	c.startedAt = time.Time{}
	c.current = nil
	c.exhausted = false
	c.summary = nil
	c.conflict = nil
	c.lastErr = nil
	c.mutating = false
	c.endInFlight = false
	c.dispatcher = nil
}

// elapsedSecsLocked reports whole seconds since the session started.
// Callers hold c.mu.
func (c *Controller) elapsedSecsLocked() int {
	if c.startedAt.IsZero() {
		return 0
	}
	return int(time.Since(c.startedAt).Seconds())
}

// record journals one lifecycle event. Journal failures only warn; the
// session keeps going.
func (c *Controller) record(ctx context.Context, data store.SessionEventData) {
	if c.journal == nil {
		return
	}
	if err := c.journal.AppendSessionEvent(ctx, data); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to journal session event:", err)
	}
}
