// Package dispatch gives every user-intended answer submission exactly one
// idempotency key. Retries of the same logical submission reuse the key;
// a new question mints a fresh one. The server dedupes by key, so a
// timeout-then-retry can never double-count an answer.
package dispatch

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/store"
)

// Journal is the slice of the event journal the dispatcher needs. Keys are
// journaled when minted and again when their submission settles, so a
// crash between mint and response does not leak a fresh key on restart.
type Journal interface {
	AppendSubmissionEvent(ctx context.Context, data store.SubmissionEventData) error
	PendingSubmissions(ctx context.Context, sessionID string) ([]store.PendingSubmission, error)
}

// Dispatcher owns idempotency keys and recorded outcomes for one session.
type Dispatcher struct {
	gw      gateway.Gateway
	journal Journal
	session string

	mu       sync.Mutex
	keys     map[string]string                // question id -> minted key
	resolved map[string]*gateway.AnswerResult // question id -> recorded outcome

	// Coalesces concurrent submits of the same key into one network call.
	sf singleflight.Group
}

// New creates a Dispatcher for sessionID. journal may be nil to disable
// journaling (tests).
func New(gw gateway.Gateway, journal Journal, sessionID string) *Dispatcher {
	return &Dispatcher{
		gw:       gw,
		journal:  journal,
		session:  sessionID,
		keys:     make(map[string]string),
		resolved: make(map[string]*gateway.AnswerResult),
	}
}

// Seed loads keys minted by a previous process that never settled. Reusing
// them means a submission whose response was lost in a crash still cannot
// double-count: the server sees the same key again.
func (d *Dispatcher) Seed(ctx context.Context) error {
	if d.journal == nil {
		return nil
	}

	pending, err := d.journal.PendingSubmissions(ctx, d.session)
	if err != nil {
		return fmt.Errorf("seed pending submissions: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range pending {
		d.keys[p.QuestionID] = p.IdempotencyKey
	}
	return nil
}

// Submit sends one answer. An already-resolved question short-circuits
// locally and returns the recorded outcome without touching the network.
func (d *Dispatcher) Submit(ctx context.Context, questionID, selectedOption string) (*gateway.AnswerResult, error) {
	d.mu.Lock()
	if res, ok := d.resolved[questionID]; ok {
		d.mu.Unlock()
		return res, nil
	}

	key, ok := d.keys[questionID]
	minted := false
	if !ok {
		key = uuid.NewString()
		d.keys[questionID] = key
		minted = true
	}
	d.mu.Unlock()

	// The dispatched row goes in before the first attempt, so the key is
	// on disk even if the process dies mid-flight.
	if minted {
		d.record(ctx, store.SubmissionEventData{
			SessionID:      d.session,
			QuestionID:     questionID,
			IdempotencyKey: key,
			Phase:          "dispatched",
			SelectedOption: selectedOption,
		})
	}

	v, err, _ := d.sf.Do(key, func() (any, error) {
		res, err := d.gw.SubmitAnswer(ctx, gateway.SubmitAnswerRequest{
			SessionID:      d.session,
			QuestionID:     questionID,
			SelectedOption: selectedOption,
		}, key)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.resolved[questionID] = res
		d.mu.Unlock()

		d.record(ctx, store.SubmissionEventData{
			SessionID:      d.session,
			QuestionID:     questionID,
			IdempotencyKey: key,
			Phase:          "resolved",
			SelectedOption: selectedOption,
			Correct:        res.Correct,
			Answered:       res.Stats.Answered,
			CorrectCount:   res.Stats.CorrectCount,
			Version:        res.Stats.Version,
		})
		return res, nil
	})
	if err != nil {
		// Only a definitive server rejection settles the key. Transport,
		// rate-limit and 5xx failures leave it pending so a retry reuses it.
		switch gateway.KindOf(err) {
		case gateway.KindValidation, gateway.KindNotFound:
			d.record(ctx, store.SubmissionEventData{
				SessionID:      d.session,
				QuestionID:     questionID,
				IdempotencyKey: key,
				Phase:          "failed",
				SelectedOption: selectedOption,
				ErrorKind:      string(gateway.KindOf(err)),
			})
		}
		return nil, err
	}

	return v.(*gateway.AnswerResult), nil
}

// Resolved reports whether questionID already has a recorded outcome.
func (d *Dispatcher) Resolved(questionID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.resolved[questionID]
	return ok
}

// record appends a journal row. A journaling failure never fails the
// submission.
func (d *Dispatcher) record(ctx context.Context, data store.SubmissionEventData) {
	if d.journal == nil {
		return
	}
	if err := d.journal.AppendSubmissionEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal submission event: %v\n", err)
	}
}
