package session

import (
	"errors"
	"time"

	"github.com/abhisek/skilldrill/internal/gateway"
)

// Status is the local lifecycle state of the session controller.
type Status int

const (
	StatusIdle    Status = iota // No session
	StatusLoading               // Start call in flight
	StatusActive                // Serving questions
	StatusPaused                // Paused on the server
	StatusEnded                 // Terminal; summary available
	StatusError                 // Out of sync; Reconcile or Reset to leave
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrSessionActive is returned by Start while a session is already in
	// progress and no end call is in flight for it.
	ErrSessionActive = errors.New("a session is already in progress")

	// ErrNoSession is returned by operations that need a session when none
	// has been started.
	ErrNoSession = errors.New("no session in progress")

	// ErrNotActive is returned when an operation requires an active session.
	ErrNotActive = errors.New("session is not active")

	// ErrNotPaused is returned by Resume when the session is not paused.
	ErrNotPaused = errors.New("session is not paused")

	// ErrNoQuestion is returned by SubmitAnswer when no question is pending.
	ErrNoQuestion = errors.New("no question to answer")

	// ErrBusy is returned when another lifecycle call is still in flight.
	ErrBusy = errors.New("another operation is in flight")

	// ErrStale is returned when a response arrives for a session that has
	// since been replaced or reset; the response was discarded.
	ErrStale = errors.New("response discarded: session changed while the request was in flight")

	// ErrReconcileRequired is returned while the controller is in the error
	// state. The caller must Reconcile against the server or Reset before
	// issuing further mutations.
	ErrReconcileRequired = errors.New("local state out of sync: reconcile or reset first")
)

// View is a read-only copy of the controller's current state. Counters are
// the server's numbers; the controller never recomputes them locally.
type View struct {
	SessionID      string
	Kind           gateway.SessionKind
	Strategy       string
	Status         Status
	Version        int64
	IsResumed      bool
	TotalQuestions int
	Answered       int
	CorrectCount   int
	Exhausted      bool
	StartedAt      time.Time
}

// statusFromServer maps the platform's session status onto the local
// lifecycle state.
func statusFromServer(s gateway.SessionStatus) Status {
	switch s {
	case gateway.SessionPaused:
		return StatusPaused
	case gateway.SessionEnded:
		return StatusEnded
	default:
		return StatusActive
	}
}
