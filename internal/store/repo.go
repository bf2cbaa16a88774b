package store

import (
	"context"
	"time"
)

// SessionEventData captures one session lifecycle transition for the journal.
type SessionEventData struct {
	SessionID    string
	Action       string // start, pause, resume, end, conflict, reconcile
	Kind         string
	Strategy     string
	Resumed      bool
	Version      int64
	Answered     int
	CorrectCount int
	DurationSecs int
}

// SubmissionEventData captures one phase of an answer submission.
type SubmissionEventData struct {
	SessionID      string
	QuestionID     string
	IdempotencyKey string
	Phase          string // dispatched, resolved, failed
	SelectedOption string
	Correct        bool
	Answered       int
	CorrectCount   int
	Version        int64
	ErrorKind      string
}

// ReviewEventData captures reinforcement-round progress.
type ReviewEventData struct {
	SessionID       string
	ReviewID        string
	Action          string // offered, start, answer, skip, complete, dismiss
	Correct         bool
	Reinforced      bool
	ReviewedCount   int
	ReinforcedCount int
}

// GatewayCallEventData captures one platform API call.
type GatewayCallEventData struct {
	Operation string
	Success   bool
	Status    int
	ErrorKind string
	LatencyMs int64
}

// PendingSubmission is a minted idempotency key whose submission never
// resolved. After a restart these keys are reused, not re-minted.
type PendingSubmission struct {
	QuestionID     string
	IdempotencyKey string
	SelectedOption string
}

// ResolvedSubmission is the journaled outcome of a graded submission.
type ResolvedSubmission struct {
	QuestionID     string
	IdempotencyKey string
	Correct        bool
	Answered       int
	CorrectCount   int
	Version        int64
}

// SessionRecord summarizes one journaled session end, for offline stats.
type SessionRecord struct {
	SessionID    string
	Kind         string
	EndedAt      time.Time
	Answered     int
	CorrectCount int
	DurationSecs int
}

// ReviewTotals aggregates journaled review progress across rounds.
type ReviewTotals struct {
	Rounds          int
	ReviewedCount   int
	ReinforcedCount int
}

// EventRepo provides append and query access to the journal.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle transition.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendSubmissionEvent records one phase of an answer submission.
	AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error

	// AppendReviewEvent records reinforcement-round progress.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// AppendGatewayCall records a platform API call.
	AppendGatewayCall(ctx context.Context, data GatewayCallEventData) error

	// PendingSubmissions returns the keys minted for sessionID that were
	// never resolved and never terminally failed, oldest first.
	PendingSubmissions(ctx context.Context, sessionID string) ([]PendingSubmission, error)

	// ResolvedSubmission returns the journaled outcome for a question in a
	// session, or nil when none was recorded.
	ResolvedSubmission(ctx context.Context, sessionID, questionID string) (*ResolvedSubmission, error)

	// SessionHistory returns ended sessions, most recent first.
	// limit <= 0 means no limit.
	SessionHistory(ctx context.Context, limit int) ([]SessionRecord, error)

	// ReviewStats aggregates review progress across all journaled rounds.
	ReviewStats(ctx context.Context) (*ReviewTotals, error)
}

// ReadingSnapshot is the persisted last-good reading-stats fetch.
type ReadingSnapshot struct {
	ID                int
	Sequence          int64
	Timestamp         time.Time
	UnreadCount       int
	HighPriorityCount int
}

// SnapshotRepo persists reading-stats snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *ReadingSnapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*ReadingSnapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
