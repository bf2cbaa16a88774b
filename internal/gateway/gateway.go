package gateway

import (
	"context"
)

// Gateway is the typed boundary to the assessment platform. It translates
// Go calls into HTTP endpoints and normalized errors, nothing more: no
// retry, no version bookkeeping, no conflict recovery. Those live above it.
type Gateway interface {
	// StartSession creates a session, or resumes the caller's live one.
	// The platform decides which; the snapshot's IsResumed reports it.
	StartSession(ctx context.Context, req StartSessionRequest) (*SessionSnapshot, error)

	// GetSession fetches the server's current view of a session. Used for
	// reconciliation after a version conflict.
	GetSession(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	// PauseSession suspends an active session. The request carries the
	// caller's expected version; a stale one fails with KindVersionConflict.
	PauseSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error)

	// ResumeSession reactivates a paused session. Same version contract
	// as PauseSession.
	ResumeSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error)

	// EndSession terminates a session. Same version contract as
	// PauseSession.
	EndSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error)

	// NextQuestion fetches the next planned question. A nil Question with
	// nil error means the plan is exhausted, which is not a failure.
	NextQuestion(ctx context.Context, sessionID string) (*Question, error)

	// SubmitAnswer grades one answer. The idempotency key makes retries of
	// the same logical submission safe; the platform dedupes on it.
	SubmitAnswer(ctx context.Context, req SubmitAnswerRequest, idempotencyKey string) (*AnswerResult, error)

	// ReviewAvailability reports whether an ended session has anything
	// worth reinforcing.
	ReviewAvailability(ctx context.Context, sessionID string) (*ReviewAvailability, error)

	// StartReview opens a reinforcement round over a session's misses.
	StartReview(ctx context.Context, req StartReviewRequest) (*ReviewSnapshot, error)

	// NextReviewQuestion fetches the next review item. Nil with nil error
	// means the round is exhausted.
	NextReviewQuestion(ctx context.Context, reviewID string) (*Question, error)

	// SubmitReviewAnswer grades one review answer, with the same
	// idempotency contract as SubmitAnswer.
	SubmitReviewAnswer(ctx context.Context, reviewID string, req ReviewAnswerRequest, idempotencyKey string) (*ReviewAnswerResult, error)

	// SkipReview abandons an in-progress review round on the server.
	SkipReview(ctx context.Context, reviewID string) error

	// ReviewSummary fetches the final tallies of an exhausted round.
	ReviewSummary(ctx context.Context, reviewID string) (*ReviewSummary, error)

	// ReadingStats fetches the unread-material counters shown in the
	// badge. Polled in the background.
	ReadingStats(ctx context.Context) (*ReadingStats, error)
}
