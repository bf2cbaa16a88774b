package gateway

import "time"

// SessionKind selects the assessment flavor the platform runs.
type SessionKind string

const (
	KindDiagnostic SessionKind = "diagnostic"
	KindAdaptive   SessionKind = "adaptive"
	KindFocused    SessionKind = "focused"
	KindReview     SessionKind = "review"
)

// SessionStatus is the server-side lifecycle status of a session.
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionPaused SessionStatus = "paused"
	SessionEnded  SessionStatus = "ended"
)

// StartSessionRequest asks the platform to begin a session. The platform
// may instead hand back an already-active session for the same user
// (IsResumed on the response); that is the resume path, not an error.
type StartSessionRequest struct {
	Kind     SessionKind `json:"kind"`
	Strategy string      `json:"strategy,omitempty"`

	// RequestedQuestions is advisory; the platform's planner decides the
	// actual total and reports it back.
	RequestedQuestions int `json:"requested_questions,omitempty"`
}

// SessionSnapshot is the platform's authoritative view of one session.
// Version is incremented by the server on every accepted mutation and is
// never assigned client-side.
type SessionSnapshot struct {
	SessionID      string        `json:"session_id"`
	Kind           SessionKind   `json:"kind"`
	Strategy       string        `json:"strategy"`
	Status         SessionStatus `json:"status"`
	Version        int64         `json:"version"`
	IsResumed      bool          `json:"is_resumed"`
	TotalQuestions int           `json:"total_questions"`
	CorrectCount   int           `json:"correct_count"`
	StartedAt      time.Time     `json:"started_at"`
	EndedAt        *time.Time    `json:"ended_at,omitempty"`
}

// MutateSessionRequest carries the optimistic-concurrency token for
// pause/resume/end. The server rejects the call with a version conflict
// when ExpectedVersion is no longer current.
type MutateSessionRequest struct {
	ExpectedVersion int64 `json:"expected_version"`
}

// MutateSessionResponse reports the session state after an accepted
// pause/resume/end.
type MutateSessionResponse struct {
	Status  SessionStatus `json:"status"`
	Version int64         `json:"version"`
}

// Option is one selectable answer of a multiple-choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is the payload served by the next-question endpoint.
type Question struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Options    []Option `json:"options"`
	Topic      string   `json:"topic,omitempty"`
	Difficulty int      `json:"difficulty,omitempty"`
}

// SubmitAnswerRequest records one answer. The idempotency key travels as a
// header, not in the body; see Gateway.SubmitAnswer.
type SubmitAnswerRequest struct {
	SessionID      string `json:"session_id"`
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// AnswerStats is the server-computed statistics block returned with every
// accepted answer. The client adopts these numbers verbatim; it never
// recomputes accuracy locally.
type AnswerStats struct {
	Answered     int   `json:"answered"`
	CorrectCount int   `json:"correct_count"`
	Version      int64 `json:"version"`
}

// AnswerResult is the outcome of one answer submission. When the answer
// completes the session, Completed is true and Summary is populated inline
// so no extra round trip is needed.
type AnswerResult struct {
	Correct     bool            `json:"correct"`
	Explanation string          `json:"explanation,omitempty"`
	Stats       AnswerStats     `json:"stats"`
	Completed   bool            `json:"completed"`
	Summary     *SessionSummary `json:"summary,omitempty"`
}

// SessionSummary is the terminal report for an ended session.
type SessionSummary struct {
	TotalQuestions int     `json:"total_questions"`
	CorrectCount   int     `json:"correct_count"`
	Accuracy       float64 `json:"accuracy"`
	DurationSecs   int     `json:"duration_secs"`
	IncorrectCount int     `json:"incorrect_count"`
}

// ReviewAvailability reports whether an ended session has material for a
// reinforcement review.
type ReviewAvailability struct {
	Available      bool `json:"available"`
	IncorrectCount int  `json:"incorrect_count"`
}

// StartReviewRequest opens a review over a prior ended session.
type StartReviewRequest struct {
	SessionID string `json:"session_id"`
}

// ReviewSnapshot is the platform's view of a reinforcement review.
type ReviewSnapshot struct {
	ReviewID      string `json:"review_id"`
	SessionID     string `json:"session_id"`
	TotalToReview int    `json:"total_to_review"`
	ReviewedCount int    `json:"reviewed_count"`
}

// ReviewAnswerRequest records one review answer.
type ReviewAnswerRequest struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// ReviewAnswerResult reports a review answer outcome. Reinforced is true
// only when the answer was correct and the platform judged it a
// reinforcement of a previously-missed concept.
type ReviewAnswerResult struct {
	Correct     bool   `json:"correct"`
	Reinforced  bool   `json:"reinforced"`
	Explanation string `json:"explanation,omitempty"`
	Remaining   int    `json:"remaining"`
}

// ReviewSummary is the terminal report for a finished or skipped review.
type ReviewSummary struct {
	TotalToReview       int `json:"total_to_review"`
	ReviewedCount       int `json:"reviewed_count"`
	ReinforcedCount     int `json:"reinforced_count"`
	StillIncorrectCount int `json:"still_incorrect_count"`
}

// ReadingStats is the lightweight payload the polling service fetches for
// the unread-reading badge.
type ReadingStats struct {
	UnreadCount       int `json:"unread_count"`
	HighPriorityCount int `json:"high_priority_count"`
}
