package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/skilldrill/internal/store"
)

// JournalGateway is a decorator that records every platform call as an event.
type JournalGateway struct {
	inner Gateway
	repo  store.EventRepo
}

// WithJournal wraps a Gateway with call journaling.
func WithJournal(g Gateway, repo store.EventRepo) Gateway {
	return &JournalGateway{inner: g, repo: repo}
}

// log appends a call record. A journaling failure never fails the call.
func (j *JournalGateway) log(ctx context.Context, op string, start time.Time, err error) {
	data := store.GatewayCallEventData{
		Operation: op,
		Success:   err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}

	if err != nil {
		var ge *Error
		if errors.As(err, &ge) {
			data.Status = ge.Status
			data.ErrorKind = string(ge.Kind)
		} else {
			data.ErrorKind = string(KindTransport)
		}
	}

	if logErr := j.repo.AppendGatewayCall(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal gateway call: %v\n", logErr)
	}
}

func (j *JournalGateway) StartSession(ctx context.Context, req StartSessionRequest) (*SessionSnapshot, error) {
	start := time.Now()
	snap, err := j.inner.StartSession(ctx, req)
	j.log(ctx, "StartSession", start, err)
	return snap, err
}

func (j *JournalGateway) GetSession(ctx context.Context, sessionID string) (*SessionSnapshot, error) {
	start := time.Now()
	snap, err := j.inner.GetSession(ctx, sessionID)
	j.log(ctx, "GetSession", start, err)
	return snap, err
}

func (j *JournalGateway) PauseSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	start := time.Now()
	resp, err := j.inner.PauseSession(ctx, sessionID, req)
	j.log(ctx, "PauseSession", start, err)
	return resp, err
}

func (j *JournalGateway) ResumeSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	start := time.Now()
	resp, err := j.inner.ResumeSession(ctx, sessionID, req)
	j.log(ctx, "ResumeSession", start, err)
	return resp, err
}

func (j *JournalGateway) EndSession(ctx context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	start := time.Now()
	resp, err := j.inner.EndSession(ctx, sessionID, req)
	j.log(ctx, "EndSession", start, err)
	return resp, err
}

func (j *JournalGateway) NextQuestion(ctx context.Context, sessionID string) (*Question, error) {
	start := time.Now()
	q, err := j.inner.NextQuestion(ctx, sessionID)
	j.log(ctx, "NextQuestion", start, err)
	return q, err
}

func (j *JournalGateway) SubmitAnswer(ctx context.Context, req SubmitAnswerRequest, idempotencyKey string) (*AnswerResult, error) {
	start := time.Now()
	res, err := j.inner.SubmitAnswer(ctx, req, idempotencyKey)
	j.log(ctx, "SubmitAnswer", start, err)
	return res, err
}

func (j *JournalGateway) ReviewAvailability(ctx context.Context, sessionID string) (*ReviewAvailability, error) {
	start := time.Now()
	avail, err := j.inner.ReviewAvailability(ctx, sessionID)
	j.log(ctx, "ReviewAvailability", start, err)
	return avail, err
}

func (j *JournalGateway) StartReview(ctx context.Context, req StartReviewRequest) (*ReviewSnapshot, error) {
	start := time.Now()
	snap, err := j.inner.StartReview(ctx, req)
	j.log(ctx, "StartReview", start, err)
	return snap, err
}

func (j *JournalGateway) NextReviewQuestion(ctx context.Context, reviewID string) (*Question, error) {
	start := time.Now()
	q, err := j.inner.NextReviewQuestion(ctx, reviewID)
	j.log(ctx, "NextReviewQuestion", start, err)
	return q, err
}

func (j *JournalGateway) SubmitReviewAnswer(ctx context.Context, reviewID string, req ReviewAnswerRequest, idempotencyKey string) (*ReviewAnswerResult, error) {
	start := time.Now()
	res, err := j.inner.SubmitReviewAnswer(ctx, reviewID, req, idempotencyKey)
	j.log(ctx, "SubmitReviewAnswer", start, err)
	return res, err
}

func (j *JournalGateway) SkipReview(ctx context.Context, reviewID string) error {
	start := time.Now()
	err := j.inner.SkipReview(ctx, reviewID)
	j.log(ctx, "SkipReview", start, err)
	return err
}

func (j *JournalGateway) ReviewSummary(ctx context.Context, reviewID string) (*ReviewSummary, error) {
	start := time.Now()
	sum, err := j.inner.ReviewSummary(ctx, reviewID)
	j.log(ctx, "ReviewSummary", start, err)
	return sum, err
}

func (j *JournalGateway) ReadingStats(ctx context.Context) (*ReadingStats, error) {
	start := time.Now()
	stats, err := j.inner.ReadingStats(ctx)
	j.log(ctx, "ReadingStats", start, err)
	return stats, err
}
