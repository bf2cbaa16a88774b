package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockSnapshot is a canned StartSession/GetSession result.
type MockSnapshot struct {
	Snap *SessionSnapshot
	Err  error
}

// MockMutate is a canned pause/resume/end result. Delay, when set, holds
// the response back so tests can race the mutation against other calls.
type MockMutate struct {
	Resp  *MutateSessionResponse
	Err   error
	Delay time.Duration
}

// MockQuestion is a canned next-question result. Delay, when set, holds
// the response back so tests can overlap concurrent fetches.
type MockQuestion struct {
	Question *Question
	Err      error
	Delay    time.Duration
}

// MockAnswer is a canned answer-grading result. Delay, when set, holds
// the response back so tests can overlap concurrent submissions.
type MockAnswer struct {
	Result *AnswerResult
	Err    error
	Delay  time.Duration
}

// MockAvailability is a canned review-availability result.
type MockAvailability struct {
	Avail *ReviewAvailability
	Err   error
}

// MockReviewStart is a canned review-start result.
type MockReviewStart struct {
	Snap *ReviewSnapshot
	Err  error
}

// MockReviewAnswer is a canned review-answer result.
type MockReviewAnswer struct {
	Result *ReviewAnswerResult
	Err    error
}

// MockReviewSummary is a canned review-summary result.
type MockReviewSummary struct {
	Summary *ReviewSummary
	Err     error
}

// MockReadingStats is a canned reading-stats result.
type MockReadingStats struct {
	Stats *ReadingStats
	Err   error
}

// MockCall records one method invocation on the Mock.
type MockCall struct {
	Method         string
	SessionID      string
	ReviewID       string
	QuestionID     string
	SelectedOption string
	Expected       int64
	IdempotencyKey string
}

// Mock is a deterministic Gateway for testing. Each method consumes its
// canned queue in FIFO order and records the call; an empty queue is a
// test bug and fails loudly with a transport-kind error.
type Mock struct {
	mu sync.Mutex

	StartQueue        []MockSnapshot
	GetQueue          []MockSnapshot
	PauseQueue        []MockMutate
	ResumeQueue       []MockMutate
	EndQueue          []MockMutate
	QuestionQueue     []MockQuestion
	AnswerQueue       []MockAnswer
	AvailabilityQueue []MockAvailability
	ReviewStartQueue  []MockReviewStart
	ReviewQQueue      []MockQuestion
	ReviewAnswerQueue []MockReviewAnswer
	SkipQueue         []error
	SummaryQueue      []MockReviewSummary
	ReadingQueue      []MockReadingStats

	Calls []MockCall
}

// NewMock creates an empty Mock. Tests append to the queues directly.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) record(c MockCall) {
	m.Calls = append(m.Calls, c)
}

// CallCount returns how many times method was invoked.
func (m *Mock) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// CallsTo returns the recorded invocations of method, in order.
func (m *Mock) CallsTo(method string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []MockCall
	for _, c := range m.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func emptyQueueErr(method string) error {
	return &Error{Kind: KindTransport, Message: fmt.Sprintf("mock: no canned response for %s", method)}
}

func (m *Mock) StartSession(_ context.Context, req StartSessionRequest) (*SessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "StartSession"})
	if len(m.StartQueue) == 0 {
		return nil, emptyQueueErr("StartSession")
	}
	r := m.StartQueue[0]
	m.StartQueue = m.StartQueue[1:]
	return r.Snap, r.Err
}

func (m *Mock) GetSession(_ context.Context, sessionID string) (*SessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "GetSession", SessionID: sessionID})
	if len(m.GetQueue) == 0 {
		return nil, emptyQueueErr("GetSession")
	}
	r := m.GetQueue[0]
	m.GetQueue = m.GetQueue[1:]
	return r.Snap, r.Err
}

func (m *Mock) PauseSession(_ context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	m.mu.Lock()
	m.record(MockCall{Method: "PauseSession", SessionID: sessionID, Expected: req.ExpectedVersion})
	if len(m.PauseQueue) == 0 {
		m.mu.Unlock()
		return nil, emptyQueueErr("PauseSession")
	}
	r := m.PauseQueue[0]
	m.PauseQueue = m.PauseQueue[1:]
	m.mu.Unlock()

	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	return r.Resp, r.Err
}

func (m *Mock) ResumeSession(_ context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	m.mu.Lock()
	m.record(MockCall{Method: "ResumeSession", SessionID: sessionID, Expected: req.ExpectedVersion})
	if len(m.ResumeQueue) == 0 {
		m.mu.Unlock()
		return nil, emptyQueueErr("ResumeSession")
	}
	r := m.ResumeQueue[0]
	m.ResumeQueue = m.ResumeQueue[1:]
	m.mu.Unlock()

	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	return r.Resp, r.Err
}

func (m *Mock) EndSession(_ context.Context, sessionID string, req MutateSessionRequest) (*MutateSessionResponse, error) {
	m.mu.Lock()
	m.record(MockCall{Method: "EndSession", SessionID: sessionID, Expected: req.ExpectedVersion})
	if len(m.EndQueue) == 0 {
		m.mu.Unlock()
		return nil, emptyQueueErr("EndSession")
	}
	r := m.EndQueue[0]
	m.EndQueue = m.EndQueue[1:]
	m.mu.Unlock()

	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	return r.Resp, r.Err
}

func (m *Mock) NextQuestion(_ context.Context, sessionID string) (*Question, error) {
	m.mu.Lock()
	m.record(MockCall{Method: "NextQuestion", SessionID: sessionID})
	if len(m.QuestionQueue) == 0 {
		m.mu.Unlock()
		return nil, emptyQueueErr("NextQuestion")
	}
	r := m.QuestionQueue[0]
	m.QuestionQueue = m.QuestionQueue[1:]
	m.mu.Unlock()

	// Held outside the lock so a delayed fetch does not serialize the
	// callers the test wants to overlap.
	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	return r.Question, r.Err
}

func (m *Mock) SubmitAnswer(_ context.Context, req SubmitAnswerRequest, idempotencyKey string) (*AnswerResult, error) {
	m.mu.Lock()
	m.record(MockCall{
		Method:         "SubmitAnswer",
		SessionID:      req.SessionID,
		QuestionID:     req.QuestionID,
		SelectedOption: req.SelectedOption,
		IdempotencyKey: idempotencyKey,
	})
	if len(m.AnswerQueue) == 0 {
		m.mu.Unlock()
		return nil, emptyQueueErr("SubmitAnswer")
	}
	r := m.AnswerQueue[0]
	m.AnswerQueue = m.AnswerQueue[1:]
	m.mu.Unlock()

	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	return r.Result, r.Err
}

func (m *Mock) ReviewAvailability(_ context.Context, sessionID string) (*ReviewAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "ReviewAvailability", SessionID: sessionID})
	if len(m.AvailabilityQueue) == 0 {
		return nil, emptyQueueErr("ReviewAvailability")
	}
	r := m.AvailabilityQueue[0]
	m.AvailabilityQueue = m.AvailabilityQueue[1:]
	return r.Avail, r.Err
}

func (m *Mock) StartReview(_ context.Context, req StartReviewRequest) (*ReviewSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "StartReview", SessionID: req.SessionID})
	if len(m.ReviewStartQueue) == 0 {
		return nil, emptyQueueErr("StartReview")
	}
	r := m.ReviewStartQueue[0]
	m.ReviewStartQueue = m.ReviewStartQueue[1:]
	return r.Snap, r.Err
}

func (m *Mock) NextReviewQuestion(_ context.Context, reviewID string) (*Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "NextReviewQuestion", ReviewID: reviewID})
	if len(m.ReviewQQueue) == 0 {
		return nil, emptyQueueErr("NextReviewQuestion")
	}
	r := m.ReviewQQueue[0]
	m.ReviewQQueue = m.ReviewQQueue[1:]
	return r.Question, r.Err
}

func (m *Mock) SubmitReviewAnswer(_ context.Context, reviewID string, req ReviewAnswerRequest, idempotencyKey string) (*ReviewAnswerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{
		Method:         "SubmitReviewAnswer",
		ReviewID:       reviewID,
		QuestionID:     req.QuestionID,
		SelectedOption: req.SelectedOption,
		IdempotencyKey: idempotencyKey,
	})
	if len(m.ReviewAnswerQueue) == 0 {
		return nil, emptyQueueErr("SubmitReviewAnswer")
	}
	r := m.ReviewAnswerQueue[0]
	m.ReviewAnswerQueue = m.ReviewAnswerQueue[1:]
	return r.Result, r.Err
}

func (m *Mock) SkipReview(_ context.Context, reviewID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "SkipReview", ReviewID: reviewID})
	if len(m.SkipQueue) == 0 {
		return emptyQueueErr("SkipReview")
	}
	err := m.SkipQueue[0]
	m.SkipQueue = m.SkipQueue[1:]
	return err
}

func (m *Mock) ReviewSummary(_ context.Context, reviewID string) (*ReviewSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "ReviewSummary", ReviewID: reviewID})
	if len(m.SummaryQueue) == 0 {
		return nil, emptyQueueErr("ReviewSummary")
	}
	r := m.SummaryQueue[0]
	m.SummaryQueue = m.SummaryQueue[1:]
	return r.Summary, r.Err
}

func (m *Mock) ReadingStats(_ context.Context) (*ReadingStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(MockCall{Method: "ReadingStats"})
	if len(m.ReadingQueue) == 0 {
		return nil, emptyQueueErr("ReadingStats")
	}
	r := m.ReadingQueue[0]
	m.ReadingQueue = m.ReadingQueue[1:]
	return r.Stats, r.Err
}
