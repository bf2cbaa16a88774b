package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/store"
)

type fakeJournal struct {
	mu      sync.Mutex
	events  []store.SubmissionEventData
	pending []store.PendingSubmission
}

func (f *fakeJournal) AppendSubmissionEvent(_ context.Context, data store.SubmissionEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return nil
}

func (f *fakeJournal) PendingSubmissions(_ context.Context, _ string) ([]store.PendingSubmission, error) {
	return f.pending, nil
}

func (f *fakeJournal) phases(questionID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.events {
		if e.QuestionID == questionID {
			out = append(out, e.Phase)
		}
	}
	return out
}

func gradedAnswer(correct bool, answered, correctCount int, version int64) gateway.MockAnswer {
	return gateway.MockAnswer{Result: &gateway.AnswerResult{
		Correct: correct,
		Stats:   gateway.AnswerStats{Answered: answered, CorrectCount: correctCount, Version: version},
	}}
}

func TestSubmitMintsFreshKeyPerQuestion(t *testing.T) {
	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{
		gradedAnswer(true, 1, 1, 2),
		gradedAnswer(false, 2, 1, 3),
	}

	d := New(gw, nil, "sess-1")
	ctx := context.Background()

	if _, err := d.Submit(ctx, "q1", "a"); err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	if _, err := d.Submit(ctx, "q2", "b"); err != nil {
		t.Fatalf("submit q2: %v", err)
	}

	calls := gw.CallsTo("SubmitAnswer")
	if len(calls) != 2 {
		t.Fatalf("network calls = %d, want 2", len(calls))
	}
	if calls[0].IdempotencyKey == calls[1].IdempotencyKey {
		t.Error("different questions must mint different keys")
	}
	for i, c := range calls {
		if _, err := uuid.Parse(c.IdempotencyKey); err != nil {
			t.Errorf("call %d key %q is not a UUID: %v", i, c.IdempotencyKey, err)
		}
	}
}

func TestRetryReusesKey(t *testing.T) {
	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{
		{Err: &gateway.Error{Kind: gateway.KindTransport, Message: "timeout"}},
		gradedAnswer(true, 1, 1, 2),
	}

	d := New(gw, nil, "sess-1")
	ctx := context.Background()

	if _, err := d.Submit(ctx, "q1", "a"); err == nil {
		t.Fatal("expected transport error on first attempt")
	}
	res, err := d.Submit(ctx, "q1", "a")
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !res.Correct {
		t.Error("expected correct outcome on retry")
	}

	calls := gw.CallsTo("SubmitAnswer")
	if len(calls) != 2 {
		t.Fatalf("network calls = %d, want 2", len(calls))
	}
	if calls[0].IdempotencyKey != calls[1].IdempotencyKey {
		t.Errorf("retry minted a new key: %q then %q", calls[0].IdempotencyKey, calls[1].IdempotencyKey)
	}
}

func TestResolvedSubmissionShortCircuits(t *testing.T) {
	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{gradedAnswer(true, 1, 1, 2)}

	d := New(gw, nil, "sess-1")
	ctx := context.Background()

	first, err := d.Submit(ctx, "q1", "a")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Duplicate UI event for the same question: no second network call.
	second, err := d.Submit(ctx, "q1", "a")
	if err != nil {
		t.Fatalf("duplicate submit: %v", err)
	}
	if second != first {
		t.Error("expected the recorded outcome, not a new one")
	}
	if n := gw.CallCount("SubmitAnswer"); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
	if !d.Resolved("q1") {
		t.Error("Resolved(q1) = false, want true")
	}
}

func TestSeedReusesJournaledKeys(t *testing.T) {
	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{gradedAnswer(true, 1, 1, 2)}

	j := &fakeJournal{pending: []store.PendingSubmission{
		{QuestionID: "q1", IdempotencyKey: "11111111-1111-1111-1111-111111111111", SelectedOption: "a"},
	}}

	d := New(gw, j, "sess-1")
	ctx := context.Background()
	if err := d.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := d.Submit(ctx, "q1", "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	calls := gw.CallsTo("SubmitAnswer")
	if len(calls) != 1 {
		t.Fatalf("network calls = %d, want 1", len(calls))
	}
	if calls[0].IdempotencyKey != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("key = %q, want the journaled key", calls[0].IdempotencyKey)
	}
	// Seeded keys were already journaled by the previous process; no
	// second dispatched row.
	if got := j.phases("q1"); len(got) != 1 || got[0] != "resolved" {
		t.Errorf("journal phases = %v, want [resolved]", got)
	}
}

func TestJournalPhasesOnHappyPath(t *testing.T) {
	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{gradedAnswer(true, 1, 1, 2)}

	j := &fakeJournal{}
	d := New(gw, j, "sess-1")

	if _, err := d.Submit(context.Background(), "q1", "a"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	got := j.phases("q1")
	want := []string{"dispatched", "resolved"}
	if len(got) != len(want) {
		t.Fatalf("journal phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("journal phases = %v, want %v", got, want)
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.events[0].IdempotencyKey != j.events[1].IdempotencyKey {
		t.Error("dispatched and resolved rows must share the key")
	}
	if j.events[1].Version != 2 {
		t.Errorf("resolved version = %d, want 2", j.events[1].Version)
	}
}

func TestTerminalRejectionJournalsFailed(t *testing.T) {
	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{
		{Err: &gateway.Error{Kind: gateway.KindValidation, Status: 422, Message: "unknown option"}},
	}

	j := &fakeJournal{}
	d := New(gw, j, "sess-1")

	if _, err := d.Submit(context.Background(), "q1", "z"); err == nil {
		t.Fatal("expected validation error")
	}

	got := j.phases("q1")
	want := []string{"dispatched", "failed"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("journal phases = %v, want %v", got, want)
	}
}

func TestTransportFailureKeepsKeyPending(t *testing.T) {
	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{
		{Err: &gateway.Error{Kind: gateway.KindTransport, Message: "timeout"}},
	}

	j := &fakeJournal{}
	d := New(gw, j, "sess-1")

	if _, err := d.Submit(context.Background(), "q1", "a"); err == nil {
		t.Fatal("expected transport error")
	}

	// Dispatched only: the key must remain pending for retry.
	got := j.phases("q1")
	if len(got) != 1 || got[0] != "dispatched" {
		t.Fatalf("journal phases = %v, want [dispatched]", got)
	}
}

func TestConcurrentDuplicateSubmitsCoalesce(t *testing.T) {
	slow := gradedAnswer(true, 1, 1, 2)
	slow.Delay = 50 * time.Millisecond

	gw := gateway.NewMock()
	gw.AnswerQueue = []gateway.MockAnswer{slow}

	d := New(gw, nil, "sess-1")
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*gateway.AnswerResult, 4)
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = d.Submit(ctx, "q1", "a")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		if errs[i] != nil {
			t.Fatalf("submit %d: %v", i, errs[i])
		}
		if results[i] == nil || !results[i].Correct {
			t.Fatalf("submit %d got %+v", i, results[i])
		}
	}
	if n := gw.CallCount("SubmitAnswer"); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
}
