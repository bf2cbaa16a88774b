package review

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/store"
)

func reviewQuestion(id string) *gateway.Question {
	return &gateway.Question{
		ID:     id,
		Prompt: "Which record maps a hostname to an IPv4 address?",
		Options: []gateway.Option{
			{ID: "a", Text: "A"},
			{ID: "b", Text: "CNAME"},
		},
	}
}

// promptedTracker builds a tracker that has already confirmed availability.
func promptedTracker(t *testing.T, mock *gateway.Mock) *Tracker {
	t.Helper()
	mock.AvailabilityQueue = append([]gateway.MockAvailability{
		{Avail: &gateway.ReviewAvailability{Available: true, IncorrectCount: 3}},
	}, mock.AvailabilityQueue...)
	tr := NewTracker(mock, nil, "s1")
	if err := tr.CheckAvailability(context.Background()); err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}
	return tr
}

// activeTracker builds a tracker with a started round of three questions.
func activeTracker(t *testing.T, mock *gateway.Mock) *Tracker {
	t.Helper()
	mock.ReviewStartQueue = []gateway.MockReviewStart{
		{Snap: &gateway.ReviewSnapshot{ReviewID: "r1", SessionID: "s1", TotalToReview: 3}},
	}
	tr := promptedTracker(t, mock)
	if err := tr.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return tr
}

func TestCheckAvailability_MovesToPrompt(t *testing.T) {
	mock := gateway.NewMock()
	tr := promptedTracker(t, mock)

	if got := tr.Phase(); got != PhasePrompt {
		t.Errorf("Phase = %v, want %v", got, PhasePrompt)
	}
	v := tr.View()
	if !v.Available || v.IncorrectCount != 3 {
		t.Errorf("View = %+v, want available with 3 misses", v)
	}
}

func TestCheckAvailability_RunsOnce(t *testing.T) {
	mock := gateway.NewMock()
	tr := promptedTracker(t, mock)

	if err := tr.CheckAvailability(context.Background()); !errors.Is(err, ErrAlreadyChecked) {
		t.Fatalf("second CheckAvailability() error = %v, want ErrAlreadyChecked", err)
	}
	if n := mock.CallCount("ReviewAvailability"); n != 1 {
		t.Errorf("ReviewAvailability calls = %d, want 1", n)
	}
}

func TestCheckAvailability_NothingToReviewStaysIdle(t *testing.T) {
	mock := gateway.NewMock()
	mock.AvailabilityQueue = []gateway.MockAvailability{
		{Avail: &gateway.ReviewAvailability{Available: false}},
	}

	tr := NewTracker(mock, nil, "s1")
	if err := tr.CheckAvailability(context.Background()); err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}
	if got := tr.Phase(); got != PhaseIdle {
		t.Errorf("Phase = %v, want %v", got, PhaseIdle)
	}
}

func TestStart_RequiresOffer(t *testing.T) {
	mock := gateway.NewMock()
	tr := NewTracker(mock, nil, "s1")

	if err := tr.Start(context.Background()); !errors.Is(err, ErrNotOffered) {
		t.Errorf("Start() before offer error = %v, want ErrNotOffered", err)
	}
}

func TestStart_OpensRound(t *testing.T) {
	mock := gateway.NewMock()
	tr := activeTracker(t, mock)

	if got := tr.Phase(); got != PhaseActive {
		t.Fatalf("Phase = %v, want %v", got, PhaseActive)
	}
	v := tr.View()
	if v.ReviewID != "r1" || v.TotalToReview != 3 {
		t.Errorf("View = %+v, want review r1 with 3 to review", v)
	}
}

func TestCounters_ReviewedAlwaysReinforcedConditionally(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReviewQQueue = []gateway.MockQuestion{
		{Question: reviewQuestion("q1")},
		{Question: reviewQuestion("q2")},
		{Question: reviewQuestion("q3")},
	}
	mock.ReviewAnswerQueue = []gateway.MockReviewAnswer{
		{Result: &gateway.ReviewAnswerResult{Correct: true, Reinforced: true, Remaining: 2}},
		{Result: &gateway.ReviewAnswerResult{Correct: true, Reinforced: false, Remaining: 1}},
		{Result: &gateway.ReviewAnswerResult{Correct: false, Remaining: 0}},
	}

	tr := activeTracker(t, mock)
	ctx := context.Background()

	wantReviewed := []int{1, 2, 3}
	wantReinforced := []int{1, 1, 1}
	for i := 0; i < 3; i++ {
		if _, err := tr.ProceedToNext(ctx); err != nil {
			t.Fatalf("ProceedToNext() #%d error = %v", i+1, err)
		}
		if err := tr.SelectAnswer("a"); err != nil {
			t.Fatalf("SelectAnswer() #%d error = %v", i+1, err)
		}
		if _, err := tr.SubmitAnswer(ctx); err != nil {
			t.Fatalf("SubmitAnswer() #%d error = %v", i+1, err)
		}
		v := tr.View()
		if v.ReviewedCount != wantReviewed[i] {
			t.Errorf("after answer %d: ReviewedCount = %d, want %d", i+1, v.ReviewedCount, wantReviewed[i])
		}
		if v.ReinforcedCount != wantReinforced[i] {
			t.Errorf("after answer %d: ReinforcedCount = %d, want %d", i+1, v.ReinforcedCount, wantReinforced[i])
		}
	}
}

func TestRate_Derivation(t *testing.T) {
	tests := []struct {
		reviewed   int
		reinforced int
		want       float64
	}{
		{4, 3, 0.75},
		{0, 0, 0},
		{2, 2, 1.0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Rate(tt.reviewed, tt.reinforced); got != tt.want {
			t.Errorf("Rate(%d, %d) = %v, want %v", tt.reviewed, tt.reinforced, got, tt.want)
		}
	}
}

func TestSummary_FetchedExactlyOnceAfterExhaustion(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReviewQQueue = []gateway.MockQuestion{
		{Question: reviewQuestion("q1")},
		{Question: nil},
	}
	mock.ReviewAnswerQueue = []gateway.MockReviewAnswer{
		{Result: &gateway.ReviewAnswerResult{Correct: true, Reinforced: true, Remaining: 0}},
	}
	mock.SummaryQueue = []gateway.MockReviewSummary{
		{Summary: &gateway.ReviewSummary{TotalToReview: 1, ReviewedCount: 1, ReinforcedCount: 1}},
	}

	tr := activeTracker(t, mock)
	ctx := context.Background()

	if _, err := tr.ProceedToNext(ctx); err != nil {
		t.Fatalf("ProceedToNext() error = %v", err)
	}
	if n := mock.CallCount("ReviewSummary"); n != 0 {
		t.Fatalf("ReviewSummary calls before exhaustion = %d, want 0", n)
	}
	if err := tr.SelectAnswer("a"); err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}
	if _, err := tr.SubmitAnswer(ctx); err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}

	q, err := tr.ProceedToNext(ctx)
	if err != nil {
		t.Fatalf("final ProceedToNext() error = %v", err)
	}
	if q != nil {
		t.Fatalf("question = %+v, want nil (exhausted)", q)
	}
	if got := tr.Phase(); got != PhaseCompleted {
		t.Fatalf("Phase = %v, want %v", got, PhaseCompleted)
	}
	if s := tr.Summary(); s == nil || s.ReinforcedCount != 1 {
		t.Errorf("Summary() = %+v, want the fetched summary", s)
	}
	if n := mock.CallCount("ReviewSummary"); n != 1 {
		t.Errorf("ReviewSummary calls = %d, want exactly 1", n)
	}
}

func TestSubmitAnswer_FailureKeepsSelectionAndKey(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReviewQQueue = []gateway.MockQuestion{{Question: reviewQuestion("q1")}}
	mock.ReviewAnswerQueue = []gateway.MockReviewAnswer{
		{Err: &gateway.Error{Kind: gateway.KindServer, Status: 503, Message: "review service unavailable"}},
		{Result: &gateway.ReviewAnswerResult{Correct: true, Reinforced: true}},
	}

	tr := activeTracker(t, mock)
	ctx := context.Background()

	if _, err := tr.ProceedToNext(ctx); err != nil {
		t.Fatalf("ProceedToNext() error = %v", err)
	}
	if err := tr.SelectAnswer("a"); err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}

	if _, err := tr.SubmitAnswer(ctx); err == nil {
		t.Fatal("expected first SubmitAnswer() to fail")
	}
	if got := tr.Phase(); got != PhaseError {
		t.Fatalf("Phase = %v, want %v", got, PhaseError)
	}
	if v := tr.View(); v.ErrMsg != "review service unavailable" {
		t.Errorf("ErrMsg = %q, want the structured server message", v.ErrMsg)
	}
	if v := tr.View(); v.ReviewedCount != 0 {
		t.Errorf("ReviewedCount = %d, want 0 (failed answer must not count)", v.ReviewedCount)
	}

	// Re-triggering sends the same submission with the same key.
	if _, err := tr.SubmitAnswer(ctx); err != nil {
		t.Fatalf("re-triggered SubmitAnswer() error = %v", err)
	}
	calls := mock.CallsTo("SubmitReviewAnswer")
	if len(calls) != 2 {
		t.Fatalf("SubmitReviewAnswer calls = %d, want 2", len(calls))
	}
	if calls[0].IdempotencyKey == "" || calls[0].IdempotencyKey != calls[1].IdempotencyKey {
		t.Errorf("keys = %q / %q, want one reused key", calls[0].IdempotencyKey, calls[1].IdempotencyKey)
	}
	if v := tr.View(); v.ReviewedCount != 1 || v.ReinforcedCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", v.ReviewedCount, v.ReinforcedCount)
	}
}

func TestSubmitAnswer_RequiresSelection(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReviewQQueue = []gateway.MockQuestion{{Question: reviewQuestion("q1")}}

	tr := activeTracker(t, mock)
	if _, err := tr.ProceedToNext(context.Background()); err != nil {
		t.Fatalf("ProceedToNext() error = %v", err)
	}
	if _, err := tr.SubmitAnswer(context.Background()); !errors.Is(err, ErrNoSelection) {
		t.Errorf("SubmitAnswer() error = %v, want ErrNoSelection", err)
	}
}

func TestSkip_AbandonsRound(t *testing.T) {
	mock := gateway.NewMock()
	mock.SkipQueue = []error{nil}

	tr := activeTracker(t, mock)
	if err := tr.Skip(context.Background()); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if got := tr.Phase(); got != PhaseSkipped {
		t.Errorf("Phase = %v, want %v", got, PhaseSkipped)
	}
	if n := mock.CallCount("SkipReview"); n != 1 {
		t.Errorf("SkipReview calls = %d, want 1", n)
	}
}

func TestDismiss_DeclinesWithoutNetwork(t *testing.T) {
	mock := gateway.NewMock()
	tr := promptedTracker(t, mock)

	if err := tr.Dismiss(context.Background()); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	if got := tr.Phase(); got != PhaseSkipped {
		t.Errorf("Phase = %v, want %v", got, PhaseSkipped)
	}
	if n := mock.CallCount("StartReview"); n != 0 {
		t.Errorf("StartReview calls = %d, want 0", n)
	}
	if n := mock.CallCount("SkipReview"); n != 0 {
		t.Errorf("SkipReview calls = %d, want 0", n)
	}
}

type roundJournal struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.ReviewEventData
}

func (j *roundJournal) AppendReviewEvent(_ context.Context, data store.ReviewEventData) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, data)
	return nil
}

func TestJournal_RecordsRoundEvents(t *testing.T) {
	mock := gateway.NewMock()
	mock.AvailabilityQueue = []gateway.MockAvailability{
		{Avail: &gateway.ReviewAvailability{Available: true, IncorrectCount: 1}},
	}
	mock.ReviewStartQueue = []gateway.MockReviewStart{
		{Snap: &gateway.ReviewSnapshot{ReviewID: "r1", SessionID: "s1", TotalToReview: 1}},
	}
	mock.ReviewQQueue = []gateway.MockQuestion{
		{Question: reviewQuestion("q1")},
		{Question: nil},
	}
	mock.ReviewAnswerQueue = []gateway.MockReviewAnswer{
		{Result: &gateway.ReviewAnswerResult{Correct: true, Reinforced: true}},
	}
	mock.SummaryQueue = []gateway.MockReviewSummary{
		{Summary: &gateway.ReviewSummary{TotalToReview: 1, ReviewedCount: 1, ReinforcedCount: 1}},
	}

	journal := &roundJournal{}
	tr := NewTracker(mock, journal, "s1")
	ctx := context.Background()

	if err := tr.CheckAvailability(ctx); err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}
	if err := tr.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := tr.ProceedToNext(ctx); err != nil {
		t.Fatalf("ProceedToNext() error = %v", err)
	}
	if err := tr.SelectAnswer("a"); err != nil {
		t.Fatalf("SelectAnswer() error = %v", err)
	}
	if _, err := tr.SubmitAnswer(ctx); err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if _, err := tr.ProceedToNext(ctx); err != nil {
		t.Fatalf("final ProceedToNext() error = %v", err)
	}

	want := []string{"offered", "start", "answer", "complete"}
	if len(journal.events) != len(want) {
		t.Fatalf("journaled %d events, want %d", len(journal.events), len(want))
	}
	for i, action := range want {
		if journal.events[i].Action != action {
			t.Errorf("event[%d].Action = %q, want %q", i, journal.events[i].Action, action)
		}
	}
	answer := journal.events[2]
	if !answer.Correct || !answer.Reinforced {
		t.Errorf("answer event = %+v, want correct and reinforced", answer)
	}
	if answer.ReviewedCount != 1 || answer.ReinforcedCount != 1 {
		t.Errorf("answer tallies = %d/%d, want 1/1", answer.ReviewedCount, answer.ReinforcedCount)
	}
}
