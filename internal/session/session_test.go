package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/occ"
	"github.com/abhisek/skilldrill/internal/store"
)

func activeSnapshot(id string, version int64) *gateway.SessionSnapshot {
	return &gateway.SessionSnapshot{
		SessionID: id,
		Kind:      gateway.KindAdaptive,
		Status:    gateway.SessionActive,
		Version:   version,
		StartedAt: time.Now(),
	}
}

func testQuestion(id string) *gateway.Question {
	return &gateway.Question{
		ID:     id,
		Prompt: "Which layer does TCP live in?",
		Options: []gateway.Option{
			{ID: "a", Text: "Transport"},
			{ID: "b", Text: "Network"},
		},
	}
}

// startController starts a fresh session against the mock and fails the
// test if the start itself fails.
func startController(t *testing.T, mock *gateway.Mock) *Controller {
	t.Helper()
	c := New(mock, nil)
	if err := c.Start(context.Background(), StartConfig{Kind: gateway.KindAdaptive}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return c
}

func TestStart_CreatesActiveSession(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}

	c := startController(t, mock)

	v := c.View()
	if v.Status != StatusActive {
		t.Errorf("Status = %v, want %v", v.Status, StatusActive)
	}
	if v.SessionID != "s1" {
		t.Errorf("SessionID = %q, want %q", v.SessionID, "s1")
	}
	if v.Version != 1 {
		t.Errorf("Version = %d, want 1", v.Version)
	}
	if n := mock.CallCount("StartSession"); n != 1 {
		t.Errorf("StartSession calls = %d, want 1", n)
	}
}

func TestStart_ResumeAdoptsServerState(t *testing.T) {
	snap := activeSnapshot("s1", 6)
	snap.IsResumed = true
	snap.TotalQuestions = 5
	snap.CorrectCount = 3
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: snap}}

	c := startController(t, mock)

	v := c.View()
	if v.Status != StatusActive {
		t.Errorf("Status = %v, want %v", v.Status, StatusActive)
	}
	if !v.IsResumed {
		t.Error("expected IsResumed to be true")
	}
	if v.Version != 6 {
		t.Errorf("Version = %d, want 6", v.Version)
	}
	if v.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", v.TotalQuestions)
	}
	if v.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", v.CorrectCount)
	}
	if n := mock.CallCount("StartSession"); n != 1 {
		t.Errorf("StartSession calls = %d, want 1 (resume must not create again)", n)
	}
}

func TestStart_RejectedWhileActive(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}

	c := startController(t, mock)

	err := c.Start(context.Background(), StartConfig{Kind: gateway.KindAdaptive})
	if !errors.Is(err, ErrSessionActive) {
		t.Fatalf("second Start() error = %v, want ErrSessionActive", err)
	}
	if n := mock.CallCount("StartSession"); n != 1 {
		t.Errorf("StartSession calls = %d, want 1", n)
	}
}

func TestStart_FailureReturnsToIdle(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{
		{Err: &gateway.Error{Kind: gateway.KindTransport, Message: "connection refused"}},
		{Snap: activeSnapshot("s1", 1)},
	}

	c := New(mock, nil)
	if err := c.Start(context.Background(), StartConfig{Kind: gateway.KindAdaptive}); err == nil {
		t.Fatal("expected first Start() to fail")
	}
	if got := c.Status(); got != StatusIdle {
		t.Fatalf("Status after failed start = %v, want %v", got, StatusIdle)
	}

	// A failed start leaves nothing behind; retrying is the caller's call.
	if err := c.Start(context.Background(), StartConfig{Kind: gateway.KindAdaptive}); err != nil {
		t.Fatalf("retried Start() error = %v", err)
	}
	if got := c.Status(); got != StatusActive {
		t.Errorf("Status = %v, want %v", got, StatusActive)
	}
}

func TestPauseResume_AdoptServerVersions(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.PauseQueue = []gateway.MockMutate{{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionPaused, Version: 2}}}
	mock.ResumeQueue = []gateway.MockMutate{{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionActive, Version: 3}}}

	c := startController(t, mock)

	if err := c.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if v := c.View(); v.Status != StatusPaused || v.Version != 2 {
		t.Errorf("after pause: status %v version %d, want paused 2", v.Status, v.Version)
	}

	if err := c.Resume(context.Background()); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if v := c.View(); v.Status != StatusActive || v.Version != 3 {
		t.Errorf("after resume: status %v version %d, want active 3", v.Status, v.Version)
	}

	pauses := mock.CallsTo("PauseSession")
	if len(pauses) != 1 || pauses[0].Expected != 1 {
		t.Errorf("pause carried expected_version %+v, want 1", pauses)
	}
	resumes := mock.CallsTo("ResumeSession")
	if len(resumes) != 1 || resumes[0].Expected != 2 {
		t.Errorf("resume carried expected_version %+v, want 2", resumes)
	}
}

func TestPauseResume_StateGuards(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.PauseQueue = []gateway.MockMutate{{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionPaused, Version: 2}}}

	c := startController(t, mock)

	if err := c.Resume(context.Background()); !errors.Is(err, ErrNotPaused) {
		t.Errorf("Resume() while active error = %v, want ErrNotPaused", err)
	}
	if err := c.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if err := c.Pause(context.Background()); !errors.Is(err, ErrNotActive) {
		t.Errorf("Pause() while paused error = %v, want ErrNotActive", err)
	}
}

func TestEnd_ConflictRequiresReconcile(t *testing.T) {
	snap := activeSnapshot("s1", 2)
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: snap}}
	mock.EndQueue = []gateway.MockMutate{
		{Err: &gateway.Error{Kind: gateway.KindVersionConflict, Status: 409, CurrentVersion: 3}},
		{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionEnded, Version: 4}},
	}
	mock.GetQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 3)}}

	c := startController(t, mock)

	err := c.End(context.Background())
	if !occ.IsConflict(err) {
		t.Fatalf("End() error = %v, want a version conflict", err)
	}
	if got := c.Status(); got != StatusError {
		t.Fatalf("Status after conflict = %v, want %v", got, StatusError)
	}
	if conflict := c.Conflict(); conflict == nil || conflict.ServerVersion != 3 {
		t.Fatalf("Conflict() = %+v, want server version 3", conflict)
	}

	// Every mutation is refused until the caller reconciles.
	if err := c.End(context.Background()); !errors.Is(err, ErrReconcileRequired) {
		t.Fatalf("End() after conflict error = %v, want ErrReconcileRequired", err)
	}
	if n := mock.CallCount("EndSession"); n != 1 {
		t.Fatalf("EndSession calls = %d, want 1 (no retry before reconcile)", n)
	}

	if err := c.Reconcile(context.Background()); err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if v := c.View(); v.Status != StatusActive || v.Version != 3 {
		t.Fatalf("after reconcile: status %v version %d, want active 3", v.Status, v.Version)
	}
	if c.Conflict() != nil {
		t.Error("expected conflict to clear after reconcile")
	}

	if err := c.End(context.Background()); err != nil {
		t.Fatalf("End() after reconcile error = %v", err)
	}
	if v := c.View(); v.Status != StatusEnded || v.Version != 4 {
		t.Errorf("after end: status %v version %d, want ended 4", v.Status, v.Version)
	}
}

func TestEnd_OnEndedIsNoOp(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.EndQueue = []gateway.MockMutate{{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionEnded, Version: 2}}}

	c := startController(t, mock)

	if err := c.End(context.Background()); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if err := c.End(context.Background()); err != nil {
		t.Fatalf("End() on ended session error = %v, want nil", err)
	}
	if n := mock.CallCount("EndSession"); n != 1 {
		t.Errorf("EndSession calls = %d, want 1", n)
	}
}

func TestMutation_VersionMustStrictlyIncrease(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 2)}}
	mock.PauseQueue = []gateway.MockMutate{{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionPaused, Version: 2}}}

	c := startController(t, mock)

	err := c.Pause(context.Background())
	var mono *occ.MonotonicityError
	if !errors.As(err, &mono) {
		t.Fatalf("Pause() error = %v, want a monotonicity violation", err)
	}
	if got := c.Status(); got != StatusError {
		t.Errorf("Status = %v, want %v", got, StatusError)
	}
	if err := c.Pause(context.Background()); !errors.Is(err, ErrReconcileRequired) {
		t.Errorf("Pause() in error state = %v, want ErrReconcileRequired", err)
	}
}

func TestFetchNextQuestion_StoresCurrent(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}

	c := startController(t, mock)

	q, err := c.FetchNextQuestion(context.Background())
	if err != nil {
		t.Fatalf("FetchNextQuestion() error = %v", err)
	}
	if q == nil || q.ID != "q1" {
		t.Fatalf("question = %+v, want q1", q)
	}
	if cur := c.CurrentQuestion(); cur == nil || cur.ID != "q1" {
		t.Errorf("CurrentQuestion() = %+v, want q1", cur)
	}
}

func TestFetchNextQuestion_ConcurrentCallsShareOneFetch(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1"), Delay: 60 * time.Millisecond}}

	c := startController(t, mock)

	var wg sync.WaitGroup
	results := make([]*gateway.Question, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.FetchNextQuestion(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < 2; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d error = %v", i, errs[i])
		}
		if results[i] == nil || results[i].ID != "q1" {
			t.Fatalf("caller %d question = %+v, want q1", i, results[i])
		}
	}
	if results[0] != results[1] {
		t.Error("expected both callers to observe the same resolved question")
	}
	if n := mock.CallCount("NextQuestion"); n != 1 {
		t.Errorf("NextQuestion calls = %d, want 1", n)
	}
}

func TestFetchNextQuestion_ExhaustionIsNotAnError(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: nil}}

	c := startController(t, mock)

	q, err := c.FetchNextQuestion(context.Background())
	if err != nil {
		t.Fatalf("FetchNextQuestion() error = %v", err)
	}
	if q != nil {
		t.Fatalf("question = %+v, want nil (exhausted)", q)
	}
	if v := c.View(); !v.Exhausted {
		t.Error("expected Exhausted to be set")
	}
}

func TestSubmitAnswer_AdoptsServerStats(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q1")}}
	mock.AnswerQueue = []gateway.MockAnswer{{Result: &gateway.AnswerResult{
		Correct: true,
		Stats:   gateway.AnswerStats{Answered: 1, CorrectCount: 1, Version: 2},
	}}}

	c := startController(t, mock)
	if _, err := c.FetchNextQuestion(context.Background()); err != nil {
		t.Fatalf("FetchNextQuestion() error = %v", err)
	}

	res, err := c.SubmitAnswer(context.Background(), "a")
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if !res.Correct {
		t.Error("expected a correct result")
	}
	v := c.View()
	if v.Answered != 1 || v.CorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", v.Answered, v.CorrectCount)
	}
	if v.Version != 2 {
		t.Errorf("Version = %d, want 2", v.Version)
	}
	if c.CurrentQuestion() != nil {
		t.Error("expected current question to clear after answering")
	}
}

func TestSubmitAnswer_CompletionEndsInline(t *testing.T) {
	summary := &gateway.SessionSummary{TotalQuestions: 5, CorrectCount: 4, Accuracy: 0.8}
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 5)}}
	mock.QuestionQueue = []gateway.MockQuestion{{Question: testQuestion("q5")}}
	mock.AnswerQueue = []gateway.MockAnswer{{Result: &gateway.AnswerResult{
		Correct:   true,
		Stats:     gateway.AnswerStats{Answered: 5, CorrectCount: 4, Version: 6},
		Completed: true,
		Summary:   summary,
	}}}

	c := startController(t, mock)
	if _, err := c.FetchNextQuestion(context.Background()); err != nil {
		t.Fatalf("FetchNextQuestion() error = %v", err)
	}
	if _, err := c.SubmitAnswer(context.Background(), "a"); err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}

	if got := c.Status(); got != StatusEnded {
		t.Fatalf("Status = %v, want %v", got, StatusEnded)
	}
	got := c.Summary()
	if got == nil || got.TotalQuestions != 5 || got.CorrectCount != 4 {
		t.Errorf("Summary() = %+v, want the inline summary", got)
	}
	if n := mock.CallCount("EndSession"); n != 0 {
		t.Errorf("EndSession calls = %d, want 0 (completion is inline)", n)
	}
}

func TestSubmitAnswer_RequiresQuestion(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}

	c := startController(t, mock)

	if _, err := c.SubmitAnswer(context.Background(), "a"); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("SubmitAnswer() error = %v, want ErrNoQuestion", err)
	}
}

func TestStaleEndResponse_DoesNotTouchNewSession(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{
		{Snap: activeSnapshot("s1", 1)},
		{Snap: activeSnapshot("s2", 1)},
	}
	mock.EndQueue = []gateway.MockMutate{{
		Resp:  &gateway.MutateSessionResponse{Status: gateway.SessionEnded, Version: 2},
		Delay: 100 * time.Millisecond,
	}}

	c := startController(t, mock)

	endErr := make(chan error, 1)
	go func() { endErr <- c.End(context.Background()) }()

	// Let the end call reach the wire, then start the next session while
	// it is still in flight.
	time.Sleep(25 * time.Millisecond)
	if err := c.Start(context.Background(), StartConfig{Kind: gateway.KindAdaptive}); err != nil {
		t.Fatalf("Start() during in-flight end error = %v", err)
	}

	if err := <-endErr; !errors.Is(err, ErrStale) {
		t.Fatalf("stale End() error = %v, want ErrStale", err)
	}

	v := c.View()
	if v.SessionID != "s2" {
		t.Fatalf("SessionID = %q, want %q", v.SessionID, "s2")
	}
	if v.Status != StatusActive {
		t.Errorf("Status = %v, want %v (late end must not end the new session)", v.Status, StatusActive)
	}
	if v.Version != 1 {
		t.Errorf("Version = %d, want 1 (late end must not bump the new session)", v.Version)
	}
}

func TestReset_ClearsState(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{
		{Snap: activeSnapshot("s1", 1)},
		{Snap: activeSnapshot("s2", 1)},
	}

	c := startController(t, mock)
	c.Reset()

	if got := c.Status(); got != StatusIdle {
		t.Fatalf("Status after reset = %v, want %v", got, StatusIdle)
	}
	if v := c.View(); v.SessionID != "" || v.Version != 0 {
		t.Errorf("View after reset = %+v, want zeroed", v)
	}
	if err := c.Start(context.Background(), StartConfig{Kind: gateway.KindAdaptive}); err != nil {
		t.Errorf("Start() after reset error = %v", err)
	}
}

type lifecycleJournal struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.SessionEventData
}

func (j *lifecycleJournal) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, data)
	return nil
}

func (j *lifecycleJournal) actions() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.events))
	for i, ev := range j.events {
		out[i] = ev.Action
	}
	return out
}

func TestJournal_RecordsLifecycleEvents(t *testing.T) {
	mock := gateway.NewMock()
	mock.StartQueue = []gateway.MockSnapshot{{Snap: activeSnapshot("s1", 1)}}
	mock.PauseQueue = []gateway.MockMutate{{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionPaused, Version: 2}}}
	mock.EndQueue = []gateway.MockMutate{{Resp: &gateway.MutateSessionResponse{Status: gateway.SessionEnded, Version: 3}}}

	journal := &lifecycleJournal{}
	c := New(mock, journal)
	ctx := context.Background()
	if err := c.Start(ctx, StartConfig{Kind: gateway.KindAdaptive}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := c.Pause(ctx); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if err := c.End(ctx); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	got := journal.actions()
	want := []string{"start", "pause", "end"}
	if len(got) != len(want) {
		t.Fatalf("journaled actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	last := journal.events[len(journal.events)-1]
	if last.Version != 3 {
		t.Errorf("end event version = %d, want 3", last.Version)
	}
}
