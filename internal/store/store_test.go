package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "start", Kind: "adaptive"},
		{SessionID: "s1", Action: "end", Kind: "adaptive", Version: 7, Answered: 10, CorrectCount: 8, DurationSecs: 300},
		{SessionID: "s2", Action: "start", Kind: "focused"},
		{SessionID: "s2", Action: "end", Kind: "focused", Version: 3, Answered: 5, CorrectCount: 2, DurationSecs: 120},
	}
	for i, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.SessionHistory(ctx, 0)
	if err != nil {
		t.Fatalf("session history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (end events only)", len(records))
	}

	// Most recent first.
	if records[0].SessionID != "s2" {
		t.Errorf("records[0].SessionID = %q, want s2", records[0].SessionID)
	}
	if records[0].Answered != 5 || records[0].CorrectCount != 2 {
		t.Errorf("records[0] counters = %d/%d, want 5/2", records[0].Answered, records[0].CorrectCount)
	}
	if records[1].SessionID != "s1" {
		t.Errorf("records[1].SessionID = %q, want s1", records[1].SessionID)
	}
	if records[1].Kind != "adaptive" {
		t.Errorf("records[1].Kind = %q, want adaptive", records[1].Kind)
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: id, Action: "end"}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.SessionHistory(ctx, 2)
	if err != nil {
		t.Fatalf("session history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].SessionID != "c" {
		t.Errorf("records[0].SessionID = %q, want c", records[0].SessionID)
	}
}

func TestPendingSubmissions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// k1 dispatched and resolved, k2 dispatched only, k3 dispatched and
	// failed. Only k2 is pending.
	seed := []SubmissionEventData{
		{SessionID: "s1", QuestionID: "q1", IdempotencyKey: "k1", Phase: "dispatched", SelectedOption: "a"},
		{SessionID: "s1", QuestionID: "q1", IdempotencyKey: "k1", Phase: "resolved", Correct: true, Answered: 1, CorrectCount: 1, Version: 2},
		{SessionID: "s1", QuestionID: "q2", IdempotencyKey: "k2", Phase: "dispatched", SelectedOption: "b"},
		{SessionID: "s1", QuestionID: "q3", IdempotencyKey: "k3", Phase: "dispatched", SelectedOption: "c"},
		{SessionID: "s1", QuestionID: "q3", IdempotencyKey: "k3", Phase: "failed", ErrorKind: "validation"},
	}
	for i, e := range seed {
		if err := repo.AppendSubmissionEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	pending, err := repo.PendingSubmissions(ctx, "s1")
	if err != nil {
		t.Fatalf("pending submissions: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	if pending[0].IdempotencyKey != "k2" {
		t.Errorf("pending key = %q, want k2", pending[0].IdempotencyKey)
	}
	if pending[0].QuestionID != "q2" {
		t.Errorf("pending question = %q, want q2", pending[0].QuestionID)
	}
	if pending[0].SelectedOption != "b" {
		t.Errorf("pending option = %q, want b", pending[0].SelectedOption)
	}
}

func TestPendingSubmissionsScopedToSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSubmissionEvent(ctx, SubmissionEventData{
		SessionID: "other", QuestionID: "q9", IdempotencyKey: "k9", Phase: "dispatched",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	pending, err := repo.PendingSubmissions(ctx, "s1")
	if err != nil {
		t.Fatalf("pending submissions: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending = %d, want 0 for a different session", len(pending))
	}
}

func TestResolvedSubmission(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Nothing journaled yet.
	got, err := repo.ResolvedSubmission(ctx, "s1", "q1")
	if err != nil {
		t.Fatalf("resolved (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil outcome when none recorded")
	}

	seed := []SubmissionEventData{
		{SessionID: "s1", QuestionID: "q1", IdempotencyKey: "k1", Phase: "dispatched", SelectedOption: "a"},
		{SessionID: "s1", QuestionID: "q1", IdempotencyKey: "k1", Phase: "resolved", Correct: true, Answered: 3, CorrectCount: 2, Version: 4},
	}
	for i, e := range seed {
		if err := repo.AppendSubmissionEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err = repo.ResolvedSubmission(ctx, "s1", "q1")
	if err != nil {
		t.Fatalf("resolved: %v", err)
	}
	if got == nil {
		t.Fatal("expected recorded outcome")
	}
	if !got.Correct {
		t.Error("correct = false, want true")
	}
	if got.Version != 4 {
		t.Errorf("version = %d, want 4", got.Version)
	}
	if got.IdempotencyKey != "k1" {
		t.Errorf("key = %q, want k1", got.IdempotencyKey)
	}
}

func TestReviewStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []ReviewEventData{
		{SessionID: "s1", ReviewID: "r1", Action: "start"},
		{SessionID: "s1", ReviewID: "r1", Action: "answer", Correct: true, Reinforced: true, ReviewedCount: 1, ReinforcedCount: 1},
		{SessionID: "s1", ReviewID: "r1", Action: "complete", ReviewedCount: 4, ReinforcedCount: 3},
		{SessionID: "s2", ReviewID: "r2", Action: "start"},
		{SessionID: "s2", ReviewID: "r2", Action: "skip", ReviewedCount: 1, ReinforcedCount: 0},
	}
	for i, e := range seed {
		if err := repo.AppendReviewEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	totals, err := repo.ReviewStats(ctx)
	if err != nil {
		t.Fatalf("review stats: %v", err)
	}
	if totals.Rounds != 2 {
		t.Errorf("rounds = %d, want 2", totals.Rounds)
	}
	if totals.ReviewedCount != 5 {
		t.Errorf("reviewed = %d, want 5", totals.ReviewedCount)
	}
	if totals.ReinforcedCount != 3 {
		t.Errorf("reinforced = %d, want 3", totals.ReinforcedCount)
	}
}

func TestGatewayCallAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendGatewayCall(ctx, GatewayCallEventData{
		Operation: "SubmitAnswer",
		Success:   false,
		Status:    409,
		ErrorKind: "version_conflict",
		LatencyMs: 42,
	})
	if err != nil {
		t.Fatalf("append gateway call: %v", err)
	}

	count, err := s.Client().GatewayCallEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}

func TestReadingSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &ReadingSnapshot{
		Timestamp:         now,
		UnreadCount:       7,
		HighPriorityCount: 2,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.UnreadCount != 7 {
		t.Errorf("unread = %d, want 7", snap.UnreadCount)
	}
	if snap.HighPriorityCount != 2 {
		t.Errorf("high priority = %d, want 2", snap.HighPriorityCount)
	}
}

func TestReadingSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &ReadingSnapshot{UnreadCount: i + 1})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.UnreadCount != 3 {
		t.Errorf("unread = %d, want 3", snap.UnreadCount)
	}
}

func TestReadingSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &ReadingSnapshot{UnreadCount: i + 1})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ReadingSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest still reflects the newest save.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.UnreadCount != 7 {
		t.Errorf("latest unread = %d, want 7", snap.UnreadCount)
	}
}

func TestReadingSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &ReadingSnapshot{UnreadCount: i + 1})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ReadingSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_events", "submission_events", "review_events", "gateway_call_events", "reading_snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
