package poll

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/store"
)

func transportFailure() gateway.MockReadingStats {
	return gateway.MockReadingStats{Err: &gateway.Error{Kind: gateway.KindTransport, Message: "timeout"}}
}

func TestNextInterval(t *testing.T) {
	base, max := 10*time.Second, 60*time.Second
	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"no failures", 0, 10 * time.Second},
		{"one failure", 1, 20 * time.Second},
		{"two failures", 2, 40 * time.Second},
		{"three failures", 3, 60 * time.Second},
		{"capped", 4, 60 * time.Second},
		{"stays capped", 10, 60 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextInterval(base, max, tt.failures))
		})
	}
}

func TestBackoffSequence(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReadingQueue = []gateway.MockReadingStats{
		transportFailure(), transportFailure(), transportFailure(),
		transportFailure(), transportFailure(),
	}
	s := NewService(mock, nil, DefaultConfig())

	want := []time.Duration{
		10 * time.Second,
		20 * time.Second,
		40 * time.Second,
		60 * time.Second,
		60 * time.Second,
	}
	for i, w := range want {
		got := s.pollOnce(context.Background())
		assert.Equalf(t, w, got, "delay after failure %d", i+1)
	}
}

func TestSuccessResetsBackoff(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReadingQueue = []gateway.MockReadingStats{
		transportFailure(),
		transportFailure(),
		{Stats: &gateway.ReadingStats{UnreadCount: 2}},
		transportFailure(),
	}
	s := NewService(mock, nil, DefaultConfig())
	ctx := context.Background()

	s.pollOnce(ctx)
	s.pollOnce(ctx)
	require.Equal(t, DefaultBaseInterval, s.pollOnce(ctx), "success returns to the base interval")

	// The streak restarted: the next failure backs off from the base again.
	assert.Equal(t, DefaultBaseInterval, s.pollOnce(ctx))
}

func TestStaleRetention(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReadingQueue = []gateway.MockReadingStats{
		{Stats: &gateway.ReadingStats{UnreadCount: 7, HighPriorityCount: 2}},
		transportFailure(),
	}
	s := NewService(mock, nil, DefaultConfig())
	ctx := context.Background()

	s.pollOnce(ctx)
	require.NotNil(t, s.Stats())
	require.Equal(t, 7, s.Stats().UnreadCount)

	s.pollOnce(ctx)
	got := s.Stats()
	require.NotNil(t, got, "a failed fetch must not clear the read model")
	assert.Equal(t, 7, got.UnreadCount)
	assert.Equal(t, 2, got.HighPriorityCount)
}

func TestDisabledLoopIssuesNoCalls(t *testing.T) {
	mock := gateway.NewMock()
	s := NewService(mock, nil, Config{BaseInterval: 5 * time.Millisecond, MaxInterval: 20 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Zero(t, mock.CallCount("ReadingStats"), "disabled polling must stay off the network")
}

func TestEnabledLoopPolls(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReadingQueue = []gateway.MockReadingStats{
		{Stats: &gateway.ReadingStats{UnreadCount: 1}},
		{Stats: &gateway.ReadingStats{UnreadCount: 3}},
		{Stats: &gateway.ReadingStats{UnreadCount: 4}},
	}
	s := NewService(mock, nil, Config{BaseInterval: 5 * time.Millisecond, MaxInterval: 20 * time.Millisecond})
	s.Enable()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	require.GreaterOrEqual(t, mock.CallCount("ReadingStats"), 2)
	require.NotNil(t, s.Stats())
	assert.GreaterOrEqual(t, s.Stats().UnreadCount, 1)
}

type fakeSnapshots struct {
	store.SnapshotRepo
	mu     sync.Mutex
	latest *store.ReadingSnapshot
	saved  []*store.ReadingSnapshot
	pruned int
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.ReadingSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshots) Latest(_ context.Context) (*store.ReadingSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, nil
}

func (f *fakeSnapshots) Prune(_ context.Context, keep int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruned++
	return nil
}

func TestSeedPublishesPersistedSnapshot(t *testing.T) {
	repo := &fakeSnapshots{latest: &store.ReadingSnapshot{UnreadCount: 4, HighPriorityCount: 1}}
	s := NewService(gateway.NewMock(), repo, DefaultConfig())

	require.NoError(t, s.Seed(context.Background()))
	got := s.Stats()
	require.NotNil(t, got)
	assert.Equal(t, 4, got.UnreadCount)
	assert.Equal(t, 1, got.HighPriorityCount)
}

func TestSeedWithNothingPersisted(t *testing.T) {
	s := NewService(gateway.NewMock(), &fakeSnapshots{}, DefaultConfig())

	require.NoError(t, s.Seed(context.Background()))
	assert.Nil(t, s.Stats())
}

func TestSuccessfulPollPersists(t *testing.T) {
	mock := gateway.NewMock()
	mock.ReadingQueue = []gateway.MockReadingStats{
		{Stats: &gateway.ReadingStats{UnreadCount: 5, HighPriorityCount: 2}},
		transportFailure(),
	}
	repo := &fakeSnapshots{}
	s := NewService(mock, repo, DefaultConfig())
	ctx := context.Background()

	s.pollOnce(ctx)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, 5, repo.saved[0].UnreadCount)
	assert.Equal(t, 1, repo.pruned)

	// Failures persist nothing.
	s.pollOnce(ctx)
	assert.Len(t, repo.saved, 1)
}
