package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilldrill/ent"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *ReadingSnapshot) error {
	seqNum := snap.Sequence
	if seqNum == 0 {
		var err error
		seqNum, err = r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
	}

	builder := r.client.ReadingSnapshot.Create().
		SetSequence(seqNum).
		SetUnreadCount(snap.UnreadCount).
		SetHighPriorityCount(snap.HighPriorityCount)
	if !snap.Timestamp.IsZero() {
		builder = builder.SetTimestamp(snap.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save reading snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*ReadingSnapshot, error) {
	s, err := r.client.ReadingSnapshot.Query().
		Order(ent.Desc(readingsnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	return &ReadingSnapshot{
		ID:                s.ID,
		Sequence:          s.Sequence,
		Timestamp:         s.Timestamp,
		UnreadCount:       s.UnreadCount,
		HighPriorityCount: s.HighPriorityCount,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the threshold: the Nth most recent snapshot.
	snapshots, err := r.client.ReadingSnapshot.Query().
		Order(ent.Desc(readingsnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.ReadingSnapshot.Delete().
		Where(readingsnapshot.SequenceLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
