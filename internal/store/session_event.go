package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilldrill/ent"
	"github.com/abhisek/skilldrill/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetKind(data.Kind).
		SetStrategy(data.Strategy).
		SetResumed(data.Resumed).
		SetVersion(data.Version).
		SetAnswered(data.Answered).
		SetCorrectCount(data.CorrectCount).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionHistory(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:    e.SessionID,
			Kind:         e.Kind,
			EndedAt:      e.Timestamp,
			Answered:     e.Answered,
			CorrectCount: e.CorrectCount,
			DurationSecs: e.DurationSecs,
		})
	}
	return records, nil
}
