package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilldrill/ent/reviewevent"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetReviewID(data.ReviewID).
		SetAction(data.Action).
		SetCorrect(data.Correct).
		SetReinforced(data.Reinforced).
		SetReviewedCount(data.ReviewedCount).
		SetReinforcedCount(data.ReinforcedCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewStats(ctx context.Context) (*ReviewTotals, error) {
	// Completed and skipped rounds both end a round; their counters are
	// the final tallies for that round.
	events, err := r.client.ReviewEvent.Query().
		Where(reviewevent.ActionIn("complete", "skip")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review stats: %w", err)
	}

	totals := &ReviewTotals{}
	for _, e := range events {
		totals.Rounds++
		totals.ReviewedCount += e.ReviewedCount
		totals.ReinforcedCount += e.ReinforcedCount
	}
	return totals, nil
}
