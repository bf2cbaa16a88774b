package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendGatewayCall(ctx context.Context, data GatewayCallEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GatewayCallEvent.Create().
		SetSequence(seqNum).
		SetOperation(data.Operation).
		SetSuccess(data.Success).
		SetStatus(data.Status).
		SetErrorKind(data.ErrorKind).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save gateway call event: %w", err)
	}
	return nil
}
