package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendScoreEvent(ctx context.Context, data ScoreEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ScoreEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAxisID(data.AxisID).
		SetAreaID(data.AreaID).
		SetRank(data.Rank).
		SetSelected(data.Selected).
		SetSource(data.Source).
		SetAxisPercent(data.AxisPercent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save score event: %w", err)
	}
	return nil
}
