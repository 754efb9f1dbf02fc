package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendInterviewEvent(ctx context.Context, data InterviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InterviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAxisID(data.AxisID).
		SetAreaID(data.AreaID).
		SetLanguage(data.Language).
		SetTurns(data.Turns).
		SetScore(data.Score).
		SetReasoning(data.Reasoning).
		SetOutcome(data.Outcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interview event: %w", err)
	}
	return nil
}
