package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DiagnosisEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAxisID(data.AxisID).
		SetAreaID(data.AreaID).
		SetEvidence(data.Evidence).
		SetLevel(data.Level).
		SetJustification(data.Justification).
		SetOutcome(data.Outcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save diagnosis event: %w", err)
	}
	return nil
}
