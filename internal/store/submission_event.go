package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetScoreSaved(data.ScoreSaved).
		SetSubmissionsSent(data.SubmissionsSent).
		SetSubmissionsTotal(data.SubmissionsTotal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}
