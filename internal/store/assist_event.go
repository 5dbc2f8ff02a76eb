package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAssistEvent(ctx context.Context, data AssistEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssistEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTrack(data.Track).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionID(data.QuestionID).
		SetFallback(data.Fallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assist event: %w", err)
	}
	return nil
}
