package store

import (
	"context"
	"fmt"

	"github.com/obinna/prepcli/ent"
	"github.com/obinna/prepcli/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetExamName(data.ExamName).
		SetSubjectName(data.SubjectName).
		SetQuestionCount(data.QuestionCount).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("finish")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, SessionSummary{
			SessionID:     e.SessionID,
			ExamName:      e.ExamName,
			SubjectName:   e.SubjectName,
			QuestionCount: e.QuestionCount,
			Correct:       e.Correct,
			Score:         e.Score,
			DurationSecs:  e.DurationSecs,
			Timestamp:     e.Timestamp,
		})
	}
	return summaries, nil
}
