package store

import (
	"context"
	"fmt"

	"github.com/obinna/prepcli/ent/chargeevent"
)

func (r *eventRepo) AppendCharge(ctx context.Context, data ChargeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ChargeEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetDescription(data.Description).
		SetAmount(data.Amount).
		SetOutcome(data.Outcome).
		SetReason(data.Reason).
		SetBalanceAfter(data.BalanceAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save charge event: %w", err)
	}
	return nil
}

func (r *eventRepo) Spend(ctx context.Context, userID string) (SpendSummary, error) {
	events, err := r.client.ChargeEvent.Query().
		Where(chargeevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return SpendSummary{}, fmt.Errorf("query charge events: %w", err)
	}

	var sum SpendSummary
	for _, e := range events {
		switch e.Outcome {
		case "debited":
			sum.TotalDebited += e.Amount
		case "free":
			sum.FreeUsed++
		case "denied":
			sum.Denied++
		}
	}
	return sum, nil
}
