package store

import (
	"context"
	"fmt"

	"github.com/obinna/prepcli/ent"
	"github.com/obinna/prepcli/ent/quota"
)

// quotaRepo implements QuotaRepo backed by ent. Single-user CLI, so plain
// read-then-write is sufficient; no concurrent writers exist.
type quotaRepo struct {
	client *ent.Client
}

func (r *quotaRepo) FreeUsed(ctx context.Context, userID string) (int, error) {
	q, err := r.client.Quota.Query().
		Where(quota.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query quota: %w", err)
	}
	return q.FreeUsed, nil
}

func (r *quotaRepo) ConsumeFree(ctx context.Context, userID string) (int, error) {
	q, err := r.client.Quota.Query().
		Where(quota.UserID(userID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("query quota: %w", err)
		}
		created, err := r.client.Quota.Create().
			SetUserID(userID).
			SetFreeUsed(1).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create quota: %w", err)
		}
		return created.FreeUsed, nil
	}

	updated, err := q.Update().AddFreeUsed(1).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update quota: %w", err)
	}
	return updated.FreeUsed, nil
}

func (r *quotaRepo) Reset(ctx context.Context, userID string) error {
	_, err := r.client.Quota.Update().
		Where(quota.UserID(userID)).
		SetFreeUsed(0).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reset quota: %w", err)
	}
	return nil
}
