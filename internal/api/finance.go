package api

import (
	"context"
	"fmt"
)

// FinanceInfo is the wallet state for the authenticated user.
type FinanceInfo struct {
	Balance int `json:"balance"`
}

// Finance fetches the current wallet balance.
func (c *Client) Finance(ctx context.Context) (FinanceInfo, error) {
	var info FinanceInfo
	if err := c.get(ctx, "/api/me/finance", &info); err != nil {
		return FinanceInfo{}, err
	}
	return info, nil
}

// DeductResult is the server's answer to a deduction. Balance is nil when
// the server acknowledged the debit without echoing the new balance.
type DeductResult struct {
	Balance *int `json:"balance"`
}

// DeductBalance asks the platform to debit the wallet. The server is the
// source of truth; callers must not treat a transport failure as a
// successful debit.
func (c *Client) DeductBalance(ctx context.Context, amount int, description string) (DeductResult, error) {
	body := map[string]any{
		"amount":      amount,
		"description": description,
	}
	var res DeductResult
	if err := c.post(ctx, "/api/me/deduct-balance", body, &res); err != nil {
		return DeductResult{}, fmt.Errorf("deduct balance: %w", err)
	}
	return res, nil
}
