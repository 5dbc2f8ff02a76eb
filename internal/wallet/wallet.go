// Package wallet authorizes paid actions against the free allowance first,
// then the platform wallet. The server owns the balance; the ledger keeps a
// cached copy so obviously unaffordable actions are refused without a
// network round trip.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/store"
)

var (
	// ErrInsufficientBalance means the cached balance cannot cover the
	// price. No network call was made.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDeductFailed means the platform refused or the debit request
	// never completed. The wallet may or may not have been charged;
	// callers must not grant the action.
	ErrDeductFailed = errors.New("balance deduction failed")
)

// Finance is the slice of the platform API the ledger needs.
type Finance interface {
	Finance(ctx context.Context) (api.FinanceInfo, error)
	DeductBalance(ctx context.Context, amount int, description string) (api.DeductResult, error)
}

// Charge is a granted authorization.
type Charge struct {
	Action  pricing.Action
	Amount  int  // naira debited; 0 when Free
	Free    bool // covered by the free allowance
	Balance int  // cached balance after the charge
}

// Ledger mediates every paid action for one user.
type Ledger struct {
	finance Finance
	quota   store.QuotaRepo
	events  store.EventRepo
	prices  pricing.Table
	userID  string

	mu       sync.Mutex
	balance  int
	freeLeft int
}

// NewLedger creates a Ledger. Call Refresh before the first Authorize so
// the cached balance reflects the server.
func NewLedger(finance Finance, quota store.QuotaRepo, events store.EventRepo, prices pricing.Table, userID string) *Ledger {
	return &Ledger{
		finance: finance,
		quota:   quota,
		events:  events,
		prices:  prices,
		userID:  userID,
	}
}

// Refresh re-reads the wallet balance from the platform and the free
// counter from local storage.
func (l *Ledger) Refresh(ctx context.Context) error {
	info, err := l.finance.Finance(ctx)
	if err != nil {
		return fmt.Errorf("refresh balance: %w", err)
	}
	free, err := l.FreeRemaining(ctx)
	if err != nil {
		return fmt.Errorf("refresh free quota: %w", err)
	}
	l.mu.Lock()
	l.balance = info.Balance
	l.freeLeft = free
	l.mu.Unlock()
	return nil
}

// Balance returns the cached wallet balance.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// CachedFreeRemaining returns the free counter as of the last Refresh or
// Authorize, without touching storage. Used for header display.
func (l *Ledger) CachedFreeRemaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.freeLeft
}

// FreeRemaining returns how many free actions the user still has.
func (l *Ledger) FreeRemaining(ctx context.Context) (int, error) {
	used, err := l.quota.FreeUsed(ctx, l.userID)
	if err != nil {
		return 0, err
	}
	remaining := l.prices.FreeLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Authorize grants or refuses one paid action. Free units are consumed
// before the wallet is touched; a consumed unit is never returned, even if
// the action it paid for later fails. When the allowance is exhausted the
// cached balance is checked first, and only then is the platform asked to
// debit.
func (l *Ledger) Authorize(ctx context.Context, action pricing.Action, description string) (Charge, error) {
	price := l.prices.Price(action)

	used, err := l.quota.FreeUsed(ctx, l.userID)
	if err != nil {
		return Charge{}, fmt.Errorf("read free quota: %w", err)
	}
	if used < l.prices.FreeLimit {
		newUsed, err := l.quota.ConsumeFree(ctx, l.userID)
		if err != nil {
			return Charge{}, fmt.Errorf("consume free quota: %w", err)
		}
		l.mu.Lock()
		l.freeLeft = l.prices.FreeLimit - newUsed
		if l.freeLeft < 0 {
			l.freeLeft = 0
		}
		l.mu.Unlock()
		charge := Charge{Action: action, Amount: 0, Free: true, Balance: l.Balance()}
		l.record(ctx, action, description, 0, "free", "", charge.Balance)
		return charge, nil
	}

	l.mu.Lock()
	cached := l.balance
	l.mu.Unlock()

	if cached < price {
		l.record(ctx, action, description, price, "denied", "insufficient balance", cached)
		return Charge{}, fmt.Errorf("%w: need %s, have %s",
			ErrInsufficientBalance, pricing.Naira(price), pricing.Naira(cached))
	}

	res, err := l.finance.DeductBalance(ctx, price, description)
	if err != nil {
		l.record(ctx, action, description, price, "denied", err.Error(), cached)
		return Charge{}, fmt.Errorf("%w: %v", ErrDeductFailed, err)
	}

	newBalance := cached - price
	if res.Balance != nil {
		newBalance = *res.Balance
	}

	l.mu.Lock()
	l.balance = newBalance
	l.mu.Unlock()

	charge := Charge{Action: action, Amount: price, Balance: newBalance}
	l.record(ctx, action, description, price, "debited", "", newBalance)
	return charge, nil
}

// record appends a charge event. Events are observability, not
// authorization state, so append failures do not affect the decision.
func (l *Ledger) record(ctx context.Context, action pricing.Action, description string, amount int, outcome, reason string, balanceAfter int) {
	if l.events == nil {
		return
	}
	_ = l.events.AppendCharge(ctx, store.ChargeEventData{
		UserID:       l.userID,
		Action:       string(action),
		Description:  description,
		Amount:       amount,
		Outcome:      outcome,
		Reason:       reason,
		BalanceAfter: balanceAfter,
	})
}
