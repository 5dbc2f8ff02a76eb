package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/store"
)

// fakeFinance stands in for the platform finance API.
type fakeFinance struct {
	balance     int
	echoBalance bool // server echoes the new balance on deduct
	deductErr   error
	deductCalls int
}

func (f *fakeFinance) Finance(ctx context.Context) (api.FinanceInfo, error) {
	return api.FinanceInfo{Balance: f.balance}, nil
}

func (f *fakeFinance) DeductBalance(ctx context.Context, amount int, description string) (api.DeductResult, error) {
	f.deductCalls++
	if f.deductErr != nil {
		return api.DeductResult{}, f.deductErr
	}
	f.balance -= amount
	if f.echoBalance {
		b := f.balance
		return api.DeductResult{Balance: &b}, nil
	}
	return api.DeductResult{}, nil
}

func newTestLedger(t *testing.T, finance *fakeFinance) (*Ledger, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	l := NewLedger(finance, s.QuotaRepo(), s.EventRepo(), pricing.Default(), "u1")
	if err := l.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return l, s
}

func TestFirstActionsAreFree(t *testing.T) {
	finance := &fakeFinance{balance: 100}
	l, _ := newTestLedger(t, finance)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		charge, err := l.Authorize(ctx, pricing.ActionExplanation, "AI Explanation")
		if err != nil {
			t.Fatalf("authorize %d: %v", i, err)
		}
		if !charge.Free {
			t.Errorf("charge %d: expected free", i)
		}
		if charge.Amount != 0 {
			t.Errorf("charge %d: amount = %d, want 0", i, charge.Amount)
		}
	}

	if finance.deductCalls != 0 {
		t.Errorf("deduct calls = %d, want 0", finance.deductCalls)
	}
	if l.Balance() != 100 {
		t.Errorf("balance = %d, want 100 (untouched)", l.Balance())
	}

	remaining, err := l.FreeRemaining(ctx)
	if err != nil {
		t.Fatalf("free remaining: %v", err)
	}
	if remaining != 0 {
		t.Errorf("free remaining = %d, want 0", remaining)
	}
}

func TestDebitAfterFreeExhausted(t *testing.T) {
	finance := &fakeFinance{balance: 100, echoBalance: true}
	l, _ := newTestLedger(t, finance)
	ctx := context.Background()

	// Burn the allowance.
	for i := 0; i < 2; i++ {
		if _, err := l.Authorize(ctx, pricing.ActionCheck, "AI Check Answer"); err != nil {
			t.Fatalf("free authorize %d: %v", i, err)
		}
	}

	charge, err := l.Authorize(ctx, pricing.ActionSubmit, "Practice Test Submission")
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if charge.Free {
		t.Error("expected paid charge")
	}
	if charge.Amount != 25 {
		t.Errorf("amount = %d, want 25", charge.Amount)
	}
	if charge.Balance != 75 {
		t.Errorf("balance = %d, want 75", charge.Balance)
	}
	if finance.deductCalls != 1 {
		t.Errorf("deduct calls = %d, want 1", finance.deductCalls)
	}
}

func TestDebitWithoutServerEchoFallsBackToArithmetic(t *testing.T) {
	finance := &fakeFinance{balance: 60, echoBalance: false}
	l, _ := newTestLedger(t, finance)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := l.Authorize(ctx, pricing.ActionCheck, "AI Check Answer"); err != nil {
			t.Fatalf("free authorize %d: %v", i, err)
		}
	}

	charge, err := l.Authorize(ctx, pricing.ActionExample, "AI Example")
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if charge.Balance != 40 {
		t.Errorf("balance = %d, want 40", charge.Balance)
	}
}

func TestInsufficientBalanceDeniedWithoutNetwork(t *testing.T) {
	finance := &fakeFinance{balance: 10}
	l, _ := newTestLedger(t, finance)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := l.Authorize(ctx, pricing.ActionCheck, "AI Check Answer"); err != nil {
			t.Fatalf("free authorize %d: %v", i, err)
		}
	}

	_, err := l.Authorize(ctx, pricing.ActionSubmit, "Practice Test Submission")
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	if finance.deductCalls != 0 {
		t.Errorf("deduct calls = %d, want 0 (fast-path denial)", finance.deductCalls)
	}
}

func TestDeductFailureDoesNotGrant(t *testing.T) {
	finance := &fakeFinance{balance: 100, deductErr: errors.New("boom")}
	l, _ := newTestLedger(t, finance)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := l.Authorize(ctx, pricing.ActionCheck, "AI Check Answer"); err != nil {
			t.Fatalf("free authorize %d: %v", i, err)
		}
	}

	_, err := l.Authorize(ctx, pricing.ActionExplanation, "AI Explanation")
	if !errors.Is(err, ErrDeductFailed) {
		t.Fatalf("err = %v, want ErrDeductFailed", err)
	}
	// Cached balance must not change on a failed debit.
	if l.Balance() != 100 {
		t.Errorf("balance = %d, want 100", l.Balance())
	}
}

func TestFreeUnitsNeverReturned(t *testing.T) {
	finance := &fakeFinance{balance: 0}
	l, _ := newTestLedger(t, finance)
	ctx := context.Background()

	// One free unit spent on an action whose downstream work will fail.
	if _, err := l.Authorize(ctx, pricing.ActionExplanation, "AI Explanation"); err != nil {
		t.Fatalf("authorize: %v", err)
	}

	// The counter only moves forward.
	remaining, err := l.FreeRemaining(ctx)
	if err != nil {
		t.Fatalf("free remaining: %v", err)
	}
	if remaining != 1 {
		t.Errorf("free remaining = %d, want 1", remaining)
	}
}

func TestChargeEventsRecorded(t *testing.T) {
	finance := &fakeFinance{balance: 100, echoBalance: true}
	l, s := newTestLedger(t, finance)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := l.Authorize(ctx, pricing.ActionCheck, "AI Check Answer"); err != nil {
			t.Fatalf("free authorize %d: %v", i, err)
		}
	}
	if _, err := l.Authorize(ctx, pricing.ActionSubmit, "Practice Test Submission"); err != nil {
		t.Fatalf("paid authorize: %v", err)
	}

	sum, err := s.EventRepo().Spend(ctx, "u1")
	if err != nil {
		t.Fatalf("spend: %v", err)
	}
	if sum.FreeUsed != 2 {
		t.Errorf("free used = %d, want 2", sum.FreeUsed)
	}
	if sum.TotalDebited != 25 {
		t.Errorf("total debited = %d, want 25", sum.TotalDebited)
	}
}
