package wallet

import (
	"context"
	"testing"

	"github.com/obinna/prepcli/internal/pricing"
)

// TestSessionChargeSequence walks a full session's worth of paid actions:
// a student starting at ₦100 with both free units available checks an
// answer, reads an explanation, requests an example, checks again, then
// submits.
func TestSessionChargeSequence(t *testing.T) {
	finance := &fakeFinance{balance: 100, echoBalance: true}
	l, _ := newTestLedger(t, finance)
	ctx := context.Background()

	steps := []struct {
		action      pricing.Action
		wantFree    bool
		wantAmount  int
		wantBalance int
	}{
		{pricing.ActionCheck, true, 0, 100},        // free unit 1
		{pricing.ActionExplanation, true, 0, 100},  // free unit 2
		{pricing.ActionExample, false, 20, 80},     // first real debit
		{pricing.ActionCheck, false, 15, 65},       // second check is paid
		{pricing.ActionSubmit, false, 25, 40},      // submission
	}

	for i, step := range steps {
		charge, err := l.Authorize(ctx, step.action, "")
		if err != nil {
			t.Fatalf("step %d (%s): %v", i, step.action, err)
		}
		if charge.Free != step.wantFree {
			t.Errorf("step %d (%s): free = %v, want %v", i, step.action, charge.Free, step.wantFree)
		}
		if charge.Amount != step.wantAmount {
			t.Errorf("step %d (%s): amount = %d, want %d", i, step.action, charge.Amount, step.wantAmount)
		}
		if charge.Balance != step.wantBalance {
			t.Errorf("step %d (%s): balance = %d, want %d", i, step.action, charge.Balance, step.wantBalance)
		}
	}
}
