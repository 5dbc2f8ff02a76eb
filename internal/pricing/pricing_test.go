package pricing

import "testing"

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	tests := []struct {
		action Action
		want   int
	}{
		{ActionCheck, 15},
		{ActionExplanation, 20},
		{ActionExample, 20},
		{ActionSubmit, 25},
	}
	for _, tt := range tests {
		if got := tbl.Price(tt.action); got != tt.want {
			t.Errorf("Price(%s) = %d, want %d", tt.action, got, tt.want)
		}
	}

	if tbl.FreeLimit != 2 {
		t.Errorf("FreeLimit = %d, want 2", tbl.FreeLimit)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PREPCLI_PRICE_SUBMIT", "40")
	t.Setenv("PREPCLI_FREE_LIMIT", "5")
	t.Setenv("PREPCLI_PRICE_CHECK", "not-a-number")

	tbl := FromEnv()
	if tbl.Submit != 40 {
		t.Errorf("Submit = %d, want 40", tbl.Submit)
	}
	if tbl.FreeLimit != 5 {
		t.Errorf("FreeLimit = %d, want 5", tbl.FreeLimit)
	}
	// Malformed override keeps the default.
	if tbl.Check != 15 {
		t.Errorf("Check = %d, want 15", tbl.Check)
	}
}

func TestNaira(t *testing.T) {
	if got := Naira(25); got != "₦25" {
		t.Errorf("Naira(25) = %q", got)
	}
}
