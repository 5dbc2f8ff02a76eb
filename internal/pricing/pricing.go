// Package pricing defines the naira cost of each paid action and the
// complimentary free allowance granted to every user.
package pricing

import (
	"fmt"
	"os"
	"strconv"
)

// Action identifies a billable operation.
type Action string

const (
	ActionCheck       Action = "check-answer"
	ActionExplanation Action = "explanation"
	ActionExample     Action = "example"
	ActionSubmit      Action = "submit"
)

// Table maps actions to their price in naira, plus the free allowance.
type Table struct {
	Check       int
	Explanation int
	Example     int
	Submit      int

	// FreeLimit is the number of paid actions covered for free before the
	// wallet is touched.
	FreeLimit int
}

// Default returns the standard price table.
func Default() Table {
	return Table{
		Check:       15,
		Explanation: 20,
		Example:     20,
		Submit:      25,
		FreeLimit:   2,
	}
}

// FromEnv returns the default table with any PREPCLI_PRICE_* /
// PREPCLI_FREE_LIMIT overrides applied. Unset or malformed values keep
// the default.
func FromEnv() Table {
	t := Default()
	t.Check = envInt("PREPCLI_PRICE_CHECK", t.Check)
	t.Explanation = envInt("PREPCLI_PRICE_EXPLANATION", t.Explanation)
	t.Example = envInt("PREPCLI_PRICE_EXAMPLE", t.Example)
	t.Submit = envInt("PREPCLI_PRICE_SUBMIT", t.Submit)
	t.FreeLimit = envInt("PREPCLI_FREE_LIMIT", t.FreeLimit)
	return t
}

// Price returns the cost of the given action.
func (t Table) Price(a Action) int {
	switch a {
	case ActionCheck:
		return t.Check
	case ActionExplanation:
		return t.Explanation
	case ActionExample:
		return t.Example
	case ActionSubmit:
		return t.Submit
	}
	return 0
}

// Naira formats an amount for display.
func Naira(amount int) string {
	return fmt.Sprintf("₦%d", amount)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
