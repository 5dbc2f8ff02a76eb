// Package practice holds the screen flow for running a practice test:
// exam picker, subject picker, test setup, the active test, and results.
package practice

import (
	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/assist"
	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/store"
	"github.com/obinna/prepcli/internal/wallet"
)

// Deps carries the shared dependencies every practice screen needs.
type Deps struct {
	Client *api.Client
	Loader *bank.Loader
	Ledger *wallet.Ledger
	Assist *assist.Service
	Events store.EventRepo
	Prices pricing.Table
	UserID string
}
