package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/app"
	"github.com/obinna/prepcli/internal/assist"
	"github.com/obinna/prepcli/internal/bank"
	"github.com/obinna/prepcli/internal/llm"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/screens/practice"
	"github.com/obinna/prepcli/internal/store"
	"github.com/obinna/prepcli/internal/wallet"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	prices := pricing.FromEnv()

	deps := &practice.Deps{
		Events: eventRepo,
		Prices: prices,
	}

	apiCfg := api.ConfigFromEnv()
	var finance wallet.Finance
	if err := apiCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Platform not connected:", err)
		fmt.Fprintln(os.Stderr, "Practice tests will be unavailable until you log in.")
	} else {
		client := api.New(apiCfg)
		deps.Client = client
		deps.Loader = bank.NewLoader(client)
		deps.UserID = apiCfg.UserID
		finance = client
	}

	deps.Ledger = wallet.NewLedger(finance, st.QuotaRepo(), eventRepo, prices, deps.UserID)
	if deps.Client != nil {
		if err := deps.Ledger.Refresh(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "Could not fetch wallet balance:", err)
		}
	}

	provider, err := providerFromEnv(cmd, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Explanations and worked examples will be unavailable.")
	} else {
		deps.Assist = assist.NewService(provider, assist.DefaultConfig())
	}

	return app.Run(deps)
}

// providerFromEnv builds the LLM provider from PREPCLI_* variables, falling
// back to probing the standard GEMINI/OPENAI/ANTHROPIC key variables.
func providerFromEnv(cmd *cobra.Command, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(cmd.Context(), cfg, eventRepo)
}
