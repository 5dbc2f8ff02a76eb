package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinna/prepcli/internal/api"
	"github.com/obinna/prepcli/internal/pricing"
	"github.com/obinna/prepcli/internal/store"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show wallet balance and free actions remaining",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		apiCfg := api.ConfigFromEnv()
		if err := apiCfg.Validate(); err != nil {
			return err
		}
		client := api.New(apiCfg)

		fin, err := client.Finance(ctx)
		if err != nil {
			return fmt.Errorf("fetch balance: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prices := pricing.FromEnv()
		used, err := st.QuotaRepo().FreeUsed(ctx, apiCfg.UserID)
		if err != nil {
			return fmt.Errorf("read free quota: %w", err)
		}
		freeLeft := prices.FreeLimit - used
		if freeLeft < 0 {
			freeLeft = 0
		}

		fmt.Printf("Balance:        %s\n", pricing.Naira(fin.Balance))
		fmt.Printf("Free actions:   %d of %d remaining\n", freeLeft, prices.FreeLimit)

		spend, err := st.EventRepo().Spend(ctx, apiCfg.UserID)
		if err != nil {
			return fmt.Errorf("read spend: %w", err)
		}
		fmt.Printf("Total spent:    %s (%d free actions used, %d denied)\n",
			pricing.Naira(spend.TotalDebited), spend.FreeUsed, spend.Denied)
		return nil
	},
}
