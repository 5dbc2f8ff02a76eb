package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obinna/prepcli/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the free-action counter for the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := os.Getenv("PREPCLI_USER_ID")
		if userID == "" {
			return fmt.Errorf("PREPCLI_USER_ID is required (run 'prepcli login' first)")
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

		if err := st.QuotaRepo().Reset(cmd.Context(), userID); err != nil {
			return fmt.Errorf("reset quota: %w", err)
		}
		fmt.Printf("Free-action counter reset for user %s.\n", userID)
		return nil
	},
}
