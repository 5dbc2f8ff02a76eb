package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser via -ldflags; source builds report
// "(devel)", which also disables self-update.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the installed prepcli version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("prepcli", version)
	},
}
