package main

import (
	"os"

	"github.com/obinna/prepcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
