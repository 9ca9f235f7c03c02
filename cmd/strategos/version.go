package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/strategos"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strategos",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strategos version %s\n", strings.TrimSpace(strategos.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
