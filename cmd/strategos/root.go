package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/strategos/internal/logging"
)

// Exit codes: 0 solved/valid, 1 no plan or invalid plan, 2 malformed input.
const (
	exitOK      = 0
	exitNoPlan  = 1
	exitBadArgs = 2
)

var rootCmd = &cobra.Command{
	Use:   "strategos",
	Short: "Strategos is a grounded classical-planning engine",
	Long: `Strategos grounds typed action schemas over a finite object universe and
searches the induced state space for a plan reaching the goal.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitBadArgs)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	name, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(name))
}
