package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/strategos"
	"github.com/aretw0/strategos/internal/modelfile"
	"github.com/aretw0/strategos/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate --domain FILE --problem FILE --plan FILE",
	Short: "Check a plan for soundness",
	Long: `Replays the plan step by step: every precondition must hold before its
step applies, and the final state must satisfy the goal. The plan file is a
JSON array of steps: [{"action":"move","args":["r1","c1","c2"]}].`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		domainPath, _ := cmd.Flags().GetString("domain")
		problemPath, _ := cmd.Flags().GetString("problem")
		planPath, _ := cmd.Flags().GetString("plan")

		model, err := modelfile.LoadModel(domainPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitBadArgs)
		}
		problem, err := modelfile.LoadProblem(problemPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitBadArgs)
		}

		planData, err := os.ReadFile(planPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitBadArgs)
		}
		var steps []domain.Step
		if err := json.Unmarshal(planData, &steps); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid plan JSON: %v\n", err)
			os.Exit(exitBadArgs)
		}

		planner := strategos.New(strategos.WithLogger(logger))
		if err := planner.Validate(model, problem, &domain.Plan{Steps: steps}); err != nil {
			fmt.Fprintf(os.Stderr, "Plan is invalid: %v\n", err)
			os.Exit(exitNoPlan)
		}
		fmt.Println("Plan is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("domain", "", "Path to the domain model YAML")
	validateCmd.Flags().String("problem", "", "Path to the problem model YAML")
	validateCmd.Flags().String("plan", "", "Path to the plan JSON")
	_ = validateCmd.MarkFlagRequired("domain")
	_ = validateCmd.MarkFlagRequired("problem")
	_ = validateCmd.MarkFlagRequired("plan")
}
