package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/strategos"
	"github.com/aretw0/strategos/internal/modelfile"
	"github.com/aretw0/strategos/internal/presentation/graph"
	"github.com/aretw0/strategos/internal/presentation/tui"
	"github.com/aretw0/strategos/pkg/adapters/redis"
	"github.com/aretw0/strategos/pkg/domain"
)

var solveCmd = &cobra.Command{
	Use:   "solve --domain FILE --problem FILE",
	Short: "Search for a plan",
	Long: `Grounds the domain model against the problem and runs state-space search.
Prints the plan to stdout on success. Exit code 0 means a plan was found,
1 means no plan exists (or the budget ran out), 2 means the input was invalid.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		domainPath, _ := cmd.Flags().GetString("domain")
		problemPath, _ := cmd.Flags().GetString("problem")
		strategyName, _ := cmd.Flags().GetString("strategy")
		nodeLimit, _ := cmd.Flags().GetInt("node-limit")
		workers, _ := cmd.Flags().GetInt("workers")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		cacheAddr, _ := cmd.Flags().GetString("cache")

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

		var strategy strategos.Strategy
		switch strategyName {
		case "bfs":
			strategy = strategos.StrategyBFS
		case "astar":
			strategy = strategos.StrategyAStar
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown strategy %q (want bfs or astar)\n", strategyName)
			os.Exit(exitBadArgs)
		}

		opts := []strategos.Option{
			strategos.WithLogger(logger),
			strategos.WithStrategy(strategy),
			strategos.WithNodeLimit(nodeLimit),
			strategos.WithWorkers(workers),
		}
		if cacheAddr != "" {
			opts = append(opts, strategos.WithPlanStore(redis.New(cacheAddr, "", 0)))
		}

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		res, err := strategos.New(opts...).Solve(ctx, model, problem)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitBadArgs)
		}

		fmt.Print(tui.RenderResult(res))
		if res.Solved() && mermaid {
			fmt.Println()
			fmt.Println(graph.GenerateMermaid(res.Plan))
		}
		if res.Outcome != domain.OutcomeSolved {
			os.Exit(exitNoPlan)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().String("domain", "", "Path to the domain model YAML")
	solveCmd.Flags().String("problem", "", "Path to the problem model YAML")
	solveCmd.Flags().String("strategy", "bfs", "Search strategy: bfs or astar")
	solveCmd.Flags().Int("node-limit", 0, "Maximum nodes to expand (0 = unlimited)")
	solveCmd.Flags().Int("workers", 0, "Parallel expansion workers for bfs (0 = sequential)")
	solveCmd.Flags().Duration("timeout", 0, "Search deadline, e.g. 30s (0 = none)")
	solveCmd.Flags().Bool("mermaid", false, "Also print the plan as a Mermaid flowchart")
	solveCmd.Flags().String("cache", "", "Redis address for the plan cache, e.g. localhost:6379")
	_ = solveCmd.MarkFlagRequired("domain")
	_ = solveCmd.MarkFlagRequired("problem")
}
