// Package tui renders solver results for the terminal. Colors degrade
// automatically on dumb terminals via termenv's profile detection.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/aretw0/strategos/pkg/domain"
)

// RenderResult formats a solve result for human consumption.
func RenderResult(res *domain.Result) string {
	p := termenv.ColorProfile()
	var sb strings.Builder

	switch res.Outcome {
	case domain.OutcomeSolved:
		header := termenv.String(fmt.Sprintf("Plan found (%d steps)", len(res.Plan.Steps))).
			Foreground(p.Color("#22c55e")).Bold()
		sb.WriteString(header.String())
		sb.WriteString("\n")
		for i, step := range res.Plan.Steps {
			num := termenv.String(fmt.Sprintf("%3d.", i+1)).Foreground(p.Color("#818cf8"))
			sb.WriteString(fmt.Sprintf("%s %s\n", num, step))
		}
	case domain.OutcomeNoPlanFound:
		sb.WriteString(termenv.String("No plan exists").Foreground(p.Color("#ef4444")).Bold().String())
		sb.WriteString("\n")
	case domain.OutcomeInconclusive:
		sb.WriteString(termenv.String("Search inconclusive (budget or deadline exhausted)").
			Foreground(p.Color("#eab308")).Bold().String())
		sb.WriteString("\n")
	}

	stats := fmt.Sprintf("expanded=%d generated=%d duration=%s",
		res.NodesExpanded, res.NodesGenerated, res.Duration.Round(time.Microsecond))
	sb.WriteString(termenv.String(stats).Faint().String())
	sb.WriteString("\n")
	return sb.String()
}
