// Package graph renders plans as Mermaid flowcharts for embedding in
// documentation or issue reports.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/strategos/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a plan: one node per
// state milestone, one edge per action. The initial state is a circle, the
// goal a double circle, intermediate states plain rectangles.
func GenerateMermaid(plan *domain.Plan) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	sb.WriteString("    s0((\"init\"))\n")
	for i, step := range plan.Steps {
		id := fmt.Sprintf("s%d", i+1)
		if i == len(plan.Steps)-1 {
			sb.WriteString(fmt.Sprintf("    %s(((\"goal\")))\n", id))
		} else {
			sb.WriteString(fmt.Sprintf("    %s[\"state %d\"]\n", id, i+1))
		}
		sb.WriteString(fmt.Sprintf("    s%d -- \"%s\" --> %s\n", i, escapeLabel(step.String()), id))
	}
	return sb.String()
}

// Mermaid edge labels cannot carry double quotes or pipes.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	return strings.ReplaceAll(s, "|", "/")
}
