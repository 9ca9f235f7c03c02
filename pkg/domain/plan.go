package domain

import "strings"

// Step is one action invocation of a plan, in plain serializable form.
type Step struct {
	Action string   `json:"action" yaml:"action"`
	Args   []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// String renders the step in plan notation: (name arg1 arg2 ...).
func (s Step) String() string {
	if len(s.Args) == 0 {
		return "(" + s.Action + ")"
	}
	return "(" + s.Action + " " + strings.Join(s.Args, " ") + ")"
}

// Plan is an ordered sequence of ground action invocations. It is valid for a
// problem iff sequential application from the initial state never violates a
// precondition and the final state satisfies the goal.
type Plan struct {
	Steps []Step `json:"steps" yaml:"steps"`
}

// String renders the plan one step per line.
func (p *Plan) String() string {
	lines := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

// Len returns the number of steps.
func (p *Plan) Len() int { return len(p.Steps) }
