package domain

import "time"

// Outcome classifies how a search ended.
type Outcome string

const (
	// OutcomeSolved means a valid plan was found.
	OutcomeSolved Outcome = "solved"
	// OutcomeNoPlanFound means the entire reachable state space was exhausted
	// without reaching a goal state. This is a normal negative result, not a
	// failure of the engine.
	OutcomeNoPlanFound Outcome = "no_plan_found"
	// OutcomeInconclusive means a node, time, or cancellation budget ran out
	// before the space was fully explored. Unlike NoPlanFound it carries no
	// guarantee about goal unreachability.
	OutcomeInconclusive Outcome = "inconclusive"
)

// Result is the outcome of a solve call. Search outcomes are ordinary values:
// failing to find a plan is an expected, common result and is never surfaced
// as an error.
type Result struct {
	Outcome        Outcome       `json:"outcome"`
	Plan           *Plan         `json:"plan,omitempty"`
	NodesExpanded  int           `json:"nodes_expanded"`
	NodesGenerated int           `json:"nodes_generated"`
	Duration       time.Duration `json:"duration"`
}

// Solved reports whether the result carries a plan.
func (r *Result) Solved() bool { return r.Outcome == OutcomeSolved }
