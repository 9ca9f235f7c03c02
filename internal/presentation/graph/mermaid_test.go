package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/strategos/internal/presentation/graph"
	"github.com/aretw0/strategos/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	plan := &domain.Plan{Steps: []domain.Step{
		{Action: "pick_up_dish", Args: []string{"r1", "d1", "c1"}},
		{Action: "serve_dish", Args: []string{"r1", "d1", "p1", "c1", "c2"}},
	}}

	got := graph.GenerateMermaid(plan)

	for _, want := range []string{
		"graph TD",
		`s0(("init"))`,
		`s1["state 1"]`,
		`s2((("goal")))`,
		`s0 -- "(pick_up_dish r1 d1 c1)" --> s1`,
		`s1 -- "(serve_dish r1 d1 p1 c1 c2)" --> s2`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
		}
	}
}

func TestGenerateMermaidEmptyPlan(t *testing.T) {
	got := graph.GenerateMermaid(&domain.Plan{})
	if !strings.Contains(got, `s0(("init"))`) {
		t.Errorf("empty plan should still render the initial state, got:\n%v", got)
	}
	if strings.Contains(got, "goal") {
		t.Errorf("empty plan has no goal node, got:\n%v", got)
	}
}
