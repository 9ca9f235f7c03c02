package modelfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strategos/pkg/domain"
)

const domainYAML = `
name: corridor
types:
  - name: agent
  - name: robot
    parents: [agent]
  - name: cell
predicates:
  - name: at
    args: [robot, cell]
  - name: adjacent
    args: [cell, cell]
  - name: occupied
    args: [cell]
actions:
  - name: move
    parameters:
      - {name: r, type: robot}
      - {name: from, type: cell}
      - {name: to, type: cell}
    precondition:
      and:
        - atom: {pred: at, args: ["?r", "?from"]}
        - atom: {pred: adjacent, args: ["?from", "?to"]}
        - not:
            atom: {pred: occupied, args: ["?to"]}
        - not:
            eq: ["?from", "?to"]
    effect:
      add:
        - {pred: at, args: ["?r", "?to"]}
      del:
        - {pred: at, args: ["?r", "?from"]}
`

const problemYAML = `
name: two-cells
domain: corridor
objects:
  - {name: r1, type: robot}
  - {name: c1, type: cell}
  - {name: c2, type: cell}
init:
  - {pred: at, args: [r1, c1]}
  - {pred: adjacent, args: [c1, c2]}
goal:
  atom: {pred: at, args: [r1, c2]}
`

func TestParseModel(t *testing.T) {
	m, err := ParseModel([]byte(domainYAML))
	require.NoError(t, err)

	assert.Equal(t, "corridor", m.Name)
	require.Len(t, m.Types, 3)
	assert.Equal(t, []string{"agent"}, m.Types[1].Parents)
	require.Len(t, m.Predicates, 3)
	assert.Equal(t, []string{"robot", "cell"}, m.Predicates[0].ArgTypes)

	require.Len(t, m.Actions, 1)
	move := m.Actions[0]
	assert.Equal(t, "move", move.Name)
	require.Len(t, move.Parameters, 3)
	assert.Equal(t, domain.Parameter{Name: "to", Type: "cell"}, move.Parameters[2])

	and, ok := move.Precondition.(domain.And)
	require.True(t, ok, "precondition should decode as a conjunction")
	require.Len(t, and.Children, 4)

	atom, ok := and.Children[0].(domain.Atom)
	require.True(t, ok)
	assert.Equal(t, "at", atom.Predicate)
	assert.Equal(t, domain.Var("r"), atom.Args[0])

	not, ok := and.Children[2].(domain.Not)
	require.True(t, ok)
	_, ok = not.Child.(domain.Atom)
	assert.True(t, ok)

	notEq, ok := and.Children[3].(domain.Not)
	require.True(t, ok)
	eq, ok := notEq.Child.(domain.Equal)
	require.True(t, ok)
	assert.Equal(t, domain.Var("from"), eq.Left)

	require.Len(t, move.Effect.Adds, 1)
	require.Len(t, move.Effect.Dels, 1)
	assert.Equal(t, domain.Var("to"), move.Effect.Adds[0].Args[1])
}

func TestParseModelQuantifierAndConditionalEffect(t *testing.T) {
	src := `
name: household
types:
  - name: person
  - name: cell
predicates:
  - name: at_person
    args: [person, cell]
  - name: standing
    args: [person]
actions:
  - name: sweep
    parameters:
      - {name: c, type: cell}
    precondition:
      not:
        exists:
          var: p
          type: person
          where:
            atom: {pred: at_person, args: ["?p", "?c"]}
    effect:
      forall:
        - var: q
          type: person
          when:
            atom: {pred: standing, args: ["?q"]}
          del:
            - {pred: standing, args: ["?q"]}
`
	m, err := ParseModel([]byte(src))
	require.NoError(t, err)

	sweep := m.Actions[0]
	not, ok := sweep.Precondition.(domain.Not)
	require.True(t, ok)
	q, ok := not.Child.(domain.Quantifier)
	require.True(t, ok)
	assert.False(t, q.Universal)
	assert.Equal(t, domain.Parameter{Name: "p", Type: "person"}, q.Variable)

	require.Len(t, sweep.Effect.Conditionals, 1)
	ce := sweep.Effect.Conditionals[0]
	assert.Equal(t, "q", ce.Variable.Name)
	require.Len(t, ce.Dels, 1)
	assert.Equal(t, "standing", ce.Dels[0].Predicate)
}

func TestParseProblem(t *testing.T) {
	p, err := ParseProblem([]byte(problemYAML))
	require.NoError(t, err)

	assert.Equal(t, "two-cells", p.Name)
	assert.Equal(t, "corridor", p.Domain)
	require.Len(t, p.Objects, 3)
	require.Len(t, p.Init, 2)
	assert.Equal(t, domain.Const("r1"), p.Init[0].Args[0])

	goal, ok := p.Goal.(domain.Atom)
	require.True(t, ok)
	assert.Equal(t, "at", goal.Predicate)
}

func TestParseConditionErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "unknown node",
			src: `
name: d
actions:
  - name: a
    precondition:
      either:
        - atom: {pred: p}
`,
		},
		{
			name: "two keys in one condition",
			src: `
name: d
actions:
  - name: a
    precondition:
      atom: {pred: p}
      not: {atom: {pred: q}}
`,
		},
		{
			name: "eq arity",
			src: `
name: d
actions:
  - name: a
    precondition:
      eq: ["?x"]
`,
		},
		{
			name: "atom without predicate",
			src: `
name: d
actions:
  - name: a
    precondition:
      atom: {args: [x]}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModel([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestParseModelMalformedYAML(t *testing.T) {
	_, err := ParseModel([]byte("name: [unclosed"))
	assert.Error(t, err)
	_, err = ParseProblem([]byte(":::"))
	assert.Error(t, err)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
