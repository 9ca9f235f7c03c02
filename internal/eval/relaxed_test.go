package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strategos/pkg/domain"
)

func TestHoldsRelaxedNegationIsOptimistic(t *testing.T) {
	f := newFixture(t)
	c := domain.Const
	s := f.state([]string{"seated", "p1"})

	// seated(p1) is true, yet its relaxed negation is also true.
	ok, err := f.eval.HoldsRelaxed(domain.Not{Child: atomC("seated", c("p1"))}, s, Bindings{})
	require.NoError(t, err)
	assert.True(t, ok)

	// Positive atoms keep their real semantics.
	ok, err = f.eval.HoldsRelaxed(atomC("seated", c("p2")), s, Bindings{})
	require.NoError(t, err)
	assert.False(t, ok)
}

// Relaxed truth is weaker than real truth: whatever really holds also
// relaxed-holds.
func TestHoldsRelaxedOverApproximates(t *testing.T) {
	f := newFixture(t)
	c, v := domain.Const, domain.Var
	s := f.state([]string{"seated", "p1"}, []string{"at", "p1", "c1"})

	conds := []domain.Condition{
		atomC("seated", c("p1")),
		domain.NewAnd(atomC("seated", c("p1")), atomC("at", c("p1"), c("c1"))),
		domain.Not{Child: atomC("seated", c("p2"))},
		domain.Exists("p", "person", atomC("seated", v("p"))),
		domain.ForAll("p", "person", domain.Not{Child: atomC("at", v("p"), c("c2"))}),
	}
	for _, cond := range conds {
		real, err := f.eval.Holds(cond, s, Bindings{})
		require.NoError(t, err)
		relaxed, err := f.eval.HoldsRelaxed(cond, s, Bindings{})
		require.NoError(t, err)
		if real {
			assert.True(t, relaxed, "condition %s", domain.Sexpr(cond))
		}
	}
}

func TestCollectRelaxedAddsIgnoresDeletes(t *testing.T) {
	f := newFixture(t)
	c := domain.Const

	eff := domain.Effect{
		Adds: []domain.Atom{atomC("seated", c("p1"))},
		Dels: []domain.Atom{atomC("seated", c("p2"))},
	}
	adds, err := f.eval.CollectRelaxedAdds(eff, f.state(), Bindings{})
	require.NoError(t, err)
	assert.Equal(t, []string{"(seated p1)"}, renderHandles(f, adds))
}

func TestCollectRelaxedAddsGuardedByRelaxedWhen(t *testing.T) {
	f := newFixture(t)
	v := domain.Var

	// The negated guard fails for p1 in real semantics but relaxed-holds,
	// so both adds are collected.
	eff := domain.Effect{
		Conditionals: []domain.ConditionalEffect{{
			Variable: domain.Parameter{Name: "p", Type: "person"},
			When:     domain.Not{Child: atomC("seated", v("p"))},
			Adds:     []domain.Atom{atomC("seated", v("p"))},
		}},
	}
	adds, err := f.eval.CollectRelaxedAdds(eff, f.state([]string{"seated", "p1"}), Bindings{})
	require.NoError(t, err)
	assert.Equal(t, []string{"(seated p1)", "(seated p2)"}, renderHandles(f, adds))
}
