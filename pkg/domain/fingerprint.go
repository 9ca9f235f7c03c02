package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Fingerprint derives a stable identifier for a (model, problem) pair, used as
// the plan-cache key. Two structurally identical inputs always fingerprint to
// the same value; any change to types, predicates, actions, objects, the
// initial state, or the goal changes it.
func Fingerprint(m *Model, p *Problem) string {
	h := sha256.New()
	w := func(format string, args ...any) {
		fmt.Fprintf(h, format, args...)
	}

	w("model %s\n", m.Name)
	for _, t := range m.Types {
		w("type %s parents %s\n", t.Name, strings.Join(t.Parents, ","))
	}
	for _, pr := range m.Predicates {
		w("pred %s %s\n", pr.Name, strings.Join(pr.ArgTypes, ","))
	}
	for _, a := range m.Actions {
		w("action %s\n", a.Name)
		for _, par := range a.Parameters {
			w("  param %s %s\n", par.Name, par.Type)
		}
		w("  pre %s\n", Sexpr(a.Precondition))
		w("  eff %s\n", sexprEffect(a.Effect))
	}

	w("problem %s\n", p.Name)
	for _, o := range p.Objects {
		w("object %s %s\n", o.Name, o.Type)
	}
	for _, a := range p.Init {
		w("init %s\n", a.String())
	}
	w("goal %s\n", Sexpr(p.Goal))

	return hex.EncodeToString(h.Sum(nil))
}

func sexprEffect(e Effect) string {
	var b strings.Builder
	for _, a := range e.Adds {
		b.WriteString("+" + a.String())
	}
	for _, d := range e.Dels {
		b.WriteString("-" + d.String())
	}
	for _, c := range e.Conditionals {
		b.WriteString("(forall ?" + c.Variable.Name + " - " + c.Variable.Type)
		if c.When != nil {
			b.WriteString(" when " + Sexpr(c.When))
		}
		for _, a := range c.Adds {
			b.WriteString("+" + a.String())
		}
		for _, d := range c.Dels {
			b.WriteString("-" + d.String())
		}
		b.WriteString(")")
	}
	return b.String()
}
