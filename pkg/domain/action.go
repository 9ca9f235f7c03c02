package domain

import "strings"

// Effect is the list of changes an action makes to a state. Unconditional adds
// and deletes apply always; each ConditionalEffect expands a quantified,
// guarded group of sub-effects.
//
// Application is two-phase: every directive (including every forall binding
// and when guard) is evaluated against the pre-action state to collect the
// full add and delete sets, and only then are all deletes followed by all adds
// committed. An atom both deleted and added by the same action ends up true.
type Effect struct {
	Adds         []Atom
	Dels         []Atom
	Conditionals []ConditionalEffect
}

// ConditionalEffect is a forall(var: type, when(guard, sub-effect)) directive.
// The bound variable ranges over the declared objects of its type; for each
// binding the guard is evaluated against the pre-action state and, when it
// holds, the sub-effect's adds and deletes are collected under that binding.
// A nil guard means the sub-effect applies for every binding.
type ConditionalEffect struct {
	Variable Parameter
	When     Condition
	Adds     []Atom
	Dels     []Atom
}

// ActionSchema is a named, typed-parameter action template with a
// precondition tree and an effect list. A nil precondition is always
// applicable.
type ActionSchema struct {
	Name         string
	Parameters   []Parameter
	Precondition Condition
	Effect       Effect
}

// GroundAction is an action schema with every parameter substituted by a
// concrete object. It carries a fully instantiated precondition and effect
// (only quantifier-bound variables remain), is created once during grounding,
// and is immutable afterward.
type GroundAction struct {
	Schema       string
	Args         []string
	Precondition Condition
	Effect       Effect
}

// String renders the action in plan notation: (name arg1 arg2 ...).
func (a *GroundAction) String() string {
	if len(a.Args) == 0 {
		return "(" + a.Schema + ")"
	}
	return "(" + a.Schema + " " + strings.Join(a.Args, " ") + ")"
}

// Step converts the ground action to its serializable plan form.
func (a *GroundAction) Step() Step {
	return Step{Action: a.Schema, Args: append([]string(nil), a.Args...)}
}
