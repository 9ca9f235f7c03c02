package domain

// Model is the action theory: the declared types, predicate schemas, and
// action schemas. It is supplied as an already-structured value by an
// external front end; this engine does not own a planner syntax.
type Model struct {
	Name       string
	Types      []Type
	Predicates []PredicateSchema
	Actions    []ActionSchema
}

// Predicate returns the schema declared under the given name.
func (m *Model) Predicate(name string) (PredicateSchema, bool) {
	for _, p := range m.Predicates {
		if p.Name == name {
			return p, true
		}
	}
	return PredicateSchema{}, false
}

// Problem is a concrete instance of a Model: the object universe, the atoms
// true in the initial state, and the goal condition. Init atoms must be
// ground (constant terms only).
type Problem struct {
	Name    string
	Domain  string
	Objects []Object
	Init    []Atom
	Goal    Condition
}
