package domain

// Type names a category of objects. Parents form a DAG: an object whose type
// is T also counts as an object of every ancestor of T. The household domain
// uses a flat hierarchy, but the model supports subtyping for generality.
type Type struct {
	Name    string   `json:"name" yaml:"name"`
	Parents []string `json:"parents,omitempty" yaml:"parents,omitempty"`
}

// Object is an immutable typed symbol. Identity is the symbol name; an object
// belongs to exactly one declared type for the whole planning session.
type Object struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// PredicateSchema declares a predicate name and the ordered types its
// arguments must satisfy, e.g. at_robot(robot, cell).
type PredicateSchema struct {
	Name     string   `json:"name" yaml:"name"`
	ArgTypes []string `json:"args" yaml:"args"`
}

// Parameter is a typed variable of an action schema or quantifier.
type Parameter struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}
