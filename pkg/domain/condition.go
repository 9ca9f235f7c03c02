package domain

import "strings"

// Term references either a variable (bound by a parameter or quantifier) or a
// concrete object by name.
type Term struct {
	Name     string
	Variable bool
}

// Var creates a variable term.
func Var(name string) Term { return Term{Name: name, Variable: true} }

// Const creates a constant (object) term.
func Const(name string) Term { return Term{Name: name} }

func (t Term) String() string {
	if t.Variable {
		return "?" + t.Name
	}
	return t.Name
}

// Condition is a recursive boolean tree evaluated against a state under a set
// of variable bindings. It represents action preconditions, conditional-effect
// guards, and problem goals.
//
// The closed set of node types is Atom, And, Not, Equal, and Quantifier.
type Condition interface {
	condition()
}

// Atom is a predicate applied to terms. As a Condition it tests membership of
// the fully bound ground atom in the state's true set (closed world: absent
// means false). The same structure doubles as an add/delete directive in
// effects.
type Atom struct {
	Predicate string
	Args      []Term
}

// And is a conjunction. An empty conjunction is vacuously true.
type And struct {
	Children []Condition
}

// Not negates its child.
type Not struct {
	Child Condition
}

// Equal tests whether two terms denote the same object once bound. Its main
// use is excluding an object from matching itself inside a quantifier.
type Equal struct {
	Left, Right Term
}

// Quantifier binds a fresh typed variable over the declared objects of its
// type. With Universal set it is a forall (vacuously true over an empty
// domain); otherwise an exists. The bound variable shadows an outer variable
// of the same name within Body only.
type Quantifier struct {
	Universal bool
	Variable  Parameter
	Body      Condition
}

func (Atom) condition()       {}
func (And) condition()        {}
func (Not) condition()        {}
func (Equal) condition()      {}
func (Quantifier) condition() {}

func (a Atom) String() string {
	parts := make([]string, 0, len(a.Args)+1)
	parts = append(parts, a.Predicate)
	for _, t := range a.Args {
		parts = append(parts, t.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a And) String() string {
	parts := make([]string, 0, len(a.Children)+1)
	parts = append(parts, "and")
	for _, c := range a.Children {
		parts = append(parts, Sexpr(c))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (n Not) String() string { return "(not " + Sexpr(n.Child) + ")" }

func (e Equal) String() string { return "(= " + e.Left.String() + " " + e.Right.String() + ")" }

func (q Quantifier) String() string {
	kw := "exists"
	if q.Universal {
		kw = "forall"
	}
	return "(" + kw + " (?" + q.Variable.Name + " - " + q.Variable.Type + ") " + Sexpr(q.Body) + ")"
}

// Sexpr renders a condition tree as a canonical s-expression. A nil condition
// renders as the empty conjunction.
func Sexpr(c Condition) string {
	switch n := c.(type) {
	case nil:
		return "(and)"
	case Atom:
		return n.String()
	case And:
		return n.String()
	case Not:
		return n.String()
	case Equal:
		return n.String()
	case Quantifier:
		return n.String()
	default:
		return "(?)"
	}
}

// NewAnd builds a conjunction from its children.
func NewAnd(children ...Condition) And { return And{Children: children} }

// Exists builds an existential quantifier.
func Exists(variable, typ string, body Condition) Quantifier {
	return Quantifier{Variable: Parameter{Name: variable, Type: typ}, Body: body}
}

// ForAll builds a universal quantifier.
func ForAll(variable, typ string, body Condition) Quantifier {
	return Quantifier{Universal: true, Variable: Parameter{Name: variable, Type: typ}, Body: body}
}
