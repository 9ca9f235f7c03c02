package domain

import (
	"errors"
	"fmt"
)

// ErrPlanNotFound is returned by plan stores when no cached plan exists for a
// fingerprint.
var ErrPlanNotFound = errors.New("plan not found")

// UndeclaredTypeError reports a reference to a type the model never declares.
type UndeclaredTypeError struct {
	Type    string
	Context string // what referenced it, e.g. an object or parameter name
}

func (e *UndeclaredTypeError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("undeclared type %q", e.Type)
	}
	return fmt.Sprintf("undeclared type %q referenced by %s", e.Type, e.Context)
}

// UndeclaredPredicateError reports a reference to an unknown predicate.
type UndeclaredPredicateError struct {
	Predicate string
}

func (e *UndeclaredPredicateError) Error() string {
	return fmt.Sprintf("undeclared predicate %q", e.Predicate)
}

// ArityMismatchError reports a predicate used with the wrong argument count.
type ArityMismatchError struct {
	Predicate string
	Want, Got int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("predicate %q expects %d arguments, got %d", e.Predicate, e.Want, e.Got)
}

// TypeMismatchError reports an object whose type does not satisfy a declared
// argument or parameter type.
type TypeMismatchError struct {
	Symbol    string // the offending object or variable
	Want, Got string
	Position  int // zero-based argument position, -1 if not positional
}

func (e *TypeMismatchError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("argument %d: %q has type %q, want %q", e.Position, e.Symbol, e.Got, e.Want)
	}
	return fmt.Sprintf("%q has type %q, want %q", e.Symbol, e.Got, e.Want)
}

// DuplicateObjectError reports an object declared more than once.
type DuplicateObjectError struct {
	Object string
}

func (e *DuplicateObjectError) Error() string {
	return fmt.Sprintf("object %q declared more than once", e.Object)
}

// UnboundVariableError reports a variable used outside any binding scope.
// It indicates a malformed condition or effect tree.
type UnboundVariableError struct {
	Variable string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Variable)
}
