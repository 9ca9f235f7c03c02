// Package symbols holds the read-only registries a planning session is built
// on: the typed object table and the ground-atom interning space. Both are
// constructed once per problem, before grounding, and are safe for concurrent
// reads afterward.
package symbols

import (
	"github.com/aretw0/strategos/pkg/domain"
)

// Table registers the declared types and typed objects of a problem.
// ObjectsOfType answers in declaration order and is closed over subtypes.
type Table struct {
	types   map[string]domain.Type
	objects map[string]domain.Object
	order   []domain.Object
	byType  map[string][]domain.Object
}

// NewTable builds a table from type and object declarations. It fails with
// UndeclaredTypeError when a type parent or an object references an unknown
// type, and DuplicateObjectError on object redefinition.
func NewTable(types []domain.Type, objects []domain.Object) (*Table, error) {
	t := &Table{
		types:   make(map[string]domain.Type, len(types)),
		objects: make(map[string]domain.Object, len(objects)),
		byType:  make(map[string][]domain.Object),
	}

	for _, typ := range types {
		t.types[typ.Name] = typ
	}
	// Parents may be declared in any order, so check them after the full map
	// is populated.
	for _, typ := range types {
		for _, parent := range typ.Parents {
			if _, ok := t.types[parent]; !ok {
				return nil, &domain.UndeclaredTypeError{Type: parent, Context: "type " + typ.Name}
			}
		}
	}

	for _, obj := range objects {
		if _, ok := t.objects[obj.Name]; ok {
			return nil, &domain.DuplicateObjectError{Object: obj.Name}
		}
		if _, ok := t.types[obj.Type]; !ok {
			return nil, &domain.UndeclaredTypeError{Type: obj.Type, Context: "object " + obj.Name}
		}
		t.objects[obj.Name] = obj
		t.order = append(t.order, obj)
		for _, typ := range t.ancestors(obj.Type) {
			t.byType[typ] = append(t.byType[typ], obj)
		}
	}

	return t, nil
}

// ancestors returns the type itself plus every ancestor in the DAG, deduped.
func (t *Table) ancestors(name string) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(string)
	walk = func(n string) {
		if seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
		for _, p := range t.types[n].Parents {
			walk(p)
		}
	}
	walk(name)
	return out
}

// HasType reports whether the type is declared.
func (t *Table) HasType(name string) bool {
	_, ok := t.types[name]
	return ok
}

// Object looks up a declared object by name.
func (t *Table) Object(name string) (domain.Object, bool) {
	o, ok := t.objects[name]
	return o, ok
}

// ObjectsOfType returns all objects whose type is the given type or one of
// its subtypes, in declaration order. The returned slice is shared and must
// not be modified.
func (t *Table) ObjectsOfType(name string) []domain.Object {
	return t.byType[name]
}

// Objects returns every declared object in declaration order.
func (t *Table) Objects() []domain.Object {
	return t.order
}

// Satisfies reports whether an object of type got can stand in for a
// parameter declared with type want.
func (t *Table) Satisfies(got, want string) bool {
	for _, a := range t.ancestors(got) {
		if a == want {
			return true
		}
	}
	return false
}
