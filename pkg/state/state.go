// Package state implements the immutable set of true ground atoms a planning
// search explores over. Absence from the set means false (closed world).
package state

import (
	"sort"

	"github.com/aretw0/strategos/pkg/symbols"
)

// State is a value object: it is never mutated in place. Every transition
// produces a new State, so the search engine can keep many states live at
// once without aliasing hazards. Two states with the same true-atom set
// compare equal via Key regardless of how they were reached.
type State struct {
	atoms []symbols.Handle // sorted ascending, no duplicates
	key   string
}

// New builds a state from the given true atoms. The input may be unsorted and
// contain duplicates; it is not retained.
func New(atoms []symbols.Handle) State {
	sorted := append([]symbols.Handle(nil), atoms...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	dedup := sorted[:0]
	for i, h := range sorted {
		if i == 0 || h != sorted[i-1] {
			dedup = append(dedup, h)
		}
	}
	return State{atoms: dedup, key: encode(dedup)}
}

func encode(atoms []symbols.Handle) string {
	buf := make([]byte, 0, len(atoms)*4)
	for _, h := range atoms {
		buf = append(buf, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
	}
	return string(buf)
}

// Contains reports whether the atom is true in this state.
func (s State) Contains(h symbols.Handle) bool {
	i := sort.Search(len(s.atoms), func(i int) bool { return s.atoms[i] >= h })
	return i < len(s.atoms) && s.atoms[i] == h
}

// Len returns the number of true atoms.
func (s State) Len() int { return len(s.atoms) }

// Key is a canonical encoding of the true-atom set, suitable as a visited-set
// key. Equal keys imply equal states.
func (s State) Key() string { return s.key }

// Atoms returns the true atoms in ascending handle order. The slice is shared
// and must not be modified.
func (s State) Atoms() []symbols.Handle { return s.atoms }

// Apply produces the successor state: all deletes are removed first, then all
// adds are inserted. An atom present in both sets therefore ends up true
// (add wins). The receiver is left untouched.
func (s State) Apply(dels, adds []symbols.Handle) State {
	drop := make(map[symbols.Handle]bool, len(dels))
	for _, h := range dels {
		drop[h] = true
	}
	// Adds override deletes of the same atom.
	for _, h := range adds {
		delete(drop, h)
	}

	next := make([]symbols.Handle, 0, len(s.atoms)+len(adds))
	for _, h := range s.atoms {
		if !drop[h] {
			next = append(next, h)
		}
	}
	next = append(next, adds...)
	return New(next)
}
