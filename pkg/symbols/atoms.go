package symbols

import "strings"

// Handle is the compact identifier of an interned ground atom. States are
// sets of handles, so state hashing and comparison never touch atom structure.
type Handle uint32

// Space interns ground atoms. Identical (predicate, args) pairs always map to
// the same handle. The grounder interns the entire well-typed atom universe
// up front, so the space is read-only during search and safe to share across
// workers without locks.
type Space struct {
	index map[string]Handle
	preds []string
	args  [][]string
}

// NewSpace creates an empty atom space.
func NewSpace() *Space {
	return &Space{index: make(map[string]Handle)}
}

func atomKey(predicate string, args []string) string {
	// \x1f cannot appear in symbol names coming from a validated model.
	return predicate + "\x1f" + strings.Join(args, "\x1f")
}

// Intern returns the handle for the ground atom, creating it on first use.
func (s *Space) Intern(predicate string, args []string) Handle {
	key := atomKey(predicate, args)
	if h, ok := s.index[key]; ok {
		return h
	}
	h := Handle(len(s.preds))
	s.index[key] = h
	s.preds = append(s.preds, predicate)
	s.args = append(s.args, append([]string(nil), args...))
	return h
}

// Lookup returns the handle for an already interned atom. A miss means the
// atom is outside the well-typed universe and therefore false in every state.
func (s *Space) Lookup(predicate string, args []string) (Handle, bool) {
	h, ok := s.index[atomKey(predicate, args)]
	return h, ok
}

// Decode returns the (predicate, args) pair behind a handle. The args slice
// is shared and must not be modified.
func (s *Space) Decode(h Handle) (string, []string) {
	return s.preds[h], s.args[h]
}

// String renders the atom behind a handle in plan notation.
func (s *Space) String(h Handle) string {
	pred, args := s.Decode(h)
	if len(args) == 0 {
		return "(" + pred + ")"
	}
	return "(" + pred + " " + strings.Join(args, " ") + ")"
}

// Len returns the number of interned atoms.
func (s *Space) Len() int { return len(s.preds) }
