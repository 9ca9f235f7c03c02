package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/strategos/pkg/symbols"
)

func h(vals ...uint32) []symbols.Handle {
	out := make([]symbols.Handle, len(vals))
	for i, v := range vals {
		out[i] = symbols.Handle(v)
	}
	return out
}

func TestNewSortsAndDedups(t *testing.T) {
	s := New(h(5, 1, 3, 1, 5))
	assert.Equal(t, h(1, 3, 5), s.Atoms())
	assert.Equal(t, 3, s.Len())
}

func TestKeyIsOrderIndependent(t *testing.T) {
	a := New(h(1, 2, 3))
	b := New(h(3, 2, 1))
	c := New(h(1, 2))

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestContains(t *testing.T) {
	s := New(h(2, 4, 6))

	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(6))
	assert.False(t, s.Contains(3))
	assert.False(t, s.Contains(7))

	empty := New(nil)
	assert.False(t, empty.Contains(0))
}

func TestApplyProducesNewState(t *testing.T) {
	s := New(h(1, 2, 3))
	next := s.Apply(h(2), h(9))

	assert.Equal(t, h(1, 3, 9), next.Atoms())
	// The receiver is untouched.
	assert.Equal(t, h(1, 2, 3), s.Atoms())
}

func TestApplyAddWins(t *testing.T) {
	s := New(h(1, 2))

	// The same atom deleted and added in one transition stays true.
	next := s.Apply(h(2), h(2))
	assert.True(t, next.Contains(2))
	assert.Equal(t, s.Key(), next.Key())
}

func TestApplyDeleteAbsentIsNoop(t *testing.T) {
	s := New(h(1))
	next := s.Apply(h(5), nil)
	assert.Equal(t, s.Key(), next.Key())
}

func TestApplyAddExistingIsNoop(t *testing.T) {
	s := New(h(1, 2))
	next := s.Apply(nil, h(2))
	assert.Equal(t, s.Key(), next.Key())
}
