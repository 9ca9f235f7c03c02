package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsIdempotent(t *testing.T) {
	s := NewSpace()

	h1 := s.Intern("at", []string{"r1", "c1"})
	h2 := s.Intern("at", []string{"r1", "c1"})
	h3 := s.Intern("at", []string{"r1", "c2"})

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, 2, s.Len())
}

func TestInternDistinguishesArgBoundaries(t *testing.T) {
	s := NewSpace()

	// ("ab","c") and ("a","bc") must not collide.
	h1 := s.Intern("p", []string{"ab", "c"})
	h2 := s.Intern("p", []string{"a", "bc"})
	assert.NotEqual(t, h1, h2)
}

func TestLookupMissesUninterned(t *testing.T) {
	s := NewSpace()
	s.Intern("at", []string{"r1", "c1"})

	_, ok := s.Lookup("at", []string{"r1", "c1"})
	assert.True(t, ok)
	_, ok = s.Lookup("at", []string{"r1", "c9"})
	assert.False(t, ok)
	_, ok = s.Lookup("flying", []string{"r1"})
	assert.False(t, ok)
}

func TestDecodeAndString(t *testing.T) {
	s := NewSpace()
	h := s.Intern("at", []string{"r1", "c1"})

	pred, args := s.Decode(h)
	assert.Equal(t, "at", pred)
	assert.Equal(t, []string{"r1", "c1"}, args)
	assert.Equal(t, "(at r1 c1)", s.String(h))

	h0 := s.Intern("alive", nil)
	assert.Equal(t, "(alive)", s.String(h0))
}

func TestInternCopiesArgs(t *testing.T) {
	s := NewSpace()
	args := []string{"r1", "c1"}
	h := s.Intern("at", args)
	args[1] = "mutated"

	_, decoded := s.Decode(h)
	require.Equal(t, []string{"r1", "c1"}, decoded)
}
