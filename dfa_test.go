package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestATNConfigSet(alts ...int) *ATNConfigSet {
	s := NewATNConfigSet(false)
	target := NewBasicState()
	target.SetStateNumber(0)
	for _, alt := range alts {
		s.Add(NewATNConfig(target, alt, nil, SemanticContextNone), nil)
	}
	return s
}

func TestDFAAddStateDedupsByConfigSetEquality(t *testing.T) {
	d := NewDFA(NewATN(int(ATNTypeLexer), 0), NewTokensStartState(), 0)

	first := NewDFAState(-1, newTestATNConfigSet(1, 2))
	returned := d.addState(first)
	assert.Same(t, first, returned)
	assert.Equal(t, 0, first.stateNumber)
	assert.Equal(t, 1, d.getNumStates())

	// A structurally identical config set, built independently, must be
	// recognized as the same DFA state rather than appended anew.
	duplicate := NewDFAState(-1, newTestATNConfigSet(1, 2))
	returned = d.addState(duplicate)
	assert.Same(t, first, returned)
	assert.Equal(t, 1, d.getNumStates())

	distinct := NewDFAState(-1, newTestATNConfigSet(1, 3))
	returned = d.addState(distinct)
	assert.Same(t, distinct, returned)
	assert.Equal(t, 1, distinct.stateNumber)
	assert.Equal(t, 2, d.getNumStates())
}

func TestDFAPrecedenceStartState(t *testing.T) {
	d := NewDFA(NewATN(int(ATNTypeParser), 0), NewTokensStartState(), 0)

	assert.Nil(t, d.getPrecedenceStartState(0, false))

	s := NewDFAState(-1, NewATNConfigSet(false))
	d.setPrecedenceStartState(0, false, s)
	assert.Same(t, s, d.getPrecedenceStartState(0, false))
	assert.Nil(t, d.getPrecedenceStartState(0, true))
}

func TestDFASortedStatesOrderedByStateNumber(t *testing.T) {
	d := NewDFA(NewATN(int(ATNTypeLexer), 0), NewTokensStartState(), 0)
	d.addState(NewDFAState(-1, newTestATNConfigSet(1)))
	d.addState(NewDFAState(-1, newTestATNConfigSet(2)))
	d.addState(NewDFAState(-1, newTestATNConfigSet(3)))

	sorted := d.sortedStates()
	require.Len(t, sorted, 3)
	for i, s := range sorted {
		assert.Equal(t, i, s.stateNumber)
	}
}
