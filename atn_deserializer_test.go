package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalLexerATNData encodes a one-rule lexer ATN: mode 0 starts at a
// TokensStartState, which epsilon-transitions into rule 0's start state,
// which matches the literal character 'a' straight into rule 0's stop
// state, emitting token type 1.
func minimalLexerATNData() []int32 {
	data := []int32{serializedATNVersion}
	data = append(data, serializedATNUUID[:]...)
	data = append(data,
		int32(ATNTypeLexer), 1, // grammarType, maxTokenType

		3,         // nstates
		6, 0xFFFF, // state0: TokensStartState, no owning rule
		2, 0, // state1: RuleStartState, rule 0
		7, 0, // state2: RuleStopState, rule 0

		0, // numNonGreedyStates
		0, // numPrecedenceStates

		1,    // nrules
		1, 1, // rule 0: start state = state1, token type = 1

		1, // nmodes
		0, // mode 0 start state = state0

		0, // nsets

		2, // nedges
		0, 1, TransitionEPSILON, 0, 0, 0,
		1, 2, TransitionATOM, 'a', 0, 0,

		1, // ndecisions
		0, // decision 0 = state0

		0, // numLexerActions
	)
	return data
}

func TestATNDeserializerBuildsMinimalLexerATN(t *testing.T) {
	atn := NewATNDeserializer(nil).Deserialize(minimalLexerATNData())

	require.Len(t, atn.states, 3)
	require.IsType(t, &TokensStartState{}, atn.states[0])
	require.IsType(t, &RuleStartState{}, atn.states[1])
	require.IsType(t, &RuleStopState{}, atn.states[2])

	assert.Equal(t, -1, atn.states[0].GetRuleIndex())
	assert.Equal(t, 0, atn.states[1].GetRuleIndex())

	require.Len(t, atn.ruleToStartState, 1)
	assert.Same(t, atn.states[1], atn.ruleToStartState[0])
	require.Len(t, atn.ruleToStopState, 1)
	assert.Same(t, atn.states[2], atn.ruleToStopState[0])
	assert.Equal(t, 1, atn.ruleToTokenType[0])

	require.Len(t, atn.modeToStartState, 1)
	assert.Same(t, atn.states[0], atn.modeToStartState[0])

	require.Len(t, atn.DecisionToState, 1)
	assert.Same(t, atn.states[0], atn.DecisionToState[0])

	s0Transitions := atn.states[0].GetTransitions()
	require.Len(t, s0Transitions, 1)
	assert.Equal(t, TransitionEPSILON, s0Transitions[0].getSerializationType())
	assert.Same(t, atn.states[1], s0Transitions[0].getTarget())

	s1Transitions := atn.states[1].GetTransitions()
	require.Len(t, s1Transitions, 1)
	atomTrans, ok := s1Transitions[0].(*AtomTransition)
	require.True(t, ok)
	assert.Equal(t, int('a'), atomTrans.label)
	assert.Same(t, atn.states[2], atomTrans.getTarget())
}

func TestATNDeserializerRejectsWrongVersion(t *testing.T) {
	data := minimalLexerATNData()
	data[0] = serializedATNVersion + 1
	assert.Panics(t, func() { NewATNDeserializer(nil).Deserialize(data) })
}

func TestATNDeserializerRejectsWrongUUID(t *testing.T) {
	data := minimalLexerATNData()
	data[1] ^= 0xFFFF // corrupt the first UUID word, version stays valid
	assert.Panics(t, func() { NewATNDeserializer(nil).Deserialize(data) })
}

func TestUnicodeDecodeUndoesGeneratorOffset(t *testing.T) {
	encoded := []uint16{2, 3, 102, 1}
	decoded := unicodeDecode(encoded)
	assert.Equal(t, []int32{0, 1, 100, 0xFFFF}, decoded)
}
