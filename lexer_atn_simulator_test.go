package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildKeywordVsIdentifierATN models a lexer with two rules sharing a
// prefix: a keyword rule matching the literal "if" and an identifier rule
// matching one-or-more lowercase letters. The keyword rule is wired as
// rule 0, ahead of the identifier rule at rule 1, the same ordering a real
// grammar gets once implicit token definitions for grammar literals are
// synthesized before the user's own lexer rules - it is this ordering,
// not any extra rule-index bookkeeping, that lets addDFAState's first-
// match-wins scan land on the keyword when both rules tie on length.
func buildKeywordVsIdentifierATN() (*ATN, int /* KW token type */, int /* ID token type */) {
	const kwType, idType = 1, 2
	atn := NewATN(int(ATNTypeLexer), idType)

	start := NewTokensStartState()
	atn.addState(start)

	// Rule 0: KW : 'if' ;
	kwMid := NewBasicState()
	kwStop := NewRuleStopState()
	kwStop.SetRuleIndex(0)
	atn.addState(kwMid)
	atn.addState(kwStop)
	kwEntry := NewBasicState()
	atn.addState(kwEntry)
	kwEntry.AddTransition(NewAtomTransition(kwMid, int('i')), -1)
	kwMid.AddTransition(NewAtomTransition(kwStop, int('f')), -1)

	// Rule 1: ID : [a-z]+ ;
	idLoop := NewBasicState()
	idStop := NewRuleStopState()
	idStop.SetRuleIndex(1)
	atn.addState(idLoop)
	atn.addState(idStop)
	idEntry := NewBasicState()
	atn.addState(idEntry)
	idEntry.AddTransition(NewRangeTransition(idLoop, int('a'), int('z')), -1)
	idLoop.AddTransition(NewRangeTransition(idLoop, int('a'), int('z')), -1)
	idLoop.AddTransition(NewEpsilonTransition(idStop), -1)

	// Declaration order here fixes closure traversal order: the keyword
	// branch is explored, and so added to a reach set, ahead of the
	// identifier branch.
	start.AddTransition(NewEpsilonTransition(kwEntry), -1)
	start.AddTransition(NewEpsilonTransition(idEntry), -1)

	atn.modeToStartState = append(atn.modeToStartState, start)
	atn.ruleToTokenType = []int{kwType, idType}
	atn.ruleToStopState = []*RuleStopState{kwStop, idStop}

	return atn, kwType, idType
}

type testLexer struct {
	*BaseLexer
}

func newTestLexer(input CharStream, atn *ATN) *testLexer {
	l := &testLexer{BaseLexer: NewBaseLexer(input)}
	l.Interpreter = NewLexerATNSimulator(l, atn, []*DFA{NewDFA(atn, atn.modeToStartState[0], 0)}, NewPredictionContextCache())
	return l
}

func TestLexerMaximalMunchPrefersKeywordOverIdentifierOnTie(t *testing.T) {
	atn, kwType, _ := buildKeywordVsIdentifierATN()
	// Followed by a character neither rule can consume, so the simulator
	// settles the tie by backing up to its best recorded accept rather
	// than running the reach loop into end-of-input.
	lexer := newTestLexer(NewInputStream("if;"), atn)

	tok := lexer.NextToken()
	require.NotNil(t, tok)
	assert.Equal(t, kwType, tok.GetTokenType())
	assert.Equal(t, "if", tok.GetText())
}

func TestLexerMaximalMunchMatchesLongerIdentifierOverKeywordPrefix(t *testing.T) {
	atn, _, idType := buildKeywordVsIdentifierATN()
	lexer := newTestLexer(NewInputStream("iffy"), atn)

	// "iffy" is longer than any path through the keyword rule, so the
	// longest-match rule alone (not the tie-break) must pick ID here.
	tok := lexer.NextToken()
	require.NotNil(t, tok)
	assert.Equal(t, idType, tok.GetTokenType())
	assert.Equal(t, "iffy", tok.GetText())
}
