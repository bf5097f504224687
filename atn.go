// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "sync"

// ATNInvalidAltNumber marks an alternative number that has not yet been
// computed, or that is meaningless for the context it appears in (for
// example, a BaseRuleContext not created by a decision).
var ATNInvalidAltNumber int

// ATN is the augmented transition network a deserialized grammar compiles
// down to: every rule, sub-rule, and operator ((), (), (), ?, *, +) becomes
// a small network of states joined by transitions, and decision points
// (sub-rule entries) are tracked separately so a DFA can be built per
// decision on demand. This graph, together with a PredictionContext stack
// simulating the call stack between rules, is what lets ParserATNSimulator
// predict arbitrarily far ahead without actually recursing into rules.
type ATN struct {
	// DecisionToState holds one DecisionState per decision point in the
	// grammar (sub-rule entries, loop entries, etc.), indexed by decision
	// number. ParserATNSimulator and LexerATNSimulator key their DFA cache
	// off this same decision number.
	DecisionToState []DecisionState

	grammarType int

	// lexerActions is the table ActionTransitions in a lexer ATN index
	// into; absent from parser ATNs.
	lexerActions []LexerAction

	// maxTokenType bounds every symbol interval the ATN's transitions can
	// reference.
	maxTokenType int

	modeNameToStartState map[string]*TokensStartState
	modeToStartState     []*TokensStartState

	// ruleToStartState and ruleToStopState map a rule index to its
	// entry/exit states.
	ruleToStartState []*RuleStartState
	ruleToStopState  []*RuleStopState

	// ruleToTokenType maps a lexer rule index to the token type it
	// produces. The deserializer fills it for lexer ATNs only; for a
	// parser ATN it is nil.
	ruleToTokenType []int

	// states holds every ATNState, indexed by state number; a removed
	// state leaves a nil hole rather than shifting later indices.
	states []ATNState

	// mu guards the per-state NextTokenWithinRule cache NextTokensNoContext
	// fills in lazily; every other field here is written once during
	// deserialization and read-only afterward.
	mu sync.Mutex
}

// NewATN builds an empty ATN of the given type, ready for a deserializer
// to populate with states and transitions.
func NewATN(grammarType int, maxTokenType int) *ATN {
	return &ATN{
		grammarType:          grammarType,
		maxTokenType:         maxTokenType,
		modeNameToStartState: make(map[string]*TokensStartState),
	}
}

// NextTokensInContext returns the set of input symbols reachable from s.
// A nil ctx restricts the walk to the rule containing s; a non-nil ctx
// lets the walk pop out of that rule into whatever invoked it.
func (a *ATN) NextTokensInContext(s ATNState, ctx RuleContext) *IntervalSet {
	return NewLL1Analyzer(a).Look(s, nil, ctx)
}

// NextTokensNoContext is NextTokensInContext with ctx == nil, cached on
// the state itself since the answer never depends on the calling context.
// TokenEpsilon appears in the result if the rule's end is reachable
// without consuming anything.
func (a *ATN) NextTokensNoContext(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	iset := s.GetNextTokenWithinRule()
	if iset == nil {
		iset = a.NextTokensInContext(s, nil)
		iset.readOnly = true
		s.SetNextTokenWithinRule(iset)
	}
	return iset
}

// NextTokens dispatches to NextTokensNoContext or NextTokensInContext
// depending on whether ctx is nil.
func (a *ATN) NextTokens(s ATNState, ctx RuleContext) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}
	return a.NextTokensInContext(s, ctx)
}

func (a *ATN) addState(state ATNState) {
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

func (a *ATN) removeState(state ATNState) {
	// Leave a hole rather than shift: every other state still references
	// its neighbors by index.
	a.states[state.GetStateNumber()] = nil
}

func (a *ATN) defineDecisionState(s DecisionState) int {
	a.DecisionToState = append(a.DecisionToState, s)
	s.setDecision(len(a.DecisionToState) - 1)
	return s.getDecision()
}

func (a *ATN) getDecisionState(decision int) DecisionState {
	if len(a.DecisionToState) == 0 {
		return nil
	}
	return a.DecisionToState[decision]
}

// getExpectedTokens computes the symbols that could legally follow
// stateNumber under ctx, assuming every semantic predicate encountered
// along the way evaluates true. Unwinds through ctx's invoking states
// when the rule containing stateNumber can exit without consuming
// anything, and adds TokenEOF if the unwind reaches the outermost
// context with nothing left to match.
func (a *ATN) getExpectedTokens(stateNumber int, ctx RuleContext) *IntervalSet {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic("invalid state number")
	}

	s := a.states[stateNumber]
	following := a.NextTokens(s, nil)
	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()
	expected.addSet(following)
	expected.removeOne(TokenEpsilon)

	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := a.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0]
		following = a.NextTokens(rt.(*RuleTransition).followState, nil)
		expected.addSet(following)
		expected.removeOne(TokenEpsilon)
		ctx = ctx.GetParent().(RuleContext)
	}

	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}

	return expected
}

func (a *ATN) GetRuleToStartState(index int) *RuleStartState { return a.ruleToStartState[index] }
func (a *ATN) GetRuleToStopState(index int) *RuleStopState   { return a.ruleToStopState[index] }
func (a *ATN) GetMaxTokenType() int                          { return a.maxTokenType }

// IsPrecedenceDecision reports whether decision is the synthetic star-loop
// a left-recursive rule compiles into, the one case where a decision's DFA
// is keyed by the parser's current precedence level rather than shared
// across every precedence the rule is entered at. ATNDeserializer.
// markPrecedenceDecisions is what actually flags the underlying state;
// this is the query surface callers outside this file use instead of
// reaching into the state-type switch themselves.
func (a *ATN) IsPrecedenceDecision(decision int) bool {
	s, ok := a.getDecisionState(decision).(*StarLoopEntryState)
	return ok && s.precedenceRuleDecision
}
