// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerATNSimMinDFAEdge and LexerATNSimMaxDFAEdge bound the symbol range
// a lexer DFA edge table indexes directly; everything outside it (Unicode
// above ASCII) still works, it just always takes the ATN-computation slow
// path rather than a cached edge.
const (
	LexerATNSimMinDFAEdge = 0
	LexerATNSimMaxDFAEdge = 127
)

// simState snapshots "best accept so far" during a single match call: the
// farthest input position at which some configuration sat in a
// rule-stop-state, together with what to do about it.
type lexerSimState struct {
	index      int
	line       int
	column     int
	dfaState   *DFAState
}

func newLexerSimState() *lexerSimState { return &lexerSimState{index: -1} }

func (s *lexerSimState) reset() {
	s.index = -1
	s.line = 0
	s.column = -1
	s.dfaState = nil
}

// LexerATNSimulator recognizes the longest-matching lexer rule from the
// current character position under the active mode, building and caching
// a DFA per mode exactly the way ParserATNSimulator caches one per
// decision.
type LexerATNSimulator struct {
	BaseATNSimulator

	recog      Lexer
	decisionToDFA []*DFA

	mode int

	startIndex int
	line       int
	column     int

	prevAccept *lexerSimState
}

func NewLexerATNSimulator(recog Lexer, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *LexerATNSimulator {
	return &LexerATNSimulator{
		BaseATNSimulator: BaseATNSimulator{atn: atn, sharedContextCache: sharedContextCache},
		recog:            recog,
		decisionToDFA:    decisionToDFA,
		line:             1,
		column:           0,
		mode:             LexerDefaultMode,
		prevAccept:       newLexerSimState(),
	}
}

// Match runs the longest-match algorithm against input starting at the
// current position, returning the recognized token type or
// LexerSkip/LexerMore, and raising LexerNoViableAltException if nothing
// matched.
func (l *LexerATNSimulator) Match(input CharStream, mode int) int {
	l.mode = mode
	mark := input.Mark()
	defer input.Release(mark)

	l.startIndex = input.Index()
	l.prevAccept.reset()

	dfa := l.decisionToDFA[mode]
	var s0 *DFAState
	if dfa != nil {
		s0 = dfa.getS0()
	}
	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

func (l *LexerATNSimulator) matchATN(input CharStream) int {
	startState := l.atn.modeToStartState[l.mode]
	configs := NewATNConfigSet(false)
	// Each of the mode's rules gets its own alt number here, exactly as
	// ParserATNSimulator.computeStartState assigns one per decision
	// alternative: closure's skipAlt bookkeeping (the non-greedy /
	// already-matched-this-alt suppression) keys off alt equality, so
	// without distinct alts every rule would be treated as if it were the
	// same alternative and wrongly suppress each other's continuations.
	for i, t := range startState.GetTransitions() {
		cfg := NewATNConfig(t.getTarget(), i+1, BasePredictionContextEMPTY, nil)
		l.closure(input, cfg, configs, false, false, false)
	}
	next := l.addDFAState(configs)
	return l.execATN(input, next)
}

// execATN runs the reach loop: on each character, try the DFA edge table
// first, falling back to a fresh ATN-config reach computation whenever
// the cache has not seen this (state, symbol) pair — the same shape
// ParserATNSimulator's SLL loop uses, one character at a time rather than
// one token at a time.
func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) int {
	if ds0.isAcceptState {
		l.captureSimState(l.prevAccept, input, ds0)
	}
	t := input.LA(1)
	s := ds0
	for {
		target := l.getExistingTargetState(s, t)
		if target == nil {
			target = l.computeTargetState(input, s, t)
		}
		if target == ATNSimulatorErrorState {
			break
		}
		if t != TokenEOF {
			l.consume(input)
		}
		if target.isAcceptState {
			l.captureSimState(l.prevAccept, input, target)
			if t == TokenEOF {
				break
			}
		}
		t = input.LA(1)
		s = target
	}
	return l.failOrAccept(input)
}

// ATNSimulatorErrorState is the sentinel meaning "no transition", kept
// distinct from nil so a DFA edge slot can record "checked, no match"
// instead of paying the ATN-computation cost a second time.
var ATNSimulatorErrorState = &DFAState{stateNumber: -1}

func (l *LexerATNSimulator) getExistingTargetState(s *DFAState, t int) *DFAState {
	if s.edges == nil || t < LexerATNSimMinDFAEdge || t > LexerATNSimMaxDFAEdge {
		return nil
	}
	target := s.edges[t-LexerATNSimMinDFAEdge]
	return target
}

func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reach := NewATNConfigSet(false)
	l.getReachableConfigSet(input, s.configs, reach, t)
	if reach.IsEmpty() {
		if !reach.hasSemanticContext {
			l.addDFAEdge(s, t, ATNSimulatorErrorState)
		}
		return ATNSimulatorErrorState
	}
	return l.addDFAEdgeByConfigs(s, t, reach)
}

func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, closureConfigs *ATNConfigSet, reach *ATNConfigSet, t int) {
	var skipAlt = ATNInvalidAltNumber
	for _, c := range closureConfigs.configs {
		currentAltReachedAcceptState := c.alt == skipAlt
		if currentAltReachedAcceptState && c.GetPassedThroughNonGreedyDecision() {
			continue
		}
		for _, trans := range c.state.GetTransitions() {
			target := l.getReachableTarget(trans, t)
			if target == nil {
				continue
			}
			cfg := NewATNConfigFrom(c, target)
			if l.closure(input, cfg, reach, currentAltReachedAcceptState, true, false) {
				skipAlt = c.alt
			}
		}
	}
}

func (l *LexerATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, TokenMinUserTokenType-1, 0x10FFFF) || (t == TokenEOF && trans.getIsEpsilon()) {
		return trans.getTarget()
	}
	if trans.Matches(t, 0, 0x10FFFF) {
		return trans.getTarget()
	}
	return nil
}

// closure computes the epsilon closure from config into configs,
// returning whether the current alt has reached a rule stop state and
// tracking the non-greedy-decision flag lexer configs need, mirroring ATNConfigSet's closure rules with
// lexer-specific rule-stop handling.
func (l *LexerATNSimulator) closure(input CharStream, config *ATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon bool) bool {
	if _, ok := config.state.(*RuleStopState); ok {
		if config.context == nil || config.context.hasEmptyPath() {
			if config.context == nil || config.context.isEmpty() {
				configs.Add(config, nil)
				return true
			}
			configs.Add(NewATNConfigFromWithContext(config, config.state, BasePredictionContextEMPTY), nil)
			currentAltReachedAcceptState = true
		}
		if config.context != nil && !config.context.isEmpty() {
			for i := 0; i < config.context.length(); i++ {
				if config.context.getReturnState(i) == BaseParserRuleContextEmptyReturnState {
					continue
				}
				newContext := config.context.GetParent(i)
				returnState := l.atn.states[config.context.getReturnState(i)]
				cfg := NewATNConfigFromWithContext(config, returnState, newContext)
				currentAltReachedAcceptState = l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
			}
		}
		return currentAltReachedAcceptState
	}
	if !config.state.GetEpsilonOnlyTransitions() {
		if !currentAltReachedAcceptState {
			configs.Add(config, nil)
		}
	}
	for _, trans := range config.state.GetTransitions() {
		cfg := l.getEpsilonTarget(input, config, trans, configs, speculative, treatEOFAsEpsilon)
		if cfg != nil {
			currentAltReachedAcceptState = l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
		}
	}
	return currentAltReachedAcceptState
}

func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *ATNConfig, trans Transition, configs *ATNConfigSet, speculative, treatEOFAsEpsilon bool) *ATNConfig {
	var cfg *ATNConfig
	switch trans.getSerializationType() {
	case TransitionRULE:
		rt := trans.(*RuleTransition)
		newContext := l.getCachedContext(NewSingletonPredictionContext(config.context, rt.followState.GetStateNumber()))
		cfg = NewATNConfigFromWithContext(config, trans.getTarget(), newContext)
	case TransitionPRECEDENCE:
		invariantViolation("lexer ATN should not contain precedence transitions")
	case TransitionPREDICATE:
		pt := trans.(*PredicateTransition)
		if !speculative {
			configs.hasSemanticContext = true
			if l.evaluatePredicate(input, pt.ruleIndex, pt.predIndex, speculative) {
				cfg = NewATNConfigFrom(config, trans.getTarget())
			}
		} else {
			cfg = NewATNConfigFrom(config, trans.getTarget())
		}
	case TransitionACTION:
		if config.context == nil || config.context.hasEmptyPath() {
			executor := LexerActionExecutorAppend(config.GetLexerActionExecutor(), l.atn.lexerActions[trans.(*ActionTransition).actionIndex])
			// The action just appended may be position-dependent; record its
			// offset from the token start now, since by the time the rule's
			// longest match is known and the executor actually runs, further
			// simulation will have moved the input past this point.
			executor = executor.fixOffsetBeforeMatch(input.Index() - l.startIndex)
			cfg = NewATNConfigFrom(config, trans.getTarget())
			cfg.SetLexerActionExecutor(executor)
		} else {
			cfg = NewATNConfigFrom(config, trans.getTarget())
		}
	case TransitionEPSILON:
		cfg = NewATNConfigFrom(config, trans.getTarget())
	case TransitionATOM, TransitionRANGE, TransitionSET:
		if treatEOFAsEpsilon && trans.Matches(TokenEOF, 0, 0x10FFFF) {
			cfg = NewATNConfigFrom(config, trans.getTarget())
		}
	}
	if cfg != nil {
		if ds, ok := trans.getTarget().(DecisionState); ok && ds.getNonGreedy() {
			cfg.passedThroughNonGreedyDecision = true
		}
	}
	return cfg
}

func (l *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	if !speculative {
		return l.recog.Sempred(nil, ruleIndex, predIndex)
	}
	savedColumn, savedLine, savedIndex := l.column, l.line, input.Index()
	l.consume(input)
	defer func() {
		input.Seek(savedIndex)
		l.column = savedColumn
		l.line = savedLine
	}()
	return l.recog.Sempred(nil, ruleIndex, predIndex)
}

func (l *LexerATNSimulator) captureSimState(settings *lexerSimState, input CharStream, dfaState *DFAState) {
	settings.index = input.Index()
	settings.line = l.line
	settings.column = l.column
	settings.dfaState = dfaState
}

func (l *LexerATNSimulator) addDFAEdgeByConfigs(from *DFAState, t int, q *ATNConfigSet) *DFAState {
	suppressEdge := q.hasSemanticContext
	q.hasSemanticContext = false
	to := l.addDFAState(q)
	if suppressEdge {
		return to
	}
	l.addDFAEdge(from, t, to)
	return to
}

func (l *LexerATNSimulator) addDFAEdge(from *DFAState, t int, to *DFAState) {
	if t < LexerATNSimMinDFAEdge || t > LexerATNSimMaxDFAEdge {
		return
	}
	if from.edges == nil {
		from.edges = make(map[int]*DFAState)
	}
	from.edges[t-LexerATNSimMinDFAEdge] = to
}

func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	newState := NewDFAState(-1, configs)
	var existingAcceptState *DFAState
	for _, c := range configs.configs {
		if _, ok := c.state.(*RuleStopState); ok {
			existingAcceptState = newState
			newState.isAcceptState = true
			newState.lexerActionExecutor = c.GetLexerActionExecutor()
			newState.prediction = l.atn.ruleToTokenType[c.state.GetRuleIndex()]
			break
		}
	}
	_ = existingAcceptState
	configs.SetReadonly(true)
	dfa := l.decisionToDFA[l.mode]
	return dfa.addState(newState)
}

// failOrAccept backs up to the best recorded accept, if any, fires its
// LexerActionExecutor, and returns the resulting token type — or raises a
// no-viable-alt error at the starting position when nothing ever matched.
func (l *LexerATNSimulator) failOrAccept(input CharStream) int {
	if l.prevAccept.dfaState != nil {
		lexerActionExecutor := l.prevAccept.dfaState.lexerActionExecutor
		l.accept(input, lexerActionExecutor, l.startIndex, l.prevAccept.index, l.prevAccept.line, l.prevAccept.column)
		return l.prevAccept.dfaState.prediction
	}
	if input.LA(1) == TokenEOF && input.Index() == l.startIndex {
		return TokenEOF
	}
	panic(NewLexerNoViableAltException(l.recog, input, l.startIndex, nil))
}

func (l *LexerATNSimulator) accept(input CharStream, lexerActionExecutor *LexerActionExecutor, startIndex, index, line, column int) {
	input.Seek(index)
	l.line = line
	l.column = column
	if lexerActionExecutor != nil && l.recog != nil {
		lexerActionExecutor.execute(l.recog, input, startIndex)
	}
}

func (l *LexerATNSimulator) consume(input CharStream) {
	curChar := input.LA(1)
	if curChar == int('\n') {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	input.Consume()
}

func (l *LexerATNSimulator) GetCharPositionInLine() int { return l.column }
func (l *LexerATNSimulator) GetLine() int               { return l.line }
func (l *LexerATNSimulator) SetLine(v int)              { l.line = v }
func (l *LexerATNSimulator) SetCharPositionInLine(v int) { l.column = v }
