// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// serializedATNVersion is the only wire format this deserializer accepts.
// A generated recognizer built against a different runtime major version
// embeds a different value here, which is exactly the mismatch
// RuntimeMetaData.CheckVersion is meant to catch earlier and more
// legibly; this check is the hard backstop.
const serializedATNVersion = 4

// serializedATNUUID is the 128-bit wire-format identifier every serialized
// ATN carries immediately after the version field, as eight 16-bit words.
// Two generators could agree on serializedATNVersion while still disagreeing
// on the rest of the layout during development of a new version; the UUID
// is the finer-grained guard against deserializing a byte stream this exact
// reader was never written against.
var serializedATNUUID = [8]int32{0x33FB, 0x7AD8, 0x34F3, 0xA973, 0xAFCD, 0x60E5, 0xB9E7, 0x59AD}

// ATNDeserializationOptions controls the one optional post-processing
// step this deserializer can run: structural ATN sanity checking, which
// is worth skipping for the tool's own hand-generated transition grammars
// but should always be on for third-party input.
type ATNDeserializationOptions struct {
	VerifyATN bool
}

func DefaultATNDeserializationOptions() *ATNDeserializationOptions {
	return &ATNDeserializationOptions{VerifyATN: true}
}

// ATNDeserializer turns the flat integer array a generated recognizer's
// init() embeds as a string literal back into a live [ATN] graph: states
// and their transitions, rule boundaries, lexer modes, decision points,
// and (lexer ATNs only) the lexer action table ActionTransitions index
// into.
type ATNDeserializer struct {
	options *ATNDeserializationOptions
}

func NewATNDeserializer(options *ATNDeserializationOptions) *ATNDeserializer {
	if options == nil {
		options = DefaultATNDeserializationOptions()
	}
	return &ATNDeserializer{options: options}
}

// atnDeserializerReader walks the flat data array left to right; every
// read* helper below advances it by exactly the fields it consumes.
type atnDeserializerReader struct {
	data []int32
	pos  int
}

func (r *atnDeserializerReader) readInt() int {
	v := int(r.data[r.pos])
	r.pos++
	return v
}

// DeserializeFromUInt16 is the entry point generated recognizers call
// with the []uint16 literal their init() function embeds. Every value in
// that literal has been incremented by the code generator so that the
// array never contains 0x0000, which some target languages cannot embed
// in a plain string literal; decoding undoes that shift first.
func (a *ATNDeserializer) DeserializeFromUInt16(data []uint16) *ATN {
	return a.Deserialize(unicodeDecode(data))
}

func unicodeDecode(data []uint16) []int32 {
	out := make([]int32, len(data))
	for i, v := range data {
		shifted := int32(v) - 2
		if shifted < 0 {
			shifted += 0x10000
		}
		out[i] = shifted
	}
	return out
}

// Deserialize builds an ATN from an already-decoded data array.
func (a *ATNDeserializer) Deserialize(data []int32) *ATN {
	r := &atnDeserializerReader{data: data}
	a.checkVersion(r)
	a.checkUUID(r)

	atn := a.readATNHeader(r)
	blockEndStates, loopEndStates := a.readStates(atn, r)
	a.linkBlockAndLoopEndStates(atn, blockEndStates, loopEndStates)
	a.readRules(atn, r)
	a.readModes(atn, r)
	sets := a.readSets(r)
	a.readEdges(atn, r, sets)
	a.deriveRuleStopTransitions(atn)
	a.linkLoopbackStates(atn)
	a.readDecisions(atn, r)
	if atn.grammarType == int(ATNTypeLexer) {
		a.readLexerActions(atn, r)
	}
	a.markPrecedenceDecisions(atn)

	if a.options.VerifyATN {
		a.verifyATN(atn)
	}
	return atn
}

func (a *ATNDeserializer) checkVersion(r *atnDeserializerReader) {
	version := r.readInt()
	if version != serializedATNVersion {
		panic(fmt.Sprintf("could not deserialize ATN with version %d (this runtime supports version %d)", version, serializedATNVersion))
	}
}

// checkUUID reads the eight words following the version field and panics
// if they don't match serializedATNUUID exactly.
func (a *ATNDeserializer) checkUUID(r *atnDeserializerReader) {
	for idx, want := range serializedATNUUID {
		got := int32(r.readInt())
		if got != want {
			panic(fmt.Sprintf("could not deserialize ATN: UUID word %d was %#x, expected %#x", idx, got, want))
		}
	}
}

func (a *ATNDeserializer) readATNHeader(r *atnDeserializerReader) *ATN {
	grammarType := r.readInt()
	maxTokenType := r.readInt()
	return NewATN(grammarType, maxTokenType)
}

// readStates materializes every ATN state. A [LoopEndState]'s loop-back
// state and a [BlockStartState]'s end state are both forward references
// by state number, so this returns them to be wired up once every state
// has been allocated.
func (a *ATNDeserializer) readStates(atn *ATN, r *atnDeserializerReader) (blockEndStates map[*BlockStartState]int, loopEndStates map[*LoopEndState]int) {
	blockEndStates = make(map[*BlockStartState]int)
	loopEndStates = make(map[*LoopEndState]int)

	nstates := r.readInt()
	for i := 0; i < nstates; i++ {
		stype := r.readInt()
		if stype == ATNStateInvalidType {
			atn.addState(nil)
			continue
		}
		ruleIndex := r.readInt()
		if ruleIndex == 0xFFFF {
			ruleIndex = -1
		}
		s := a.stateFactory(stype, ruleIndex)
		switch st := s.(type) {
		case *LoopEndState:
			loopEndStates[st] = r.readInt()
		case *BlockStartState:
			blockEndStates[st] = r.readInt()
		case *PlusBlockStartState:
			blockEndStates[&st.BlockStartState] = r.readInt()
		case *StarBlockStartState:
			blockEndStates[&st.BlockStartState] = r.readInt()
		}
		atn.addState(s)
	}

	numNonGreedy := r.readInt()
	for i := 0; i < numNonGreedy; i++ {
		stateNumber := r.readInt()
		atn.states[stateNumber].(DecisionState).setNonGreedy(true)
	}

	numPrecedence := r.readInt()
	for i := 0; i < numPrecedence; i++ {
		stateNumber := r.readInt()
		atn.states[stateNumber].(*RuleStartState).isLeftRecursiveRule = true
	}

	return blockEndStates, loopEndStates
}

func (a *ATNDeserializer) linkBlockAndLoopEndStates(atn *ATN, blockEndStates map[*BlockStartState]int, loopEndStates map[*LoopEndState]int) {
	for start, endNumber := range blockEndStates {
		end := atn.states[endNumber].(*BlockEndState)
		start.EndState = end
		end.startState = start
	}
	for end, backNumber := range loopEndStates {
		end.loopBackState = atn.states[backNumber]
	}
}

// stateFactory allocates a state of the given serialized type tag,
// stamping ruleIndex onto it; the caller fills in every forward-
// reference field the type carries.
func (a *ATNDeserializer) stateFactory(stype, ruleIndex int) ATNState {
	var s ATNState
	switch stype {
	case ATNStateBasic:
		s = NewBasicState()
	case ATNStateRuleStart:
		s = NewRuleStartState()
	case ATNStateBlockStart:
		s = NewBlockStartState()
	case ATNStatePlusBlockStart:
		s = NewPlusBlockStartState()
	case ATNStateStarBlockStart:
		s = NewStarBlockStartState()
	case ATNStateTokenStart:
		s = NewTokensStartState()
	case ATNStateRuleStop:
		s = NewRuleStopState()
	case ATNStateBlockEnd:
		s = NewBlockEndState()
	case ATNStateStarLoopBack:
		s = NewStarLoopbackState()
	case ATNStateStarLoopEntry:
		s = NewStarLoopEntryState()
	case ATNStatePlusLoopBack:
		s = NewPlusLoopbackState()
	case ATNStateLoopEnd:
		s = NewLoopEndState()
	default:
		panic(fmt.Sprintf("invalid ATN state type %d", stype))
	}
	s.SetRuleIndex(ruleIndex)
	return s
}

func (a *ATNDeserializer) readRules(atn *ATN, r *atnDeserializerReader) {
	nrules := r.readInt()
	if atn.grammarType == int(ATNTypeLexer) {
		atn.ruleToTokenType = make([]int, nrules)
	}
	atn.ruleToStartState = make([]*RuleStartState, nrules)
	for i := 0; i < nrules; i++ {
		s := r.readInt()
		startState := atn.states[s].(*RuleStartState)
		atn.ruleToStartState[i] = startState
		if atn.grammarType == int(ATNTypeLexer) {
			atn.ruleToTokenType[i] = r.readInt()
		}
	}

	atn.ruleToStopState = make([]*RuleStopState, nrules)
	for _, state := range atn.states {
		stop, ok := state.(*RuleStopState)
		if !ok {
			continue
		}
		atn.ruleToStopState[stop.GetRuleIndex()] = stop
		atn.ruleToStartState[stop.GetRuleIndex()].stopState = stop
	}
}

func (a *ATNDeserializer) readModes(atn *ATN, r *atnDeserializerReader) {
	nmodes := r.readInt()
	for i := 0; i < nmodes; i++ {
		s := r.readInt()
		atn.modeToStartState = append(atn.modeToStartState, atn.states[s].(*TokensStartState))
	}
}

// readSets reads the table of interval sets SetTransition/NotSetTransition
// entries in the edge table index into by position.
func (a *ATNDeserializer) readSets(r *atnDeserializerReader) []*IntervalSet {
	nsets := r.readInt()
	sets := make([]*IntervalSet, nsets)
	for i := 0; i < nsets; i++ {
		nintervals := r.readInt()
		set := NewIntervalSet()
		sets[i] = set
		if r.readInt() != 0 {
			set.addOne(TokenEOF)
		}
		for j := 0; j < nintervals; j++ {
			lo := r.readInt()
			hi := r.readInt()
			set.addRange(lo, hi)
		}
	}
	return sets
}

func (a *ATNDeserializer) readEdges(atn *ATN, r *atnDeserializerReader, sets []*IntervalSet) {
	nedges := r.readInt()
	for i := 0; i < nedges; i++ {
		src := r.readInt()
		trg := r.readInt()
		ttype := r.readInt()
		arg1 := r.readInt()
		arg2 := r.readInt()
		arg3 := r.readInt()
		trans := a.edgeFactory(atn, ttype, trg, arg1, arg2, arg3, sets)
		atn.states[src].AddTransition(trans, -1)
	}
}

func (a *ATNDeserializer) edgeFactory(atn *ATN, ttype, trg, arg1, arg2, arg3 int, sets []*IntervalSet) Transition {
	target := atn.states[trg]
	switch ttype {
	case TransitionEPSILON:
		return NewEpsilonTransition(target)
	case TransitionRANGE:
		if arg3 != 0 {
			return NewRangeTransition(target, TokenEOF, arg2)
		}
		return NewRangeTransition(target, arg1, arg2)
	case TransitionRULE:
		return NewRuleTransition(atn.states[arg1].(*RuleStartState), arg2, arg3, target)
	case TransitionPREDICATE:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0)
	case TransitionPRECEDENCE:
		return NewPrecedencePredicateTransition(target, arg1)
	case TransitionATOM:
		if arg3 != 0 {
			return NewAtomTransition(target, TokenEOF)
		}
		return NewAtomTransition(target, arg1)
	case TransitionACTION:
		return NewActionTransition(target, arg1, arg2, arg3 != 0)
	case TransitionSET:
		return NewSetTransition(target, sets[arg1])
	case TransitionNOTSET:
		return NewNotSetTransition(target, sets[arg1])
	case TransitionWILDCARD:
		return NewWildcardTransition(target)
	default:
		panic(fmt.Sprintf("invalid transition type %d", ttype))
	}
}

// deriveRuleStopTransitions adds the one transition per [RuleTransition]
// that is never serialized because it is fully determined by the rule it
// calls into: the called rule's stop state always returns control to the
// caller's followState. A left-recursive rule called at precedence 0
// marks the return as outermost, so closure can treat it as leaving the
// recursive rule entirely rather than just one level of recursion.
func (a *ATNDeserializer) deriveRuleStopTransitions(atn *ATN) {
	for _, state := range atn.states {
		if state == nil {
			continue
		}
		for _, t := range state.GetTransitions() {
			rt, ok := t.(*RuleTransition)
			if !ok {
				continue
			}
			outermostPrecedenceReturn := -1
			if atn.ruleToStartState[rt.ruleIndex].isLeftRecursiveRule && rt.precedence == 0 {
				outermostPrecedenceReturn = rt.ruleIndex
			}
			ret := &EpsilonTransition{
				BaseTransition:            BaseTransition{target: rt.followState, isEpsilon: true, serializationType: TransitionEPSILON},
				outermostPrecedenceReturn: outermostPrecedenceReturn,
			}
			atn.ruleToStopState[rt.ruleIndex].AddTransition(ret, -1)
		}
	}
}

// linkLoopbackStates fills in the loop-back pointer on a *+*/*\** block's
// start/entry state, the other forward reference the serialized format
// leaves for edges to resolve: a loop-back state's target is only known
// once its transitions exist.
func (a *ATNDeserializer) linkLoopbackStates(atn *ATN) {
	for _, state := range atn.states {
		switch st := state.(type) {
		case *PlusLoopbackState:
			for _, t := range st.GetTransitions() {
				if target, ok := t.getTarget().(*PlusBlockStartState); ok {
					target.loopBackState = st
				}
			}
		case *StarLoopbackState:
			for _, t := range st.GetTransitions() {
				if target, ok := t.getTarget().(*StarLoopEntryState); ok {
					target.loopBackState = st
				}
			}
		}
	}
}

func (a *ATNDeserializer) readDecisions(atn *ATN, r *atnDeserializerReader) {
	ndecisions := r.readInt()
	for i := 0; i < ndecisions; i++ {
		s := r.readInt()
		atn.defineDecisionState(atn.states[s].(DecisionState))
	}
}

func (a *ATNDeserializer) readLexerActions(atn *ATN, r *atnDeserializerReader) {
	n := r.readInt()
	atn.lexerActions = make([]LexerAction, n)
	for i := 0; i < n; i++ {
		actionType := r.readInt()
		data1 := r.readInt()
		data2 := r.readInt()
		atn.lexerActions[i] = a.lexerActionFactory(actionType, data1, data2)
	}
}

func (a *ATNDeserializer) lexerActionFactory(actionType, data1, data2 int) LexerAction {
	switch actionType {
	case LexerActionTypeChannel:
		return NewLexerChannelAction(data1)
	case LexerActionTypeCustom:
		return NewLexerCustomAction(data1, data2)
	case LexerActionTypeMode:
		return NewLexerModeAction(data1)
	case LexerActionTypeMore:
		return NewLexerMoreAction()
	case LexerActionTypePopMode:
		return NewLexerPopModeAction()
	case LexerActionTypePushMode:
		return NewLexerPushModeAction(data1)
	case LexerActionTypeSkip:
		return NewLexerSkipAction()
	case LexerActionTypeType:
		return NewLexerTypeAction(data1)
	default:
		panic(fmt.Sprintf("invalid lexer action type %d", actionType))
	}
}

// markPrecedenceDecisions flags the synthetic star-loop a left-recursive
// rule compiles into, so ATN.IsPrecedenceDecision reports it and NewDFA
// builds that decision's DFA as a precedence DFA.
func (a *ATNDeserializer) markPrecedenceDecisions(atn *ATN) {
	for _, state := range atn.states {
		entry, ok := state.(*StarLoopEntryState)
		if !ok {
			continue
		}
		if !atn.ruleToStartState[entry.GetRuleIndex()].isLeftRecursiveRule {
			continue
		}
		transitions := entry.GetTransitions()
		maybeLoopEnd := transitions[len(transitions)-1].getTarget()
		loopEnd, ok := maybeLoopEnd.(*LoopEndState)
		if !ok || !loopEnd.GetEpsilonOnlyTransitions() {
			continue
		}
		if _, ok := loopEnd.GetTransitions()[0].getTarget().(*RuleStopState); ok {
			entry.precedenceRuleDecision = true
		}
	}
}

// verifyATN runs a handful of structural sanity checks cheap enough to
// always leave on: states are numbered by their index, every decision
// state with more than one transition has a non-negative decision number,
// and every rule has a start and stop state. A real bug in a
// hand-edited or corrupted serialized ATN shows up here instead of as a
// nil-pointer panic deep inside ParserATNSimulator.
func (a *ATNDeserializer) verifyATN(atn *ATN) {
	for i, state := range atn.states {
		if state == nil {
			continue
		}
		if state.GetStateNumber() != i {
			invariantViolation("deserialized ATN state numbered out of order")
		}
		if ds, ok := state.(DecisionState); ok {
			if len(ds.GetTransitions()) > 1 && ds.getDecision() < 0 {
				invariantViolation("decision state with multiple transitions has no decision number")
			}
		}
	}
	for i, start := range atn.ruleToStartState {
		if start == nil || atn.ruleToStopState[i] == nil {
			invariantViolation("rule missing a start or stop state after deserialization")
		}
	}
}
