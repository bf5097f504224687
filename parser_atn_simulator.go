// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserATNSimulator is the adaptive LL(*) prediction engine: given a
// decision point and the parser's current lookahead, it answers "which
// alternative should the parser take" by walking the ATN under an
// SLL (context-free) approximation first, falling back to a full-context
// (LL) simulation only when SLL cannot distinguish the alternatives on
// its own. Per-decision DFAs memoize both simulations across calls so a
// grammar with no real ambiguity pays the full closure cost only once per
// decision.
type ParserATNSimulator struct {
	BaseATNSimulator

	parser         Parser
	decisionToDFA  []*DFA
	predictionMode PredictionMode

	// PredictionOverrideDecision/-Offset/-Alt let an interpreter-mode
	// caller force a specific decision to resolve to a specific
	// alternative at a specific input offset, bypassing the simulator
	// entirely — used to drive a parse down an externally chosen path
	// (for example when replaying a previously recorded ambiguity).
	PredictionOverrideDecision int
	PredictionOverrideOffset   int
	PredictionOverrideAlt      int
}

// NewParserATNSimulator returns a simulator over atn, with one DFA slot
// per decision already allocated in decisionToDFA.
func NewParserATNSimulator(parser Parser, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	return &ParserATNSimulator{
		BaseATNSimulator:           BaseATNSimulator{atn: atn, sharedContextCache: sharedContextCache},
		parser:                     parser,
		decisionToDFA:              decisionToDFA,
		predictionMode:             PredictionModeLL,
		PredictionOverrideDecision: -1,
	}
}

func (p *ParserATNSimulator) GetPredictionMode() PredictionMode    { return p.predictionMode }
func (p *ParserATNSimulator) SetPredictionMode(m PredictionMode)   { p.predictionMode = m }
func (p *ParserATNSimulator) DecisionToDFA() []*DFA                { return p.decisionToDFA }

// AdaptivePredict answers the decision: which alternative (1-based) should
// the parser commit to, given input's current lookahead and the live rule
// context outerContext. It never consumes input permanently — the stream
// is marked and released around the whole simulation — but it does raise
// (by panicking with) a NoViableAltException if no alternative survives.
func (p *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext ParserRuleContext) int {
	if p.PredictionOverrideDecision == decision && input.Index() == p.PredictionOverrideOffset {
		alt := p.PredictionOverrideAlt
		p.PredictionOverrideDecision = -1
		return alt
	}

	dfa := p.decisionToDFA[decision]
	startIndex := input.Index()

	m := input.Mark()
	defer func() {
		input.Seek(startIndex)
		input.Release(m)
	}()

	var s0 *DFAState
	if dfa.precedenceDfa {
		s0 = dfa.getPrecedenceStartState(p.parser.GetPrecedence(), false)
	} else {
		s0 = dfa.getS0()
	}
	if s0 == nil {
		closure := p.computeStartState(dfa.atnStartState, outerContext, false)
		s0 = NewDFAState(-1, closure)
		if dfa.precedenceDfa {
			s0 = dfa.addState(s0)
			dfa.setPrecedenceStartState(p.parser.GetPrecedence(), false, s0)
		} else {
			s0 = dfa.addState(s0)
			dfa.setS0(s0)
		}
	}

	return p.execATN(dfa, s0, input, startIndex, outerContext)
}

// execATN runs the SLL simulation, consuming one lookahead symbol per
// loop iteration, caching every DFAState and edge it computes onto dfa so
// a repeat prediction at the same decision and input prefix is an O(1)
// edge walk. A DFAState flagged requiresFullContext hands off to
// execATNWithFullContext instead of accepting.
func (p *ParserATNSimulator) execATN(dfa *DFA, s0 *DFAState, input TokenStream, startIndex int, outerContext ParserRuleContext) int {
	previousD := s0
	t := input.LA(1)

	for {
		D := previousD.getEdge(t + 1)
		if D == nil {
			D = p.computeTargetState(dfa, previousD, t, startIndex, outerContext, false)
		}
		if D == ATNSimulatorErrorState {
			p.noViableAlt(input, outerContext, previousD.configs, startIndex)
		}
		if D.requiresFullContext {
			return p.execATNWithFullContext(dfa, previousD, input, startIndex, outerContext)
		}
		if D.isAcceptState {
			return p.resolveAccept(D, outerContext)
		}
		previousD = D
		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		}
	}
}

// execATNWithFullContext restarts the simulation from startIndex with a
// full-context (LL) config set built from the real outerContext, so it
// only reports a genuine ambiguity — never one that a deeper call stack
// would have resolved on its own.
func (p *ParserATNSimulator) execATNWithFullContext(dfa *DFA, conflictState *DFAState, input TokenStream, startIndex int, outerContext ParserRuleContext) int {
	p.parser.GetErrorListenerDispatch().ReportAttemptingFullContext(p.parser, dfa, startIndex, input.Index(), conflictState.GetAltSet(), conflictState.configs)

	input.Seek(startIndex)

	var s0 *DFAState
	if dfa.precedenceDfa {
		s0 = dfa.getPrecedenceStartState(p.parser.GetPrecedence(), true)
	} else {
		s0 = dfa.getS0full()
	}
	if s0 == nil {
		closure := p.computeStartState(dfa.atnStartState, outerContext, true)
		s0 = NewDFAState(-1, closure)
		if dfa.precedenceDfa {
			s0 = dfa.addState(s0)
			dfa.setPrecedenceStartState(p.parser.GetPrecedence(), true, s0)
		} else {
			s0 = dfa.addState(s0)
			dfa.setS0full(s0)
		}
	}

	previousD := s0
	t := input.LA(1)
	for {
		D := previousD.getEdge(t + 1)
		if D == nil {
			D = p.computeTargetState(dfa, previousD, t, startIndex, outerContext, true)
		}
		if D == ATNSimulatorErrorState {
			p.noViableAlt(input, outerContext, previousD.configs, startIndex)
		}
		if D.isAcceptState {
			alt := p.resolveAccept(D, outerContext)
			if conflictingAlts := D.configs.conflictingAlts; conflictingAlts != nil && conflictingAlts.length() > 1 {
				p.parser.GetErrorListenerDispatch().ReportAmbiguity(p.parser, dfa, startIndex, input.Index(), D.configs.fullCtx, conflictingAlts, D.configs)
			} else {
				p.parser.GetErrorListenerDispatch().ReportContextSensitivity(p.parser, dfa, startIndex, input.Index(), alt, D.configs)
			}
			return alt
		}
		previousD = D
		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		}
	}
}

// resolveAccept answers the prediction an accept DFAState already carries,
// evaluating any guarding predicates attached to it first: a predicated
// accept state can disagree with its own D.prediction once predicates are
// considered.
func (p *ParserATNSimulator) resolveAccept(D *DFAState, outerContext ParserRuleContext) int {
	if len(D.predicates) == 0 {
		return D.prediction
	}
	for _, pp := range D.predicates {
		if pp.pred == SemanticContextNone || pp.pred.evaluate(p.parser, outerContext) {
			return pp.alt
		}
	}
	panic(NewNoViableAltException(p.parser, p.parser.GetTokenStream(), nil, nil, D.configs, p.parser.GetParserRuleContext()))
}

func (p *ParserATNSimulator) noViableAlt(input TokenStream, outerContext ParserRuleContext, configs *ATNConfigSet, startIndex int) {
	startToken := input.Get(startIndex)
	input.Seek(startIndex)
	panic(NewNoViableAltException(p.parser, input, startToken, input.LT(1), configs, outerContext))
}

// computeTargetState moves previousD's config set across symbol t, closes
// the result, classifies it (unique alt / conflict / dead end), and caches
// the resulting DFAState as previousD's edge for t.
func (p *ParserATNSimulator) computeTargetState(dfa *DFA, previousD *DFAState, t, startIndex int, outerContext ParserRuleContext, fullCtx bool) *DFAState {
	reach := p.computeReachSet(previousD.configs, t, fullCtx)
	if reach == nil || reach.IsEmpty() {
		previousD.setEdge(t+1, ATNSimulatorErrorState)
		return ATNSimulatorErrorState
	}

	D := NewDFAState(-1, reach)
	predictedAlt := getUniqueAlt(reach)
	switch {
	case predictedAlt != ATNInvalidAltNumber:
		D.isAcceptState = true
		reach.uniqueAlt = predictedAlt
		D.setPrediction(predictedAlt)
	case hasConflictingAltSet(reach):
		conflictingAlts := getConflictingAlts(reach)
		reach.conflictingAlts = conflictingAlts
		if fullCtx || p.predictionMode == PredictionModeSLL {
			// Full context already has the real call stack, so a surviving
			// conflict here is a genuine ambiguity; PredictionModeSLL asks
			// for the cheaper approximation and accepts its answer without
			// ever falling back.
			D.isAcceptState = true
			D.setPrediction(minAlt(conflictingAlts))
		} else {
			D.requiresFullContext = true
		}
	default:
		D.setPrediction(minAlt(reach.GetAlts()))
	}

	if D.isAcceptState && reach.hasSemanticContext {
		decisionState := p.atn.getDecisionState(dfa.decision)
		p.predicateDFAState(D, decisionState)
		if len(D.predicates) > 0 {
			D.setPrediction(ATNInvalidAltNumber)
		}
	}

	D = dfa.addState(D)
	previousD.setEdge(t+1, D)
	return D
}

// predicateDFAState collects, per alternative that could still win
// D (its unique alt, or every alt in its conflict set), the disjunction
// of semantic contexts configs.Add deferred for that alt, and stages
// them onto D.predicates. If no alt actually carries a non-trivial
// predicate, D.predicates is left empty and D.prediction stands as
// already computed — nothing is evaluated here, so the shared,
// cross-parse DFA cache never commits to one outer context's answer.
func (p *ParserATNSimulator) predicateDFAState(D *DFAState, decisionState DecisionState) {
	nalts := len(decisionState.GetTransitions())

	altsToCollect := D.configs.conflictingAlts
	if altsToCollect == nil {
		altsToCollect = NewBitSet()
		altsToCollect.add(D.prediction)
	}

	altToPred := make([]SemanticContext, nalts+1)
	for _, c := range D.configs.configs {
		if c.alt < 1 || c.alt > nalts || !altsToCollect.contains(c.alt) {
			continue
		}
		if altToPred[c.alt] == nil {
			altToPred[c.alt] = c.semanticContext
		} else {
			altToPred[c.alt] = NewOrSemanticContext(altToPred[c.alt], c.semanticContext)
		}
	}

	containsPredicate := false
	for alt := 1; alt <= nalts; alt++ {
		if altToPred[alt] == nil {
			altToPred[alt] = SemanticContextNone
		} else if altToPred[alt] != SemanticContextNone {
			containsPredicate = true
		}
	}
	if !containsPredicate {
		return
	}

	for alt := 1; alt <= nalts; alt++ {
		if altsToCollect.contains(alt) {
			D.predicates = append(D.predicates, NewPredPrediction(altToPred[alt], alt))
		}
	}
}

// computeStartState builds the initial config set for decision state p's
// alternatives: one config per transition out of p, seeded with the
// PredictionContext derived from ctx (EMPTY for SLL, the real call-stack
// summary for full context), then closed over epsilon transitions.
func (p *ParserATNSimulator) computeStartState(a ATNState, ctx RuleContext, fullCtx bool) *ATNConfigSet {
	var initialContext PredictionContext
	if fullCtx {
		initialContext = predictionContextFromRuleContext(p.atn, ctx)
	} else {
		initialContext = BasePredictionContextEMPTY
	}
	configs := NewATNConfigSet(fullCtx)

	for i, t := range a.GetTransitions() {
		target := t.getTarget()
		c := NewATNConfig(target, i+1, initialContext, nil)
		closureBusy := NewJStore[*ATNConfig]()
		p.closure(c, configs, closureBusy, true, fullCtx, false)
	}
	return configs
}

// computeReachSet moves every config in closureConfigs across symbol t
// (matching non-epsilon transitions) and closes each surviving config
// again, producing the config set for the state reached after consuming
// t. mergeCache is fresh per call: reach sets are built and discarded
// every symbol, so caching across calls would only grow memory.
func (p *ParserATNSimulator) computeReachSet(closureConfigs *ATNConfigSet, t int, fullCtx bool) *ATNConfigSet {
	intermediate := NewATNConfigSet(fullCtx)
	mc := newMergeCache()
	for _, c := range closureConfigs.configs {
		if _, ok := c.state.(*RuleStopState); ok {
			continue
		}
		for _, trans := range c.state.GetTransitions() {
			if target := getReachableTarget(trans, t, p.atn.maxTokenType); target != nil {
				intermediate.Add(NewATNConfigFrom(c, target), mc)
			}
		}
	}

	if intermediate.IsEmpty() {
		return intermediate
	}

	reach := NewATNConfigSet(fullCtx)
	closureBusy := NewJStore[*ATNConfig]()
	treatEOFAsEpsilon := t == TokenEOF
	for _, c := range intermediate.configs {
		p.closure(c, reach, closureBusy, false, fullCtx, treatEOFAsEpsilon)
	}
	return reach
}

func getReachableTarget(trans Transition, ttype, maxTokenType int) ATNState {
	if trans.getIsEpsilon() {
		return nil
	}
	if trans.Matches(ttype, 0, maxTokenType) {
		return trans.getTarget()
	}
	return nil
}

// closure computes the epsilon-closure of config into configs: it follows
// every epsilon transition reachable from config.state (RULE pushes a
// context frame, PREDICATE/PRECEDENCE prune the config or let it through,
// ACTION and plain EPSILON just continue), stopping at RuleStopState to
// either pop the context (continuing in the calling rule) or, if the
// context is exhausted, deposit the config as-is.
func (p *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig], collectPredicates, fullCtx, treatEOFAsEpsilon bool) {
	if _, ok := closureBusy.Get(config); ok {
		return
	}
	closureBusy.Put(config)

	if _, ok := config.state.(*RuleStopState); ok {
		p.closureRuleStop(config, configs, closureBusy, collectPredicates, fullCtx, treatEOFAsEpsilon)
		return
	}

	if !config.state.GetEpsilonOnlyTransitions() {
		configs.Add(config, nil)
	}

	for _, t := range config.state.GetTransitions() {
		if t.getSerializationType() == TransitionACTION && !t.getIsEpsilon() {
			continue
		}
		c := p.getEpsilonTarget(config, t, collectPredicates, len(config.state.GetTransitions()) == 1, fullCtx, treatEOFAsEpsilon)
		if c != nil {
			p.closure(c, configs, closureBusy, collectPredicates, fullCtx, treatEOFAsEpsilon)
		}
	}
}

func (p *ParserATNSimulator) closureRuleStop(config *ATNConfig, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig], collectPredicates, fullCtx, treatEOFAsEpsilon bool) {
	ctx := config.context
	if ctx == nil || ctx.isEmpty() {
		if ctx == nil || fullCtx {
			configs.Add(config, nil)
			return
		}
		// SLL: an empty context at a rule stop means "caller unknown"; keep
		// the config, with a nil context, rather than dropping it.
		configs.Add(NewATNConfigFromWithContext(config, config.state, nil), nil)
		return
	}

	for i := 0; i < ctx.length(); i++ {
		returnState := ctx.getReturnState(i)
		if returnState == BaseParserRuleContextEmptyReturnState {
			if fullCtx {
				configs.Add(NewATNConfigFromWithContext(config, config.state, BasePredictionContextEMPTY), nil)
			}
			continue
		}
		newContext := ctx.GetParent(i)
		target := p.atn.states[returnState]
		c := NewATNConfigFromWithContext(config, target, newContext)
		p.closure(c, configs, closureBusy, collectPredicates, fullCtx, treatEOFAsEpsilon)
	}
}

// getEpsilonTarget follows one epsilon-kind transition out of config,
// returning the resulting ATNConfig or nil when the transition prunes
// this path (a false semantic/precedence predicate).
func (p *ParserATNSimulator) getEpsilonTarget(config *ATNConfig, t Transition, collectPredicates, inContext, fullCtx, treatEOFAsEpsilon bool) *ATNConfig {
	switch tr := t.(type) {
	case *RuleTransition:
		// Every rule call pushes a fresh context frame; routing it through
		// the shared cache means two configs that call the same rule from
		// the same return state end up pointing at one canonical
		// PredictionContext instead of two structurally-equal copies.
		newContext := p.getCachedContext(NewSingletonPredictionContext(config.context, tr.followState.GetStateNumber()))
		return NewATNConfigFromWithContext(config, tr.target, newContext)
	case *PredicateTransition:
		return p.predTransition(config, tr, collectPredicates, inContext, fullCtx)
	case *PrecedencePredicateTransition:
		return p.precedenceTransition(config, tr, collectPredicates, inContext, fullCtx)
	case *ActionTransition:
		return NewATNConfigFrom(config, tr.target)
	case *EpsilonTransition:
		return NewATNConfigFrom(config, tr.target)
	default:
		if t.getIsEpsilon() {
			return NewATNConfigFrom(config, t.getTarget())
		}
		if treatEOFAsEpsilon && t.Matches(TokenEOF, 0, p.atn.maxTokenType) {
			return NewATNConfigFrom(config, t.getTarget())
		}
		return nil
	}
}

// predTransition implements the staged predicate handling: a predicate
// that either doesn't depend on context or is reached with the real
// context already in hand (inContext) is safe to act on now, provided
// collectPredicates is set. In full context the call stack is real, so
// acting on it means evaluating immediately; in SLL it means AND-ing it
// into the config's semantic context instead of evaluating it, so the
// eventual answer is computed fresh against whatever outer context
// resolveAccept is called with, rather than baked once into a DFAState
// shared across every future parse that reaches this decision. Any other
// predicate is skipped: the config passes through without it.
func (p *ParserATNSimulator) predTransition(config *ATNConfig, tr *PredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if collectPredicates && (!tr.isCtxDependent || inContext) {
		if fullCtx {
			outer, _ := p.currentOuterContext()
			if tr.getPredicate().evaluate(p.parser, outer) {
				return NewATNConfigFrom(config, tr.target)
			}
			return nil
		}
		newSemCtx := NewAndSemanticContext(config.semanticContext, tr.getPredicate())
		return NewATNConfigFull(config, tr.target, config.context, newSemCtx)
	}
	return NewATNConfigFrom(config, tr.target)
}

func (p *ParserATNSimulator) precedenceTransition(config *ATNConfig, tr *PrecedencePredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if collectPredicates {
		if fullCtx {
			outer, _ := p.currentOuterContext()
			if tr.getPredicate().evaluate(p.parser, outer) {
				return NewATNConfigFrom(config, tr.target)
			}
			return nil
		}
		newSemCtx := NewAndSemanticContext(config.semanticContext, tr.getPredicate())
		return NewATNConfigFull(config, tr.target, config.context, newSemCtx)
	}
	return NewATNConfigFrom(config, tr.target)
}

func (p *ParserATNSimulator) currentOuterContext() (RuleContext, bool) {
	ctx := p.parser.GetParserRuleContext()
	if ctx == nil {
		return nil, false
	}
	return ctx, true
}
