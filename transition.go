// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Transition kind tags; values match the serialized-ATN edge table's
// type field.
const (
	TransitionEPSILON    = 1
	TransitionRANGE      = 2
	TransitionRULE       = 3
	TransitionPREDICATE  = 4
	TransitionATOM       = 5
	TransitionACTION     = 6
	TransitionSET        = 7
	TransitionNOTSET     = 8
	TransitionWILDCARD   = 9
	TransitionPRECEDENCE = 10
)

// TransitionEpsilonKinds identifies the subset of transition kinds that do
// not consume an input symbol: EPSILON, PREDICATE, PRECEDENCE, RULE and
// ACTION.
var TransitionEpsilonKinds = map[int]bool{
	TransitionEPSILON:    true,
	TransitionRULE:       true,
	TransitionPREDICATE:  true,
	TransitionPRECEDENCE: true,
	TransitionACTION:     true,
}

// Transition is one directed edge of the ATN graph.
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	getIsEpsilon() bool
	getLabel() *IntervalSet
	getSerializationType() int
	Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool
}

type BaseTransition struct {
	target           ATNState
	isEpsilon        bool
	label            int
	intervalSet      *IntervalSet
	serializationType int
}

func (t *BaseTransition) getTarget() ATNState   { return t.target }
func (t *BaseTransition) setTarget(s ATNState)  { t.target = s }
func (t *BaseTransition) getIsEpsilon() bool    { return t.isEpsilon }
func (t *BaseTransition) getLabel() *IntervalSet { return t.intervalSet }
func (t *BaseTransition) getSerializationType() int { return t.serializationType }
func (t *BaseTransition) Matches(int, int, int) bool { return false }

// AtomTransition matches a single symbol exactly.
type AtomTransition struct{ BaseTransition }

func NewAtomTransition(target ATNState, label int) *AtomTransition {
	return &AtomTransition{BaseTransition{target: target, label: label, serializationType: TransitionATOM}}
}

func (t *AtomTransition) Matches(symbol, _, _ int) bool { return symbol == t.label }

// RangeTransition matches any symbol in [lo, hi].
type RangeTransition struct {
	BaseTransition
	start, stop int
}

func NewRangeTransition(target ATNState, start, stop int) *RangeTransition {
	return &RangeTransition{BaseTransition{target: target, serializationType: TransitionRANGE}, start, stop}
}

func (t *RangeTransition) Matches(symbol, _, _ int) bool { return symbol >= t.start && symbol <= t.stop }

// SetTransition matches any symbol in an [IntervalSet]. A nil set
// defaults to {[TokenInvalidType]}, the semantically correct empty-set
// stand-in.
type SetTransition struct {
	BaseTransition
	set *IntervalSet
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSet()
		set.AddOne(TokenInvalidType)
	}
	return &SetTransition{BaseTransition{target: target, serializationType: TransitionSET}, set}
}

func (t *SetTransition) Matches(symbol, _, _ int) bool { return t.set.Contains(symbol) }
func (t *SetTransition) getLabel() *IntervalSet        { return t.set }

// NotSetTransition matches any vocabulary symbol NOT in set.
type NotSetTransition struct{ SetTransition }

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	s := NewSetTransition(target, set)
	s.serializationType = TransitionNOTSET
	return &NotSetTransition{*s}
}

func (t *NotSetTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab && !t.set.Contains(symbol)
}

// WildcardTransition matches any vocabulary symbol.
type WildcardTransition struct{ BaseTransition }

func NewWildcardTransition(target ATNState) *WildcardTransition {
	return &WildcardTransition{BaseTransition{target: target, serializationType: TransitionWILDCARD}}
}

func (t *WildcardTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab
}

// EpsilonTransition is a plain non-consuming edge.
type EpsilonTransition struct {
	BaseTransition
	outermostPrecedenceReturn int
}

func NewEpsilonTransition(target ATNState) *EpsilonTransition {
	return &EpsilonTransition{BaseTransition: BaseTransition{target: target, isEpsilon: true, serializationType: TransitionEPSILON}, outermostPrecedenceReturn: -1}
}

// RuleTransition pushes the calling context onto the [PredictionContext]
// stack and jumps into the called rule.
type RuleTransition struct {
	BaseTransition
	followState ATNState
	ruleIndex   int
	precedence  int
}

func NewRuleTransition(ruleStart *RuleStartState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	return &RuleTransition{
		BaseTransition: BaseTransition{target: ruleStart, isEpsilon: true, serializationType: TransitionRULE},
		ruleIndex:      ruleIndex,
		precedence:     precedence,
		followState:    followState,
	}
}

// PredicateTransition guards an alternative with a semantic predicate.
type PredicateTransition struct {
	BaseTransition
	ruleIndex       int
	predIndex       int
	isCtxDependent  bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPREDICATE},
		ruleIndex:      ruleIndex,
		predIndex:      predIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (p *PredicateTransition) getPredicate() *PredicateSemanticContext {
	return NewPredicateSemanticContext(p.ruleIndex, p.predIndex, p.isCtxDependent)
}

// PrecedencePredicateTransition implements left-recursion elimination:
// it is only satisfied when the transition's precedence is >= the active
// precedence.
type PrecedencePredicateTransition struct {
	BaseTransition
	precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPRECEDENCE},
		precedence:     precedence,
	}
}

func (p *PrecedencePredicateTransition) getPredicate() *PrecedencePredicate {
	return NewPrecedencePredicate(p.precedence)
}

// ActionTransition fires a lexer/parser embedded action.
type ActionTransition struct {
	BaseTransition
	ruleIndex      int
	actionIndex    int
	isCtxDependent bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	return &ActionTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true, serializationType: TransitionACTION},
		ruleIndex:      ruleIndex,
		actionIndex:    actionIndex,
		isCtxDependent: isCtxDependent,
	}
}
