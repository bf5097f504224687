// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sort"
)

// SemanticContext is a composable predicate formula evaluated during
// prediction. Concrete forms: [PredicateSemanticContext],
// [PrecedencePredicate], AND, OR of sub-contexts.
type SemanticContext interface {
	Hash() int
	Equals(other Collectable[SemanticContext]) bool
	evaluate(parser Recognizer, outerContext RuleContext) bool
	evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext
}

// SemanticContextNone is the trivially-true predicate; ATNConfigs without
// a guarding predicate carry this.
var SemanticContextNone SemanticContext = NewPredicateSemanticContext(-1, -1, false)

// PredicateSemanticContext wraps a single grammar-authored semantic
// predicate reached through a PredicateTransition.
type PredicateSemanticContext struct {
	ruleIndex      int
	predIndex      int
	isCtxDependent bool
}

func NewPredicateSemanticContext(ruleIndex, predIndex int, isCtxDependent bool) *PredicateSemanticContext {
	return &PredicateSemanticContext{ruleIndex: ruleIndex, predIndex: predIndex, isCtxDependent: isCtxDependent}
}

func (p *PredicateSemanticContext) evaluate(parser Recognizer, outerContext RuleContext) bool {
	var localctx RuleContext
	if p.isCtxDependent {
		localctx = outerContext
	}
	return parser.SemPred(localctx, p.ruleIndex, p.predIndex)
}

func (p *PredicateSemanticContext) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	return p
}

func (p *PredicateSemanticContext) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, p.ruleIndex)
	h = murmurUpdate(h, p.predIndex)
	h = murmurUpdate(h, boolToInt(p.isCtxDependent))
	return murmurFinish(h, 3)
}

func (p *PredicateSemanticContext) Equals(other Collectable[SemanticContext]) bool {
	o, ok := other.(*PredicateSemanticContext)
	if !ok {
		return false
	}
	return p.ruleIndex == o.ruleIndex && p.predIndex == o.predIndex && p.isCtxDependent == o.isCtxDependent
}

func (p *PredicateSemanticContext) String() string {
	return fmt.Sprintf("{%d:%d}?", p.ruleIndex, p.predIndex)
}

// PrecedencePredicate implements left-recursion elimination at
// prediction time.
type PrecedencePredicate struct {
	precedence int
}

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{precedence: precedence}
}

func (p *PrecedencePredicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	return parser.Precpred(outerContext, p.precedence)
}

func (p *PrecedencePredicate) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	if parser.Precpred(outerContext, p.precedence) {
		return SemanticContextNone
	}
	return nil
}

func (p *PrecedencePredicate) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, p.precedence)
	return murmurFinish(h, 1)
}

func (p *PrecedencePredicate) Equals(other Collectable[SemanticContext]) bool {
	o, ok := other.(*PrecedencePredicate)
	return ok && p.precedence == o.precedence
}

func (p *PrecedencePredicate) String() string { return fmt.Sprintf(">=_p %d", p.precedence) }

func (p *PrecedencePredicate) compareTo(other *PrecedencePredicate) int {
	return p.precedence - other.precedence
}

// AndSemanticContext requires every operand to hold.
type AndSemanticContext struct {
	opnds []SemanticContext
}

// NewAndSemanticContext builds the conjunction of a and b, flattening
// nested ANDs and collapsing the (rare) trivially-true operand the way
// the closure's AND-combine step needs.
func NewAndSemanticContext(a, b SemanticContext) SemanticContext {
	var opnds []SemanticContext
	for _, c := range []SemanticContext{a, b} {
		if and, ok := c.(*AndSemanticContext); ok {
			opnds = append(opnds, and.opnds...)
		} else if c != SemanticContextNone {
			opnds = append(opnds, c)
		}
	}
	if len(opnds) == 0 {
		return SemanticContextNone
	}
	if len(opnds) == 1 {
		return opnds[0]
	}
	reduced := reducePrecedencePredicates(opnds, true)
	if len(reduced) == 1 {
		return reduced[0]
	}
	return &AndSemanticContext{opnds: reduced}
}

func (a *AndSemanticContext) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, o := range a.opnds {
		if !o.evaluate(parser, outerContext) {
			return false
		}
	}
	return true
}

func (a *AndSemanticContext) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	changed := false
	var operands []SemanticContext
	for _, ctx := range a.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		changed = changed || evaluated != ctx
		if evaluated == nil {
			return nil
		}
		if evaluated != SemanticContextNone {
			operands = append(operands, evaluated)
		}
	}
	if !changed {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNone
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = NewAndSemanticContext(result, o)
	}
	return result
}

func (a *AndSemanticContext) Hash() int {
	h := murmurInit(1)
	for _, o := range a.opnds {
		h = murmurUpdate(h, o.Hash())
	}
	return murmurFinish(h, len(a.opnds))
}

func (a *AndSemanticContext) Equals(other Collectable[SemanticContext]) bool {
	o, ok := other.(*AndSemanticContext)
	if !ok || len(o.opnds) != len(a.opnds) {
		return false
	}
	for i, c := range a.opnds {
		if !c.Equals(o.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *AndSemanticContext) String() string { return joinContexts(a.opnds, "&&") }

// OrSemanticContext requires at least one operand to hold.
type OrSemanticContext struct {
	opnds []SemanticContext
}

func NewOrSemanticContext(a, b SemanticContext) SemanticContext {
	var opnds []SemanticContext
	for _, c := range []SemanticContext{a, b} {
		if or, ok := c.(*OrSemanticContext); ok {
			opnds = append(opnds, or.opnds...)
		} else {
			opnds = append(opnds, c)
		}
	}
	reduced := reducePrecedencePredicates(opnds, false)
	for _, c := range reduced {
		if c == SemanticContextNone {
			return SemanticContextNone
		}
	}
	if len(reduced) == 1 {
		return reduced[0]
	}
	return &OrSemanticContext{opnds: reduced}
}

func (o *OrSemanticContext) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, c := range o.opnds {
		if c.evaluate(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OrSemanticContext) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	changed := false
	var operands []SemanticContext
	for _, ctx := range o.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		changed = changed || evaluated != ctx
		if evaluated == SemanticContextNone {
			return SemanticContextNone
		}
		if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !changed {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, c := range operands[1:] {
		result = NewOrSemanticContext(result, c)
	}
	return result
}

func (o *OrSemanticContext) Hash() int {
	h := murmurInit(1)
	for _, c := range o.opnds {
		h = murmurUpdate(h, c.Hash())
	}
	return murmurFinish(h, len(o.opnds))
}

func (o *OrSemanticContext) Equals(other Collectable[SemanticContext]) bool {
	x, ok := other.(*OrSemanticContext)
	if !ok || len(x.opnds) != len(o.opnds) {
		return false
	}
	for i, c := range o.opnds {
		if !c.Equals(x.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *OrSemanticContext) String() string { return joinContexts(o.opnds, "||") }

func joinContexts(opnds []SemanticContext, sep string) string {
	s := ""
	for i, o := range opnds {
		if i > 0 {
			s += sep
		}
		s += fmt.Sprintf("%v", o)
	}
	return s
}

// reducePrecedencePredicates collapses PrecedencePredicate operands down
// to their tightest bound. A precedence predicate holds when its
// precedence is >= the parser's current precedence, so when conjoined
// only the lowest-precedence predicate can dominate; when disjoined, only
// the highest-precedence one can. This keeps prediction-time precedence
// checks, which fire on every closure step of a left-recursive rule,
// cheap.
func reducePrecedencePredicates(opnds []SemanticContext, and bool) []SemanticContext {
	var preds []*PrecedencePredicate
	var others []SemanticContext
	for _, o := range opnds {
		if p, ok := o.(*PrecedencePredicate); ok {
			preds = append(preds, p)
		} else {
			others = append(others, o)
		}
	}
	if len(preds) == 0 {
		return opnds
	}
	sort.Slice(preds, func(i, j int) bool { return preds[i].compareTo(preds[j]) < 0 })
	var winner *PrecedencePredicate
	if and {
		winner = preds[0]
	} else {
		winner = preds[len(preds)-1]
	}
	return append(others, winner)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
