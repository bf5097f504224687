// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LL1Analyzer walks an ATN without building any DFA, computing the set of
// input symbols reachable from a state. It backs ATN.NextTokens and, in
// turn, error-recovery's expected-token reporting; it is deliberately
// simpler than ParserATNSimulator since it never needs to resolve
// ambiguity, only enumerate what could come next.
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer { return &LL1Analyzer{atn: atn} }

// LL1AnalyzerHitPred is a sentinel symbol meaning "a predicate guards this
// path", returned in place of an ordinary token type when Look walks
// through a predicate transition it cannot resolve ahead of time.
const LL1AnalyzerHitPred = TokenInvalidType

// getDecisionLookahead returns, for each alternative leaving decision s,
// the set of tokens that begin it, computed without running prediction.
func (la *LL1Analyzer) getDecisionLookahead(s ATNState) []*IntervalSet {
	if s == nil {
		return nil
	}
	transitions := s.GetTransitions()
	look := make([]*IntervalSet, len(transitions))
	for alt, t := range transitions {
		look[alt] = NewIntervalSet()
		lookBusy := NewJStore[*ATNConfig]()
		la.look1(t.getTarget(), nil, BasePredictionContextEMPTY, look[alt], lookBusy, NewBitSet(), false, false)
		// An empty result, or one that only contains the "hit a
		// predicate" sentinel, means nothing concrete was discovered.
		if look[alt].length() == 0 || look[alt].Contains(LL1AnalyzerHitPred) {
			look[alt] = nil
		}
	}
	return look
}

// Look computes the tokens reachable from s. If ctx is non-nil, the walk
// may continue past the end of s's rule into whatever rule called it; if
// stopState is reached first, the walk along that path stops there
// instead of continuing to the rule's end.
func (la *LL1Analyzer) Look(s, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	seeThruPreds := true
	var lookContext PredictionContext
	if ctx != nil {
		lookContext = predictionContextFromRuleContext(s.GetATN(), ctx)
	}
	la.look1(s, stopState, lookContext, r, NewJStore[*ATNConfig](), NewBitSet(), seeThruPreds, true)
	return r
}

// look1 is the recursive epsilon-closure walk Look and
// getDecisionLookahead share. lookBusy guards against infinite loops over
// cyclic ATN structure (mutually recursive rules); calledRuleStack guards
// the same for left-recursive rule re-entry.
func (la *LL1Analyzer) look1(s, stopState ATNState, ctx PredictionContext, look *IntervalSet, lookBusy *JStore[*ATNConfig], calledRuleStack *BitSet, seeThruPreds, addEOF bool) {
	c := NewATNConfig(s, 0, ctx, nil)
	if _, seen := lookBusy.Get(c); seen {
		return
	}
	lookBusy.Put(c)

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}

		if ctx != BasePredictionContextEMPTY {
			removed := calledRuleStack.contains(s.GetRuleIndex())
			if removed {
				calledRuleStack.clear(s.GetRuleIndex())
			}
			defer func() {
				if removed {
					calledRuleStack.add(s.GetRuleIndex())
				}
			}()
			for i := 0; i < ctx.length(); i++ {
				returnState := la.atn.states[ctx.getReturnState(i)]
				la.look1(returnState, stopState, ctx.GetParent(i), look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch t.getSerializationType() {
		case TransitionRULE:
			rt := t.(*RuleTransition)
			if calledRuleStack.contains(rt.getTarget().GetRuleIndex()) {
				continue
			}
			newContext := NewSingletonPredictionContext(ctx, rt.followState.GetStateNumber())
			calledRuleStack.add(rt.getTarget().GetRuleIndex())
			la.look1(t.getTarget(), stopState, newContext, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			calledRuleStack.clear(rt.getTarget().GetRuleIndex())
		case TransitionPREDICATE:
			if seeThruPreds {
				la.look1(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(LL1AnalyzerHitPred)
			}
		case TransitionWILDCARD:
			look.addRange(TokenMinUserTokenType, la.atn.maxTokenType)
		default:
			if t.getIsEpsilon() {
				la.look1(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			set := t.getLabel()
			if set != nil {
				if _, ok := t.(*NotSetTransition); ok {
					set = set.complement(TokenMinUserTokenType, la.atn.maxTokenType)
				}
				look.addSet(set)
			}
		}
	}
}
