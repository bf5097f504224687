// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// PredictionMode selects how [ParserATNSimulator] resolves a conflict it
// cannot distinguish from real ambiguity without falling back to full
// context: PredictionModeSLL accepts the minimum conflicting alt
// immediately, the others fall back to full-context LL.
type PredictionMode int

const (
	PredictionModeSLL PredictionMode = iota
	PredictionModeLL
	PredictionModeLLExactAmbigDetection
)

// altAndContextKey groups configs by (state, context) so
// getConflictingAlts can find configs that agree on everything except
// the alternative they came from — the textbook definition of an
// ambiguous/conflicting prediction.
type altAndContextKey struct {
	state   int
	context int
}

func keyForAltAndContext(c *ATNConfig) altAndContextKey {
	ctxHash := 0
	if c.context != nil {
		ctxHash = c.context.Hash()
	}
	return altAndContextKey{state: c.state.GetStateNumber(), context: ctxHash}
}

// getConflictingAlts groups configs that share (state, context); any
// group containing more than one alt number is a conflict, and every alt
// appearing in such a group is "conflicting".
func getConflictingAlts(configs *ATNConfigSet) *BitSet {
	altToSet := make(map[altAndContextKey]*BitSet)
	for _, c := range configs.configs {
		k := keyForAltAndContext(c)
		set, ok := altToSet[k]
		if !ok {
			set = NewBitSet()
			altToSet[k] = set
		}
		set.add(c.alt)
	}
	return getAltThatFinishedDecisionEntryRule(altToSet)
}

func getAltThatFinishedDecisionEntryRule(altToSet map[altAndContextKey]*BitSet) *BitSet {
	conflicting := NewBitSet()
	for _, set := range altToSet {
		if set.length() > 1 {
			conflicting.or(set)
		}
	}
	return conflicting
}

// hasConflictingAltSet reports whether any (state,context) group contains
// more than one alt, by building the getConflictingAlts bitset and
// testing it for emptiness.
func hasConflictingAltSet(configs *ATNConfigSet) bool {
	return getConflictingAlts(configs).length() > 0
}

// allSubsetsConflict reports whether the given alt subsets are not all
// equal to one another (the negation of allSubsetsEqual).
func allSubsetsConflict(altsets []*BitSet) bool {
	return !allSubsetsEqual(altsets)
}

func allSubsetsEqual(altsets []*BitSet) bool {
	if len(altsets) == 0 {
		return true
	}
	first := altsets[0]
	for _, s := range altsets[1:] {
		if !s.equals(first) {
			return false
		}
	}
	return true
}

// getUniqueAlt returns the single alt number shared by every config, or
// [ATNInvalidAltNumber] when more than one alt is present.
func getUniqueAlt(configs *ATNConfigSet) int {
	alt := ATNInvalidAltNumber
	for _, c := range configs.configs {
		if alt == ATNInvalidAltNumber {
			alt = c.alt
		} else if c.alt != alt {
			return ATNInvalidAltNumber
		}
	}
	return alt
}

// resolvesToJustOneViableAlt takes the minimum alt of each subset and
// returns it when every non-empty subset has the same minimum; otherwise
// it returns [ATNInvalidAltNumber].
func resolvesToJustOneViableAlt(altsets []*BitSet) int {
	return getSingleViableAlt(altsets)
}

func getSingleViableAlt(altsets []*BitSet) int {
	viable := NewBitSet()
	for _, s := range altsets {
		min := s.minValue()
		if min >= 0 {
			viable.add(min)
		}
	}
	if viable.length() != 1 {
		return ATNInvalidAltNumber
	}
	return viable.minValue()
}

// minAlt returns the smallest alt number present in bs, or
// [ATNInvalidAltNumber] if bs is empty — the tie-break helper
// adaptivePredict's LL-ambiguity path uses directly.
func minAlt(bs *BitSet) int {
	if bs.length() == 0 {
		return ATNInvalidAltNumber
	}
	return bs.minValue()
}
