// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "golang.org/x/exp/slices"

// BaseParserRuleContextEmptyReturnState is the sentinel marking the root
// of a [PredictionContext] DAG.
const BaseParserRuleContextEmptyReturnState = 0x7FFFFFFF

// PredictionContext is a hash-consed, shareable summary of a parser call
// stack. It has three concrete types: [EmptyPredictionContext] (the
// shared root), [SingletonPredictionContext] and [ArrayPredictionContext].
type PredictionContext interface {
	Hash() int
	Equals(other Collectable[PredictionContext]) bool

	GetParent(i int) PredictionContext
	getReturnState(i int) int
	length() int
	isEmpty() bool
	hasEmptyPath() bool

	String() string
}

// BasePredictionContextEMPTY is the shared singleton representing "no
// calling context" — the root every closure eventually bottoms out at.
var BasePredictionContextEMPTY PredictionContext = &EmptyPredictionContext{}

// EmptyPredictionContext is the unique empty context; a context "is
// empty" iff its only return state is the sentinel.
type EmptyPredictionContext struct{}

func (e *EmptyPredictionContext) GetParent(int) PredictionContext { return nil }
func (e *EmptyPredictionContext) getReturnState(int) int          { return BaseParserRuleContextEmptyReturnState }
func (e *EmptyPredictionContext) length() int                     { return 1 }
func (e *EmptyPredictionContext) isEmpty() bool                   { return true }
func (e *EmptyPredictionContext) hasEmptyPath() bool              { return true }
func (e *EmptyPredictionContext) Hash() int                       { return murmurFinish(murmurInit(1), 0) }
func (e *EmptyPredictionContext) Equals(other Collectable[PredictionContext]) bool {
	_, ok := other.(*EmptyPredictionContext)
	return ok
}
func (e *EmptyPredictionContext) String() string { return "$" }

// SingletonPredictionContext is a single (parent, returnState) frame.
type SingletonPredictionContext struct {
	parent      PredictionContext
	returnState int
	cachedHash  int
}

// NewSingletonPredictionContext builds a singleton from (parent,
// returnState). It does not collapse to [BasePredictionContextEMPTY]: a
// nil parent with the empty sentinel still yields a singleton, whose
// isEmpty reports true.
func NewSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	s := &SingletonPredictionContext{parent: parent, returnState: returnState}
	s.cachedHash = s.computeHash()
	return s
}

func (s *SingletonPredictionContext) computeHash() int {
	h := murmurInit(1)
	if s.parent != nil {
		h = murmurUpdate(h, s.parent.Hash())
	} else {
		h = murmurUpdate(h, 0)
	}
	h = murmurUpdate(h, s.returnState)
	return murmurFinish(h, 2)
}

func (s *SingletonPredictionContext) GetParent(int) PredictionContext { return s.parent }
func (s *SingletonPredictionContext) getReturnState(int) int          { return s.returnState }
func (s *SingletonPredictionContext) length() int                     { return 1 }
func (s *SingletonPredictionContext) isEmpty() bool {
	return s.parent == nil && s.returnState == BaseParserRuleContextEmptyReturnState
}
func (s *SingletonPredictionContext) hasEmptyPath() bool {
	return s.returnState == BaseParserRuleContextEmptyReturnState
}
func (s *SingletonPredictionContext) Hash() int { return s.cachedHash }

func (s *SingletonPredictionContext) Equals(other Collectable[PredictionContext]) bool {
	o, ok := other.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	if s.cachedHash != o.cachedHash || s.returnState != o.returnState {
		return false
	}
	if s.parent == nil {
		return o.parent == nil
	}
	return s.parent.Equals(o.parent)
}

func (s *SingletonPredictionContext) String() string {
	up := ""
	if s.parent != nil {
		up = s.parent.String()
	}
	if s.returnState == BaseParserRuleContextEmptyReturnState {
		if up == "" {
			return "$"
		}
		return "$ " + up
	}
	return itoa(s.returnState) + " " + up
}

// ArrayPredictionContext holds multiple (parent, returnState) pairs, kept
// as parallel arrays sorted by return state; only produced by merges,
// never constructed directly by closure.
type ArrayPredictionContext struct {
	parents      []PredictionContext
	returnStates []int
	cachedHash   int
}

func NewArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	a := &ArrayPredictionContext{parents: parents, returnStates: returnStates}
	h := murmurInit(1)
	for _, p := range parents {
		if p != nil {
			h = murmurUpdate(h, p.Hash())
		} else {
			h = murmurUpdate(h, 0)
		}
	}
	for _, r := range returnStates {
		h = murmurUpdate(h, r)
	}
	a.cachedHash = murmurFinish(h, len(parents)+len(returnStates))
	return a
}

func (a *ArrayPredictionContext) GetParent(i int) PredictionContext { return a.parents[i] }
func (a *ArrayPredictionContext) getReturnState(i int) int          { return a.returnStates[i] }
func (a *ArrayPredictionContext) length() int                       { return len(a.returnStates) }
func (a *ArrayPredictionContext) isEmpty() bool {
	return len(a.returnStates) == 1 && a.returnStates[0] == BaseParserRuleContextEmptyReturnState
}
func (a *ArrayPredictionContext) hasEmptyPath() bool {
	return a.returnStates[len(a.returnStates)-1] == BaseParserRuleContextEmptyReturnState
}
func (a *ArrayPredictionContext) Hash() int { return a.cachedHash }

func (a *ArrayPredictionContext) Equals(other Collectable[PredictionContext]) bool {
	o, ok := other.(*ArrayPredictionContext)
	if !ok || a.cachedHash != o.cachedHash || len(a.returnStates) != len(o.returnStates) {
		return false
	}
	for i := range a.returnStates {
		if a.returnStates[i] != o.returnStates[i] {
			return false
		}
		pa, pb := a.parents[i], o.parents[i]
		if (pa == nil) != (pb == nil) {
			return false
		}
		if pa != nil && !pa.Equals(pb) {
			return false
		}
	}
	return true
}

func (a *ArrayPredictionContext) String() string {
	s := "["
	for i := range a.returnStates {
		if i > 0 {
			s += ", "
		}
		if a.returnStates[i] == BaseParserRuleContextEmptyReturnState {
			s += "$"
			continue
		}
		s += itoa(a.returnStates[i])
		if a.parents[i] != nil {
			s += " " + a.parents[i].String()
		}
	}
	return s + "]"
}

// PredictionContextCache hash-conses singleton contexts so
// structurally-equal stacks built during closure stay pointer-shared:
// structurally-equal contexts must end up value-equal too.
type PredictionContextCache struct {
	cache map[int][]PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[int][]PredictionContext)}
}

// getAsCached returns the canonical, possibly-shared instance equal to
// ctx, adding ctx to the cache if this is the first time it is seen.
func (c *PredictionContextCache) getAsCached(ctx PredictionContext) PredictionContext {
	if ctx == BasePredictionContextEMPTY {
		return ctx
	}
	h := ctx.Hash()
	for _, cand := range c.cache[h] {
		if cand.Equals(ctx) {
			return cand
		}
	}
	c.cache[h] = append(c.cache[h], ctx)
	return ctx
}

// mergeCache memoizes merge(a, b, rootIsWildcard) results within a single
// top-level merge call so shared sub-contexts are merged once, not once
// per path that reaches them.
type mergeCache struct {
	m map[[2]PredictionContext]PredictionContext
}

func newMergeCache() *mergeCache { return &mergeCache{m: make(map[[2]PredictionContext]PredictionContext)} }

func (c *mergeCache) get(a, b PredictionContext) (PredictionContext, bool) {
	v, ok := c.m[[2]PredictionContext{a, b}]
	return v, ok
}

func (c *mergeCache) put(a, b, v PredictionContext) {
	c.m[[2]PredictionContext{a, b}] = v
}

// merge implements the PredictionContext merge laws: identical contexts
// short-circuit; one side empty under a wildcard root collapses to
// EMPTY; otherwise a pairwise merge over sorted parallel (parent,
// returnState) arrays, recursing on shared return states and
// interleaving on distinct ones.
func merge(a, b PredictionContext, rootIsWildcard bool, mc *mergeCache) PredictionContext {
	if a == b {
		return a
	}
	as, aIsSingle := a.(*SingletonPredictionContext)
	bs, bIsSingle := b.(*SingletonPredictionContext)
	if aIsSingle && bIsSingle {
		return mergeSingletons(as, bs, rootIsWildcard, mc)
	}
	if rootIsWildcard {
		if _, ok := a.(*EmptyPredictionContext); ok {
			return a
		}
		if _, ok := b.(*EmptyPredictionContext); ok {
			return b
		}
	}
	return mergeArrays(toArray(a), toArray(b), rootIsWildcard, mc)
}

func toArray(p PredictionContext) *ArrayPredictionContext {
	if ap, ok := p.(*ArrayPredictionContext); ok {
		return ap
	}
	if sp, ok := p.(*SingletonPredictionContext); ok {
		return NewArrayPredictionContext([]PredictionContext{sp.parent}, []int{sp.returnState})
	}
	// EmptyPredictionContext
	return NewArrayPredictionContext([]PredictionContext{nil}, []int{BaseParserRuleContextEmptyReturnState})
}

func mergeSingletons(a, b *SingletonPredictionContext, rootIsWildcard bool, mc *mergeCache) PredictionContext {
	if mc != nil {
		if v, ok := mc.get(a, b); ok {
			return v
		}
		if v, ok := mc.get(b, a); ok {
			return v
		}
	}

	var result PredictionContext
	switch {
	case a.returnState == b.returnState:
		parent := mergeRoot(a.parent, b.parent, rootIsWildcard, mc)
		if parent == a.parent {
			result = a
		} else if parent == b.parent {
			result = b
		} else {
			result = NewSingletonPredictionContext(parent, a.returnState)
		}
	case rootIsWildcard && (a.parent == nil || b.parent == nil):
		result = BasePredictionContextEMPTY
	default:
		if a.returnState > b.returnState {
			a, b = b, a
		}
		result = NewArrayPredictionContext([]PredictionContext{a.parent, b.parent}, []int{a.returnState, b.returnState})
	}

	if mc != nil {
		mc.put(a, b, result)
	}
	return result
}

func mergeRoot(a, b PredictionContext, rootIsWildcard bool, mc *mergeCache) PredictionContext {
	if rootIsWildcard {
		if a == nil {
			return nil
		}
		if b == nil {
			return nil
		}
	}
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return mergeNilParent(b, rootIsWildcard)
	}
	if b == nil {
		return mergeNilParent(a, rootIsWildcard)
	}
	return merge(a, b, rootIsWildcard, mc)
}

func mergeNilParent(other PredictionContext, rootIsWildcard bool) PredictionContext {
	if rootIsWildcard {
		return nil
	}
	return other
}

// mergeArrays interleaves two sorted (parent, returnState) arrays,
// recursively merging parents for shared return states, and reduces a
// single-entry result back to a singleton.
func mergeArrays(a, b *ArrayPredictionContext, rootIsWildcard bool, mc *mergeCache) PredictionContext {
	var mergedParents []PredictionContext
	var mergedReturnStates []int

	i, j := 0, 0
	for i < len(a.returnStates) && j < len(b.returnStates) {
		pa, ra := a.parents[i], a.returnStates[i]
		pb, rb := b.parents[j], b.returnStates[j]
		switch {
		case ra == rb:
			mergedParents = append(mergedParents, mergeRoot(pa, pb, rootIsWildcard, mc))
			mergedReturnStates = append(mergedReturnStates, ra)
			i++
			j++
		case ra < rb:
			mergedParents = append(mergedParents, pa)
			mergedReturnStates = append(mergedReturnStates, ra)
			i++
		default:
			mergedParents = append(mergedParents, pb)
			mergedReturnStates = append(mergedReturnStates, rb)
			j++
		}
	}
	for ; i < len(a.returnStates); i++ {
		mergedParents = append(mergedParents, a.parents[i])
		mergedReturnStates = append(mergedReturnStates, a.returnStates[i])
	}
	for ; j < len(b.returnStates); j++ {
		mergedParents = append(mergedParents, b.parents[j])
		mergedReturnStates = append(mergedReturnStates, b.returnStates[j])
	}

	if len(mergedReturnStates) == 1 {
		return NewSingletonPredictionContext(mergedParents[0], mergedReturnStates[0])
	}
	// Keep canonical sort order in case any caller relies on it for
	// deterministic String()/hash rendering beyond what the merge above
	// already guarantees by construction.
	idx := make([]int, len(mergedReturnStates))
	for k := range idx {
		idx[k] = k
	}
	slices.SortFunc(idx, func(x, y int) bool { return mergedReturnStates[x] < mergedReturnStates[y] })
	sortedParents := make([]PredictionContext, len(idx))
	sortedStates := make([]int, len(idx))
	for k, v := range idx {
		sortedParents[k] = mergedParents[v]
		sortedStates[k] = mergedReturnStates[v]
	}
	return NewArrayPredictionContext(sortedParents, sortedStates)
}

// predictionContextFromRuleContext walks the live parse-time rule
// context chain upward to build the PredictionContext the closure should
// start from: each frame's invoking state produces a singleton, the root
// produces EMPTY.
func predictionContextFromRuleContext(a *ATN, outerContext RuleContext) PredictionContext {
	if outerContext == nil {
		outerContext = BaseRuleContextEMPTY
	}
	if outerContext.GetParent() == nil || outerContext == BaseRuleContextEMPTY {
		return BasePredictionContextEMPTY
	}
	parent := predictionContextFromRuleContext(a, outerContext.GetParent().(RuleContext))
	state := a.states[outerContext.GetInvokingState()]
	transition := state.GetTransitions()[0].(*RuleTransition)
	return NewSingletonPredictionContext(parent, transition.followState.GetStateNumber())
}

// BaseRuleContextEMPTY is the sentinel root RuleContext a start rule's
// invocation is parented to, mirroring ParserRuleContext.EMPTY in the
// real runtime.
var BaseRuleContextEMPTY RuleContext = NewBaseParserRuleContext(nil, ATNStateInvalidStateNumber)
