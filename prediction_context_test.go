package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeIdenticalContextsShortCircuits(t *testing.T) {
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	result := merge(ctx, ctx, false, nil)
	assert.Same(t, ctx, result)
}

func TestMergeSingletonsSameReturnStateMergesParents(t *testing.T) {
	a := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	result := merge(a, b, false, nil)
	single, ok := result.(*SingletonPredictionContext)
	require.True(t, ok)
	assert.Equal(t, 5, single.returnState)
	assert.Same(t, BasePredictionContextEMPTY, single.parent)
}

func TestMergeSingletonsDistinctReturnStatesProducesArray(t *testing.T) {
	a := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 9)
	result := merge(a, b, false, nil)
	arr, ok := result.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{5, 9}, arr.returnStates)
}

func TestMergeRootIsWildcardCollapsesToEmpty(t *testing.T) {
	a := NewSingletonPredictionContext(nil, BaseParserRuleContextEmptyReturnState)
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	result := merge(a, b, true, nil)
	assert.Same(t, BasePredictionContextEMPTY, result)
}

func TestMergeIsCommutative(t *testing.T) {
	a := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 9)
	ab := merge(a, b, false, nil)
	ba := merge(b, a, false, nil)
	assert.True(t, ab.Equals(ba))
}

func TestMergeArraysInterleavesAndDedupsSharedReturnState(t *testing.T) {
	a := NewArrayPredictionContext([]PredictionContext{nil, nil}, []int{1, 3})
	b := NewArrayPredictionContext([]PredictionContext{nil, nil}, []int{2, 3})
	result := mergeArrays(a, b, false, nil)
	arr, ok := result.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, arr.returnStates)
}

func TestPredictionContextCacheReturnsCanonicalInstance(t *testing.T) {
	cache := NewPredictionContextCache()
	a := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	b := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	require.True(t, a.Equals(b))
	require.NotSame(t, a, b)

	canonicalA := cache.getAsCached(a)
	canonicalB := cache.getAsCached(b)
	assert.Same(t, canonicalA, canonicalB)
}

func TestEmptyPredictionContextIsEmpty(t *testing.T) {
	assert.True(t, BasePredictionContextEMPTY.isEmpty())
	assert.True(t, BasePredictionContextEMPTY.hasEmptyPath())
}
