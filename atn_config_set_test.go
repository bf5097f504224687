package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestATNConfigSetAddDedupsExactDuplicate(t *testing.T) {
	set := NewATNConfigSet(false)
	state := NewBasicState()
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 1)

	added1 := set.Add(NewATNConfig(state, 1, ctx, SemanticContextNone), nil)
	added2 := set.Add(NewATNConfig(state, 1, ctx, SemanticContextNone), nil)

	assert.True(t, added1)
	assert.False(t, added2)
	assert.Equal(t, 1, set.Length())
}

func TestATNConfigSetAddMergesContextsOnCollision(t *testing.T) {
	set := NewATNConfigSet(false)
	state := NewBasicState()
	ctxA := NewSingletonPredictionContext(BasePredictionContextEMPTY, 5)
	ctxB := NewSingletonPredictionContext(BasePredictionContextEMPTY, 9)

	set.Add(NewATNConfig(state, 1, ctxA, SemanticContextNone), nil)
	set.Add(NewATNConfig(state, 1, ctxB, SemanticContextNone), nil)

	require.Equal(t, 1, set.Length())
	merged := set.GetItems()[0].GetContext()
	arr, ok := merged.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{5, 9}, arr.returnStates)
}

func TestATNConfigSetAddKeepsDistinctAlternativesSeparate(t *testing.T) {
	set := NewATNConfigSet(false)
	state := NewBasicState()
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 1)

	set.Add(NewATNConfig(state, 1, ctx, SemanticContextNone), nil)
	set.Add(NewATNConfig(state, 2, ctx, SemanticContextNone), nil)

	assert.Equal(t, 2, set.Length())
	assert.Equal(t, 2, set.GetAlts().length())
}

func TestATNConfigSetReadonlyRejectsAdd(t *testing.T) {
	set := NewATNConfigSet(false)
	set.SetReadonly(true)
	state := NewBasicState()
	assert.Panics(t, func() {
		set.Add(NewATNConfig(state, 1, nil, SemanticContextNone), nil)
	})
}

func TestATNConfigSetEqualsComparesMembership(t *testing.T) {
	stateA := NewBasicState()
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 1)

	a := NewATNConfigSet(false)
	a.Add(NewATNConfig(stateA, 1, ctx, SemanticContextNone), nil)

	b := NewATNConfigSet(false)
	b.Add(NewATNConfig(stateA, 1, ctx, SemanticContextNone), nil)

	assert.True(t, a.Equals(b))

	b.Add(NewATNConfig(stateA, 2, ctx, SemanticContextNone), nil)
	assert.False(t, a.Equals(b))
}
