package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSetOrAndEquals(t *testing.T) {
	a := NewBitSet()
	a.add(1)
	a.add(3)
	b := NewBitSet()
	b.add(3)
	b.add(5)

	a.or(b)
	assert.True(t, a.contains(1))
	assert.True(t, a.contains(3))
	assert.True(t, a.contains(5))
	assert.Equal(t, 3, a.length())

	c := NewBitSet()
	c.add(1)
	c.add(3)
	c.add(5)
	assert.True(t, a.equals(c))
}

func TestBitSetValuesAreSortedAscending(t *testing.T) {
	b := NewBitSet()
	for _, v := range []int{5, 1, 3, 2, 4} {
		b.add(v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, b.values())
}

func TestBitSetMinValueOfEmptySetIsNegativeOne(t *testing.T) {
	b := NewBitSet()
	assert.Equal(t, -1, b.minValue())
	b.add(7)
	assert.Equal(t, 7, b.minValue())
}

func TestJStorePutDeduplicatesByEquals(t *testing.T) {
	store := NewJStore[*ATNConfig]()
	state := NewBasicState()
	a := NewATNConfig(state, 1, nil, SemanticContextNone)
	b := NewATNConfig(state, 1, nil, SemanticContextNone)

	canonicalA, existedA := store.Put(a)
	require.False(t, existedA)
	canonicalB, existedB := store.Put(b)
	require.True(t, existedB)
	assert.Same(t, canonicalA, canonicalB)
	assert.Equal(t, 1, store.Len())
}

func TestJStoreGetMissReturnsZeroValue(t *testing.T) {
	store := NewJStore[*ATNConfig]()
	state := NewBasicState()
	cfg := NewATNConfig(state, 1, nil, SemanticContextNone)
	_, ok := store.Get(cfg)
	assert.False(t, ok)
}
