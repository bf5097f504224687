package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalSetAddOneMergesAdjacent(t *testing.T) {
	set := NewIntervalSet()
	set.AddOne(1)
	set.AddOne(2)
	set.AddOne(3)
	require.Len(t, set.GetIntervals(), 1)
	assert.Equal(t, "1..3", set.GetIntervals()[0].String())
}

func TestIntervalSetAddRangeNoOverlapStaysSeparate(t *testing.T) {
	set := NewIntervalSet()
	set.addRange(1, 3)
	set.addRange(10, 12)
	require.Len(t, set.GetIntervals(), 2)
}

func TestIntervalSetContains(t *testing.T) {
	set := NewIntervalSet()
	set.addRange(5, 10)
	assert.True(t, set.Contains(5))
	assert.True(t, set.Contains(10))
	assert.False(t, set.Contains(4))
	assert.False(t, set.Contains(11))
}

func TestIntervalSetRemoveOneSplitsInterval(t *testing.T) {
	set := NewIntervalSet()
	set.addRange(1, 10)
	set.removeOne(5)
	assert.False(t, set.Contains(5))
	assert.True(t, set.Contains(4))
	assert.True(t, set.Contains(6))
	assert.Equal(t, 9, set.length())
}

func TestIntervalSetAndOrSubtract(t *testing.T) {
	a := NewIntervalSet()
	a.addRange(1, 10)
	b := NewIntervalSet()
	b.addRange(5, 15)

	and := a.and(b)
	assert.True(t, and.Equals(func() *IntervalSet { s := NewIntervalSet(); s.addRange(5, 10); return s }()))

	or := a.or(b)
	assert.True(t, or.Equals(func() *IntervalSet { s := NewIntervalSet(); s.addRange(1, 15); return s }()))

	sub := a.subtract(b)
	assert.True(t, sub.Equals(func() *IntervalSet { s := NewIntervalSet(); s.addRange(1, 4); return s }()))
}

func TestIntervalSetComplement(t *testing.T) {
	set := NewIntervalSet()
	set.addRange(3, 5)
	comp := set.complement(1, 10)
	assert.False(t, comp.Contains(4))
	assert.True(t, comp.Contains(1))
	assert.True(t, comp.Contains(10))
}

func TestIntervalSetEqualsIgnoresConstructionOrder(t *testing.T) {
	a := NewIntervalSet()
	a.addRange(1, 3)
	a.addRange(7, 9)

	b := NewIntervalSet()
	b.addRange(7, 9)
	b.addRange(1, 3)

	assert.True(t, a.Equals(b))
}

func TestIntervalSetMutatingReadOnlyPanics(t *testing.T) {
	set := NewIntervalSet()
	set.AddOne(1)
	set.readOnly = true
	assert.Panics(t, func() { set.AddOne(2) })
}
