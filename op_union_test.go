package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionOf_ForwardsAllParentsUnchanged(t *testing.T) {
	a := NewInput(0)
	b := NewInput(100)
	merged := UnionOf[int](a, b)

	var captured []int
	out := NewOutput[int](merged, func(v int) { captured = append(captured, v) })
	defer out.Close()

	a.Set(1)
	b.Set(101)

	// Union subscribes to a and b lazily, on out's subscribe; a and b
	// already have values at that point, so each replays its own priming
	// through Union in subscribe order, ahead of the two explicit Sets.
	assert.Equal(t, []int{0, 100, 1, 101}, captured)
}

func TestUnionOf_LatestValueStaysNone(t *testing.T) {
	a := NewInput(0)
	b := NewInput(1)
	merged := UnionOf[int](a, b)

	assert.False(t, merged.LatestValue().Has(), "a Union has no single current value of its own")
}

func TestUnionOf_NoCoalescingOnSimultaneousParents(t *testing.T) {
	shared := NewInput(0)
	left := Map(shared, func(v int) int { return v + 1 })
	right := Map(shared, func(v int) int { return v + 2 })
	merged := UnionOf[int](left, right)

	var captured []int
	out := NewOutput[int](merged, func(v int) { captured = append(captured, v) })
	defer out.Close()

	// out's subscribe lazily subscribes merged to left then right; each
	// already has a value (shared starts at 0), so both replay their own
	// priming through Union before shared is ever assigned.
	assert.Equal(t, []int{1, 2}, captured)

	shared.Set(10) // both parents fire once each, no coalescing
	assert.Equal(t, []int{1, 2, 11, 12}, captured)
}
