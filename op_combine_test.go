package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine2_EmitsOnceAcrossDiamond(t *testing.T) {
	w := NewInput(0)
	x := Map(w, func(n int) int { return n + 2 })
	y := NewFilter(Map(w, func(n int) int { return n - 9 }), func(n int) bool { return n < 5 })
	z := Combine2[int, int, int](x, y, func(a, b int) int { return a + b })

	var captured []Transaction[int]
	key := z.AddObserver(func(t Transaction[int]) { captured = append(captured, t) })
	defer z.RemoveObserver(key)

	// z subscribes to x and y one at a time; x is a bare Mapped (always
	// Computed from w) and y is a Filter that already admitted w's initial
	// 0 (0-9=-9 < 5), so both replays are swallowed and z resolves once
	// from a single pull: x=2, y=-9.
	require.Len(t, captured, 2)
	v0, ok := captured[1].End()
	require.True(t, ok)
	assert.Equal(t, -7, v0)

	captured = nil
	w.Set(12) // x=14, y=3 (admitted): one Begin + one End
	require.Len(t, captured, 2)
	v, ok := captured[1].End()
	require.True(t, ok)
	assert.Equal(t, 17, v)

	captured = nil
	w.Set(20) // x=22, y=11 (rejected -> Cancel): combiner must also Cancel, no End
	require.Len(t, captured, 2)
	assert.True(t, captured[0].IsBegin())
	assert.True(t, captured[1].IsCancel())
}

func TestCombine2_LatestValueComputesFromBothParents(t *testing.T) {
	a := NewInput(3)
	b := NewInput(4)
	sum := Combine2(a, b, func(x, y int) int { return x + y })

	v, ok := sum.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestCombine2_NoneUntilBothParentsHaveValues(t *testing.T) {
	a := NewInput(1)
	b := NewNever[int]()
	sum := Combine2(a, b, func(x, y int) int { return x + y })

	assert.False(t, sum.LatestValue().Has())
}

func TestCombine6_AllSixParentsParticipate(t *testing.T) {
	ins := make([]*Input[int], 6)
	for i := range ins {
		ins[i] = NewInput(i)
	}
	total := Combine6(ins[0], ins[1], ins[2], ins[3], ins[4], ins[5],
		func(a, b, c, d, e, f int) int { return a + b + c + d + e + f })

	v, ok := total.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 0+1+2+3+4+5, v)

	var captured []int
	out := NewOutput[int](total, func(v int) { captured = append(captured, v) })
	defer out.Close()

	// total already has a value (Computed from six Stored Inputs), so
	// subscribing primes synchronously with it before ins[0] ever changes.
	require.Len(t, captured, 1)
	assert.Equal(t, 0+1+2+3+4+5, captured[0])

	ins[0].Set(10)
	require.Len(t, captured, 2)
	assert.Equal(t, 10+1+2+3+4+5, captured[1])
}
