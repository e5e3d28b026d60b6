package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapped_AppliesFunction(t *testing.T) {
	in := NewInput(2)
	doubled := Map(in, func(v int) int { return v * 2 })

	var captured []int
	out := NewOutput[int](doubled, func(v int) { captured = append(captured, v) })
	defer out.Close()

	in.Set(3)
	in.Set(4)

	assert.Equal(t, []int{4, 6, 8}, captured)
}

func TestMapped_ComposesLikeFunctionComposition(t *testing.T) {
	in := NewInput(1)
	chained := Map(Map(in, func(v int) int { return v + 1 }), func(v int) int { return v * 10 })
	direct := Map(in, func(v int) int { return (v + 1) * 10 })

	var a, b []int
	outA := NewOutput[int](chained, func(v int) { a = append(a, v) })
	outB := NewOutput[int](direct, func(v int) { b = append(b, v) })
	defer outA.Close()
	defer outB.Close()

	in.Set(5)
	in.Set(9)

	assert.Equal(t, b, a, "map(f).map(g) behaves as map(g . f)")
}

func TestMapped_LatestValueMirrorsParent(t *testing.T) {
	in := NewInput(3)
	doubled := Map(in, func(v int) int { return v * 2 })

	v, ok := doubled.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestMapped_CancelPassesThrough(t *testing.T) {
	in := NewInput(0)
	evens := NewFilter(in, func(v int) bool { return v%2 == 0 })
	mapped := Map[int, int](evens, func(v int) int { return v * 100 })

	var captured []Transaction[int]
	key := mapped.AddObserver(func(t Transaction[int]) { captured = append(captured, t) })
	defer mapped.RemoveObserver(key)

	in.Set(3) // odd: filtered -> Cancel -> mapped also Cancel

	last := captured[len(captured)-1]
	assert.True(t, last.IsCancel())
}

func TestEvent_NeverPrimes(t *testing.T) {
	in := NewInput(5)
	ev := AsEvent[int](in)

	captured, unsub := captureTransactions[int](ev)
	defer unsub()

	assert.Empty(t, *captured, "Event subscriptions never prime (§8 I7)")
	assert.False(t, ev.LatestValue().Has())

	in.Set(6)
	require.Len(t, *captured, 2)
	v, ok := (*captured)[1].End()
	require.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestWrapped_MirrorsParentLatestValue(t *testing.T) {
	in := NewInput(9)
	w := Wrap[int](in)

	v, ok := w.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 9, v)

	var captured []int
	out := NewOutput[int](w, func(v int) { captured = append(captured, v) })
	defer out.Close()

	in.Set(11)
	assert.Equal(t, []int{9, 11}, captured)
}
