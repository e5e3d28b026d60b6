package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureTransactions[V any](s Signal[V]) (*[]Transaction[V], func()) {
	var captured []Transaction[V]
	key := s.AddObserver(func(t Transaction[V]) {
		captured = append(captured, t)
	})
	return &captured, func() { s.RemoveObserver(key) }
}

func TestInput_GetSet(t *testing.T) {
	in := NewInput(1)
	assert.Equal(t, 1, in.Get())

	in.Set(2)
	assert.Equal(t, 2, in.Get())
}

func TestInput_SetPushesBeginThenEnd(t *testing.T) {
	in := NewInput(0)
	captured, unsub := captureTransactions[int](in)
	defer unsub()
	*captured = nil // drop the subscribe-time primer for in's initial 0

	in.Set(5)

	require.Len(t, *captured, 2)
	assert.True(t, (*captured)[0].IsBegin())
	v, ok := (*captured)[1].End()
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestInput_Modify(t *testing.T) {
	in := NewInput(10)
	in.Modify(func(v int) int { return v + 1 })
	assert.Equal(t, 11, in.Get())
}

func TestInput_ReentrantSetPanics(t *testing.T) {
	in := NewInput(0)
	out := NewOutput[int](in, func(v int) {
		if v == 1 {
			in.Set(2) // reentrant: must panic
		}
	})
	defer out.Close()

	assert.Panics(t, func() {
		in.Set(1)
	})
}

func TestInput_AddObserverPrimesWithCurrentValue(t *testing.T) {
	in := NewInput(7)
	captured, unsub := captureTransactions[int](in)
	defer unsub()

	require.Len(t, *captured, 2, "a fresh subscriber to a Stored signal is primed synchronously (I2)")
	assert.True(t, (*captured)[0].IsBegin())
	v, ok := (*captured)[1].End()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestConst_NeverPushesAfterPriming(t *testing.T) {
	c := NewConst(42)
	captured, unsub := captureTransactions[int](c)
	defer unsub()

	require.Len(t, *captured, 2)
	v, ok := (*captured)[1].End()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestNever_NeverPrimesOrPushes(t *testing.T) {
	n := NewNever[int]()
	captured, unsub := captureTransactions[int](n)
	defer unsub()

	assert.Empty(t, *captured)
	assert.False(t, n.LatestValue().Has())
}

func TestComputedSignal_RecomputesOnEachPull(t *testing.T) {
	calls := 0
	c := NewComputedSignal(func() int {
		calls++
		return calls
	})

	first, ok := c.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 1, first)

	second, ok := c.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 2, second)
}

func TestReceiver_CloseDeregisters(t *testing.T) {
	in := NewInput(0)
	var captured []int
	r := NewOutput[int](in, func(v int) {
		captured = append(captured, v)
	})

	in.Set(1)
	r.Close()
	in.Set(2)

	assert.Equal(t, []int{0, 1}, captured, "priming fires End(0), then Set(1); Close happens before Set(2)")

	// Close is idempotent.
	assert.NotPanics(t, r.Close)
}

func TestWillOutput_FiresOnBeginOnly(t *testing.T) {
	in := NewInput(0)
	begins := 0
	w := NewWillOutput[int](in, func() { begins++ })
	defer w.Close()

	assert.Equal(t, 1, begins, "Input priming synthesizes a Begin too")
	in.Set(1)
	assert.Equal(t, 2, begins)
}
