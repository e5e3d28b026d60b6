package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinOf_TracksCurrentInnerAndSwitches(t *testing.T) {
	a := NewInput(1)
	outer := NewInput[Signal[int]](a)
	joined := JoinOf[int](outer)

	var captured []int
	out := NewOutput[int](joined, func(v int) { captured = append(captured, v) })
	defer out.Close()

	// out's subscribe lazily subscribes joined to outer, whose own primer
	// (outer already holds a) cascades through onOuter into a's primer
	// too, delivering a's Stored(1) synchronously.
	assert.Equal(t, []int{1}, captured)

	a.Set(2)
	assert.Equal(t, []int{1, 2}, captured)

	b := NewInput(100)
	outer.Set(b) // switches the tracked inner: primes with b's current value too
	assert.Equal(t, []int{1, 2, 100}, captured)

	b.Set(200)
	assert.Equal(t, []int{1, 2, 100, 200}, captured)

	a.Set(3) // a is no longer the tracked inner: must not forward
	assert.Equal(t, []int{1, 2, 100, 200}, captured)
}

func TestJoinOf_LatestValueMirrorsCurrentInner(t *testing.T) {
	a := NewInput(5)
	outer := NewInput[Signal[int]](a)
	joined := JoinOf[int](outer)

	// Joined only tracks an inner once outer is subscribed (lazily, like
	// every operator); a throwaway observer drives it.
	key := joined.AddObserver(func(Transaction[int]) {})
	defer joined.RemoveObserver(key)

	v, ok := joined.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	b := NewInput(9)
	outer.Set(b)

	v, ok = joined.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}
