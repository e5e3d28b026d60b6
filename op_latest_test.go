package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestOf_CachesFilterValue(t *testing.T) {
	in := NewInput(0)
	evens := NewFilter(in, func(v int) bool { return v%2 == 0 })
	latestEven := LatestOf[int](evens)

	// Latest's parent subscription is lazy like every other operator; a
	// throwaway observer drives it the way a real consumer (e.g. a
	// Combiner parent) would.
	key := latestEven.AddObserver(func(Transaction[int]) {})
	defer latestEven.RemoveObserver(key)

	// subscribing replays in's current 0 through Filter (admitted) straight
	// into Latest's cache.
	v, ok := latestEven.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	in.Set(3) // odd: rejected, cached value unchanged
	v, ok = latestEven.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	in.Set(4) // even: admitted
	v, ok = latestEven.LatestValue().Get().Get()
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestLatestOf_NoDoubleWrapIdentityOptimization(t *testing.T) {
	in := NewInput(1) // Input already reports Stored
	wrapped := LatestOf[int](in)

	assert.Same(t, in, wrapped, "§8 I5: Latest(Latest(s)) must be identity when s is already Stored")
}

func TestLatestOf_DoubleWrapOverFilterIsAlsoIdentityOnceStored(t *testing.T) {
	in := NewInput(0)
	evens := NewFilter(in, func(v int) bool { return v%2 == 0 })

	once := LatestOf[int](evens)
	key := once.AddObserver(func(Transaction[int]) {}) // drive the cache live
	defer once.RemoveObserver(key)

	in.Set(4) // once now caches a value and reports Stored

	twice := LatestOf[int](once)

	assert.Same(t, once, twice, "wrapping an already-Stored Latest must not double-wrap")
}
