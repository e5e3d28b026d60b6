package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Begin(t *testing.T) {
	tx := Begin[int]()
	assert.True(t, tx.IsBegin())
	assert.False(t, tx.IsCancel())
	_, ok := tx.End()
	assert.False(t, ok)
}

func TestTransaction_End(t *testing.T) {
	tx := End(42)
	assert.False(t, tx.IsBegin())
	assert.False(t, tx.IsCancel())
	v, ok := tx.End()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTransaction_Cancel(t *testing.T) {
	tx := Cancel[string]()
	assert.False(t, tx.IsBegin())
	assert.True(t, tx.IsCancel())
	_, ok := tx.End()
	assert.False(t, ok)
}

func TestOption(t *testing.T) {
	none := NoneOption[int]()
	_, ok := none.Get()
	assert.False(t, ok)
	assert.False(t, none.Present())

	some := Some(7)
	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, some.Present())
}

func TestLatestValue_None(t *testing.T) {
	lv := NoneValue[int]()
	assert.False(t, lv.Has())
	assert.False(t, lv.IsStored())
	_, ok := lv.Get().Get()
	assert.False(t, ok)
}

func TestLatestValue_Stored(t *testing.T) {
	lv := StoredValue(3)
	assert.True(t, lv.Has())
	assert.True(t, lv.IsStored())
	v, ok := lv.Get().Get()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLatestValue_Computed(t *testing.T) {
	calls := 0
	lv := ComputedValue(func() int {
		calls++
		return 10
	})
	assert.True(t, lv.Has())
	assert.False(t, lv.IsStored())
	assert.Equal(t, 0, calls, "thunk must not run until Get is called")

	v, ok := lv.Get().Get()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, calls)
}
