package frp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_AdmitsOnlyMatching(t *testing.T) {
	in := NewInput(0)
	small := NewFilter(in, func(v int) bool { return v < 5 })

	var captured []int
	out := NewOutput[int](small, func(v int) { captured = append(captured, v) })
	defer out.Close()

	in.Set(3)
	in.Set(4)
	in.Set(7)

	// out subscribes before Filter subscribes to in, so in's primer (0 < 5,
	// admitted) reaches out through Filter on the first-observer cascade.
	assert.Equal(t, []int{0, 3, 4}, captured)
}

func TestFilter_LatestValueStaysNone(t *testing.T) {
	in := NewInput(2)
	evens := NewFilter(in, func(v int) bool { return v%2 == 0 })

	assert.False(t, evens.LatestValue().Has(), "§4.5: Filter does not override LatestValue")
}

func TestFilter_ComposesConjunctively(t *testing.T) {
	in := NewInput(0)
	chained := NewFilter(NewFilter(in, func(v int) bool { return v > 0 }), func(v int) bool { return v < 10 })
	direct := NewFilter(in, func(v int) bool { return v > 0 && v < 10 })

	var a, b []int
	outA := NewOutput[int](chained, func(v int) { a = append(a, v) })
	outB := NewOutput[int](direct, func(v int) { b = append(b, v) })
	defer outA.Close()
	defer outB.Close()

	for _, v := range []int{-1, 5, 15, 9} {
		in.Set(v)
	}

	assert.Equal(t, b, a)
}
