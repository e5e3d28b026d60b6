package frp

// Not negates a boolean signal (§4.18).
func Not(s Signal[bool]) *Mapped[bool, bool] {
	return Map(s, func(v bool) bool { return !v })
}

// And combines two boolean signals with &&. Both sides are always
// sampled, since this is a Combine2 under the hood: deliberately
// non-short-circuiting (§4.18).
func And(a, b Signal[bool]) *Combiner2[bool, bool, bool] {
	return Combine2(a, b, func(x, y bool) bool { return x && y })
}

// Or combines two boolean signals with ||, non-short-circuiting for the
// same reason as And.
func Or(a, b Signal[bool]) *Combiner2[bool, bool, bool] {
	return Combine2(a, b, func(x, y bool) bool { return x || y })
}

// IsNil maps a signal of pointers to whether the current value is nil
// (§4.18).
func IsNil[V any](s Signal[*V]) *Mapped[*V, bool] {
	return Map(s, func(v *V) bool { return v == nil })
}

// NotNil filters out nil values and unwraps the rest, turning
// Signal[*V] into Signal[V] (§4.18).
func NotNil[V any](s Signal[*V]) *Mapped[*V, V] {
	f := NewFilter(s, func(v *V) bool { return v != nil })
	return Map[*V, V](f, func(v *V) V { return *v })
}

// OnRisingEdge invokes cb each time s transitions to true. Implemented
// exactly as §4.18 specifies: on_change().filter(== true).output(cb).
func OnRisingEdge(s Signal[bool], cb func()) *Receiver[bool] {
	rising := NewFilter[bool](OnChangeOf(s), func(v bool) bool { return v })
	return NewWillOutputOnTrue(rising, cb)
}

// OnFallingEdge invokes cb each time s transitions to false.
func OnFallingEdge(s Signal[bool], cb func()) *Receiver[bool] {
	falling := NewFilter[bool](OnChangeOf(s), func(v bool) bool { return !v })
	return NewWillOutputOnTrue(falling, cb)
}

// NewWillOutputOnTrue is a small helper shared by OnRisingEdge/
// OnFallingEdge: invoke cb (no argument) on every admitted End,
// regardless of the carried value; the filtering already did the work
// of deciding which edge this is.
func NewWillOutputOnTrue(source Signal[bool], cb func()) *Receiver[bool] {
	return NewOutput(source, func(bool) { cb() })
}
