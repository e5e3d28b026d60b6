package frp

import "sync/atomic"

// Receiver is a scoped observer handle: it owns exactly one registration
// on its source and guarantees deregistration once Close is called.
// Close is idempotent and safe to call more than once (§4.17, §8 I3).
//
// There is no implicit goroutine tied to a context.Context here; the
// engine is single-threaded (§5), so cancellation is always an explicit
// Close call, a destructor-driven lifetime rather than Go's usual
// ctx-cancellation idiom.
type Receiver[V any] struct {
	source  removableSource[V]
	key     uint64
	closed  atomic.Bool
}

type removableSource[V any] interface {
	RemoveObserver(key uint64)
}

// NewReceiver subscribes cb to source and returns a handle owning that
// subscription.
func NewReceiver[V any](source Signal[V], cb func(Transaction[V])) *Receiver[V] {
	r := &Receiver[V]{source: source}
	r.key = source.AddObserver(cb)
	return r
}

// Close deregisters the subscription. Safe to call multiple times.
func (r *Receiver[V]) Close() {
	if r.closed.Swap(true) {
		return
	}
	r.source.RemoveObserver(r.key)
}

// NewOutput creates a Receiver whose callback invokes f on every End(v)
// and ignores Begin/Cancel (§4.17). This is the Go stand-in for a
// `-->` infix sugar: `source --> f` reads as `NewOutput(source, f)`.
func NewOutput[V any](source Signal[V], f func(V)) *Receiver[V] {
	return NewReceiver[V](source, func(t Transaction[V]) {
		if v, ok := t.End(); ok {
			f(v)
		}
	})
}

// NewWillOutput creates a Receiver whose callback invokes f (no
// argument) on every Begin and ignores End/Cancel (§4.17). Useful for
// UI-style "something is about to change" hooks.
func NewWillOutput[V any](source Signal[V], f func()) *Receiver[V] {
	return NewReceiver[V](source, func(t Transaction[V]) {
		if t.IsBegin() {
			f()
		}
	})
}
