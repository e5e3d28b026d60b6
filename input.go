package frp

import "github.com/pkg/errors"

// Input is a writable Signal: the one place external code assigns a new
// value and the engine fans Begin then End(v) to every observer (§4.3).
//
// Input is reentrancy-guarded: assigning to an Input from within a
// callback that is itself reacting (transitively) to that same Input's
// own transaction is a programmer error and panics, per §4.3/§7.1. This
// guard is per-Input; nesting a fresh transaction on a *different*
// Input from inside a callback is explicitly permitted (§5).
type Input[V any] struct {
	base *base[V]
	value V
	inTransaction bool
}

// NewInput creates a writable signal seeded with initial.
func NewInput[V any](initial V) *Input[V] {
	return &Input[V]{base: newBase[V]("Input"), value: initial}
}

func (n *Input[V]) AddObserver(cb func(Transaction[V])) uint64 {
	primeObserver(n.LatestValue(), cb)
	return n.base.insertObserver(cb)
}

func (n *Input[V]) RemoveObserver(key uint64)              { n.base.RemoveObserver(key) }
func (n *Input[V]) PushTransaction(t Transaction[V])        { n.base.PushTransaction(t) }
func (n *Input[V]) PushValue(v V)                           { n.base.PushValue(v) }
func (n *Input[V]) DebugName() string                       { return n.base.DebugName() }

// LatestValue is always Stored(value): Input always has a current value.
func (n *Input[V]) LatestValue() LatestValue[V] {
	return StoredValue(n.value)
}

// Get returns the current value without going through the pull protocol.
func (n *Input[V]) Get() V { return n.value }

// Set assigns newValue and pushes a single Begin/End(newValue)
// transaction. Panics (via pkg/errors, for the stack trace) if called
// reentrantly from within this Input's own propagation.
func (n *Input[V]) Set(newValue V) {
	if n.inTransaction {
		logger().Error("reentrant Input assignment", zapNode(n))
		panic(errors.Errorf("frp: reentrant assignment on Input %s", n.DebugName()))
	}
	n.inTransaction = true
	defer func() { n.inTransaction = false }()
	n.value = newValue
	n.base.PushValue(newValue)
}

// Modify applies fn to the current value and assigns the result via Set.
func (n *Input[V]) Modify(fn func(V) V) {
	n.Set(fn(n.value))
}

// Assign is sugar for Set, standing in for a `<--` infix operator (Go
// has no operator overloading): `input.Assign(v)` reads as `input <-- v`.
func (n *Input[V]) Assign(v V) { n.Set(v) }
