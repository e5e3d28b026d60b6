package frp

// Const is a Signal with an immutable value: it never pushes a
// transaction, and LatestValue is always Stored(v), so every subscriber
// is primed once at registration and never hears from the node again.
type Const[V any] struct {
	*base[V]
	value V
}

// NewConst creates a Const signal holding v forever.
func NewConst[V any](v V) *Const[V] {
	return &Const[V]{base: newBase[V]("Const"), value: v}
}

func (c *Const[V]) LatestValue() LatestValue[V] { return StoredValue(c.value) }

func (c *Const[V]) AddObserver(cb func(Transaction[V])) uint64 {
	primeObserver(c.LatestValue(), cb)
	return c.base.insertObserver(cb)
}

// Never is an inert signal: it never pushes and LatestValue is always
// None, so it never primes a subscriber either. Useful as a parent for
// operators in tests, or as a permanently-closed branch of a Union.
type Never[V any] struct {
	*base[V]
}

// NewNever creates an inert signal of type V.
func NewNever[V any]() *Never[V] {
	return &Never[V]{base: newBase[V]("Never")}
}

// ComputedSignal wraps a thunk: it never pushes, and LatestValue is
// always Computed(thunk), so each pull re-evaluates the thunk. Unlike
// Mapped, a ComputedSignal has no parent in the transaction graph; it's
// a pure pull-side leaf, typically used to seed an operator's parent
// chain with a derived constant that can still participate in the
// LatestValue protocol.
type ComputedSignal[V any] struct {
	*base[V]
	thunk func() V
}

// NewComputedSignal creates a ComputedSignal deriving its value from thunk
// on every pull.
func NewComputedSignal[V any](thunk func() V) *ComputedSignal[V] {
	return &ComputedSignal[V]{base: newBase[V]("ComputedSignal"), thunk: thunk}
}

func (c *ComputedSignal[V]) LatestValue() LatestValue[V] { return ComputedValue(c.thunk) }

func (c *ComputedSignal[V]) AddObserver(cb func(Transaction[V])) uint64 {
	primeObserver(c.LatestValue(), cb)
	return c.base.insertObserver(cb)
}
