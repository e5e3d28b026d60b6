package frp

// Signal is the parent-facing interface every node in the graph presents:
// register/deregister an observer and answer the pull-mode LatestValue
// query. It is the trait-style dynamic dispatch surface recommended by
// the design notes (§9) over a tagged operator enum, since the operator
// set keeps growing and each one owns genuinely different per-transaction
// bookkeeping.
type Signal[V any] interface {
	// AddObserver registers cb. If the node already has a value
	// (LatestValue().Has()), cb is primed synchronously with a
	// (Begin, End(v)) pair during this call, per §4.2: a leaf primes cb
	// before inserting it; an operator gaining its first observer inserts
	// cb first and primes it through the parent subscription that starts.
	AddObserver(cb func(Transaction[V])) uint64

	// RemoveObserver deregisters key. Idempotent.
	RemoveObserver(key uint64)

	// PushTransaction synchronously fans t to every currently registered
	// observer, in registration order.
	PushTransaction(t Transaction[V])

	// PushValue is shorthand for PushTransaction(Begin) followed by
	// PushTransaction(End(v)).
	PushValue(v V)

	// LatestValue answers the pull protocol. Defaults to None; concrete
	// node types override it where Stored or Computed semantics apply.
	LatestValue() LatestValue[V]

	// DebugName identifies this node in diagnostic log fields only; it
	// has no protocol meaning.
	DebugName() string
}

// base is the embeddable observer-bookkeeping core shared by every
// concrete node. It implements the full Signal[V] method set so that
// operators which keep the default LatestValue == None (Filter, Union,
// Gate, Throttle) need not write any boilerplate at all: the promoted
// methods already do the right thing.
//
// Operators that need a non-default LatestValue (Mapped, Latest,
// OnChange, Wrapped, Const, ComputedSignal, Input, the Combiners,
// MappedWith, Joined) MUST override both LatestValue and AddObserver on
// the concrete type. This is not optional: Go's embedding is pure
// delegation, not virtual dispatch, so base.AddObserver priming a new
// subscriber always consults base's own LatestValue, which is always
// None, never the outer type's override. Pair the two overrides with
// primeOnAdd, as every operator file in this package does.
//
// Every operator with a parent subscribes to it lazily: construction
// only calls setSubscriptionHooks, and insertObserver/RemoveObserver
// fire the actual subscribe/unsubscribe on the 0->1 and 1->0 observer
// transitions. This is what lets a stateless operator (Filter, Union,
// Gate, Throttle) still receive the parent's synchronous primer
// handshake: the parent is only subscribed once this node's own first
// observer is already registered, so the primer cascade lands on a live
// downstream observer instead of an operator nobody is listening to yet.
type base[V any] struct {
	observers       *keyedSet[func(Transaction[V])]
	kind            string
	id              string
	onFirstObserver func()
	onLastObserver  func()
}

func newBase[V any](kind string) *base[V] {
	return &base[V]{
		observers: newKeyedSet[func(Transaction[V])](),
		kind:      kind,
		id:        newNodeID(),
	}
}

// setSubscriptionHooks wires the lazy parent-subscribe lifecycle (I2):
// onFirst runs exactly when this node gains its first observer (going
// from zero to one), onLast exactly when it loses its last one. An
// operator with a parent calls this once, right after construction,
// instead of subscribing to the parent immediately.
func (b *base[V]) setSubscriptionHooks(onFirst, onLast func()) {
	b.onFirstObserver = onFirst
	b.onLastObserver = onLast
}

// insertObserver registers cb with no priming, then fires
// onFirstObserver if cb is the first observer this node has ever had (or
// has again, after dropping to zero). Concrete types that override
// AddObserver call this last, after priming themselves from whatever
// state is already live.
func (b *base[V]) insertObserver(cb func(Transaction[V])) uint64 {
	wasEmpty := b.observers.len() == 0
	key := b.observers.add(cb)
	if wasEmpty && b.onFirstObserver != nil {
		b.onFirstObserver()
	}
	return key
}

// primeOnAdd primes cb from lv, but only when doing so won't duplicate
// the priming that insertObserver's onFirstObserver cascade is about to
// deliver on its own. A node with no subscription hooks (a leaf with no
// parent) always primes directly. A node with hooks primes directly only
// if it already has at least one observer (already subscribed upstream);
// when cb is about to become the first observer, subscribing to the
// parent synchronously re-fires the parent's own primer into this node's
// transaction path, which reaches cb exactly once on its own.
func (b *base[V]) primeOnAdd(lv LatestValue[V], cb func(Transaction[V])) {
	if b.onFirstObserver == nil || b.observers.len() > 0 {
		primeObserver(lv, cb)
	}
}

func (b *base[V]) AddObserver(cb func(Transaction[V])) uint64 {
	b.primeOnAdd(b.LatestValue(), cb)
	return b.insertObserver(cb)
}

func (b *base[V]) RemoveObserver(key uint64) {
	b.observers.remove(key)
	if b.observers.len() == 0 && b.onLastObserver != nil {
		b.onLastObserver()
	}
}

func (b *base[V]) PushTransaction(t Transaction[V]) {
	b.observers.each(func(cb func(Transaction[V])) {
		cb(t)
	})
}

func (b *base[V]) PushValue(v V) {
	b.PushTransaction(Begin[V]())
	b.PushTransaction(End(v))
}

func (b *base[V]) LatestValue() LatestValue[V] {
	return NoneValue[V]()
}

func (b *base[V]) DebugName() string {
	return b.kind + "-" + b.id
}

// primeObserver implements the primer handshake of §4.2: a fresh
// subscriber to a node whose LatestValue is already Stored or Computed
// synchronously receives (Begin, End(v)) before anything else.
func primeObserver[V any](lv LatestValue[V], cb func(Transaction[V])) {
	if v, ok := lv.Get().Get(); ok {
		cb(Begin[V]())
		cb(End(v))
	}
}
