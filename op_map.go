package frp

// Mapped applies a pure, total function to every value flowing through a
// parent signal (§4.4). f must be pure and total: the engine does not
// catch panics from it (§7.3), and LatestValue mirrors the parent lazily
// through f, so an impure f would be evaluated at unpredictable times.
type Mapped[A, B any] struct {
	*base[B]
	parent Signal[A]
	f      func(A) B
	unsub  func()
}

// Map derives a new signal by applying f to every value of parent.
func Map[A, B any](parent Signal[A], f func(A) B) *Mapped[A, B] {
	m := &Mapped[A, B]{base: newBase[B]("Mapped"), parent: parent, f: f}
	m.base.setSubscriptionHooks(
		func() { m.unsub = subscribeWeak(parent, m, (*Mapped[A, B]).onParent) },
		func() { m.unsub(); m.unsub = nil },
	)
	return m
}

func (m *Mapped[A, B]) onParent(t Transaction[A]) {
	switch {
	case t.IsBegin():
		m.PushTransaction(Begin[B]())
	case t.IsCancel():
		m.PushTransaction(Cancel[B]())
	default:
		v, _ := t.End()
		m.PushTransaction(End(m.f(v)))
	}
}

func (m *Mapped[A, B]) LatestValue() LatestValue[B] {
	parentLV := m.parent.LatestValue()
	if !parentLV.Has() {
		return NoneValue[B]()
	}
	f := m.f
	return ComputedValue(func() B {
		v, _ := parentLV.Get().Get()
		return f(v)
	})
}

func (m *Mapped[A, B]) AddObserver(cb func(Transaction[B])) uint64 {
	m.base.primeOnAdd(m.LatestValue(), cb)
	return m.base.insertObserver(cb)
}

// Close eagerly tears down the subscription on parent, if one is
// currently live (normally this happens when m loses its last observer).
func (m *Mapped[A, B]) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

// Event passes every transaction from parent verbatim but overrides
// LatestValue to always report None (§4.8). This is the way to turn a
// stored-value signal into a pure event stream that does not prime new
// subscribers with a current value; see §9 note 3.
type Event[V any] struct {
	*base[V]
	parent  Signal[V]
	unsub   func()
	priming bool
}

// AsEvent wraps parent so that new subscribers are never synchronously
// primed, even though parent itself may have a current value.
//
// Subscribing to parent lazily on first observer means parent, if it
// already holds a value, replays its own Begin/End/Cancel synchronously
// right there; onParent swallows that one replay so I7 holds regardless
// of whether parent was already resolved at subscribe time.
func AsEvent[V any](parent Signal[V]) *Event[V] {
	e := &Event[V]{base: newBase[V]("Event"), parent: parent}
	e.base.setSubscriptionHooks(
		func() {
			e.priming = true
			e.unsub = subscribeWeak(parent, e, (*Event[V]).onParent)
			e.priming = false
		},
		func() { e.unsub(); e.unsub = nil },
	)
	return e
}

func (e *Event[V]) onParent(t Transaction[V]) {
	if e.priming {
		return
	}
	e.PushTransaction(t)
}

// LatestValue always returns None; see §4.8 and §9 note 3.
func (e *Event[V]) LatestValue() LatestValue[V] { return NoneValue[V]() }

func (e *Event[V]) Close() {
	if e.unsub != nil {
		e.unsub()
		e.unsub = nil
	}
}

// Wrapped forwards every transaction from parent unchanged and mirrors
// parent's LatestValue directly rather than caching its own copy (§4.9).
// It exists purely as a type-erasure aid: a place to re-expose a
// concretely-typed operator behind the Signal[V] interface without
// introducing any behavioral difference from parent.
type Wrapped[V any] struct {
	*base[V]
	parent Signal[V]
	unsub  func()
}

// Wrap re-exposes parent behind a fresh Signal[V] identity.
func Wrap[V any](parent Signal[V]) *Wrapped[V] {
	w := &Wrapped[V]{base: newBase[V]("Wrapped"), parent: parent}
	w.base.setSubscriptionHooks(
		func() { w.unsub = subscribeWeak(parent, w, (*Wrapped[V]).onParent) },
		func() { w.unsub(); w.unsub = nil },
	)
	return w
}

func (w *Wrapped[V]) onParent(t Transaction[V]) { w.PushTransaction(t) }

func (w *Wrapped[V]) LatestValue() LatestValue[V] { return w.parent.LatestValue() }

func (w *Wrapped[V]) AddObserver(cb func(Transaction[V])) uint64 {
	w.base.primeOnAdd(w.LatestValue(), cb)
	return w.base.insertObserver(cb)
}

func (w *Wrapped[V]) Close() {
	if w.unsub != nil {
		w.unsub()
		w.unsub = nil
	}
}
