package frp

// Latest caches the most recent End-phase value of its parent so that a
// pull on LatestValue always has something once the parent has fired at
// least once (§4.6). It forwards every transaction unchanged; only the
// pull-mode LatestValue differs from a plain pass-through.
type Latest[V any] struct {
	*base[V]
	parent Signal[V]
	cached Option[V]
	unsub  func()
}

// LatestOf wraps parent so that LatestValue reports the most recently
// admitted value instead of parent's own (possibly None or lazily
// Computed) LatestValue. If parent already reports a Stored value,
// LatestOf returns parent itself unchanged; wrapping it again would be
// pure overhead and would break the identity optimization of I5
// (Latest(Latest(s)) ≡ Latest(s)).
func LatestOf[V any](parent Signal[V]) Signal[V] {
	if parent.LatestValue().IsStored() {
		return parent
	}
	l := &Latest[V]{base: newBase[V]("Latest"), parent: parent}
	if v, ok := parent.LatestValue().Get().Get(); ok {
		l.cached = Some(v)
	}
	l.base.setSubscriptionHooks(
		func() { l.unsub = subscribeWeak(parent, l, (*Latest[V]).onParent) },
		func() { l.unsub(); l.unsub = nil },
	)
	return l
}

func (l *Latest[V]) onParent(t Transaction[V]) {
	if v, ok := t.End(); ok {
		l.cached = Some(v)
	}
	l.PushTransaction(t)
}

func (l *Latest[V]) LatestValue() LatestValue[V] {
	if v, ok := l.cached.Get(); ok {
		return StoredValue(v)
	}
	return NoneValue[V]()
}

func (l *Latest[V]) AddObserver(cb func(Transaction[V])) uint64 {
	l.base.primeOnAdd(l.LatestValue(), cb)
	return l.base.insertObserver(cb)
}

func (l *Latest[V]) Close() {
	if l.unsub != nil {
		l.unsub()
		l.unsub = nil
	}
}
