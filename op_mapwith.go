package frp

// MappedWith1 is a pull-style combinator (§4.13): parent's End drives
// emission, but the auxiliary signal is sampled via LatestValue (pull),
// not subscribed to. If the auxiliary has no value yet, the End becomes
// Cancel instead.
type MappedWith1[A, X, R any] struct {
	*base[R]
	parent Signal[A]
	aux    Signal[X]
	f      func(A, X) R
	unsub  func()
}

// MapWith1 derives parent by sampling aux at each End.
func MapWith1[A, X, R any](parent Signal[A], aux Signal[X], f func(A, X) R) *MappedWith1[A, X, R] {
	m := &MappedWith1[A, X, R]{base: newBase[R]("MappedWith1"), parent: parent, aux: aux, f: f}
	m.base.setSubscriptionHooks(
		func() { m.unsub = subscribeWeak(parent, m, (*MappedWith1[A, X, R]).onParent) },
		func() { m.unsub(); m.unsub = nil },
	)
	return m
}

func (m *MappedWith1[A, X, R]) onParent(t Transaction[A]) {
	switch {
	case t.IsBegin():
		m.PushTransaction(Begin[R]())
	case t.IsCancel():
		m.PushTransaction(Cancel[R]())
	default:
		v, _ := t.End()
		if x, ok := m.aux.LatestValue().Get().Get(); ok {
			m.PushTransaction(End(m.f(v, x)))
		} else {
			m.PushTransaction(Cancel[R]())
		}
	}
}

func (m *MappedWith1[A, X, R]) LatestValue() LatestValue[R] {
	parentLV := m.parent.LatestValue()
	auxLV := m.aux.LatestValue()
	if !parentLV.Has() || !auxLV.Has() {
		return NoneValue[R]()
	}
	f := m.f
	return ComputedValue(func() R {
		a, _ := parentLV.Get().Get()
		x, _ := auxLV.Get().Get()
		return f(a, x)
	})
}

func (m *MappedWith1[A, X, R]) AddObserver(cb func(Transaction[R])) uint64 {
	m.base.primeOnAdd(m.LatestValue(), cb)
	return m.base.insertObserver(cb)
}

func (m *MappedWith1[A, X, R]) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

// MappedWith2 samples two auxiliaries at each parent End (§4.13, arity 2).
type MappedWith2[A, X, Y, R any] struct {
	*base[R]
	parent Signal[A]
	aux1   Signal[X]
	aux2   Signal[Y]
	f      func(A, X, Y) R
	unsub  func()
}

// MapWith2 derives parent by sampling aux1 and aux2 at each End.
func MapWith2[A, X, Y, R any](parent Signal[A], aux1 Signal[X], aux2 Signal[Y], f func(A, X, Y) R) *MappedWith2[A, X, Y, R] {
	m := &MappedWith2[A, X, Y, R]{base: newBase[R]("MappedWith2"), parent: parent, aux1: aux1, aux2: aux2, f: f}
	m.base.setSubscriptionHooks(
		func() { m.unsub = subscribeWeak(parent, m, (*MappedWith2[A, X, Y, R]).onParent) },
		func() { m.unsub(); m.unsub = nil },
	)
	return m
}

func (m *MappedWith2[A, X, Y, R]) onParent(t Transaction[A]) {
	switch {
	case t.IsBegin():
		m.PushTransaction(Begin[R]())
	case t.IsCancel():
		m.PushTransaction(Cancel[R]())
	default:
		v, _ := t.End()
		x, xok := m.aux1.LatestValue().Get().Get()
		y, yok := m.aux2.LatestValue().Get().Get()
		if xok && yok {
			m.PushTransaction(End(m.f(v, x, y)))
		} else {
			m.PushTransaction(Cancel[R]())
		}
	}
}

func (m *MappedWith2[A, X, Y, R]) LatestValue() LatestValue[R] {
	parentLV := m.parent.LatestValue()
	aux1LV := m.aux1.LatestValue()
	aux2LV := m.aux2.LatestValue()
	if !parentLV.Has() || !aux1LV.Has() || !aux2LV.Has() {
		return NoneValue[R]()
	}
	f := m.f
	return ComputedValue(func() R {
		a, _ := parentLV.Get().Get()
		x, _ := aux1LV.Get().Get()
		y, _ := aux2LV.Get().Get()
		return f(a, x, y)
	})
}

func (m *MappedWith2[A, X, Y, R]) AddObserver(cb func(Transaction[R])) uint64 {
	m.base.primeOnAdd(m.LatestValue(), cb)
	return m.base.insertObserver(cb)
}

func (m *MappedWith2[A, X, Y, R]) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}
