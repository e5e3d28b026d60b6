package frp

// OnChange suppresses consecutive End values that compare equal (§4.7,
// I6): the first admitted value always passes, every subsequent End is
// compared against the cached one and turned into Cancel if unchanged.
// Begin and Cancel pass through untouched.
type OnChange[V any] struct {
	*base[V]
	parent Signal[V]
	equal  EqualFunc[V]
	cached Option[V]
	unsub  func()
}

// OnChangeOf wraps parent for a comparable V, using == to detect change.
func OnChangeOf[V comparable](parent Signal[V]) *OnChange[V] {
	return OnChangeWithEqual(parent, func(a, b V) bool { return a == b })
}

// OnChangeWithEqual wraps parent using a caller-supplied equality
// function, for V that aren't `comparable` in the Go sense.
func OnChangeWithEqual[V any](parent Signal[V], equal EqualFunc[V]) *OnChange[V] {
	o := &OnChange[V]{base: newBase[V]("OnChange"), parent: parent, equal: equal}
	o.base.setSubscriptionHooks(
		func() { o.unsub = subscribeWeak(parent, o, (*OnChange[V]).onParent) },
		func() { o.unsub(); o.unsub = nil },
	)
	return o
}

func (o *OnChange[V]) onParent(t Transaction[V]) {
	switch {
	case t.IsBegin():
		o.PushTransaction(Begin[V]())
	case t.IsCancel():
		o.PushTransaction(Cancel[V]())
	default:
		v, _ := t.End()
		if prev, ok := o.cached.Get(); ok && o.equal(prev, v) {
			o.PushTransaction(Cancel[V]())
			return
		}
		o.cached = Some(v)
		o.PushTransaction(End(v))
	}
}

func (o *OnChange[V]) LatestValue() LatestValue[V] {
	if v, ok := o.cached.Get(); ok {
		return StoredValue(v)
	}
	return NoneValue[V]()
}

func (o *OnChange[V]) AddObserver(cb func(Transaction[V])) uint64 {
	o.base.primeOnAdd(o.LatestValue(), cb)
	return o.base.insertObserver(cb)
}

func (o *OnChange[V]) Close() {
	if o.unsub != nil {
		o.unsub()
		o.unsub = nil
	}
}
