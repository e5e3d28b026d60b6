package frp

// Filter admits only values matching a predicate (§4.5). Importantly,
// Filter does NOT override LatestValue; it stays at base's default
// None, modeling the fact that a filter has no value until it has
// actually admitted one. Compose with Latest (`.Latest()`) when a cached
// current value is wanted.
type Filter[V any] struct {
	*base[V]
	parent Signal[V]
	p      func(V) bool
	unsub  func()
}

// NewFilter derives a signal admitting only values of parent for which p
// returns true; all other End values become Cancel.
func NewFilter[V any](parent Signal[V], p func(V) bool) *Filter[V] {
	f := &Filter[V]{base: newBase[V]("Filter"), parent: parent, p: p}
	f.base.setSubscriptionHooks(
		func() { f.unsub = subscribeWeak(parent, f, (*Filter[V]).onParent) },
		func() { f.unsub(); f.unsub = nil },
	)
	return f
}

func (f *Filter[V]) onParent(t Transaction[V]) {
	switch {
	case t.IsBegin():
		f.PushTransaction(Begin[V]())
	case t.IsCancel():
		f.PushTransaction(Cancel[V]())
	default:
		v, _ := t.End()
		if f.p(v) {
			f.PushTransaction(End(v))
		} else {
			f.PushTransaction(Cancel[V]())
		}
	}
}

func (f *Filter[V]) Close() {
	if f.unsub != nil {
		f.unsub()
		f.unsub = nil
	}
}
