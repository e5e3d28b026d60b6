package frp

// Joined is the monadic join for Signal[Signal[V]] -> Signal[V] (§4.16).
// Outer's Begin/Cancel are not forwarded; only the currently-joined
// inner signal's transactions are. Replacing the inner (a fresh outer
// End) cleanly tears down the old inner subscription first.
type Joined[V any] struct {
	*base[V]
	outer      Signal[Signal[V]]
	outerUnsub func()
	inner      Signal[V]
	innerUnsub func()
}

// JoinOf flattens outer: Signal[Signal[V]] into a Signal[V] that always
// tracks whichever inner signal outer most recently admitted.
func JoinOf[V any](outer Signal[Signal[V]]) *Joined[V] {
	j := &Joined[V]{base: newBase[V]("Joined"), outer: outer}
	j.base.setSubscriptionHooks(
		func() { j.outerUnsub = subscribeWeak(outer, j, (*Joined[V]).onOuter) },
		func() {
			j.outerUnsub()
			j.outerUnsub = nil
			if j.innerUnsub != nil {
				j.innerUnsub()
				j.innerUnsub = nil
			}
			j.inner = nil
		},
	)
	return j
}

func (j *Joined[V]) onOuter(t Transaction[Signal[V]]) {
	inner, ok := t.End()
	if !ok {
		return
	}
	if j.innerUnsub != nil {
		j.innerUnsub()
	}
	j.inner = inner
	j.innerUnsub = subscribeWeak(inner, j, (*Joined[V]).onInner)
}

func (j *Joined[V]) onInner(t Transaction[V]) {
	j.PushTransaction(t)
}

func (j *Joined[V]) LatestValue() LatestValue[V] {
	if j.inner == nil {
		return NoneValue[V]()
	}
	return j.inner.LatestValue()
}

func (j *Joined[V]) AddObserver(cb func(Transaction[V])) uint64 {
	j.base.primeOnAdd(j.LatestValue(), cb)
	return j.base.insertObserver(cb)
}

// Close tears down the outer subscription and, if present, the current
// inner one, if either is currently live.
func (j *Joined[V]) Close() {
	if j.outerUnsub != nil {
		j.outerUnsub()
		j.outerUnsub = nil
	}
	if j.innerUnsub != nil {
		j.innerUnsub()
		j.innerUnsub = nil
	}
}
