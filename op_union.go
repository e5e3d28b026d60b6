package frp

// Union forwards every transaction from any of N homogeneous parents
// unchanged, with no coalescing (§4.11): simultaneous events from
// multiple parents produce multiple downstream transactions, in
// subscription (constructor) order. LatestValue stays at base's default
// None; a union has no single "current" value of its own.
type Union[V any] struct {
	*base[V]
	parents []Signal[V]
	unsubs  []func()
}

// UnionOf merges parents into a single signal. Mirrors the free function
// `union(s1, s2, ...)` of §4.19.
func UnionOf[V any](parents ...Signal[V]) *Union[V] {
	u := &Union[V]{base: newBase[V]("Union"), parents: parents}
	u.base.setSubscriptionHooks(
		func() {
			for _, p := range parents {
				u.unsubs = append(u.unsubs, subscribeWeak(p, u, (*Union[V]).onParent))
			}
		},
		func() {
			for _, unsub := range u.unsubs {
				unsub()
			}
			u.unsubs = nil
		},
	)
	return u
}

func (u *Union[V]) onParent(t Transaction[V]) {
	u.PushTransaction(t)
}

// Close tears down every parent subscription eagerly, if any are live.
func (u *Union[V]) Close() {
	for _, unsub := range u.unsubs {
		unsub()
	}
	u.unsubs = nil
}
