package frp

import "weak"

// subscribeWeak registers handler on parent with a closure that holds
// only a weak.Pointer to node, never a strong reference. This is the
// polymorphic back-edge rule of §9: a downstream operator's subscription
// on its parent must not be what keeps the downstream node alive. If
// node has already been collected, the closure silently drops the
// transaction instead of calling handler; there is no live receiver
// left to observe it.
//
// The returned func eagerly cancels the subscription; operators that
// support early teardown (Joined replacing its inner signal, for
// instance) call it directly instead of waiting on GC.
func subscribeWeak[V any, N any](parent Signal[V], node *N, handler func(*N, Transaction[V])) func() {
	wp := weak.Make(node)
	key := parent.AddObserver(func(t Transaction[V]) {
		if self := wp.Value(); self != nil {
			handler(self, t)
		}
	})
	return func() { parent.RemoveObserver(key) }
}
