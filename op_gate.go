package frp

// Gate defers release of a source's value until a boolean gate signal is
// true (§4.14). It holds at most one deferred value (I8): a new source
// Begin always clears whatever was deferred, even if the gate's own
// in-flight transaction hasn't resolved yet. source and gate share a
// single transaction counter; both contribute Begins/Ends to the same
// diamond-suppression bookkeeping as a Combiner, but only source's End
// ever populates the deferred slot; the gate's current value is always
// sampled fresh at resolve time via gateSignal.LatestValue().
type Gate[V any] struct {
	*base[V]
	source     Signal[V]
	gateSignal Signal[bool]
	deferred   Option[V]
	counter    txCounter
	unsubs     []func()
	priming    bool
}

// GateOf releases source's values only while gate reports true. Typical
// usage gates an Event-derived source so only genuinely new values are
// held pending (§4.18's `gate` helper does exactly this for boolean
// sources).
//
// source and gateSignal subscribe one at a time; each one that already
// has a value replays its own priming round independently, which would
// otherwise let the first round's resolve consume the deferred slot
// before the second round even starts. Gate has no LatestValue of its
// own (a fresh subscriber never gets a synthesized initial release, just
// base's unconditional None default), so onSource/onGate simply swallow
// both priming rounds instead of resolving from them.
func GateOf[V any](source Signal[V], gate Signal[bool]) *Gate[V] {
	g := &Gate[V]{base: newBase[V]("Gate"), source: source, gateSignal: LatestOf(gate)}
	g.base.setSubscriptionHooks(
		func() {
			g.priming = true
			g.unsubs = []func(){
				subscribeWeak(source, g, (*Gate[V]).onSource),
				subscribeWeak(g.gateSignal, g, (*Gate[V]).onGate),
			}
			g.priming = false
		},
		func() {
			for _, u := range g.unsubs {
				u()
			}
			g.unsubs = nil
		},
	)
	return g
}

func (g *Gate[V]) onSource(t Transaction[V]) {
	if g.priming {
		return
	}
	switch {
	case t.IsBegin():
		g.deferred = NoneOption[V]()
		if g.counter.begin() {
			g.PushTransaction(Begin[V]())
		}
	case t.IsCancel():
		if g.counter.end() {
			g.resolve()
		}
	default:
		v, _ := t.End()
		g.deferred = Some(v)
		if g.counter.end() {
			g.resolve()
		}
	}
}

func (g *Gate[V]) onGate(t Transaction[bool]) {
	if g.priming {
		return
	}
	if t.IsBegin() {
		if g.counter.begin() {
			g.PushTransaction(Begin[V]())
		}
		return
	}
	if g.counter.end() {
		g.resolve()
	}
}

func (g *Gate[V]) resolve() {
	if v, ok := g.deferred.Get(); ok {
		if open, gok := g.gateSignal.LatestValue().Get().Get(); gok && open {
			g.deferred = NoneOption[V]()
			g.PushTransaction(End(v))
			return
		}
	}
	g.PushTransaction(Cancel[V]())
}

// Close tears down both subscriptions eagerly, if live.
func (g *Gate[V]) Close() {
	for _, u := range g.unsubs {
		u()
	}
	g.unsubs = nil
}
