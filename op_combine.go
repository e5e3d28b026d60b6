package frp

import "github.com/pkg/errors"

// combinerState is the shared Begin/End/Cancel transaction-counting core
// used by every Combine{2..6} (§4.12). A single external assignment that
// fans out to N parents raises the count above 1 during fan-in; the
// combiner emits exactly one downstream Begin when the count rises from
// 0 to 1, and exactly one downstream End/Cancel when it falls back to 0;
// intermediate fluctuations never leak downstream. This is the diamond
// glitch suppression §4.12 describes.
//
// canceled tracks whether any parent resolved as Cancel during the
// current round: a round where one parent Ends and a sibling Cancels
// must not resolve from the Ending parent's value alone; the combine
// function never sees a cross-section where one input is this round's
// fresh value and another is a stale cache from a prior round that this
// round explicitly rejected.
type combinerState struct {
	count       uint32
	needsUpdate bool
	canceled    bool
}

// begin handles a parent Begin. Returns true if the combiner itself
// should emit a downstream Begin (count transitioned 0 -> 1), and starts
// a fresh round's bookkeeping when it does.
func (c *combinerState) begin() bool {
	emit := c.count == 0
	if emit {
		c.needsUpdate = false
		c.canceled = false
	}
	c.count++
	return emit
}

// end handles a parent End: marks needsUpdate, then falls through to the
// same decrement logic as cancel.
func (c *combinerState) end() bool {
	c.needsUpdate = true
	return c.decrement()
}

// cancel handles a parent Cancel: marks the round as canceled (so
// resolve emits Cancel even if a sibling parent Ended this same round),
// then decrements.
func (c *combinerState) cancel() bool {
	c.canceled = true
	return c.decrement()
}

func (c *combinerState) decrement() bool {
	if c.count == 0 {
		panic(errors.New("frp: combiner transaction count underflow"))
	}
	c.count--
	return c.count == 0
}

// takeResolution consumes and clears this round's needsUpdate/canceled
// flags. Only called once the count has actually reached zero (see
// callers).
func (c *combinerState) takeResolution() (update, canceled bool) {
	update, canceled = c.needsUpdate, c.canceled
	c.needsUpdate, c.canceled = false, false
	return update, canceled
}

// resolveCombiner is the shared tail of every Combine{2..6}: called once
// a combiner's count has fallen back to zero. It emits End(v) if some
// parent admitted a value during the fan-in window, no parent in that
// same window canceled, and the combine function's inputs are all
// currently present; otherwise Cancel. Per §4.12's tie-break rule and
// DESIGN.md Open Question 2, v is always resampled from latest() now,
// never from whichever End transaction happened to trigger the resolve.
func resolveCombiner[R any](node *base[R], state *combinerState, latest func() LatestValue[R]) {
	update, canceled := state.takeResolution()
	if update && !canceled {
		if v, ok := latest().Get().Get(); ok {
			node.PushTransaction(End(v))
			return
		}
	}
	node.PushTransaction(Cancel[R]())
}

// Combiner2 combines two parents (§4.12, arity 2).
type Combiner2[A, B, R any] struct {
	*base[R]
	p1      Signal[A]
	p2      Signal[B]
	f       func(A, B) R
	state   combinerState
	unsubs  []func()
	priming bool
}

// Combine2 combines s1 and s2 with f, emitting at most one downstream
// End|Cancel per external assignment regardless of diamond depth (I4).
// Parents are subscribed through LatestOf so the tie-break rule (§4.12,
// DESIGN.md Open Question 2) always has a current sample to resolve
// against.
//
// Subscribing to p1 and p2 happens one at a time (there is no true
// concurrency here), so each parent that already has a value replays its
// own Begin/End independently; onAny swallows both while priming is set,
// then the hook does a single pull-based resolve once every parent is
// wired, so a fresh observer sees at most one combined priming instead of
// one per already-resolved parent.
func Combine2[A, B, R any](s1 Signal[A], s2 Signal[B], f func(A, B) R) *Combiner2[A, B, R] {
	c := &Combiner2[A, B, R]{
		base: newBase[R]("Combiner2"),
		p1:   LatestOf(s1),
		p2:   LatestOf(s2),
		f:    f,
	}
	c.base.setSubscriptionHooks(
		func() {
			c.priming = true
			c.unsubs = []func(){
				subscribeWeak(c.p1, c, (*Combiner2[A, B, R]).on1),
				subscribeWeak(c.p2, c, (*Combiner2[A, B, R]).on2),
			}
			c.priming = false
			if v, ok := c.LatestValue().Get().Get(); ok {
				c.PushTransaction(Begin[R]())
				c.PushTransaction(End(v))
			}
		},
		func() {
			for _, u := range c.unsubs {
				u()
			}
			c.unsubs = nil
		},
	)
	return c
}

func (c *Combiner2[A, B, R]) on1(t Transaction[A]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner2[A, B, R]) on2(t Transaction[B]) { c.onAny(t.IsBegin(), t.IsCancel()) }

func (c *Combiner2[A, B, R]) onAny(isBegin, isCancel bool) {
	if c.priming {
		return
	}
	switch {
	case isBegin:
		if c.state.begin() {
			c.PushTransaction(Begin[R]())
		}
	case isCancel:
		if c.state.cancel() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	default:
		if c.state.end() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	}
}

func (c *Combiner2[A, B, R]) LatestValue() LatestValue[R] {
	lv1, lv2 := c.p1.LatestValue(), c.p2.LatestValue()
	if !lv1.Has() || !lv2.Has() {
		return NoneValue[R]()
	}
	f := c.f
	return ComputedValue(func() R {
		a, _ := lv1.Get().Get()
		b, _ := lv2.Get().Get()
		return f(a, b)
	})
}

func (c *Combiner2[A, B, R]) AddObserver(cb func(Transaction[R])) uint64 {
	c.base.primeOnAdd(c.LatestValue(), cb)
	return c.base.insertObserver(cb)
}

func (c *Combiner2[A, B, R]) Close() {
	for _, u := range c.unsubs {
		u()
	}
	c.unsubs = nil
}

// Combiner3 combines three parents (§4.12, arity 3).
type Combiner3[A, B, C, R any] struct {
	*base[R]
	p1      Signal[A]
	p2      Signal[B]
	p3      Signal[C]
	f       func(A, B, C) R
	state   combinerState
	unsubs  []func()
	priming bool
}

func Combine3[A, B, C, R any](s1 Signal[A], s2 Signal[B], s3 Signal[C], f func(A, B, C) R) *Combiner3[A, B, C, R] {
	c := &Combiner3[A, B, C, R]{
		base: newBase[R]("Combiner3"),
		p1:   LatestOf(s1),
		p2:   LatestOf(s2),
		p3:   LatestOf(s3),
		f:    f,
	}
	c.base.setSubscriptionHooks(
		func() {
			c.priming = true
			c.unsubs = []func(){
				subscribeWeak(c.p1, c, (*Combiner3[A, B, C, R]).on1),
				subscribeWeak(c.p2, c, (*Combiner3[A, B, C, R]).on2),
				subscribeWeak(c.p3, c, (*Combiner3[A, B, C, R]).on3),
			}
			c.priming = false
			if v, ok := c.LatestValue().Get().Get(); ok {
				c.PushTransaction(Begin[R]())
				c.PushTransaction(End(v))
			}
		},
		func() {
			for _, u := range c.unsubs {
				u()
			}
			c.unsubs = nil
		},
	)
	return c
}

func (c *Combiner3[A, B, C, R]) on1(t Transaction[A]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner3[A, B, C, R]) on2(t Transaction[B]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner3[A, B, C, R]) on3(t Transaction[C]) { c.onAny(t.IsBegin(), t.IsCancel()) }

func (c *Combiner3[A, B, C, R]) onAny(isBegin, isCancel bool) {
	if c.priming {
		return
	}
	switch {
	case isBegin:
		if c.state.begin() {
			c.PushTransaction(Begin[R]())
		}
	case isCancel:
		if c.state.cancel() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	default:
		if c.state.end() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	}
}

func (c *Combiner3[A, B, C, R]) LatestValue() LatestValue[R] {
	lv1, lv2, lv3 := c.p1.LatestValue(), c.p2.LatestValue(), c.p3.LatestValue()
	if !lv1.Has() || !lv2.Has() || !lv3.Has() {
		return NoneValue[R]()
	}
	f := c.f
	return ComputedValue(func() R {
		a, _ := lv1.Get().Get()
		b, _ := lv2.Get().Get()
		d, _ := lv3.Get().Get()
		return f(a, b, d)
	})
}

func (c *Combiner3[A, B, C, R]) AddObserver(cb func(Transaction[R])) uint64 {
	c.base.primeOnAdd(c.LatestValue(), cb)
	return c.base.insertObserver(cb)
}

func (c *Combiner3[A, B, C, R]) Close() {
	for _, u := range c.unsubs {
		u()
	}
	c.unsubs = nil
}

// Combiner4 combines four parents (§4.12, arity 4).
type Combiner4[A, B, C, D, R any] struct {
	*base[R]
	p1      Signal[A]
	p2      Signal[B]
	p3      Signal[C]
	p4      Signal[D]
	f       func(A, B, C, D) R
	state   combinerState
	unsubs  []func()
	priming bool
}

func Combine4[A, B, C, D, R any](s1 Signal[A], s2 Signal[B], s3 Signal[C], s4 Signal[D], f func(A, B, C, D) R) *Combiner4[A, B, C, D, R] {
	c := &Combiner4[A, B, C, D, R]{
		base: newBase[R]("Combiner4"),
		p1:   LatestOf(s1),
		p2:   LatestOf(s2),
		p3:   LatestOf(s3),
		p4:   LatestOf(s4),
		f:    f,
	}
	c.base.setSubscriptionHooks(
		func() {
			c.priming = true
			c.unsubs = []func(){
				subscribeWeak(c.p1, c, (*Combiner4[A, B, C, D, R]).on1),
				subscribeWeak(c.p2, c, (*Combiner4[A, B, C, D, R]).on2),
				subscribeWeak(c.p3, c, (*Combiner4[A, B, C, D, R]).on3),
				subscribeWeak(c.p4, c, (*Combiner4[A, B, C, D, R]).on4),
			}
			c.priming = false
			if v, ok := c.LatestValue().Get().Get(); ok {
				c.PushTransaction(Begin[R]())
				c.PushTransaction(End(v))
			}
		},
		func() {
			for _, u := range c.unsubs {
				u()
			}
			c.unsubs = nil
		},
	)
	return c
}

func (c *Combiner4[A, B, C, D, R]) on1(t Transaction[A]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner4[A, B, C, D, R]) on2(t Transaction[B]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner4[A, B, C, D, R]) on3(t Transaction[C]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner4[A, B, C, D, R]) on4(t Transaction[D]) { c.onAny(t.IsBegin(), t.IsCancel()) }

func (c *Combiner4[A, B, C, D, R]) onAny(isBegin, isCancel bool) {
	if c.priming {
		return
	}
	switch {
	case isBegin:
		if c.state.begin() {
			c.PushTransaction(Begin[R]())
		}
	case isCancel:
		if c.state.cancel() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	default:
		if c.state.end() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	}
}

func (c *Combiner4[A, B, C, D, R]) LatestValue() LatestValue[R] {
	lv1, lv2, lv3, lv4 := c.p1.LatestValue(), c.p2.LatestValue(), c.p3.LatestValue(), c.p4.LatestValue()
	if !lv1.Has() || !lv2.Has() || !lv3.Has() || !lv4.Has() {
		return NoneValue[R]()
	}
	f := c.f
	return ComputedValue(func() R {
		a, _ := lv1.Get().Get()
		b, _ := lv2.Get().Get()
		d, _ := lv3.Get().Get()
		e, _ := lv4.Get().Get()
		return f(a, b, d, e)
	})
}

func (c *Combiner4[A, B, C, D, R]) AddObserver(cb func(Transaction[R])) uint64 {
	c.base.primeOnAdd(c.LatestValue(), cb)
	return c.base.insertObserver(cb)
}

func (c *Combiner4[A, B, C, D, R]) Close() {
	for _, u := range c.unsubs {
		u()
	}
	c.unsubs = nil
}

// Combiner5 combines five parents (§4.12, arity 5).
type Combiner5[A, B, C, D, E, R any] struct {
	*base[R]
	p1      Signal[A]
	p2      Signal[B]
	p3      Signal[C]
	p4      Signal[D]
	p5      Signal[E]
	f       func(A, B, C, D, E) R
	state   combinerState
	unsubs  []func()
	priming bool
}

func Combine5[A, B, C, D, E, R any](s1 Signal[A], s2 Signal[B], s3 Signal[C], s4 Signal[D], s5 Signal[E], f func(A, B, C, D, E) R) *Combiner5[A, B, C, D, E, R] {
	c := &Combiner5[A, B, C, D, E, R]{
		base: newBase[R]("Combiner5"),
		p1:   LatestOf(s1),
		p2:   LatestOf(s2),
		p3:   LatestOf(s3),
		p4:   LatestOf(s4),
		p5:   LatestOf(s5),
		f:    f,
	}
	c.base.setSubscriptionHooks(
		func() {
			c.priming = true
			c.unsubs = []func(){
				subscribeWeak(c.p1, c, (*Combiner5[A, B, C, D, E, R]).on1),
				subscribeWeak(c.p2, c, (*Combiner5[A, B, C, D, E, R]).on2),
				subscribeWeak(c.p3, c, (*Combiner5[A, B, C, D, E, R]).on3),
				subscribeWeak(c.p4, c, (*Combiner5[A, B, C, D, E, R]).on4),
				subscribeWeak(c.p5, c, (*Combiner5[A, B, C, D, E, R]).on5),
			}
			c.priming = false
			if v, ok := c.LatestValue().Get().Get(); ok {
				c.PushTransaction(Begin[R]())
				c.PushTransaction(End(v))
			}
		},
		func() {
			for _, u := range c.unsubs {
				u()
			}
			c.unsubs = nil
		},
	)
	return c
}

func (c *Combiner5[A, B, C, D, E, R]) on1(t Transaction[A]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner5[A, B, C, D, E, R]) on2(t Transaction[B]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner5[A, B, C, D, E, R]) on3(t Transaction[C]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner5[A, B, C, D, E, R]) on4(t Transaction[D]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner5[A, B, C, D, E, R]) on5(t Transaction[E]) { c.onAny(t.IsBegin(), t.IsCancel()) }

func (c *Combiner5[A, B, C, D, E, R]) onAny(isBegin, isCancel bool) {
	if c.priming {
		return
	}
	switch {
	case isBegin:
		if c.state.begin() {
			c.PushTransaction(Begin[R]())
		}
	case isCancel:
		if c.state.cancel() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	default:
		if c.state.end() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	}
}

func (c *Combiner5[A, B, C, D, E, R]) LatestValue() LatestValue[R] {
	lv1, lv2, lv3, lv4, lv5 := c.p1.LatestValue(), c.p2.LatestValue(), c.p3.LatestValue(), c.p4.LatestValue(), c.p5.LatestValue()
	if !lv1.Has() || !lv2.Has() || !lv3.Has() || !lv4.Has() || !lv5.Has() {
		return NoneValue[R]()
	}
	f := c.f
	return ComputedValue(func() R {
		a, _ := lv1.Get().Get()
		b, _ := lv2.Get().Get()
		d, _ := lv3.Get().Get()
		e, _ := lv4.Get().Get()
		g, _ := lv5.Get().Get()
		return f(a, b, d, e, g)
	})
}

func (c *Combiner5[A, B, C, D, E, R]) AddObserver(cb func(Transaction[R])) uint64 {
	c.base.primeOnAdd(c.LatestValue(), cb)
	return c.base.insertObserver(cb)
}

func (c *Combiner5[A, B, C, D, E, R]) Close() {
	for _, u := range c.unsubs {
		u()
	}
	c.unsubs = nil
}

// Combiner6 combines six parents (§4.12, arity 6; the upper bound the
// spec calls for).
type Combiner6[A, B, C, D, E, F, R any] struct {
	*base[R]
	p1      Signal[A]
	p2      Signal[B]
	p3      Signal[C]
	p4      Signal[D]
	p5      Signal[E]
	p6      Signal[F]
	f       func(A, B, C, D, E, F) R
	state   combinerState
	unsubs  []func()
	priming bool
}

func Combine6[A, B, C, D, E, F, R any](s1 Signal[A], s2 Signal[B], s3 Signal[C], s4 Signal[D], s5 Signal[E], s6 Signal[F], f func(A, B, C, D, E, F) R) *Combiner6[A, B, C, D, E, F, R] {
	c := &Combiner6[A, B, C, D, E, F, R]{
		base: newBase[R]("Combiner6"),
		p1:   LatestOf(s1),
		p2:   LatestOf(s2),
		p3:   LatestOf(s3),
		p4:   LatestOf(s4),
		p5:   LatestOf(s5),
		p6:   LatestOf(s6),
		f:    f,
	}
	c.base.setSubscriptionHooks(
		func() {
			c.priming = true
			c.unsubs = []func(){
				subscribeWeak(c.p1, c, (*Combiner6[A, B, C, D, E, F, R]).on1),
				subscribeWeak(c.p2, c, (*Combiner6[A, B, C, D, E, F, R]).on2),
				subscribeWeak(c.p3, c, (*Combiner6[A, B, C, D, E, F, R]).on3),
				subscribeWeak(c.p4, c, (*Combiner6[A, B, C, D, E, F, R]).on4),
				subscribeWeak(c.p5, c, (*Combiner6[A, B, C, D, E, F, R]).on5),
				subscribeWeak(c.p6, c, (*Combiner6[A, B, C, D, E, F, R]).on6),
			}
			c.priming = false
			if v, ok := c.LatestValue().Get().Get(); ok {
				c.PushTransaction(Begin[R]())
				c.PushTransaction(End(v))
			}
		},
		func() {
			for _, u := range c.unsubs {
				u()
			}
			c.unsubs = nil
		},
	)
	return c
}

func (c *Combiner6[A, B, C, D, E, F, R]) on1(t Transaction[A]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner6[A, B, C, D, E, F, R]) on2(t Transaction[B]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner6[A, B, C, D, E, F, R]) on3(t Transaction[C]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner6[A, B, C, D, E, F, R]) on4(t Transaction[D]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner6[A, B, C, D, E, F, R]) on5(t Transaction[E]) { c.onAny(t.IsBegin(), t.IsCancel()) }
func (c *Combiner6[A, B, C, D, E, F, R]) on6(t Transaction[F]) { c.onAny(t.IsBegin(), t.IsCancel()) }

func (c *Combiner6[A, B, C, D, E, F, R]) onAny(isBegin, isCancel bool) {
	if c.priming {
		return
	}
	switch {
	case isBegin:
		if c.state.begin() {
			c.PushTransaction(Begin[R]())
		}
	case isCancel:
		if c.state.cancel() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	default:
		if c.state.end() {
			resolveCombiner(c.base, &c.state, c.LatestValue)
		}
	}
}

func (c *Combiner6[A, B, C, D, E, F, R]) LatestValue() LatestValue[R] {
	lv1, lv2, lv3 := c.p1.LatestValue(), c.p2.LatestValue(), c.p3.LatestValue()
	lv4, lv5, lv6 := c.p4.LatestValue(), c.p5.LatestValue(), c.p6.LatestValue()
	if !lv1.Has() || !lv2.Has() || !lv3.Has() || !lv4.Has() || !lv5.Has() || !lv6.Has() {
		return NoneValue[R]()
	}
	f := c.f
	return ComputedValue(func() R {
		a, _ := lv1.Get().Get()
		b, _ := lv2.Get().Get()
		d, _ := lv3.Get().Get()
		e, _ := lv4.Get().Get()
		g, _ := lv5.Get().Get()
		h, _ := lv6.Get().Get()
		return f(a, b, d, e, g, h)
	})
}

func (c *Combiner6[A, B, C, D, E, F, R]) AddObserver(cb func(Transaction[R])) uint64 {
	c.base.primeOnAdd(c.LatestValue(), cb)
	return c.base.insertObserver(cb)
}

func (c *Combiner6[A, B, C, D, E, F, R]) Close() {
	for _, u := range c.unsubs {
		u()
	}
	c.unsubs = nil
}
