package frp

import "time"

// Clock and Scheduler are the external collaborators Throttle consumes
// (§6); this package defines the contract only; a reference
// implementation lives in the companion queuesched package, kept
// explicitly out of this core package per spec §1's Out-of-scope list.
type Clock interface {
	Now() time.Time
}

// TimerHandle is an opaque token returned by Scheduler.ScheduleOnce and
// passed back to Cancel. Its concrete type is entirely up to the
// Scheduler implementation.
type TimerHandle = any

// Scheduler schedules a one-shot task. Implementations MUST invoke task
// on the engine's single propagation thread (§5); Throttle itself takes
// no locks and assumes that contract holds.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, task func()) TimerHandle
	Cancel(handle TimerHandle)
}

// Throttle enforces a minimum interval between emissions (§4.15). Only
// the most recently deferred value survives a throttle window: if a new
// End supersedes one still waiting on a timer, the stale one resolves as
// a Cancel and the new value takes its place (§9 note 1).
type Throttle[V any] struct {
	*base[V]
	parent      Signal[V]
	minInterval time.Duration
	clock       Clock
	scheduler   Scheduler

	lastEmitTime time.Time
	hasEmitted   bool

	timerActive bool
	timerHandle TimerHandle
	timerGen    uint64
	pending     V

	counter txCounter
	unsub   func()
}

// NewThrottle derives parent so that no two End emissions are closer
// together than minInterval, using clock for "now" and scheduler to
// defer late arrivals.
func NewThrottle[V any](parent Signal[V], minInterval time.Duration, clock Clock, scheduler Scheduler) *Throttle[V] {
	th := &Throttle[V]{
		base:        newBase[V]("Throttle"),
		parent:      parent,
		minInterval: minInterval,
		clock:       clock,
		scheduler:   scheduler,
	}
	th.base.setSubscriptionHooks(
		func() { th.unsub = subscribeWeak(parent, th, (*Throttle[V]).onParent) },
		func() { th.unsub(); th.unsub = nil },
	)
	return th
}

func (th *Throttle[V]) onParent(t Transaction[V]) {
	switch {
	case t.IsBegin():
		if th.counter.begin() {
			th.PushTransaction(Begin[V]())
		}
	case t.IsCancel():
		if th.counter.end() {
			th.PushTransaction(Cancel[V]())
		}
	default:
		v, _ := t.End()
		th.preemptTimer()

		now := th.clock.Now()
		if th.hasEmitted && now.Sub(th.lastEmitTime) <= th.minInterval {
			th.armTimer(th.minInterval-now.Sub(th.lastEmitTime), v)
			return
		}
		th.lastEmitTime = now
		th.hasEmitted = true
		if th.counter.end() {
			th.PushTransaction(End(v))
		}
	}
}

// preemptTimer cancels any still-armed timer from a previous End that
// this new End supersedes, resolving its outstanding transaction slot as
// a Cancel (§4.15: "suspend timer; if timer_active, emit pending
// Cancel... clear timer_active").
func (th *Throttle[V]) preemptTimer() {
	if !th.timerActive {
		return
	}
	th.scheduler.Cancel(th.timerHandle)
	th.timerActive = false
	if th.counter.end() {
		th.PushTransaction(Cancel[V]())
	}
}

func (th *Throttle[V]) armTimer(delay time.Duration, v V) {
	th.timerGen++
	gen := th.timerGen
	th.timerActive = true
	th.pending = v
	th.timerHandle = th.scheduler.ScheduleOnce(delay, func() {
		th.onTimerFire(gen)
	})
}

func (th *Throttle[V]) onTimerFire(gen uint64) {
	if !th.timerActive || gen != th.timerGen {
		logger().Debug("stale throttle timer fire ignored", zapNode(th))
		return
	}
	th.timerActive = false
	th.lastEmitTime = th.clock.Now()
	th.hasEmitted = true
	v := th.pending
	if th.counter.end() {
		th.PushTransaction(End(v))
	}
}

// Close cancels any outstanding timer and the parent subscription, if
// one is currently live.
func (th *Throttle[V]) Close() {
	if th.timerActive {
		th.scheduler.Cancel(th.timerHandle)
		th.timerActive = false
	}
	if th.unsub != nil {
		th.unsub()
		th.unsub = nil
	}
}
