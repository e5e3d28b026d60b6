// Package queuesched is a reference Clock/Scheduler pair for frp.Throttle.
//
// frp's engine runs on a single thread and takes no locks; Throttle's
// timer callback must land back on that thread rather than fire
// directly from the runtime timer goroutine. Queue achieves this the
// way the coregx-signals effect runner achieves safe callback dispatch,
// panic-recovered, logged, and isolated per callback, except that here
// the callback is queued rather than invoked inline, and a caller-owned
// Drain loop is what actually runs it on the engine thread.
package queuesched

import (
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/zap"
)

// System is a Clock backed by the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Queue is a Scheduler that arms real time.Timers but defers running
// the scheduled task until Drain is called, so the task always executes
// on whichever goroutine owns the frp engine rather than on a timer
// goroutine.
type Queue struct {
	mu      sync.Mutex
	timers  map[uint64]*time.Timer
	nextID  uint64
	pending chan func()
	log     *zap.Logger
}

// NewQueue creates a Queue. log may be nil, in which case a no-op
// logger is used.
func NewQueue(log *zap.Logger) *Queue {
	if log == nil {
		log = zap.NewNop()
	}
	return &Queue{
		timers:  make(map[uint64]*time.Timer),
		pending: make(chan func(), 64),
		log:     log,
	}
}

// ScheduleOnce arms a timer that, after delay, enqueues task for a
// future Drain call. The returned handle is the uint64 id Cancel needs.
func (q *Queue) ScheduleOnce(delay time.Duration, task func()) any {
	q.mu.Lock()
	id := q.nextID
	q.nextID++
	timer := time.AfterFunc(delay, func() {
		q.enqueue(task)
	})
	q.timers[id] = timer
	q.mu.Unlock()
	return id
}

// Cancel stops the timer identified by handle, if it hasn't already
// fired. Safe to call on an already-fired or already-canceled handle.
func (q *Queue) Cancel(handle any) {
	id, ok := handle.(uint64)
	if !ok {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
}

func (q *Queue) enqueue(task func()) {
	select {
	case q.pending <- task:
	default:
		q.log.Warn("queuesched: pending queue full, dropping timer task")
	}
}

// Drain runs every task currently queued, on the calling goroutine.
// Callers should call Drain from the same goroutine that drives the frp
// engine, typically in a loop alongside whatever else feeds that
// engine's Inputs. Each task is panic-recovered and logged individually
// so one bad task can't take down the drain loop.
func (q *Queue) Drain() {
	for {
		select {
		case task := <-q.pending:
			q.runOne(task)
		default:
			return
		}
	}
}

func (q *Queue) runOne(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Error("queuesched: panic in scheduled task",
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	task()
}
