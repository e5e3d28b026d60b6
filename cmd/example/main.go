package main

import (
	"fmt"
	"time"

	"github.com/coregx/frp"
	"github.com/coregx/frp/queuesched"
)

func main() {
	demoMapAndOutput()
	demoCombine()
	demoOnChangeAndLatest()
	demoGate()
	demoBoolHelpers()
	demoThrottle()
	fmt.Println("\n=== Demo Complete ===")
}

func demoMapAndOutput() {
	fmt.Println("=== Phase 1: Input, Map, Output ===")

	count := frp.NewInput(0)
	doubled := frp.Map(count, func(v int) int { return v * 2 })

	// NewOutput is this package's stand-in for the "-->" sugar: it's a
	// plain callback fired on every admitted End.
	out := frp.NewOutput[int](doubled, func(v int) {
		fmt.Println("doubled changed:", v)
	})
	defer out.Close()

	count.Set(5)  // Prints: doubled changed: 10
	count.Set(10) // Prints: doubled changed: 20
}

func demoCombine() {
	fmt.Println("\n=== Phase 2: Combine ===")

	firstName := frp.NewInput("John")
	lastName := frp.NewInput("Doe")

	fullName := frp.Combine2(firstName, lastName, func(f, l string) string {
		return f + " " + l
	})

	out := frp.NewOutput[string](fullName, func(v string) {
		fmt.Println("full name:", v)
	})
	defer out.Close()

	firstName.Set("Jane") // Prints: full name: Jane Doe
	lastName.Set("Smith") // Prints: full name: Jane Smith
}

func demoOnChangeAndLatest() {
	fmt.Println("\n=== Phase 3: OnChange and Latest ===")

	raw := frp.NewInput(5)
	// OnChangeOf suppresses re-emission when a new assignment carries an
	// equal value.
	changed := frp.OnChangeOf(raw)

	out := frp.NewOutput[int](changed, func(v int) {
		fmt.Println("changed to:", v)
	})
	defer out.Close()

	raw.Set(5)  // no output: same value
	raw.Set(10) // Prints: changed to: 10

	// Latest makes any signal's most recent End pull-queryable, even one
	// (like a Filter) whose default LatestValue is None.
	evens := frp.NewFilter(raw, func(v int) bool { return v%2 == 0 })
	latestEven := frp.LatestOf[int](evens)
	// Latest subscribes to its parent lazily, so it only caches while
	// something observes it.
	key := latestEven.AddObserver(func(frp.Transaction[int]) {})
	defer latestEven.RemoveObserver(key)
	raw.Set(7)  // odd, filtered out; latestEven keeps its old value
	raw.Set(12) // even, passes through

	if v, ok := latestEven.LatestValue().Get().Get(); ok {
		fmt.Println("latest even value:", v)
	}
}

func demoGate() {
	fmt.Println("\n=== Phase 4: Gate ===")

	source := frp.NewInput("payload-1")
	open := frp.NewInput(false)

	gated := frp.GateOf[string](source, open)
	out := frp.NewOutput[string](gated, func(v string) {
		fmt.Println("gated value released:", v)
	})
	defer out.Close()

	source.Set("payload-2") // gate closed: deferred
	open.Set(true)          // Prints: gated value released: payload-2
	source.Set("payload-3") // gate open: released
}

func demoBoolHelpers() {
	fmt.Println("\n=== Phase 5: Boolean helpers ===")

	ready := frp.NewInput(false)
	healthy := frp.NewInput(true)

	live := frp.And(ready, healthy)
	out := frp.NewOutput[bool](live, func(v bool) {
		fmt.Println("live:", v)
	})
	defer out.Close()

	stop := frp.OnRisingEdge(live, func() {
		fmt.Println("edge: went live")
	})
	defer stop.Close()

	ready.Set(true) // live becomes true: Prints "live: true" and the edge
}

func demoThrottle() {
	fmt.Println("\n=== Phase 6: Throttle ===")

	clock := queuesched.System{}
	sched := queuesched.NewQueue(nil)

	ticks := frp.NewInput(0)
	throttled := frp.NewThrottle[int](ticks, 50*time.Millisecond, clock, sched)

	out := frp.NewOutput[int](throttled, func(v int) {
		fmt.Println("throttled tick:", v)
	})
	defer out.Close()

	// Two rapid ticks within the window: only the second survives, and it
	// arrives once the window elapses and sched.Drain runs its timer task.
	ticks.Set(1)
	ticks.Set(2)

	time.Sleep(60 * time.Millisecond)
	sched.Drain()
}
