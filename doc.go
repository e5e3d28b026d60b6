// Package frp is a single-threaded, push-pull functional reactive core.
//
// Every node in a graph is a Signal[V]: a value that changes over time,
// observed by pushing Transaction[V] values (Begin/End/Cancel) through
// a two-phase propagation protocol, and sampled by pulling a
// LatestValue[V] on demand. The two halves compose: a Map derived from
// an Input reacts to pushes, but also answers LatestValue() pulls
// without ever having been pushed into directly.
//
// # Core types
//
// Input[V] is the only node that originates change; everything else is
// derived. Const[V] and Never[V] are degenerate leaves: a fixed value
// and a value that is never present, respectively.
//
// Receiver[V], created with NewOutput or NewWillOutput, is this
// package's stand-in for the infix sugar a language with operator
// overloading might spell as "-->": a plain function callback
// subscribed to a signal's End (NewOutput) or Begin (NewWillOutput)
// transactions. Input[V].Set and Input[V].Assign play the role "<--"
// would: they push a new value through the transaction protocol.
//
// # Transactions and glitch freedom
//
// A derived node may have more than one path back to a shared ancestor
// (a diamond). Operators that fan in (the Combiner family, Gate,
// Throttle) count Begin/End/Cancel pairs per parent so that a single
// upstream transaction resolves into exactly one downstream transaction,
// never one per path. See combinerState and txCounter.
//
// # Embedding is not virtual dispatch
//
// Every concrete node embeds *base[V] for its observer bookkeeping.
// Go's embedding promotes methods by delegation, not override: base's
// own AddObserver, if left unembedded-through, always primes a new
// observer with base's own (always-None) LatestValue, never a subtype's
// override. Every type in this package whose LatestValue can report a
// value also defines its own AddObserver that primes from its own
// LatestValue before delegating storage to base.insertObserver (Event,
// whose override always reports None, keeps base's). See signal.go.
//
// # Weak back-references
//
// An operator subscribing to a parent holds only a weak.Pointer to
// itself inside the subscription closure (subscribeWeak), so the
// parent-to-child edge never keeps a child alive on its own; only the
// owner's Close, or a real downstream reference, does. This lets
// intermediate nodes in a long derivation chain be collected once
// nothing else references them, even while the parent signal lives on.
package frp
