package frp

// keyedSet is an insertion-stable mapping from monotonically increasing
// uint64 keys to callbacks. It backs every signal's observer list (§2.1
// of the design doc). Keys are never reused within one instance, and
// iteration via Each is safe against add/remove from inside the callback
// being iterated: Each snapshots the key order before invoking anything,
// so a removal doesn't skip a not-yet-visited observer and an addition
// mid-iteration isn't visited until the next push.
type keyedSet[V any] struct {
	items   map[uint64]V
	order   []uint64
	nextKey uint64
}

func newKeyedSet[V any]() *keyedSet[V] {
	return &keyedSet[V]{items: make(map[uint64]V)}
}

// add inserts v and returns its key.
func (s *keyedSet[V]) add(v V) uint64 {
	key := s.nextKey
	s.nextKey++
	s.items[key] = v
	s.order = append(s.order, key)
	return key
}

// remove deregisters key. Idempotent: removing an unknown or
// already-removed key is a no-op.
func (s *keyedSet[V]) remove(key uint64) {
	if _, ok := s.items[key]; !ok {
		return
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// each invokes fn for every element present at the moment each is called,
// in insertion order, over a snapshot of the key list taken up front.
func (s *keyedSet[V]) each(fn func(V)) {
	keys := make([]uint64, len(s.order))
	copy(keys, s.order)
	for _, k := range keys {
		if v, ok := s.items[k]; ok {
			fn(v)
		}
	}
}

func (s *keyedSet[V]) len() int {
	return len(s.order)
}
