package frp

import "github.com/pkg/errors"

// txCounter is the minimal Begin/End transaction-counting primitive
// shared by Gate and Throttle (§4.14, §4.15): unlike combinerState it
// carries no needsUpdate flag, since both Gate and Throttle decide what
// to emit from their own deferred-value slot rather than from a
// needsUpdate bit.
type txCounter struct {
	count uint32
}

// begin reports whether the count transitioned 0 -> 1 (i.e. whether the
// owner should emit a downstream Begin).
func (c *txCounter) begin() bool {
	emit := c.count == 0
	c.count++
	return emit
}

// end decrements and reports whether the count reached zero (i.e.
// whether the owner should now resolve and emit downstream).
func (c *txCounter) end() bool {
	if c.count == 0 {
		panic(errors.New("frp: transaction count underflow"))
	}
	c.count--
	return c.count == 0
}
