package frp

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// logger is the package-level diagnostic logger. It defaults to a no-op
// logger: the engine has no recovery policy (spec §7) and doesn't log on
// the hot path, so by default it stays silent. SetLogger lets a host
// application observe the rare diagnostic sites: a rejected reentrant
// Input assignment, and a stale Throttle timer firing after its node's
// upstream subscription was already torn down.
var loggerBox atomic.Pointer[zap.Logger]

func init() {
	loggerBox.Store(zap.NewNop())
}

// SetLogger installs l as the package-level diagnostic logger. Passing
// nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerBox.Store(l)
}

func logger() *zap.Logger {
	return loggerBox.Load()
}

// debugNamed is satisfied by every node; zapNode turns one into a zap
// field without every call site needing to know the node's value type.
type debugNamed interface {
	DebugName() string
}

func zapNode(n debugNamed) zap.Field {
	return zap.String("node", n.DebugName())
}

// newNodeID returns a short debug identifier for a node, used only in
// zap log fields (see DebugName). It carries no protocol meaning and is
// never used for equality, hashing, or observer bookkeeping; KeyedSet's
// own uint64 keys remain the sole identity used for that.
func newNodeID() string {
	return uuid.NewString()[:8]
}
