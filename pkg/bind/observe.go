package bind

import "time"

// Observer receives engine events: writes, recomputations and
// notification fan-out. Implementations must be cheap; the engine calls
// them inline on the propagation path.
type Observer interface {
	// NodeWritten reports a store attempt. changed is false when the
	// comparison policy rejected the write.
	NodeWritten(id uint64, changed bool)

	// NodeRecomputed reports an expression recomputation. deferred is
	// true when the recomputation was triggered by Get on a dirty lazy
	// expression rather than by an eager notification.
	NodeRecomputed(id uint64, deferred bool, d time.Duration)

	// NodeNotified reports the fan-out of an accepted write to the
	// node's dependents.
	NodeNotified(id uint64, dependents int)
}

// observer is the installed package observer. Set it at startup, before
// the graph is built, and do not change it during runtime.
var observer Observer

// SetObserver installs the package observer. Pass nil to remove it.
func SetObserver(o Observer) {
	observer = o
}

func observeWrite(id uint64, changed bool) {
	if observer != nil {
		observer.NodeWritten(id, changed)
	}
}

func observeNotify(id uint64, dependents int) {
	if observer != nil {
		observer.NodeNotified(id, dependents)
	}
}
