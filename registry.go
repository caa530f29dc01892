package ezre

import (
	"runtime"
	"sync"
	"weak"
)

// instances tracks every Expr ever built, keyed by a monotonically
// increasing sequence id and held by weak handle only. Its single job is to
// back stable default display names such as "#3"; it never extends a node's
// lifetime, and an entry is removed once the node is collected.
var instances = struct {
	sync.Mutex
	next uint64
	byID map[uint64]weak.Pointer[Expr]
}{byID: make(map[uint64]weak.Pointer[Expr])}

// register assigns e the next sequence id and records a weak handle to it.
// A cleanup removes the entry when e is collected.
func register(e *Expr) uint64 {
	instances.Lock()
	defer instances.Unlock()

	id := instances.next
	instances.next++
	instances.byID[id] = weak.Make(e)
	runtime.AddCleanup(e, unregister, id)

	return id
}

func unregister(id uint64) {
	instances.Lock()
	defer instances.Unlock()

	delete(instances.byID, id)
}

// lookup returns the live Expr registered under id, if any. A handle whose
// target is already gone is pruned on the spot without waiting for its
// cleanup to run.
func lookup(id uint64) (*Expr, bool) {
	instances.Lock()
	defer instances.Unlock()

	h, ok := instances.byID[id]
	if !ok {
		return nil, false
	}

	e := h.Value()
	if e == nil {
		delete(instances.byID, id)
		return nil, false
	}

	return e, true
}
