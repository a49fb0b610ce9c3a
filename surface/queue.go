package surface

import (
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/render"
)

// ErrPendingFull is returned by a handle mutator when the pending-update
// queue has no free slot for a surface that has nothing pending yet. The
// policy is reject-new: the mutation is dropped at the call site and
// nothing already queued is disturbed.
var ErrPendingFull = errors.New("surface: pending update queue full")

// maxPending bounds the update queue. Merging keeps one entry per surface,
// so the queue only fills when this many distinct surfaces change between
// two commits.
const maxPending = 32

// update is a sparse patch against one binding. Each field is applied only
// if its "set" flag is on; shaderSet distinguishes "install this shader"
// and "clear the shader" (set with a nil shader) from "leave it alone".
type update struct {
	slot       int
	shader     render.Shader
	rect       geometry.VirtualRect
	opacity    uint8
	offset     geometry.VirtualCoord
	visible    bool
	shaderSet  bool
	rectSet    bool
	opacitySet bool
	offsetSet  bool
	visibleSet bool
}

// merge folds a later patch for the same slot into u, last write wins per
// field.
func (u *update) merge(other *update) {
	if other.shaderSet {
		u.shader = other.shader
		u.shaderSet = true
	}
	if other.rectSet {
		u.rect = other.rect
		u.rectSet = true
	}
	if other.opacitySet {
		u.opacity = other.opacity
		u.opacitySet = true
	}
	if other.offsetSet {
		u.offset = other.offset
		u.offsetSet = true
	}
	if other.visibleSet {
		u.visible = other.visible
		u.visibleSet = true
	}
}

// updateQueue is the shared, spin-lock guarded FIFO of pending updates.
// The lock protects only the FIFO and the dirty flag; critical sections
// are a field merge or a bounded push, a handful of instructions either
// way. At most one entry exists per slot, which bounds queue growth
// independent of how often producers mutate.
type updateQueue struct {
	lock    spinLock
	pending [maxPending]update
	n       int
	dirty   atomic.Bool
}

// push enqueues a patch, merging into this slot's existing entry if one is
// already pending.
func (q *updateQueue) push(u *update) error {
	q.lock.acquire()
	defer q.lock.release()

	for i := 0; i < q.n; i++ {
		if q.pending[i].slot == u.slot {
			q.pending[i].merge(u)
			return nil
		}
	}
	if q.n == maxPending {
		return ErrPendingFull
	}
	q.pending[q.n] = *u
	q.n++
	q.dirty.Store(true)
	return nil
}

// take drains the queue if anything is pending, swapping in an empty FIFO
// under the lock so producers keep enqueuing without contending with the
// drain. The drained patches are returned in FIFO order.
func (q *updateQueue) take(into []update) []update {
	if !q.dirty.Load() {
		return into[:0]
	}
	q.lock.acquire()
	defer q.lock.release()

	into = append(into[:0], q.pending[:q.n]...)
	for i := 0; i < q.n; i++ {
		q.pending[i] = update{}
	}
	q.n = 0
	q.dirty.Store(false)
	return into
}

// spinLock is a non-reentrant compare-and-swap lock. The critical sections
// it guards are O(1), so busy-waiting is acceptable; a lock holder must
// not be starved by a higher-priority non-yielding waiter, which is the
// caller's scheduling responsibility.
type spinLock struct {
	status atomic.Uint32
}

func (l *spinLock) acquire() {
	for !l.status.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

func (l *spinLock) release() {
	l.status.Store(0)
}
