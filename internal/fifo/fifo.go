// Package fifo implements the generic, thread-safe, reference-counted,
// fan-out FIFO primitive described by the txfifo module: a bounded queue
// of item handles protected by a mutex and two condition variables, plus
// two buffer lists implementing mirror-based fan-out to downstream FIFOs.
//
// Fifo is parameterized over an item type T and the clone/free/is-nil
// operations supplied at construction (ItemOps) — the Go equivalent of
// the original's macro-generated instantiation over AVFrame/AVPacket.
package fifo

import "sync"

// Fifo is the core bounded, mirrored queue. The zero value is not
// usable; construct one with New.
type Fifo[T any] struct {
	opaque string
	ops    ItemOps[T]

	mu      sync.Mutex
	condIn  *sync.Cond
	condOut *sync.Cond

	queued     []T
	maxQueued  int
	blockFlags BlockFlags
	poked      bool

	dests   *BufferList[*Fifo[T]]
	sources *BufferList[*Fifo[T]]

	pushed    uint64
	popped    uint64
	dropped   uint64
	pokes     uint64
	highWater int
}

// New creates a FIFO owned by opaque (used only for diagnostic logging),
// with the given capacity policy and block flags. maxQueued is -1 for
// unbounded, 0 to never buffer locally, or N>0 to refuse a push (or, with
// BlockMaxOutput, wait before it) once more than N+1 items are queued, so
// a bounded FIFO holds up to N+2 items (see Fifo.IsFull).
//
// Go's allocator has no recoverable out-of-memory signal the way the
// original's av_mallocz/NULL-return does, so unlike fifo_create this
// never returns a null handle; allocation failure panics, as it does
// throughout ordinary Go code.
func New[T any](opaque string, maxQueued int, blockFlags BlockFlags, ops ItemOps[T]) *Fifo[T] {
	f := &Fifo[T]{
		opaque:     opaque,
		ops:        ops,
		maxQueued:  maxQueued,
		blockFlags: blockFlags,
		dests:      NewBufferList[*Fifo[T]](),
		sources:    NewBufferList[*Fifo[T]](),
	}
	f.condIn = sync.NewCond(&f.mu)
	f.condOut = sync.NewCond(&f.mu)
	return f
}

// Close frees every queued item and clears the dests/sources lists.
// Peers referenced by those lists are only unreferenced, never closed
// themselves — callers should call UnmirrorAll before Close to detach
// peers cleanly and wake any blocked consumer.
func (f *Fifo[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sources.Free()
	f.dests.Free()

	for _, item := range f.queued {
		f.ops.Free(item)
	}
	f.queued = nil
}

// Mirror links src into dst: every push to src will also push to dst.
// The two buffer-list appends are independent; each list is individually
// thread-safe, so no lock is held across both.
func Mirror[T any](dst, src *Fifo[T]) error {
	if dst == nil || src == nil {
		return ErrInvalidArgument
	}
	verbosef("mirroring output FIFO from %q to %q", src.opaque, dst.opaque)
	dst.sources.Append(src)
	src.dests.Append(dst)
	return nil
}

// Unmirror removes a single mirror link established by Mirror, matching
// peers by identity (pointer equality), not by value.
func Unmirror[T any](dst, src *Fifo[T]) error {
	if dst == nil || src == nil {
		return ErrInvalidArgument
	}
	verbosef("unmirroring output FIFO from %q to %q", src.opaque, dst.opaque)
	src.dests.Pop(Identity(dst))
	dst.sources.Pop(Identity(src))
	return nil
}

// UnmirrorAll detaches f from every mirrored peer in both directions.
// For each destination removed, the destination's cond_in is signaled so
// a consumer blocked in Pop/Peek on it wakes and can re-check its state —
// this is what makes hot-swapping a node mid-stream safe.
func (f *Fifo[T]) UnmirrorAll() {
	verbosef("unmirroring all from %q", f.opaque)

	f.mu.Lock()
	defer f.mu.Unlock()

	for {
		src, ok := f.sources.PopFirst()
		if !ok {
			break
		}
		src.dests.Pop(Identity(f))
	}

	for {
		dst, ok := f.dests.PopFirst()
		if !ok {
			break
		}
		dst.sources.Pop(Identity(f))
		dst.condIn.Signal()
	}
}

// Push enqueues item locally (subject to capacity policy) and fans it
// out to every mirrored destination, in the order they were mirrored,
// before returning. item may be the zero value of T (nil, for pointer
// item types) as an end-of-stream sentinel: it is never enqueued on f
// itself, regardless of capacity, but every destination reached by the
// fan-out enqueues it (unless its max_queued is 0) so its consumer pops it.
//
// The lock is held across the entire fan-out: a destination's Push runs
// while f's own lock is held. This gives atomic visibility of an item
// across the fan-out tree at the cost of requiring the mirror graph to
// stay acyclic — a cycle deadlocks.
func (f *Fifo[T]) Push(item T) error {
	return f.push(item, true)
}

// push is Push's body; origin is true only on the FIFO the caller pushed
// into, where a nil sentinel is not enqueued.
func (f *Fifo[T]) push(item T, origin bool) error {
	f.mu.Lock()

	if f.maxQueued != 0 {
		isNil := f.ops.IsNil(item)
		if !isNil || !origin {
			if !isNil && f.maxQueued > 0 && len(f.queued) > f.maxQueued+1 {
				if !f.blockFlags.Has(BlockMaxOutput) {
					f.dropped++
					f.mu.Unlock()
					return ErrQueueFull
				}
				// Single wait, not a loop: one wake is taken as
				// permission to proceed even if still over capacity.
				f.condOut.Wait()
			}

			f.queued = append(f.queued, f.ops.Clone(item))
			f.pushed++
			if len(f.queued) > f.highWater {
				f.highWater = len(f.queued)
			}
			f.condIn.Signal()
		}
	}

	var err error
	for _, dst := range f.dests.Snapshot() {
		ret := dst.push(item, false)
		if ret == ErrOutOfMemory {
			err = ret
			break
		}
		if ret != nil && err == nil {
			err = ret
		}
	}

	f.mu.Unlock()
	return err
}

// Poke wakes a consumer blocked in Pop/Peek without delivering an item.
// Only consumers that pass PullPoke observe it as a distinct wake;
// others simply re-enter the wait when they find the queue still empty.
func (f *Fifo[T]) Poke() {
	verbosef("poking FIFO %q", f.opaque)

	f.mu.Lock()
	f.poked = true
	f.pokes++
	f.mu.Unlock()

	f.condIn.Signal()
}

// pull is the shared template behind Pop/Peek/PopFlags/PeekFlags,
// parameterized by pop (remove vs. clone-in-place) and flags.
func (f *Fifo[T]) pull(pop bool, flags BlockFlags) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T
	for len(f.queued) == 0 {
		// block_no_input is read fresh every iteration: SetBlockFlags
		// can change it while this call is blocked.
		blockNoInput := f.blockFlags.Has(BlockNoInput)
		pullNoBlock := flags.Has(PullNoBlock)

		if !blockNoInput || pullNoBlock {
			return zero, ErrTryAgain
		}

		if !f.poked {
			f.condIn.Wait()
		}

		if flags.Has(PullPoke) && f.poked {
			f.poked = false
			return zero, ErrTryAgain
		}
		f.poked = false
	}

	if pop {
		item := f.queued[0]
		copy(f.queued, f.queued[1:])
		f.queued = f.queued[:len(f.queued)-1]
		f.popped++

		if f.maxQueued > 0 {
			f.condOut.Signal()
		}
		return item, nil
	}

	return f.ops.Clone(f.queued[0]), nil
}

// Pop removes and returns the head item, blocking per the FIFO's
// configured BlockNoInput policy.
func (f *Fifo[T]) Pop() (T, error) {
	return f.pull(true, 0)
}

// Peek clones and returns the head item without removing it, blocking
// per the FIFO's configured BlockNoInput policy.
func (f *Fifo[T]) Peek() (T, error) {
	return f.pull(false, 0)
}

// PopFlags is Pop with additional call-site flags (PullNoBlock, PullPoke).
func (f *Fifo[T]) PopFlags(flags BlockFlags) (T, error) {
	return f.pull(true, flags)
}

// PeekFlags is Peek with additional call-site flags (PullNoBlock, PullPoke).
func (f *Fifo[T]) PeekFlags(flags BlockFlags) (T, error) {
	return f.pull(false, flags)
}

// IsFull reports whether the FIFO is at or over capacity. max_queued==0
// is always full; max_queued==-1 (unbounded) is never full. For N>0 it
// is the same strict "more than N+1 queued" test Push uses, so a bounded
// FIFO reports full exactly when a non-nil push would be refused (or,
// with BlockMaxOutput, would wait).
func (f *Fifo[T]) IsFull() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.maxQueued == 0:
		return true
	case f.maxQueued > 0:
		return len(f.queued) > f.maxQueued+1
	default:
		return false
	}
}

// GetSize returns the current queue length.
func (f *Fifo[T]) GetSize() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queued)
}

// GetMaxSize returns the configured capacity, or Infinity if unbounded.
func (f *Fifo[T]) GetMaxSize() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.maxQueued == Unbounded {
		return Infinity
	}
	return f.maxQueued
}

// SetMaxQueued reassigns the capacity. It does not retroactively drop
// items already queued; if the new capacity is smaller than the current
// length, subsequent pushes block or fail per the configured policy.
func (f *Fifo[T]) SetMaxQueued(n int) {
	f.mu.Lock()
	f.maxQueued = n
	f.mu.Unlock()
}

// SetBlockFlags atomically reassigns the FIFO's blocking policy.
func (f *Fifo[T]) SetBlockFlags(flags BlockFlags) {
	f.mu.Lock()
	f.blockFlags = flags
	f.mu.Unlock()
}

// Snapshot returns a point-in-time view of the FIFO's operational
// counters. Additive to the original API, for observability.
func (f *Fifo[T]) Snapshot() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Stats{
		Queued:    len(f.queued),
		MaxQueued: f.maxQueued,
		Pushed:    f.pushed,
		Popped:    f.popped,
		Dropped:   f.dropped,
		Pokes:     f.pokes,
		HighWater: f.highWater,
	}
}

// Opaque returns the owner identity this FIFO was created with.
func (f *Fifo[T]) Opaque() string {
	return f.opaque
}
