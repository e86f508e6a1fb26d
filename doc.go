// Package txfifo provides a thread-safe, reference-counted, fan-out FIFO
// for connecting processing nodes in a media streaming pipeline.
//
// # Overview
//
// A Fifo queues item handles (Frame or Packet) between one producer and
// one consumer. Pushing an item both enqueues it locally (subject to a
// capacity policy) and mirrors it to every FIFO linked as a destination
// via Mirror, so a single push can fan out to an arbitrary tree of
// downstream queues:
//
//	src := txfifo.NewFrameFifo("decoder-out", txfifo.Unbounded, 0)
//	dstA := txfifo.NewFrameFifo("filter-a-in", txfifo.Unbounded, txfifo.BlockNoInput)
//	dstB := txfifo.NewFrameFifo("filter-b-in", txfifo.Unbounded, txfifo.BlockNoInput)
//
//	txfifo.MirrorFrames(dstA, src)
//	txfifo.MirrorFrames(dstB, src)
//
//	src.Push(frame) // frame.Clone() delivered to src, dstA, and dstB
//
// # Blocking semantics
//
// Pop/Peek block when the queue is empty only if the FIFO was configured
// with BlockNoInput; callers that want a single call to opt out of that
// policy pass PullNoBlock to PopFlags/PeekFlags. Push blocks when the
// queue is over capacity only if the FIFO was configured with
// BlockMaxOutput; otherwise an over-capacity push returns ErrQueueFull.
//
// # Hot-swapping a node
//
// UnmirrorAll detaches a FIFO from every peer in both directions and
// wakes blocked consumers on its former destinations, so a node can be
// spliced out of a running pipeline and replaced without losing
// downstream consumers. A woken consumer with an empty queue re-blocks
// under BlockNoInput; a Poke observed with PullPoke makes it return.
//
// # Reference counting
//
// Frame and Packet wrap internal/refcount.Box: Clone is an O(1) counter
// bump, not a copy, and Free releases the underlying payload on the last
// drop. A FIFO clones an item into every destination it fans out to,
// hands its own queued reference to the caller when the item is popped,
// and frees whatever is still queued when the FIFO is closed; callers own
// exactly the references they receive back from Pop or Peek.
package txfifo
