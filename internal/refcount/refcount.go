// Package refcount implements a small generic, thread-safe reference
// count over an arbitrary payload. It is the mechanism behind txfifo's
// shared-ownership Item contract: Clone is an O(1) counter bump, Free
// releases the payload on the last drop.
package refcount

import "sync/atomic"

// Box is a reference-counted holder for a value of type T. The zero
// value is not usable; create one with New.
//
// Box is safe for concurrent use: Clone and Free only touch an atomic
// counter, never the payload itself, so callers remain responsible for
// not mutating a shared payload concurrently (the Item contract assumes
// read-only sharing after construction).
type Box[T any] struct {
	count   *int32
	value   T
	release func(T)
}

// New wraps value in a Box with an initial reference count of one.
// release is called exactly once, when the last reference is freed; it
// may be nil if the payload needs no explicit cleanup.
func New[T any](value T, release func(T)) *Box[T] {
	count := int32(1)
	return &Box[T]{count: &count, value: value, release: release}
}

// Clone returns a new handle sharing the same payload and counter,
// bumping the reference count by one.
func (b *Box[T]) Clone() *Box[T] {
	atomic.AddInt32(b.count, 1)
	return &Box[T]{count: b.count, value: b.value, release: b.release}
}

// Free drops one reference. When the count reaches zero, release is
// invoked on the payload exactly once. Calling Free more times than the
// box has been cloned (including the initial reference from New) is a
// programming error: the counter goes negative and release is not
// invoked again, silently masking the bug.
func (b *Box[T]) Free() {
	if atomic.AddInt32(b.count, -1) == 0 && b.release != nil {
		b.release(b.value)
	}
}

// Value returns the wrapped payload. Safe to call after Free — the
// payload itself isn't cleared, only release is invoked — but doing so
// is a use-after-free from the caller's point of view and should be
// avoided.
func (b *Box[T]) Value() T {
	return b.value
}

// RefCount reports the current reference count, for tests and
// diagnostics. Not part of the stable contract the Item type relies on.
func (b *Box[T]) RefCount() int32 {
	return atomic.LoadInt32(b.count)
}
