package txfifo

import (
	"time"

	"github.com/visiona/txfifo/internal/refcount"
)

// frameData is the immutable payload a Frame's Box wraps.
//
// IMMUTABILITY CONTRACT: once a Frame is pushed to a Fifo, nothing may
// write to Data again. Every clone shares the same backing slice; the
// only safe use after publication is read-only.
type frameData struct {
	Data      []byte
	Width     int
	Height    int
	Timestamp time.Time
	Seq       uint64
}

// Frame is a reference-counted, zero-copy video frame handle: the Item
// instantiation of Fifo[*Frame] for a demuxer/decoder/filter pipeline.
type Frame struct {
	box *refcount.Box[*frameData]
}

// NewFrame wraps data (not copied) as a new Frame with a reference count
// of one. Callers must not modify data after calling NewFrame.
func NewFrame(data []byte, width, height int, ts time.Time) *Frame {
	return &Frame{box: refcount.New(&frameData{
		Data:      data,
		Width:     width,
		Height:    height,
		Timestamp: ts,
	}, nil)}
}

// Clone returns a new handle sharing the same payload, bumping the
// reference count. Safe to call on a nil Frame (the null sentinel push),
// returning nil.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	return &Frame{box: f.box.Clone()}
}

// Free drops one reference to the frame's payload. Safe to call on nil.
func (f *Frame) Free() {
	if f == nil {
		return
	}
	f.box.Free()
}

// RefCount reports the current reference count, for tests and
// diagnostics.
func (f *Frame) RefCount() int32 {
	if f == nil {
		return 0
	}
	return f.box.RefCount()
}

func (f *Frame) Data() []byte         { return f.box.Value().Data }
func (f *Frame) Width() int           { return f.box.Value().Width }
func (f *Frame) Height() int          { return f.box.Value().Height }
func (f *Frame) Timestamp() time.Time { return f.box.Value().Timestamp }
func (f *Frame) Seq() uint64          { return f.box.Value().Seq }

// WithSeq returns a Frame sharing the same box but stamped with a
// sequence number, mirroring the way framesupplier assigns Seq during
// distribution rather than at construction.
func (f *Frame) WithSeq(seq uint64) *Frame {
	d := f.box.Value()
	d.Seq = seq
	return f
}

// frameOps is the ItemOps capability set passed to the generic fifo
// package when instantiating a FrameFifo.
var frameOps = itemOpsFor(
	func(f *Frame) *Frame { return f.Clone() },
	func(f *Frame) { f.Free() },
)
