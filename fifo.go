package txfifo

import (
	"github.com/google/uuid"
	"github.com/visiona/txfifo/internal/fifo"
)

// FrameFifo and PacketFifo are the two concrete instantiations of the
// generic internal/fifo.Fifo the original's macro-based AVFrame/AVPacket
// duplication generalizes to in Go.
type FrameFifo = fifo.Fifo[*Frame]
type PacketFifo = fifo.Fifo[*Packet]

// itemOpsFor builds a fifo.ItemOps for any pointer item type, supplying
// the nil check generically so Frame and Packet don't each repeat it.
func itemOpsFor[T comparable](clone func(T) T, free func(T)) fifo.ItemOps[T] {
	var zero T
	return fifo.ItemOps[T]{
		Clone: clone,
		Free:  free,
		IsNil: func(v T) bool { return v == zero },
	}
}

// NewFrameFifo creates a FrameFifo. If opaque is empty, a UUID is
// generated so log lines still have a stable identity to correlate on
// (Stats snapshots carry no identity of their own); opaque is used only for
// diagnostic logging, never for equality or routing decisions.
func NewFrameFifo(opaque string, maxQueued int, blockFlags BlockFlags) *FrameFifo {
	if opaque == "" {
		opaque = uuid.NewString()
	}
	return fifo.New(opaque, maxQueued, blockFlags, frameOps)
}

// NewPacketFifo creates a PacketFifo, with the same opaque-defaulting
// behavior as NewFrameFifo.
func NewPacketFifo(opaque string, maxQueued int, blockFlags BlockFlags) *PacketFifo {
	if opaque == "" {
		opaque = uuid.NewString()
	}
	return fifo.New(opaque, maxQueued, blockFlags, packetOps)
}

// MirrorFrames links src into dst for FrameFifo: every push to src also
// pushes to dst.
func MirrorFrames(dst, src *FrameFifo) error {
	return fifo.Mirror(dst, src)
}

// UnmirrorFrames removes a mirror link established by MirrorFrames.
func UnmirrorFrames(dst, src *FrameFifo) error {
	return fifo.Unmirror(dst, src)
}

// MirrorPackets links src into dst for PacketFifo: every push to src
// also pushes to dst.
func MirrorPackets(dst, src *PacketFifo) error {
	return fifo.Mirror(dst, src)
}

// UnmirrorPackets removes a mirror link established by MirrorPackets.
func UnmirrorPackets(dst, src *PacketFifo) error {
	return fifo.Unmirror(dst, src)
}
