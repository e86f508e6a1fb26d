package txfifo

import "github.com/visiona/txfifo/internal/refcount"

// PacketFlags marks properties of an encoded Packet, such as keyframes.
type PacketFlags uint8

const (
	// PacketKeyframe marks a packet as a random-access point.
	PacketKeyframe PacketFlags = 1 << iota
)

// packetData is the immutable payload a Packet's Box wraps.
type packetData struct {
	Data        []byte
	PTS         int64
	DTS         int64
	StreamIndex int
	Flags       PacketFlags
}

// Packet is a reference-counted, zero-copy compressed-data handle: the
// Item instantiation of Fifo[*Packet] between a demuxer/muxer or
// encoder/muxer pair.
type Packet struct {
	box *refcount.Box[*packetData]
}

// NewPacket wraps data (not copied) as a new Packet with a reference
// count of one.
func NewPacket(data []byte, pts, dts int64, streamIndex int, flags PacketFlags) *Packet {
	return &Packet{box: refcount.New(&packetData{
		Data:        data,
		PTS:         pts,
		DTS:         dts,
		StreamIndex: streamIndex,
		Flags:       flags,
	}, nil)}
}

// Clone returns a new handle sharing the same payload, bumping the
// reference count. Safe to call on a nil Packet, returning nil.
func (p *Packet) Clone() *Packet {
	if p == nil {
		return nil
	}
	return &Packet{box: p.box.Clone()}
}

// Free drops one reference to the packet's payload. Safe to call on nil.
func (p *Packet) Free() {
	if p == nil {
		return
	}
	p.box.Free()
}

// RefCount reports the current reference count, for tests and
// diagnostics.
func (p *Packet) RefCount() int32 {
	if p == nil {
		return 0
	}
	return p.box.RefCount()
}

func (p *Packet) Data() []byte       { return p.box.Value().Data }
func (p *Packet) PTS() int64         { return p.box.Value().PTS }
func (p *Packet) DTS() int64         { return p.box.Value().DTS }
func (p *Packet) StreamIndex() int   { return p.box.Value().StreamIndex }
func (p *Packet) Flags() PacketFlags { return p.box.Value().Flags }
func (p *Packet) IsKeyframe() bool   { return p.box.Value().Flags&PacketKeyframe != 0 }

// packetOps is the ItemOps capability set passed to the generic fifo
// package when instantiating a PacketFifo.
var packetOps = itemOpsFor(
	func(p *Packet) *Packet { return p.Clone() },
	func(p *Packet) { p.Free() },
)
