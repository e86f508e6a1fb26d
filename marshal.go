package txfifo

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// frameWire is the wire-format mirror of frameData, for debug snapshots
// only — this is not a transport layer, which is an explicit Non-goal.
type frameWire struct {
	Data      []byte    `msgpack:"data"`
	Width     int       `msgpack:"width"`
	Height    int       `msgpack:"height"`
	Timestamp time.Time `msgpack:"timestamp"`
	Seq       uint64    `msgpack:"seq"`
}

// MarshalBinary encodes the frame's current payload as msgpack, for
// debug dumps of a single in-flight item.
func (f *Frame) MarshalBinary() ([]byte, error) {
	d := f.box.Value()
	return msgpack.Marshal(&frameWire{
		Data:      d.Data,
		Width:     d.Width,
		Height:    d.Height,
		Timestamp: d.Timestamp,
		Seq:       d.Seq,
	})
}

// UnmarshalFrame decodes a msgpack-encoded frame snapshot into a new
// Frame with a reference count of one.
func UnmarshalFrame(b []byte) (*Frame, error) {
	var w frameWire
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	frame := NewFrame(w.Data, w.Width, w.Height, w.Timestamp)
	return frame.WithSeq(w.Seq), nil
}

// packetWire is the wire-format mirror of packetData.
type packetWire struct {
	Data        []byte      `msgpack:"data"`
	PTS         int64       `msgpack:"pts"`
	DTS         int64       `msgpack:"dts"`
	StreamIndex int         `msgpack:"stream_index"`
	Flags       PacketFlags `msgpack:"flags"`
}

// MarshalBinary encodes the packet's current payload as msgpack, for
// debug dumps of a single in-flight item.
func (p *Packet) MarshalBinary() ([]byte, error) {
	d := p.box.Value()
	return msgpack.Marshal(&packetWire{
		Data:        d.Data,
		PTS:         d.PTS,
		DTS:         d.DTS,
		StreamIndex: d.StreamIndex,
		Flags:       d.Flags,
	})
}

// UnmarshalPacket decodes a msgpack-encoded packet snapshot into a new
// Packet with a reference count of one.
func UnmarshalPacket(b []byte) (*Packet, error) {
	var w packetWire
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	return NewPacket(w.Data, w.PTS, w.DTS, w.StreamIndex, w.Flags), nil
}
