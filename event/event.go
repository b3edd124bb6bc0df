package event

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/stride-xr/stride/internal"
	"github.com/stride-xr/stride/serror"
)

const (
	EventIDGroundSnap byte = iota
	EventIDMove
	EventIDBlocked
	EventIDProximity
)

// Event is a single frame-level record produced by a session: a ground snap,
// a committed or blocked move, or a proximity transition.
type Event interface {
	ID() byte
	Encode() []byte

	Time() int64
}

type NopEvent struct {
	EvTime int64
}

func (n NopEvent) Time() int64 {
	return n.EvTime
}

func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Time()))
}

// DecodeEvents decodes a stream of encoded events back into their typed
// forms, stopping at the first malformed record.
func DecodeEvents(dat []byte) ([]Event, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(dat)
	defer internal.BufferPool.Put(buf)

	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, serror.New("error decoding event: %v", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	if buf.Len() < 16 {
		return nil, serror.New("truncated event header (%d bytes)", buf.Len())
	}

	id := byte(binary.LittleEndian.Uint64(buf.Next(8)))
	t := int64(binary.LittleEndian.Uint64(buf.Next(8)))

	switch id {
	case EventIDGroundSnap:
		if buf.Len() < 4 {
			return nil, serror.New("truncated GroundSnapEvent payload (%d bytes)", buf.Len())
		}
		ev := GroundSnapEvent{}
		ev.EvTime = t
		ev.Height = lFloat32(buf.Next(4))
		return ev, nil
	case EventIDMove:
		if buf.Len() < 13 {
			return nil, serror.New("truncated MoveEvent payload (%d bytes)", buf.Len())
		}
		ev := MoveEvent{}
		ev.EvTime = t
		ev.Pos[0] = lFloat32(buf.Next(4))
		ev.Pos[1] = lFloat32(buf.Next(4))
		ev.Pos[2] = lFloat32(buf.Next(4))

		confirmed, err := buf.ReadByte()
		if err != nil {
			return nil, serror.New("error reading confirmed flag from MoveEvent: %v", err)
		}
		ev.Confirmed = confirmed == 1
		return ev, nil
	case EventIDBlocked:
		ev := BlockedEvent{}
		ev.EvTime = t
		return ev, nil
	case EventIDProximity:
		if buf.Len() < 5 {
			return nil, serror.New("truncated ProximityEvent payload (%d bytes)", buf.Len())
		}
		ev := ProximityEvent{}
		ev.EvTime = t

		near, err := buf.ReadByte()
		if err != nil {
			return nil, serror.New("error reading near flag from ProximityEvent: %v", err)
		}
		ev.Near = near == 1
		ev.Distance = lFloat32(buf.Next(4))
		return ev, nil
	}
	return nil, serror.New("unknown event ID %d", id)
}

func writeLFloat32(buf *bytes.Buffer, val float32) {
	binary.Write(buf, binary.LittleEndian, math.Float32bits(val))
}

func lFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func writeBool(buf *bytes.Buffer, val bool) {
	if val {
		buf.WriteByte(1)
		return
	}
	buf.WriteByte(0)
}
