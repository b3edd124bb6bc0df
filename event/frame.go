package event

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stride-xr/stride/internal"
)

// GroundSnapEvent records the smoothed height after a successful ground
// probe.
type GroundSnapEvent struct {
	NopEvent

	Height float32
}

func (GroundSnapEvent) ID() byte {
	return EventIDGroundSnap
}

func (ev GroundSnapEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	writeLFloat32(buf, ev.Height)

	return bytes.Clone(buf.Bytes())
}

// MoveEvent records a committed horizontal move. Confirmed is false when the
// move went through the unconfirmed fallback rather than a ground hit.
type MoveEvent struct {
	NopEvent

	Pos       mgl32.Vec3
	Confirmed bool
}

func (MoveEvent) ID() byte {
	return EventIDMove
}

func (ev MoveEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	writeLFloat32(buf, ev.Pos.X())
	writeLFloat32(buf, ev.Pos.Y())
	writeLFloat32(buf, ev.Pos.Z())
	writeBool(buf, ev.Confirmed)

	return bytes.Clone(buf.Bytes())
}

// BlockedEvent records a horizontal move vetoed by the obstacle probe.
type BlockedEvent struct {
	NopEvent
}

func (BlockedEvent) ID() byte {
	return EventIDBlocked
}

func (ev BlockedEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)

	return bytes.Clone(buf.Bytes())
}

// ProximityEvent records a near/far transition edge.
type ProximityEvent struct {
	NopEvent

	Near     bool
	Distance float32
}

func (ProximityEvent) ID() byte {
	return EventIDProximity
}

func (ev ProximityEvent) Encode() []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	writeBool(buf, ev.Near)
	writeLFloat32(buf, ev.Distance)

	return bytes.Clone(buf.Bytes())
}
