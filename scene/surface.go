package scene

import (
	"bytes"
	"encoding/binary"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stride-xr/stride/game"
	"github.com/stride-xr/stride/internal"
	"github.com/zeebo/xxh3"
)

// Kind describes the primitive a Surface is made of.
type Kind uint8

const (
	// KindBox is an axis-aligned box, used for floors, steps, and blocky
	// obstacles.
	KindBox Kind = iota
	// KindTriangle is a single triangle, used for ramps and other sloped
	// walkable geometry.
	KindTriangle
)

// Surface is a single static piece of scene geometry. Surfaces are immutable
// once built and identified by a hash of their geometry, so registering the
// same shape twice yields the same ID.
type Surface struct {
	name string
	kind Kind

	box     cube.BBox
	a, b, c mgl32.Vec3

	id uint64
}

// NewBox creates a box surface from the given bounding box.
func NewBox(name string, box cube.BBox) Surface {
	s := Surface{name: name, kind: KindBox, box: box}
	s.id = s.hash()
	return s
}

// NewTriangle creates a triangle surface from the given corner points.
func NewTriangle(name string, a, b, c mgl32.Vec3) Surface {
	s := Surface{name: name, kind: KindTriangle, a: a, b: b, c: c}
	s.id = s.hash()
	return s
}

// ID returns the identifier of the surface, derived from its geometry.
func (s Surface) ID() uint64 {
	return s.id
}

// Name returns the name the surface was registered under.
func (s Surface) Name() string {
	return s.name
}

// Kind returns the primitive kind of the surface.
func (s Surface) Kind() Kind {
	return s.kind
}

// Box returns the bounding box of a KindBox surface. For triangles it returns
// the zero box.
func (s Surface) Box() cube.BBox {
	return s.box
}

// Intersect runs the given ray against the surface and reports the nearest
// hit within the ray's bounds, if any.
func (s Surface) Intersect(r game.Ray) (game.RayHit, bool) {
	switch s.kind {
	case KindBox:
		return r.IntersectBox(s.box)
	case KindTriangle:
		return r.IntersectTriangle(s.a, s.b, s.c)
	}
	return game.RayHit{}, false
}

func (s Surface) hash() uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	binary.Write(buf, binary.LittleEndian, uint8(s.kind))
	switch s.kind {
	case KindBox:
		binary.Write(buf, binary.LittleEndian, [3]float32(s.box.Min()))
		binary.Write(buf, binary.LittleEndian, [3]float32(s.box.Max()))
	case KindTriangle:
		binary.Write(buf, binary.LittleEndian, [3]float32(s.a))
		binary.Write(buf, binary.LittleEndian, [3]float32(s.b))
		binary.Write(buf, binary.LittleEndian, [3]float32(s.c))
	}
	return xxh3.Hash(buf.Bytes())
}
