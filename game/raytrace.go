package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a synchronous geometric probe with near/far bounds. Dir is expected
// to be of unit length; intersections outside [Near, Far] are discarded.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
	Near   float32
	Far    float32
}

// RayHit is a single intersection produced by a ray query.
type RayHit struct {
	Point    mgl32.Vec3
	Distance float32
}

// DownRay returns the standard ground probe for the given anchor position:
// origin lifted by ProbeOriginLift, pointing straight down, capped at
// ProbeFarRange so probe cost stays bounded.
func DownRay(anchor mgl32.Vec3) Ray {
	return Ray{
		Origin: mgl32.Vec3{anchor.X(), anchor.Y() + ProbeOriginLift, anchor.Z()},
		Dir:    mgl32.Vec3{0, -1, 0},
		Near:   0,
		Far:    ProbeFarRange,
	}
}

// ForwardRay returns the obstacle probe from the given position along the
// given (unit) movement direction.
func ForwardRay(from, dir mgl32.Vec3) Ray {
	return Ray{Origin: from, Dir: dir, Near: 0, Far: ObstacleFarRange}
}

// IntersectBox intersects the ray with an axis-aligned box using the slab
// method and reports the nearest boundary crossing within the ray's bounds.
func (r Ray) IntersectBox(b cube.BBox) (RayHit, bool) {
	tMin, tMax := r.Near, r.Far
	min, max := b.Min(), b.Max()

	for axis := 0; axis < 3; axis++ {
		d := r.Dir[axis]
		if math32.Abs(d) < 1e-8 {
			// Ray parallel to this slab; miss unless the origin lies inside it.
			if r.Origin[axis] < min[axis] || r.Origin[axis] > max[axis] {
				return RayHit{}, false
			}
			continue
		}

		inv := 1 / d
		t0 := (min[axis] - r.Origin[axis]) * inv
		t1 := (max[axis] - r.Origin[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math32.Max(tMin, t0)
		tMax = math32.Min(tMax, t1)
		if tMin > tMax {
			return RayHit{}, false
		}
	}

	return RayHit{
		Point:    r.Origin.Add(r.Dir.Mul(tMin)),
		Distance: tMin,
	}, true
}

// IntersectTriangle intersects the ray with the triangle (a, b, c) using the
// Moller-Trumbore algorithm. Both triangle faces are considered hittable, as
// walkable ramps may be registered with either winding.
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3) (RayHit, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)

	p := r.Dir.Cross(edge2)
	det := edge1.Dot(p)
	if math32.Abs(det) < 1e-8 {
		return RayHit{}, false
	}

	invDet := 1 / det
	tv := r.Origin.Sub(a)
	u := tv.Dot(p) * invDet
	if u < 0 || u > 1 {
		return RayHit{}, false
	}

	q := tv.Cross(edge1)
	v := r.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return RayHit{}, false
	}

	t := edge2.Dot(q) * invDet
	if t < r.Near || t > r.Far {
		return RayHit{}, false
	}

	return RayHit{
		Point:    r.Origin.Add(r.Dir.Mul(t)),
		Distance: t,
	}, true
}
