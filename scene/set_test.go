package scene

import (
	"math"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stride-xr/stride/game"
)

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math.Abs(float64(got-want)) > float64(tol) {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestSetIntersectNearestFirst(t *testing.T) {
	// Two stacked platforms beneath the probe; the upper one is nearer to
	// the lifted ray origin.
	set := NewSet(
		NewBox("lower", cube.Box(-5, -4.1, -5, 5, -4, 5)),
		NewBox("upper", cube.Box(-5, -0.1, -5, 5, 0, 5)),
	)

	hits := set.Intersect(game.DownRay(mgl32.Vec3{0, 1.6, 0}))
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Distance > hits[1].Distance {
		t.Fatal("hits not ordered nearest-first")
	}
	approxEqual(t, hits[0].Point.Y(), 0, 1e-5, "nearest hit height")

	first, ok := set.IntersectFirst(game.DownRay(mgl32.Vec3{0, 1.6, 0}))
	if !ok {
		t.Fatal("expected a first hit")
	}
	approxEqual(t, first.Point.Y(), 0, 1e-5, "IntersectFirst height")
}

func TestSetIntersectEmpty(t *testing.T) {
	set := NewSet()
	ray := game.DownRay(mgl32.Vec3{0, 1.6, 0})

	if hits := set.Intersect(ray); len(hits) != 0 {
		t.Fatalf("empty set produced %d hits", len(hits))
	}
	if _, ok := set.IntersectFirst(ray); ok {
		t.Fatal("empty set produced a first hit")
	}
	if set.IntersectAny(ray) {
		t.Fatal("empty set reported an intersection")
	}
}

func TestSetDedupesIdenticalGeometry(t *testing.T) {
	box := cube.Box(0, 0, 0, 1, 1, 1)
	set := NewSet(NewBox("a", box), NewBox("b", box))
	if set.Len() != 1 {
		t.Fatalf("identical geometry registered twice, len = %d", set.Len())
	}
}

func TestSurfaceIDStable(t *testing.T) {
	box := cube.Box(0, 0, 0, 1, 2, 3)
	if NewBox("x", box).ID() != NewBox("y", box).ID() {
		t.Fatal("same geometry should hash to the same ID")
	}
	other := NewBox("x", cube.Box(0, 0, 0, 1, 2, 4))
	if NewBox("x", box).ID() == other.ID() {
		t.Fatal("different geometry should hash differently")
	}

	tri := NewTriangle("t", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	if tri.ID() == NewBox("x", box).ID() {
		t.Fatal("triangle and box should hash differently")
	}
}

func TestSetLookupByID(t *testing.T) {
	surf := NewBox("floor", cube.Box(-1, -0.1, -1, 1, 0, 1))
	set := NewSet(surf)

	got, ok := set.Surface(surf.ID())
	if !ok {
		t.Fatal("registered surface not found by ID")
	}
	if got.Name() != "floor" {
		t.Fatalf("got surface %q, want %q", got.Name(), "floor")
	}
}
