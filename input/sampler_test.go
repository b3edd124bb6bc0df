package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// brokenStick reports tracked but never yields axis data, imitating a device
// whose axis array is absent or malformed.
type brokenStick struct{}

func (brokenStick) Tracked() bool {
	return true
}

func (brokenStick) Axes() (float32, float32, bool) {
	return 0, 0, false
}

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math.Abs(float64(got-want)) > float64(tol) {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestSampleDeadzone(t *testing.T) {
	s := NewSampler()
	ident := mgl32.QuatIdent()

	cases := []struct {
		x, y float32
		want bool
	}{
		{0, 0, false},
		{0.15, 0.15, false},
		{-0.15, 0.1, false},
		{0.1, -0.15, false},
		{0.16, 0, true},
		{0, -0.2, true},
		{-0.5, 0.5, true},
		{1, 1, true},
	}
	for _, c := range cases {
		_, ok := s.Sample(Stick{X: c.x, Y: c.y, Connected: true}, ident)
		if ok != c.want {
			t.Fatalf("Sample(%v, %v) ok = %v, want %v", c.x, c.y, ok, c.want)
		}
	}
}

func TestSampleNormalized(t *testing.T) {
	s := NewSampler()
	ident := mgl32.QuatIdent()

	for _, c := range [][2]float32{{1, 1}, {-1, 1}, {0.3, -0.9}, {0.16, 0.16}} {
		vec, ok := s.Sample(Stick{X: c[0], Y: c[1], Connected: true}, ident)
		if !ok {
			t.Fatalf("Sample(%v, %v) yielded no vector", c[0], c[1])
		}
		approxEqual(t, vec.Len(), 1, 1e-5, "vector length")
		approxEqual(t, vec.Y(), 0, 1e-6, "vertical component")
	}
}

func TestSampleRotatesWithOrientation(t *testing.T) {
	s := NewSampler()

	// Forward stick with identity orientation moves toward -Z.
	vec, ok := s.Sample(Stick{Y: -1, Connected: true}, mgl32.QuatIdent())
	if !ok {
		t.Fatal("expected a vector")
	}
	approxEqual(t, vec.Z(), -1, 1e-5, "forward Z")

	// A 90 degree yaw turns forward into -X.
	yawed := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	vec, ok = s.Sample(Stick{Y: -1, Connected: true}, yawed)
	if !ok {
		t.Fatal("expected a vector")
	}
	approxEqual(t, vec.X(), -1, 1e-5, "yawed X")
	approxEqual(t, vec.Z(), 0, 1e-5, "yawed Z")
}

func TestSamplePitchedViewStaysPlanar(t *testing.T) {
	s := NewSampler()

	// Looking 45 degrees down must not produce vertical movement or slow the
	// planar speed below unit length.
	pitched := mgl32.QuatRotate(mgl32.DegToRad(-45), mgl32.Vec3{1, 0, 0})
	vec, ok := s.Sample(Stick{Y: -1, Connected: true}, pitched)
	if !ok {
		t.Fatal("expected a vector")
	}
	approxEqual(t, vec.Y(), 0, 1e-6, "vertical component")
	approxEqual(t, vec.Len(), 1, 1e-5, "vector length")
	if vec.Z() >= 0 {
		t.Fatalf("pitched forward should still move toward -Z, got %v", vec)
	}
}

func TestSampleDegenerateDevice(t *testing.T) {
	s := NewSampler()
	ident := mgl32.QuatIdent()

	if _, ok := s.Sample(nil, ident); ok {
		t.Fatal("nil device should yield no input")
	}
	if _, ok := s.Sample(Stick{X: 1, Y: 1, Connected: false}, ident); ok {
		t.Fatal("untracked device should yield no input")
	}
	if _, ok := s.Sample(brokenStick{}, ident); ok {
		t.Fatal("malformed axes should yield no input")
	}
}

func TestSampleStraightDownLookDegenerates(t *testing.T) {
	s := NewSampler()

	// Looking straight down flattens forward input to nothing.
	down := mgl32.QuatRotate(mgl32.DegToRad(-90), mgl32.Vec3{1, 0, 0})
	if _, ok := s.Sample(Stick{Y: -1, Connected: true}, down); ok {
		t.Fatal("straight-down view should degenerate to no movement")
	}
}
