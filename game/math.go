package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp32 linearly interpolates between a and b by the factor t.
func Lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp32 clamps the given value to the given range.
func Clamp32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	return math32.Min(val, max)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq determines whether two vectors are approximately equal on all axes.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a.X(), b.X()) && Float32ApproxEq(a.Y(), b.Y()) && Float32ApproxEq(a.Z(), b.Z())
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// FlattenVec3 zeroes the vertical component of the given vector and re-normalizes
// it to unit length so diagonal input does not move faster than axis-aligned input.
// The second return value is false if the flattened vector degenerates to zero.
func FlattenVec3(vec3 mgl32.Vec3) (mgl32.Vec3, bool) {
	flat := mgl32.Vec3{vec3.X(), 0, vec3.Z()}
	if flat.LenSqr() <= 1e-10 {
		return mgl32.Vec3{}, false
	}
	return flat.Normalize(), true
}
