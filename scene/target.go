package scene

import "github.com/go-gl/mathgl/mgl32"

// Material is the visual state of a target object. The locomotion core only
// flips this flag; the host render layer decides what it looks like.
type Material uint8

const (
	MaterialIdle Material = iota
	MaterialHighlight
)

// Target is an object a proximity policy reacts to: approaching it within
// the configured range swaps its material and drives a pulsing scale effect.
type Target struct {
	name      string
	pos       mgl32.Vec3
	baseScale float32
	scale     float32
	material  Material
}

// NewTarget creates a target at the given position with the given base scale.
func NewTarget(name string, pos mgl32.Vec3, baseScale float32) *Target {
	if baseScale <= 0 {
		baseScale = 1
	}
	return &Target{name: name, pos: pos, baseScale: baseScale, scale: baseScale}
}

// Name returns the name the target was registered under.
func (t *Target) Name() string {
	return t.name
}

// Pos returns the position of the target.
func (t *Target) Pos() mgl32.Vec3 {
	return t.pos
}

// SetPos sets the position of the target.
func (t *Target) SetPos(pos mgl32.Vec3) {
	t.pos = pos
}

// Material returns the current visual state of the target.
func (t *Target) Material() Material {
	return t.material
}

// SetMaterial sets the visual state of the target.
func (t *Target) SetMaterial(m Material) {
	t.material = m
}

// BaseScale returns the resting scale of the target.
func (t *Target) BaseScale() float32 {
	return t.baseScale
}

// Scale returns the current scale of the target.
func (t *Target) Scale() float32 {
	return t.scale
}

// SetScale sets the current scale of the target.
func (t *Target) SetScale(scale float32) {
	t.scale = scale
}

// ResetScale restores the target to its resting scale.
func (t *Target) ResetScale() {
	t.scale = t.baseScale
}
