package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene is the static content a locomotion session runs against: the
// walkable-surface set, the obstacle set, and any proximity targets. All of
// it is built once at setup time and treated as read-only afterwards.
type Scene struct {
	Name string

	// Spawn is the rig's initial position, eye height included.
	Spawn mgl32.Vec3

	Walkable  *Set
	Obstacles *Set
	Targets   []*Target
}

// New creates an empty scene with initialized surface sets.
func New(name string) *Scene {
	return &Scene{
		Name:      name,
		Walkable:  NewSet(),
		Obstacles: NewSet(),
	}
}

// Target returns the first registered target, or nil if the scene has none.
func (s *Scene) Target() *Target {
	if len(s.Targets) == 0 {
		return nil
	}
	return s.Targets[0]
}
