package scene

import (
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stride-xr/stride/game"
)

// Set is an ordered, append-only collection of surfaces. Walkable and
// obstacle geometry is registered at scene-build time and only read during
// locomotion, so Set performs no locking; a single goroutine is expected to
// own it per frame.
type Set struct {
	surfaces *orderedmap.OrderedMap[uint64, Surface]
}

// NewSet creates an empty surface set.
func NewSet(surfaces ...Surface) *Set {
	s := &Set{surfaces: orderedmap.NewOrderedMap[uint64, Surface]()}
	s.Add(surfaces...)
	return s
}

// Add appends the given surfaces to the set. Re-registering a surface with
// identical geometry replaces the previous entry in place.
func (s *Set) Add(surfaces ...Surface) {
	for _, surf := range surfaces {
		s.surfaces.Set(surf.ID(), surf)
	}
}

// Len returns the number of surfaces in the set.
func (s *Set) Len() int {
	return s.surfaces.Len()
}

// Surface returns the surface registered under the given ID.
func (s *Set) Surface(id uint64) (Surface, bool) {
	return s.surfaces.Get(id)
}

// Intersect runs the given ray against every surface in the set and returns
// all hits ordered nearest-first.
func (s *Set) Intersect(r game.Ray) []game.RayHit {
	var hits []game.RayHit
	for el := s.surfaces.Front(); el != nil; el = el.Next() {
		if hit, ok := el.Value.Intersect(r); ok {
			hits = append(hits, hit)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// IntersectFirst returns the nearest hit of the given ray against the set.
func (s *Set) IntersectFirst(r game.Ray) (game.RayHit, bool) {
	found := false
	var nearest game.RayHit
	for el := s.surfaces.Front(); el != nil; el = el.Next() {
		hit, ok := el.Value.Intersect(r)
		if !ok {
			continue
		}
		if !found || hit.Distance < nearest.Distance {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

// IntersectAny reports whether the given ray hits any surface in the set.
func (s *Set) IntersectAny(r game.Ray) bool {
	for el := s.surfaces.Front(); el != nil; el = el.Next() {
		if _, ok := el.Value.Intersect(r); ok {
			return true
		}
	}
	return false
}
