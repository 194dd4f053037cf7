package engine

import (
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

// resolveBoundaryPass tests every body against the boundary and collapses the
// outcome into one signal, so simultaneous hits still spawn a single body
func resolveBoundaryPass(s *State, rng *vmath.FastRand) bool {
	hit := false
	for _, b := range s.Bodies {
		if b.ResolveBoundaryHit(s.Boundary, rng) {
			hit = true
		}
	}
	return hit
}

// activeIndices captures, in list order, the bodies taking part in this frame's pair pass
func activeIndices(bodies []*physics.Body) []int {
	idx := make([]int, 0, len(bodies))
	for i, b := range bodies {
		if b.Active {
			idx = append(idx, i)
		}
	}
	return idx
}

// resolveBodyPass tests each unordered active pair once, in insertion order.
// Returns the number of resolved collisions.
func resolveBodyPass(s *State, rng *vmath.FastRand) int {
	idx := activeIndices(s.Bodies)
	resolved := 0
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if physics.ResolveBodyCollision(s.Bodies[idx[i]], s.Bodies[idx[j]], rng) {
				resolved++
			}
		}
	}
	return resolved
}
