package engine

import (
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

// spawnAtCenter appends one OnTop body at the boundary center and flags every
// body within twice its radius of the center, so the next pair pass redirects them.
// Returns the index of the new body and the indices that were flagged.
func spawnAtCenter(s *State, rng *vmath.FastRand) (int, []int) {
	p := s.Params
	nb := physics.NewRandomBody(rng, p.BoundaryCenter, p.Radii, p.InitialSpeed, true)
	s.Bodies = append(s.Bodies, nb)
	s.Spawns++

	reach := nb.Radius * 2
	flagged := make([]int, 0, 4)
	for i, b := range s.Bodies {
		if vmath.Distance(b.Pos, p.BoundaryCenter) < reach {
			b.OnTop = true
			flagged = append(flagged, i)
		}
	}
	return len(s.Bodies) - 1, flagged
}
