package engine

import (
	"github.com/lixenwraith/bounce/event"
	"github.com/lixenwraith/bounce/vmath"
)

// FrameResult reports what happened during one Step
type FrameResult struct {
	Snapshot FrameSnapshot

	BoundaryHit    bool
	BodyCollisions int
	SpeedBoosted   bool

	// Spawned is the index of the new body, -1 when nothing spawned
	Spawned int
	// Flagged lists bodies marked OnTop by the spawn
	Flagged []int
	Cue     *event.Cue

	Phase Phase
}

// Step advances s by one frame. Random draws happen in a fixed order:
// boundary color roll, boundary-hit headings, pair headings, spawn.
func Step(s *State, rng *vmath.FastRand) FrameResult {
	res := FrameResult{Spawned: -1}
	if s.Terminated() {
		res.Phase = s.Phase()
		return res
	}

	s.Time = float64(s.Frame) / float64(s.Params.FPS)
	s.Boundary.Update(s.Time, rng)

	res.BoundaryHit = resolveBoundaryPass(s, rng)
	res.SpeedBoosted = applySpeedBoost(s)
	res.BodyCollisions = resolveBodyPass(s, rng)

	for _, b := range s.Bodies {
		b.Move(s.Params.Frame)
	}
	drawn := len(s.Bodies)

	if res.BoundaryHit {
		res.Spawned, res.Flagged = spawnAtCenter(s, rng)
		cue := s.Timeline.Record(s.Time)
		res.Cue = &cue
	}

	res.Snapshot = snapshot(s, drawn)

	advanceClock(s)
	res.Phase = s.Phase()
	return res
}

// Simulation owns a state and its random source
type Simulation struct {
	state *State
	rng   *vmath.FastRand
}

// NewSimulation seeds the random source from p.Seed and builds the initial state
func NewSimulation(p Params) *Simulation {
	rng := vmath.NewFastRand(p.Seed)
	return &Simulation{
		state: NewState(p, rng),
		rng:   rng,
	}
}

// Step advances one frame
func (sim *Simulation) Step() FrameResult {
	return Step(sim.state, sim.rng)
}

// Done reports whether the run has terminated
func (sim *Simulation) Done() bool {
	return sim.state.Terminated()
}

// State exposes the simulation state for inspection
func (sim *Simulation) State() *State {
	return sim.state
}
