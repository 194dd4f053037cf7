package engine

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/bounce/engine/fsm"
	"github.com/lixenwraith/bounce/event"
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

// State is the whole simulation, advanced one frame at a time by Step.
// Bodies and cues are append-only; indices into Bodies are stable for the run.
type State struct {
	Params Params

	Frame int
	Time  float64

	Bodies   []*physics.Body
	Boundary *physics.Boundary
	Timeline *event.Timeline

	SpeedBoosted    bool
	AllGoneObserved bool
	GraceCount      int

	// Frame stamps written on phase entry, -1 until reached
	ExpiredAtFrame int
	AllGoneAtFrame int

	Spawns int

	phases *fsm.Machine[*State]
}

// NewState places the initial bodies and the boundary. Random draws, in order:
// per body x, y, radius, color, heading; then boundary color and target color.
func NewState(p Params, rng *vmath.FastRand) *State {
	s := &State{
		Params:         p,
		Bodies:         make([]*physics.Body, 0, 64),
		Timeline:       event.NewTimeline(p.CueDuration),
		ExpiredAtFrame: -1,
		AllGoneAtFrame: -1,
	}

	c := p.BoundaryCenter
	for i := 0; i < p.InitialBodies; i++ {
		pos := r2.Vec{
			X: c.X + rng.Uniform(-p.BoundaryRadius, p.BoundaryRadius),
			Y: c.Y + rng.Uniform(-p.BoundaryRadius, p.BoundaryRadius),
		}
		s.Bodies = append(s.Bodies, physics.NewRandomBody(rng, pos, p.Radii, p.InitialSpeed, false))
	}

	s.Boundary = physics.NewBoundary(c, p.BoundaryRadius, p.BoundaryLifetime, p.ColorTransition, rng)
	s.phases = newPhaseMachine(s)
	return s
}

// ActiveCount returns the number of bodies inside the frame
func (s *State) ActiveCount() int {
	n := 0
	for _, b := range s.Bodies {
		if b.Active {
			n++
		}
	}
	return n
}

// Phase returns the termination phase
func (s *State) Phase() Phase {
	return Phase(s.phases.Current())
}

// Terminated reports whether the run is over
func (s *State) Terminated() bool {
	return s.phases.Done()
}
