package engine

import "github.com/lixenwraith/bounce/engine/fsm"

// Phase is the termination state of a run
type Phase fsm.StateID

const (
	PhaseBoundaryActive Phase = iota + 1
	PhaseBoundaryExpired
	PhaseBodiesGone
	PhaseTerminated
)

var phaseNames = map[Phase]string{
	PhaseBoundaryActive:  "BOUNDARY_ACTIVE",
	PhaseBoundaryExpired: "BOUNDARY_EXPIRED_BODIES_PRESENT",
	PhaseBodiesGone:      "BOUNDARY_EXPIRED_BODIES_GONE",
	PhaseTerminated:      "TERMINATED",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// newPhaseMachine wires the one-way chain
// active -> expired -> gone (grace) -> terminated
func newPhaseMachine(s *State) *fsm.Machine[*State] {
	m := fsm.NewMachine[*State]()

	m.AddState(fsm.StateID(PhaseBoundaryActive), PhaseBoundaryActive.String())

	expired := m.AddState(fsm.StateID(PhaseBoundaryExpired), PhaseBoundaryExpired.String())
	expired.OnEnter = append(expired.OnEnter, func(s *State) { s.ExpiredAtFrame = s.Frame })

	gone := m.AddState(fsm.StateID(PhaseBodiesGone), PhaseBodiesGone.String())
	gone.OnEnter = append(gone.OnEnter, func(s *State) { s.AllGoneAtFrame = s.Frame })

	done := m.AddState(fsm.StateID(PhaseTerminated), PhaseTerminated.String())
	done.Terminal = true

	m.AddTransition(fsm.StateID(PhaseBoundaryActive), fsm.StateID(PhaseBoundaryExpired),
		func(s *State) bool { return !s.Boundary.Active })
	m.AddTransition(fsm.StateID(PhaseBoundaryExpired), fsm.StateID(PhaseBodiesGone),
		func(s *State) bool { return s.AllGoneObserved })
	m.AddTransition(fsm.StateID(PhaseBodiesGone), fsm.StateID(PhaseTerminated),
		func(s *State) bool { return s.GraceCount >= s.Params.GraceFrames })

	// static graph, initial state exists
	_ = m.Init(s, fsm.StateID(PhaseBoundaryActive))
	return m
}

// advanceClock closes a frame: grace bookkeeping, the phase machine, then the frame counter.
// Phase entry stamps therefore carry the index of the frame that triggered them.
func advanceClock(s *State) {
	if !s.Boundary.Active && s.ActiveCount() == 0 {
		s.AllGoneObserved = true
		s.GraceCount++
	}

	s.phases.Update(s)
	s.Frame++
}
