package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

// Boundary is the circular wall. It is active for Lifetime seconds from StartTime
// and never re-arms. Its color fades continuously whether or not it is active.
type Boundary struct {
	Center    r2.Vec
	Radius    float64
	StartTime float64
	Lifetime  float64
	Active    bool

	// Color is the rendered color of the current frame
	Color core.RGB
	// PhaseColor is the color the running fade started from
	PhaseColor core.RGB
	Target     core.RGB
	PhaseStart float64
	Transition float64
}

// NewBoundary draws the initial color then the first target color
func NewBoundary(center r2.Vec, radius, lifetime, transition float64, rng *vmath.FastRand) *Boundary {
	current := rng.Color()
	target := rng.Color()
	return &Boundary{
		Center:     center,
		Radius:     radius,
		Lifetime:   lifetime,
		Active:     true,
		Color:      current,
		PhaseColor: current,
		Target:     target,
		Transition: transition,
	}
}

// ActiveUntil is the absolute time the active window closes
func (bd *Boundary) ActiveUntil() float64 {
	return bd.StartTime + bd.Lifetime
}

// IsActiveAt reports whether now falls inside the active window, end inclusive
func (bd *Boundary) IsActiveAt(now float64) bool {
	return now-bd.StartTime <= bd.Lifetime
}

// Update refreshes the active flag and advances the color fade. A completed fade commits
// the target, draws the next one and restarts the phase at now.
func (bd *Boundary) Update(now float64, rng *vmath.FastRand) {
	bd.Active = bd.IsActiveAt(now)

	progress := 1.0
	if bd.Transition > 0 {
		progress = min(1, (now-bd.PhaseStart)/bd.Transition)
	}
	bd.Color = bd.PhaseColor.Lerp(bd.Target, progress)

	if progress >= 1 {
		bd.PhaseColor = bd.Target
		bd.Target = rng.Color()
		bd.PhaseStart = now
	}
}
