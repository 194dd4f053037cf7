package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

// Frame is the rectangular visible area; bodies outside it are inactive
type Frame struct {
	Width, Height float64
}

// Contains reports strict containment, edge coordinates count as outside
func (f Frame) Contains(p r2.Vec) bool {
	return 0 < p.X && p.X < f.Width && 0 < p.Y && p.Y < f.Height
}

// Body is a moving circle. Radius is fixed at creation.
type Body struct {
	Pos     r2.Vec
	Radius  float64
	Heading float64 // radians
	Speed   float64 // pixels per frame
	Color   core.RGB

	// Active is recomputed by Move: true while strictly inside the frame
	Active bool
	// OnTop exempts the body from overlap correction and forces a redirect
	// against any other OnTop body, cleared by the next resolved collision
	OnTop bool
}

// RadiusRange bounds the uniformly drawn body radius
type RadiusRange struct {
	Min, Max float64
}

// NewRandomBody places a body at pos, drawing radius, color (R,G,B) and heading in that order
func NewRandomBody(rng *vmath.FastRand, pos r2.Vec, radii RadiusRange, speed float64, onTop bool) *Body {
	radius := rng.Uniform(radii.Min, radii.Max)
	color := rng.Color()
	heading := rng.Angle()
	return &Body{
		Pos:     pos,
		Radius:  radius,
		Heading: heading,
		Speed:   speed,
		Color:   color,
		Active:  true,
		OnTop:   onTop,
	}
}

// Move advances one frame along the heading and refreshes Active
func (b *Body) Move(frame Frame) {
	b.Pos = r2.Add(b.Pos, vmath.Step(b.Heading, b.Speed))
	b.Active = frame.Contains(b.Pos)
}

// ResolveBoundaryHit pushes a body crossing the active boundary back onto the rim
// and redirects it at random. Returns true on collision.
func (b *Body) ResolveBoundaryHit(bd *Boundary, rng *vmath.FastRand) bool {
	if !bd.Active {
		return false
	}
	dist := vmath.Distance(b.Pos, bd.Center)
	if dist+b.Radius <= bd.Radius {
		return false
	}
	normal := vmath.Heading(bd.Center, b.Pos)
	b.Pos = vmath.Polar(bd.Center, bd.Radius-b.Radius, normal)
	b.Heading = rng.Angle()
	return true
}

// ResolveBodyCollision redirects a and b when they overlap or are both OnTop.
// Overlap is split evenly along the connecting line unless either body is OnTop.
// Both OnTop flags are cleared whenever a collision resolves. Headings draw a first, then b.
func ResolveBodyCollision(a, b *Body, rng *vmath.FastRand) bool {
	if !a.Active || !b.Active {
		return false
	}
	dist := vmath.Distance(a.Pos, b.Pos)
	reach := a.Radius + b.Radius
	if !(dist < reach || (a.OnTop && b.OnTop)) {
		return false
	}

	a.Heading = rng.Angle()
	b.Heading = rng.Angle()

	if !a.OnTop && !b.OnTop {
		axis := vmath.Heading(b.Pos, a.Pos)
		half := (reach - dist) / 2
		a.Pos = vmath.Polar(a.Pos, half, axis)
		b.Pos = vmath.Polar(b.Pos, -half, axis)
	}

	a.OnTop = false
	b.OnTop = false
	return true
}
