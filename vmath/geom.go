package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns the Euclidean distance between a and b
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Heading returns the angle of the vector from origin to p.
// Coincident points yield 0, i.e. the +X axis is the separation axis of last resort.
func Heading(origin, p r2.Vec) float64 {
	d := r2.Sub(p, origin)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.Y, d.X)
}

// Polar returns the point at dist along angle from origin
func Polar(origin r2.Vec, dist, angle float64) r2.Vec {
	return r2.Vec{
		X: origin.X + dist*math.Cos(angle),
		Y: origin.Y + dist*math.Sin(angle),
	}
}

// Step returns the unit step vector for a heading scaled by speed
func Step(heading, speed float64) r2.Vec {
	return r2.Vec{X: math.Cos(heading) * speed, Y: math.Sin(heading) * speed}
}
