package engine

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/physics"
)

// Params are the constants a run is built from. They never change during a run.
type Params struct {
	FPS   int
	Seed  uint64
	Frame physics.Frame

	InitialBodies int
	Radii         physics.RadiusRange
	InitialSpeed  float64
	BoostedSpeed  float64

	BoundaryCenter   r2.Vec
	BoundaryRadius   float64
	BoundaryLifetime float64
	ColorTransition  float64

	CueDuration float64
	GraceFrames int
}

// DefaultParams reproduces the reference run
func DefaultParams() Params {
	return Params{
		FPS:              parameter.FrameRate,
		Seed:             parameter.DefaultSeed,
		Frame:            physics.Frame{Width: parameter.FrameWidth, Height: parameter.FrameHeight},
		InitialBodies:    parameter.InitialBodyCount,
		Radii:            physics.RadiusRange{Min: parameter.BodyRadiusMin, Max: parameter.BodyRadiusMax},
		InitialSpeed:     parameter.BodyInitialSpeed,
		BoostedSpeed:     parameter.BodyBoostedSpeed,
		BoundaryCenter:   r2.Vec{X: parameter.BoundaryCenterX, Y: parameter.BoundaryCenterY},
		BoundaryRadius:   parameter.BoundaryRadius,
		BoundaryLifetime: parameter.BoundaryLifetime,
		ColorTransition:  parameter.BoundaryColorTransition,
		CueDuration:      parameter.CueDuration,
		GraceFrames:      parameter.GraceFrames,
	}
}
