package engine

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/bounce/core"
)

// BodyView is the render-facing part of a body
type BodyView struct {
	Pos    r2.Vec
	Radius float64
	Color  core.RGB
}

// BoundaryView is the render-facing boundary state. Visible mirrors the active window.
type BoundaryView struct {
	Visible bool
	Color   core.RGB
	Center  r2.Vec
	Radius  float64
}

// FrameSnapshot is everything a renderer needs for one frame
type FrameSnapshot struct {
	Index       int
	Time        float64
	Width       int
	Height      int
	Bodies      []BodyView
	Boundary    BoundaryView
	ActiveCount int
}

// snapshot captures bodies[:drawn] in list order; bodies spawned later in the frame
// are counted in ActiveCount but only drawn from the next frame on
func snapshot(s *State, drawn int) FrameSnapshot {
	views := make([]BodyView, drawn)
	for i, b := range s.Bodies[:drawn] {
		views[i] = BodyView{Pos: b.Pos, Radius: b.Radius, Color: b.Color}
	}
	bd := s.Boundary
	return FrameSnapshot{
		Index:  s.Frame,
		Time:   s.Time,
		Width:  int(s.Params.Frame.Width),
		Height: int(s.Params.Frame.Height),
		Bodies: views,
		Boundary: BoundaryView{
			Visible: bd.Active,
			Color:   bd.Color,
			Center:  bd.Center,
			Radius:  bd.Radius,
		},
		ActiveCount: s.ActiveCount(),
	}
}
