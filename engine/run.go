package engine

import (
	"context"
	"fmt"
	"image"

	"github.com/lixenwraith/bounce/event"
)

// Renderer turns a snapshot into a raster image
type Renderer interface {
	Render(snap FrameSnapshot) (image.Image, error)
}

// FrameSink persists rendered frames under their sequential index
type FrameSink interface {
	Put(index int, img image.Image) error
}

// Observer receives every frame result after the frame was persisted
type Observer func(res FrameResult)

// Result summarizes a finished run
type Result struct {
	Frames         int
	Cues           []event.Cue
	Spawns         int
	FirstHitFrame  int
	ExpiredAtFrame int
	AllGoneAtFrame int
}

// Duration returns the video length in seconds
func (r Result) Duration(fps int) float64 {
	return float64(r.Frames) / float64(fps)
}

// Run steps sim to termination, rendering and persisting every frame.
// The first render or persistence error, or ctx cancellation, aborts the run.
func Run(ctx context.Context, sim *Simulation, r Renderer, sink FrameSink, obs Observer) (Result, error) {
	firstHit := -1
	for !sim.Done() {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("run aborted at frame %d: %w", sim.State().Frame, err)
		}
		res := sim.Step()
		if res.BoundaryHit && firstHit < 0 {
			firstHit = res.Snapshot.Index
		}

		if r != nil {
			img, err := r.Render(res.Snapshot)
			if err != nil {
				return Result{}, fmt.Errorf("render frame %d: %w", res.Snapshot.Index, err)
			}
			if sink != nil {
				if err := sink.Put(res.Snapshot.Index, img); err != nil {
					return Result{}, fmt.Errorf("persist frame %d: %w", res.Snapshot.Index, err)
				}
			}
		}

		if obs != nil {
			obs(res)
		}
	}

	s := sim.State()
	return Result{
		Frames:         s.Frame,
		Cues:           s.Timeline.Cues(),
		Spawns:         s.Spawns,
		FirstHitFrame:  firstHit,
		ExpiredAtFrame: s.ExpiredAtFrame,
		AllGoneAtFrame: s.AllGoneAtFrame,
	}, nil
}
