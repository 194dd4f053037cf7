package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/bounce/engine"
)

// progress prints the run status lines and forwards each frame to an optional preview
type progress struct {
	out       io.Writer
	fps       int
	announced bool
	next      engine.Observer
}

func (p *progress) observe(res engine.FrameResult) {
	if p.fps > 0 && res.Snapshot.Index%p.fps == 0 {
		fmt.Fprintf(p.out, "Rendered frame %d\n", res.Snapshot.Index)
	}
	if !p.announced && res.Phase >= engine.PhaseBodiesGone {
		p.announced = true
		fmt.Fprintln(p.out, "All balls are gone. Rendering the grace period...")
	}
	if p.next != nil {
		p.next(res)
	}
}
