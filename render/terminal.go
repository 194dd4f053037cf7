package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

const (
	bodyGlyph     = '●'
	boundaryGlyph = '·'

	// ringDim darkens the boundary ring so bodies read on top of it
	ringDim = 0.5
)

// TerminalPreview mirrors the simulation onto a tcell screen at cell resolution.
// The bottom row is reserved for a status line.
type TerminalPreview struct {
	screen tcell.Screen
	// Every draws one frame out of Every; values below 1 draw all frames
	Every int
}

// NewTerminalPreview wraps an initialized screen
func NewTerminalPreview(screen tcell.Screen, every int) *TerminalPreview {
	screen.HideCursor()
	screen.Clear()
	return &TerminalPreview{screen: screen, Every: every}
}

// Observe draws res when it falls on the preview cadence; usable as an engine.Observer
func (p *TerminalPreview) Observe(res engine.FrameResult) {
	every := max(p.Every, 1)
	if res.Snapshot.Index%every != 0 {
		return
	}
	p.Draw(res.Snapshot, res.Phase.String())
}

// Draw renders snap scaled to the current screen size
func (p *TerminalPreview) Draw(snap engine.FrameSnapshot, phase string) {
	cols, rows := p.screen.Size()
	p.screen.Clear()
	if cols <= 0 || rows <= 1 || snap.Width <= 0 || snap.Height <= 0 {
		p.screen.Show()
		return
	}
	field := rows - 1

	toCell := func(x, y float64) (int, int, bool) {
		cx := int(x * float64(cols) / float64(snap.Width))
		cy := int(y * float64(field) / float64(snap.Height))
		return cx, cy, cx >= 0 && cx < cols && cy >= 0 && cy < field
	}

	bd := snap.Boundary
	if bd.Visible {
		style := tcell.StyleDefault.Foreground(cellColor(bd.Color.Scale(ringDim)))
		// sample densely enough to close the ring at the current resolution
		steps := max(cols, field) * 4
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			x := bd.Center.X + bd.Radius*math.Cos(a)
			y := bd.Center.Y + bd.Radius*math.Sin(a)
			if cx, cy, ok := toCell(x, y); ok {
				p.screen.SetContent(cx, cy, boundaryGlyph, nil, style)
			}
		}
	}

	for _, b := range snap.Bodies {
		if cx, cy, ok := toCell(b.Pos.X, b.Pos.Y); ok {
			p.screen.SetContent(cx, cy, bodyGlyph, nil, tcell.StyleDefault.Foreground(cellColor(b.Color)))
		}
	}

	status := fmt.Sprintf("frame %d  t=%.2fs  active %d  %s", snap.Index, snap.Time, snap.ActiveCount, phase)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		p.screen.SetContent(i, rows-1, r, nil, statusStyle)
	}
	p.screen.Show()
}

// Interrupt calls cancel when Escape, Ctrl-C or q is pressed. The raw terminal swallows
// SIGINT, so this is the only way to abort while the preview is up. Polling ends with Close.
func (p *TerminalPreview) Interrupt(cancel func()) {
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
				}
			case *tcell.EventResize:
				p.screen.Sync()
			}
		}
	}()
}

// Close restores the terminal
func (p *TerminalPreview) Close() {
	p.screen.Fini()
}

func cellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
