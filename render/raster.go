package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/parameter"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// Rasterizer draws snapshots into RGBA frames: black background, boundary ring while
// visible, bodies in list order, then the overlay text
type Rasterizer struct {
	Background core.RGB
	RingWidth  float64
	Overlay    *Overlay

	z *vector.Rasterizer
}

// NewRasterizer creates a renderer with the default ring width and overlay
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Background: core.RGBBlack,
		RingWidth:  parameter.BoundaryRingWidth,
		Overlay:    NewOverlay(),
		z:          vector.NewRasterizer(0, 0),
	}
}

// Render implements engine.Renderer
func (r *Rasterizer) Render(snap engine.FrameSnapshot) (image.Image, error) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", snap.Width, snap.Height)
	}
	img := image.NewRGBA(image.Rect(0, 0, snap.Width, snap.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background.RGBA()), image.Point{}, draw.Src)

	bd := snap.Boundary
	if bd.Visible {
		r.ring(img, bd.Center.X, bd.Center.Y, bd.Radius, bd.Radius-r.RingWidth, bd.Color)
	}

	for _, b := range snap.Bodies {
		r.disc(img, b.Pos.X, b.Pos.Y, b.Radius, b.Color)
	}

	if r.Overlay != nil {
		r.Overlay.Draw(img, snap.ActiveCount)
	}
	return img, nil
}

// clip returns the destination box covering a circle, clipped to dst
func clip(dst *image.RGBA, cx, cy, radius float64) image.Rectangle {
	box := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius))+1, int(math.Ceil(cy+radius))+1,
	)
	return box.Intersect(dst.Bounds())
}

func (r *Rasterizer) disc(dst *image.RGBA, cx, cy, radius float64, c core.RGB) {
	box := clip(dst, cx, cy, radius)
	if box.Empty() || radius <= 0 {
		return
	}
	r.z.Reset(box.Dx(), box.Dy())
	ox, oy := cx-float64(box.Min.X), cy-float64(box.Min.Y)
	circlePath(r.z, ox, oy, radius, false)
	r.fill(dst, box, c)
}

// ring fills the annulus between outer and inner; the inner path winds the other way
func (r *Rasterizer) ring(dst *image.RGBA, cx, cy, outer, inner float64, c core.RGB) {
	box := clip(dst, cx, cy, outer)
	if box.Empty() || outer <= 0 {
		return
	}
	r.z.Reset(box.Dx(), box.Dy())
	ox, oy := cx-float64(box.Min.X), cy-float64(box.Min.Y)
	circlePath(r.z, ox, oy, outer, false)
	if inner > 0 {
		circlePath(r.z, ox, oy, inner, true)
	}
	r.fill(dst, box, c)
}

func (r *Rasterizer) fill(dst *image.RGBA, box image.Rectangle, c core.RGB) {
	r.z.DrawOp = draw.Over
	r.z.Draw(dst, box, image.NewUniform(c.RGBA()), image.Point{})
}

// circlePath appends a closed four-segment cubic approximation of a circle
func circlePath(z *vector.Rasterizer, cx, cy, radius float64, reverse bool) {
	k := radius * kappa
	x, y, rr, kk := float32(cx), float32(cy), float32(radius), float32(k)

	z.MoveTo(x+rr, y)
	if !reverse {
		z.CubeTo(x+rr, y+kk, x+kk, y+rr, x, y+rr)
		z.CubeTo(x-kk, y+rr, x-rr, y+kk, x-rr, y)
		z.CubeTo(x-rr, y-kk, x-kk, y-rr, x, y-rr)
		z.CubeTo(x+kk, y-rr, x+rr, y-kk, x+rr, y)
	} else {
		z.CubeTo(x+rr, y-kk, x+kk, y-rr, x, y-rr)
		z.CubeTo(x-kk, y-rr, x-rr, y-kk, x-rr, y)
		z.CubeTo(x-rr, y+kk, x-kk, y+rr, x, y+rr)
		z.CubeTo(x+kk, y+rr, x+rr, y+kk, x+rr, y)
	}
	z.ClosePath()
}
