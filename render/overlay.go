package render

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/bounce/parameter"
)

// Overlay draws the active-body counter and the caption with a scaled bitmap face
type Overlay struct {
	Face    font.Face
	Color   color.Color
	Scale   int
	Caption string

	// caption never changes, rendered once
	captionImg *image.RGBA
}

// NewOverlay creates the default white overlay
func NewOverlay() *Overlay {
	return &Overlay{
		Face:    basicfont.Face7x13,
		Color:   color.White,
		Scale:   parameter.OverlayScale,
		Caption: parameter.OverlayCaption,
	}
}

// Draw writes both overlay lines onto dst
func (o *Overlay) Draw(dst *image.RGBA, activeCount int) {
	count := o.text(fmt.Sprintf(parameter.OverlayCountFormat, activeCount))
	o.blit(dst, count, parameter.OverlayMarginX, parameter.OverlayCountY)

	if o.Caption == "" {
		return
	}
	if o.captionImg == nil {
		o.captionImg = o.text(o.Caption)
	}
	o.blit(dst, o.captionImg, parameter.OverlayMarginX, parameter.OverlayCaptionY)
}

// text rasterizes s at 1:1 on a transparent image sized to the face metrics
func (o *Overlay) text(s string) *image.RGBA {
	d := &font.Drawer{Face: o.Face}
	width := d.MeasureString(s).Ceil()
	metrics := o.Face.Metrics()
	height := metrics.Height.Ceil()

	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	d.Dst = img
	d.Src = image.NewUniform(o.Color)
	d.Dot = fixed.Point26_6{X: 0, Y: metrics.Ascent}
	d.DrawString(s)
	return img
}

func (o *Overlay) blit(dst *image.RGBA, src *image.RGBA, x, y int) {
	scale := max(o.Scale, 1)
	b := src.Bounds()
	dr := image.Rect(x, y, x+b.Dx()*scale, y+b.Dy()*scale)
	xdraw.NearestNeighbor.Scale(dst, dr, src, b, xdraw.Over, nil)
}
