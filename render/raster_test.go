package render

import (
	"image"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

var (
	red   = core.RGB{R: 255}
	green = core.RGB{G: 255}
)

func geometrySnapshot() engine.FrameSnapshot {
	return engine.FrameSnapshot{
		Width:  100,
		Height: 100,
		Boundary: engine.BoundaryView{
			Visible: true,
			Color:   red,
			Center:  r2.Vec{X: 50, Y: 50},
			Radius:  40,
		},
		Bodies: []engine.BodyView{
			{Pos: r2.Vec{X: 20, Y: 80}, Radius: 5, Color: green},
		},
	}
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRasterizerGeometry(t *testing.T) {
	r := NewRasterizer()
	r.Overlay = nil

	img, err := r.Render(geometrySnapshot())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("Expected 100x100 frame, got %v", b)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"ring right", 87, 50, color.RGBA{R: 255, A: 255}},
		{"ring top", 50, 12, color.RGBA{R: 255, A: 255}},
		{"inside ring", 50, 50, color.RGBA{A: 255}},
		{"outside ring", 2, 2, color.RGBA{A: 255}},
		{"body center", 20, 80, color.RGBA{G: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgbaAt(img, tt.x, tt.y); got != tt.want {
				t.Errorf("Expected %v at (%d,%d), got %v", tt.want, tt.x, tt.y, got)
			}
		})
	}
}

func TestRasterizerHiddenBoundary(t *testing.T) {
	r := NewRasterizer()
	r.Overlay = nil

	snap := geometrySnapshot()
	snap.Boundary.Visible = false
	img, err := r.Render(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := rgbaAt(img, 87, 50); got != (color.RGBA{A: 255}) {
		t.Errorf("Expected black where the ring was, got %v", got)
	}
}

func TestRasterizerBodiesDrawnInOrder(t *testing.T) {
	r := NewRasterizer()
	r.Overlay = nil

	snap := geometrySnapshot()
	snap.Boundary.Visible = false
	snap.Bodies = []engine.BodyView{
		{Pos: r2.Vec{X: 50, Y: 50}, Radius: 10, Color: green},
		{Pos: r2.Vec{X: 50, Y: 50}, Radius: 10, Color: red},
	}
	img, err := r.Render(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := rgbaAt(img, 50, 50); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected later body on top, got %v", got)
	}
}

func TestRasterizerBodyClippedAtEdge(t *testing.T) {
	r := NewRasterizer()
	r.Overlay = nil

	snap := geometrySnapshot()
	snap.Boundary.Visible = false
	snap.Bodies = []engine.BodyView{{Pos: r2.Vec{X: 0, Y: 0}, Radius: 6, Color: green}}
	img, err := r.Render(snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := rgbaAt(img, 1, 1); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("Expected clipped body at corner, got %v", got)
	}
}

func TestRasterizerInvalidSize(t *testing.T) {
	r := NewRasterizer()
	if _, err := r.Render(engine.FrameSnapshot{}); err == nil {
		t.Error("Expected error for empty frame size")
	}
}

func TestOverlayDrawsText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 200))
	o := NewOverlay()
	o.Draw(img, 7)

	lit := 0
	for y := 24; y < 24+13*o.Scale; y++ {
		for x := 24; x < 800; x++ {
			if rgbaAt(img, x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected count text pixels, found none")
	}

	if got := rgbaAt(img, 0, 0); got.A != 0 {
		t.Errorf("Expected margin untouched, got %v", got)
	}
}

func TestOverlayCaptionCached(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1080, 200))
	o := NewOverlay()
	o.Draw(img, 1)
	first := o.captionImg
	o.Draw(img, 2)
	if o.captionImg != first {
		t.Error("Expected caption image to be reused between frames")
	}
}
