package core

import "image/color"

// RGB stores explicit 8-bit color channels, decoupled from any raster backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Lerp moves each channel from c toward dst by progress, truncating toward zero.
// Progress is clamped to [0, 1].
func (c RGB) Lerp(dst RGB, progress float64) RGB {
	if progress <= 0 {
		return c
	}
	if progress >= 1 {
		return dst
	}
	return RGB{
		R: lerpChannel(c.R, dst.R, progress),
		G: lerpChannel(c.G, dst.G, progress),
		B: lerpChannel(c.B, dst.B, progress),
	}
}

func lerpChannel(from, to uint8, progress float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*progress)
}

// Scale multiplies each channel by factor, clamped to [0,1]
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// RGBA converts to an opaque image color
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
