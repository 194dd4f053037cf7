// Package storage persists rendered frames and run manifests
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/lixenwraith/bounce/parameter"
)

// ErrFrameNotFound is returned when an index was never stored
var ErrFrameNotFound = errors.New("frame not found")

// FrameStore holds PNG-encoded frames keyed by sequential index
type FrameStore interface {
	Put(index int, img image.Image) error
	Load(index int) (image.Image, error)
	// Raw returns the encoded PNG bytes of a frame
	Raw(index int) ([]byte, error)
	// Len is one past the highest stored index
	Len() int
	Clear() error
}

// FrameKey names the frame at index, without extension
func FrameKey(index int) string {
	return fmt.Sprintf(parameter.FrameKeyFormat, index)
}

// FrameFile names the frame at index, with extension
func FrameFile(index int) string {
	return FrameKey(index) + parameter.FrameExt
}

// speed over size, frames are transient
var encoder = png.Encoder{CompressionLevel: png.BestSpeed}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func decodePNG(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

func checkIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("negative frame index %d", index)
	}
	return nil
}
