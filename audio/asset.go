// Package audio builds the collision soundtrack by slicing a recorded asset at cue times
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/bounce/parameter"
)

var (
	// ErrNoAsset is returned when the sound file is missing
	ErrNoAsset = errors.New("sound asset not found")
	// ErrAssetExhausted is returned when a cue slice runs past the end of the asset
	ErrAssetExhausted = errors.New("sound asset exhausted")
)

// TrackFormat is the format every asset is converted to and every track is written in
var TrackFormat = beep.Format{
	SampleRate:  parameter.AudioSampleRate,
	NumChannels: parameter.AudioChannels,
	Precision:   parameter.AudioPrecision,
}

// Asset is a fully buffered sound in TrackFormat
type Asset struct {
	buf *beep.Buffer
}

// LoadAsset decodes a WAV file, resampling to TrackFormat when needed
func LoadAsset(path string) (*Asset, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAsset)
	}
	if err != nil {
		return nil, fmt.Errorf("open asset: %w", err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", path, err)
	}

	var s beep.Streamer = stream
	if format.SampleRate != TrackFormat.SampleRate {
		s = beep.Resample(parameter.AudioResampleQuality, format.SampleRate, TrackFormat.SampleRate, s)
	}
	a := NewAsset(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("read asset %s: %w", path, err)
	}
	return a, nil
}

// NewAsset buffers s, which must already be at TrackFormat's sample rate
func NewAsset(s beep.Streamer) *Asset {
	buf := beep.NewBuffer(TrackFormat)
	buf.Append(s)
	return &Asset{buf: buf}
}

// Len returns the asset length in samples
func (a *Asset) Len() int {
	return a.buf.Len()
}

// Duration returns the asset length in seconds
func (a *Asset) Duration() float64 {
	return float64(a.buf.Len()) / float64(TrackFormat.SampleRate)
}

// slice returns the samples covering [offset, offset+duration) seconds
func (a *Asset) slice(offset, duration float64) (beep.StreamSeeker, error) {
	from := samples(offset)
	to := from + samples(duration)
	if from < 0 || to > a.buf.Len() {
		return nil, fmt.Errorf("slice %.3fs+%.3fs of %.3fs asset: %w", offset, duration, a.Duration(), ErrAssetExhausted)
	}
	return a.buf.Streamer(from, to), nil
}

// samples converts seconds to a sample count at the track rate
func samples(seconds float64) int {
	return int(math.Round(seconds * float64(TrackFormat.SampleRate)))
}
