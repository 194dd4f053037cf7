package audio

import (
	"fmt"
	"math"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/bounce/event"
)

// Mix lays every clip onto a silent track of total seconds. Clips must already be
// clipped to total, see event.ClipTo. Volume is linear, 1 keeps the asset level.
func Mix(a *Asset, clips []event.Clip, total, volume float64) (beep.Streamer, error) {
	n := samples(total)
	voices := make([]beep.Streamer, 0, len(clips)+1)
	// keeps the mix alive for the full length when no clip reaches the end
	voices = append(voices, beep.Silence(n))

	for _, c := range clips {
		part, err := a.slice(c.Offset, c.Duration)
		if err != nil {
			return nil, err
		}
		voices = append(voices, beep.Seq(beep.Silence(samples(c.Start)), part))
	}

	return beep.Take(n, newVolume(beep.Mix(voices...), volume)), nil
}

// WriteTrack mixes the cues of a run into a WAV file at path, sized to the video duration
func WriteTrack(path string, a *Asset, cues []event.Cue, total, volume float64) error {
	mix, err := Mix(a, event.ClipTo(cues, total), total, volume)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create track: %w", err)
	}
	defer f.Close()

	if err := wav.Encode(f, mix, TrackFormat); err != nil {
		return fmt.Errorf("encode track: %w", err)
	}
	return nil
}

// math.Log2(0) is -Inf, so 0 volume goes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
