package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// pulse shapes a stream into repeating blips: each period ramps up over attack
// samples and decays linearly to silence by the period end
type pulse struct {
	streamer beep.Streamer
	period   int
	attack   int
	position int
}

func (p *pulse) Stream(buf [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(buf)
	for i := 0; i < n; i++ {
		pos := p.position % p.period
		var vol float64
		if pos < p.attack {
			vol = float64(pos) / float64(p.attack)
		} else {
			vol = float64(p.period-pos) / float64(p.period-p.attack)
		}
		buf[i][0] *= vol
		buf[i][1] *= vol
		p.position++
	}
	return n, ok
}

func (p *pulse) Err() error { return p.streamer.Err() }

// Blips returns seconds of sine at freq, cut into blips of period seconds.
// Slicing the result at multiples of period yields one blip per slice.
func Blips(freq, seconds, period float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(TrackFormat.SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	per := max(samples(period), 2)
	shaped := &pulse{streamer: sine, period: per, attack: max(per/20, 1)}
	return beep.Take(samples(seconds), shaped), nil
}

// WriteBlips renders Blips into a WAV asset at path
func WriteBlips(path string, freq, seconds, period, volume float64) error {
	s, err := Blips(freq, seconds, period)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}
	defer f.Close()

	if err := wav.Encode(f, newVolume(s, volume), TrackFormat); err != nil {
		return fmt.Errorf("encode asset: %w", err)
	}
	return nil
}
