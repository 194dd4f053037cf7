package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/event"
	"github.com/lixenwraith/bounce/storage"
)

// Job is everything needed to turn a finished run into a video
type Job struct {
	Frames storage.FrameStore
	Cues   []event.Cue
	Asset  *audio.Asset
	Volume float64
	Output string
	// KeepFrames skips deleting the intermediate frames after encoding
	KeepFrames bool
}

// Duration returns the video length in seconds at fps
func (j Job) Duration(fps int) float64 {
	return float64(j.Frames.Len()) / float64(fps)
}

// Produce mixes the cue track, encodes the video and deletes the intermediate frames.
// Cues starting at or after the video end are dropped; with no cue left the video is silent.
func (e *Encoder) Produce(ctx context.Context, job Job) error {
	total := job.Duration(e.FPS)

	track := ""
	if clips := event.ClipTo(job.Cues, total); len(clips) > 0 {
		if job.Asset == nil {
			return fmt.Errorf("%d cues to mix: %w", len(clips), audio.ErrNoAsset)
		}
		dir, err := os.MkdirTemp("", "bounce-track-")
		if err != nil {
			return fmt.Errorf("track dir: %w", err)
		}
		defer os.RemoveAll(dir)

		track = filepath.Join(dir, "track.wav")
		if err := audio.WriteTrack(track, job.Asset, job.Cues, total, job.Volume); err != nil {
			return fmt.Errorf("mix track: %w", err)
		}
	}

	if err := e.Encode(ctx, job.Frames, track, job.Output); err != nil {
		return err
	}

	if job.KeepFrames {
		return nil
	}
	if err := job.Frames.Clear(); err != nil {
		return fmt.Errorf("cleanup frames: %w", err)
	}
	return nil
}
