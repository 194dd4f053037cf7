// Package media muxes stored frames and the cue track into a video with ffmpeg
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/lixenwraith/bounce/storage"
)

// ErrEncoderNotFound is returned when no ffmpeg binary is available
var ErrEncoderNotFound = errors.New("ffmpeg not found in PATH")

// stderrTail bounds how much encoder output is kept for error reports
const stderrTail = 4096

// Encoder pipes PNG frames into an ffmpeg process over stdin
type Encoder struct {
	Path       string
	FPS        int
	VideoCodec string
	PixFmt     string
	AudioCodec string
}

// DetectEncoder locates ffmpeg and returns an H.264/AAC encoder at fps
func DetectEncoder(fps int) (*Encoder, error) {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, ErrEncoderNotFound
	}
	return &Encoder{
		Path:       path,
		FPS:        fps,
		VideoCodec: "libx264",
		PixFmt:     "yuv420p",
		AudioCodec: "aac",
	}, nil
}

// Args builds the ffmpeg command line. An empty track produces a video without audio.
func (e *Encoder) Args(track, output string) []string {
	rate := strconv.Itoa(e.FPS)
	args := []string{
		"-y",
		"-loglevel", "error",
		"-f", "image2pipe",
		"-framerate", rate,
		"-c:v", "png",
		"-i", "pipe:0",
	}
	if track != "" {
		args = append(args, "-i", track)
	}
	args = append(args,
		"-c:v", e.VideoCodec,
		"-pix_fmt", e.PixFmt,
		"-r", rate,
	)
	if track != "" {
		args = append(args, "-c:a", e.AudioCodec, "-map", "0:v:0", "-map", "1:a:0")
	}
	return append(args, output)
}

// Encode streams every frame of frames in index order and waits for ffmpeg to finish
func (e *Encoder) Encode(ctx context.Context, frames storage.FrameStore, track, output string) error {
	if frames.Len() == 0 {
		return fmt.Errorf("encode %s: no frames", output)
	}

	cmd := exec.CommandContext(ctx, e.Path, e.Args(track, output)...)
	stderr := &tailBuffer{limit: stderrTail}
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("encoder stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return fmt.Errorf("start encoder: %w", err)
	}

	writeErr := writeFrames(stdin, frames)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	switch {
	case writeErr != nil:
		return fmt.Errorf("feed encoder: %w (%s)", writeErr, stderr)
	case waitErr != nil:
		return fmt.Errorf("encoder failed: %w (%s)", waitErr, stderr)
	case closeErr != nil:
		return fmt.Errorf("close encoder stdin: %w", closeErr)
	}
	return nil
}

func writeFrames(w io.Writer, frames storage.FrameStore) error {
	for i := 0; i < frames.Len(); i++ {
		data, err := frames.Raw(i)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%s: %w", storage.FrameKey(i), err)
		}
	}
	return nil
}

// tailBuffer keeps the last limit bytes written to it
type tailBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	t.buf.Write(p)
	if over := t.buf.Len() - t.limit; over > 0 {
		t.buf.Next(over)
	}
	return n, nil
}

func (t *tailBuffer) String() string {
	return string(bytes.TrimSpace(t.buf.Bytes()))
}
