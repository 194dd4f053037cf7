package event

// Cue is a scheduled slice of the collision sound.
// Offset is where the slice starts inside the external audio asset.
type Cue struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Offset float64 `yaml:"offset"`
}

// Duration returns End - Start
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// Timeline records non-overlapping cues, one per boundary-impact frame.
// Cues are appended in time order and never removed.
type Timeline struct {
	duration float64
	cues     []Cue
	lastEnd  float64
	offset   float64
}

// NewTimeline creates a recorder handing out cues of fixed duration
func NewTimeline(cueDuration float64) *Timeline {
	return &Timeline{
		duration: cueDuration,
		cues:     make([]Cue, 0, 64),
	}
}

// Record appends a cue at now, delayed to the end of the previous cue if that is later
func (tl *Timeline) Record(now float64) Cue {
	start := max(now, tl.lastEnd)
	c := Cue{
		Start:  start,
		End:    start + tl.duration,
		Offset: tl.offset,
	}
	tl.cues = append(tl.cues, c)
	tl.lastEnd = c.End
	tl.offset += tl.duration
	return c
}

// Cues returns a copy of the recorded cues
func (tl *Timeline) Cues() []Cue {
	out := make([]Cue, len(tl.cues))
	copy(out, tl.cues)
	return out
}

// Len returns the number of recorded cues
func (tl *Timeline) Len() int {
	return len(tl.cues)
}

// CueDuration returns the fixed cue length
func (tl *Timeline) CueDuration() float64 {
	return tl.duration
}

// Clip is a cue trimmed to a media duration
type Clip struct {
	Start    float64
	Offset   float64
	Duration float64
}

// ClipTo trims cues to a total media length. Cues starting at or after total are dropped,
// the survivors end at min(End, total); zero-length remnants are dropped as well.
func ClipTo(cues []Cue, total float64) []Clip {
	clips := make([]Clip, 0, len(cues))
	for _, c := range cues {
		if c.Start >= total {
			continue
		}
		length := min(c.End, total) - c.Start
		if length <= 0 {
			continue
		}
		clips = append(clips, Clip{Start: c.Start, Offset: c.Offset, Duration: length})
	}
	return clips
}
