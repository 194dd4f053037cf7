// Package config loads run settings from defaults, an optional YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/physics"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Frame store kinds
const (
	StoreDir   = "dir"
	StoreGdata = "gdata"
)

// Config holds every tunable of a run. Zero values in a YAML file keep the defaults.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Seed   uint64 `yaml:"seed"`

	InitialBodies    int     `yaml:"initial_bodies"`
	BoundaryRadius   float64 `yaml:"boundary_radius"`
	BoundaryLifetime float64 `yaml:"boundary_lifetime"`
	ColorTransition  float64 `yaml:"color_transition"`
	InitialSpeed     float64 `yaml:"initial_speed"`
	BoostedSpeed     float64 `yaml:"boosted_speed"`
	RadiusMin        float64 `yaml:"radius_min"`
	RadiusMax        float64 `yaml:"radius_max"`
	CueDuration      float64 `yaml:"cue_duration"`
	GraceSeconds     float64 `yaml:"grace_seconds"`

	Output     string  `yaml:"output"`
	FramesDir  string  `yaml:"frames_dir"`
	SoundAsset string  `yaml:"sound_asset"`
	Volume     float64 `yaml:"volume"`
	Store      string  `yaml:"store"`
	AppName    string  `yaml:"app_name"`

	Preview      bool `yaml:"preview"`
	PreviewEvery int  `yaml:"preview_every"`
	KeepFrames   bool `yaml:"keep_frames"`
	Debug        bool `yaml:"debug"`
}

// Default reproduces the reference run
func Default() *Config {
	return &Config{
		Width:            parameter.FrameWidth,
		Height:           parameter.FrameHeight,
		FPS:              parameter.FrameRate,
		Seed:             parameter.DefaultSeed,
		InitialBodies:    parameter.InitialBodyCount,
		BoundaryRadius:   parameter.BoundaryRadius,
		BoundaryLifetime: parameter.BoundaryLifetime,
		ColorTransition:  parameter.BoundaryColorTransition,
		InitialSpeed:     parameter.BodyInitialSpeed,
		BoostedSpeed:     parameter.BodyBoostedSpeed,
		RadiusMin:        parameter.BodyRadiusMin,
		RadiusMax:        parameter.BodyRadiusMax,
		CueDuration:      parameter.CueDuration,
		GraceSeconds:     parameter.GraceSeconds,
		Output:           parameter.DefaultOutput,
		FramesDir:        parameter.DefaultFramesDir,
		SoundAsset:       parameter.DefaultSoundAsset,
		Volume:           1.0,
		Store:            StoreDir,
		AppName:          "bounce",
		PreviewEvery:     4,
	}
}

// Load layers defaults, the YAML file at path (skipped when empty) and BOUNCE_* environment
// variables, then validates the result
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BOUNCE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BOUNCE_SEED %q: %w", v, ErrInvalidConfig)
		}
		c.Seed = seed
	}
	if v := os.Getenv("BOUNCE_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BOUNCE_FPS %q: %w", v, ErrInvalidConfig)
		}
		c.FPS = fps
	}
	if v := os.Getenv("BOUNCE_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("BOUNCE_SOUND"); v != "" {
		c.SoundAsset = v
	}
	if v := os.Getenv("BOUNCE_FRAMES_DIR"); v != "" {
		c.FramesDir = v
	}
	if v := os.Getenv("BOUNCE_STORE"); v != "" {
		c.Store = v
	}
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return invalid("frame size %dx%d", c.Width, c.Height)
	case c.FPS <= 0:
		return invalid("fps %d", c.FPS)
	case c.InitialBodies < 0:
		return invalid("initial bodies %d", c.InitialBodies)
	case c.BoundaryRadius <= 0:
		return invalid("boundary radius %g", c.BoundaryRadius)
	case c.BoundaryLifetime <= 0:
		return invalid("boundary lifetime %g", c.BoundaryLifetime)
	case c.ColorTransition <= 0:
		return invalid("color transition %g", c.ColorTransition)
	case c.RadiusMin <= 0 || c.RadiusMin > c.RadiusMax:
		return invalid("radius range %g..%g", c.RadiusMin, c.RadiusMax)
	case c.RadiusMax >= c.BoundaryRadius:
		return invalid("radius max %g not below boundary radius %g", c.RadiusMax, c.BoundaryRadius)
	case c.InitialSpeed < 0 || c.BoostedSpeed < 0:
		return invalid("speeds %g/%g", c.InitialSpeed, c.BoostedSpeed)
	case c.CueDuration <= 0:
		return invalid("cue duration %g", c.CueDuration)
	case c.GraceSeconds < 0:
		return invalid("grace seconds %g", c.GraceSeconds)
	case c.Volume < 0:
		return invalid("volume %g", c.Volume)
	case c.Store != StoreDir && c.Store != StoreGdata:
		return invalid("unknown store %q", c.Store)
	case c.Output == "":
		return invalid("empty output")
	}
	return nil
}

// GraceFrames converts the grace period to whole frames
func (c *Config) GraceFrames() int {
	return int(math.Round(c.GraceSeconds * float64(c.FPS)))
}

// Engine projects the config onto simulation parameters
func (c *Config) Engine() engine.Params {
	return engine.Params{
		FPS:              c.FPS,
		Seed:             c.Seed,
		Frame:            physics.Frame{Width: float64(c.Width), Height: float64(c.Height)},
		InitialBodies:    c.InitialBodies,
		Radii:            physics.RadiusRange{Min: c.RadiusMin, Max: c.RadiusMax},
		InitialSpeed:     c.InitialSpeed,
		BoostedSpeed:     c.BoostedSpeed,
		BoundaryCenter:   r2.Vec{X: float64(c.Width / 2), Y: float64(c.Height / 2)},
		BoundaryRadius:   c.BoundaryRadius,
		BoundaryLifetime: c.BoundaryLifetime,
		ColorTransition:  c.ColorTransition,
		CueDuration:      c.CueDuration,
		GraceFrames:      c.GraceFrames(),
	}
}
