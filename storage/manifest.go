package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bounce/event"
)

// Manifest records what a run produced, written next to the video
type Manifest struct {
	RunID     uuid.UUID   `yaml:"run_id"`
	CreatedAt time.Time   `yaml:"created_at"`
	Seed      uint64      `yaml:"seed"`
	FPS       int         `yaml:"fps"`
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	Frames    int         `yaml:"frames"`
	Duration  float64     `yaml:"duration"`
	Spawns    int         `yaml:"spawns"`
	Output    string      `yaml:"output,omitempty"`
	Sound     string      `yaml:"sound,omitempty"`
	Cues      []event.Cue `yaml:"cues"`
}

// WriteManifest encodes m as YAML at path
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest decodes the manifest at path
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
