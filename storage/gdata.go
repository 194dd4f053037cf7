package storage

import (
	"fmt"
	"image"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

// GdataStore keeps frames as properties of one per-run object in the
// platform data directory managed by gdata
type GdataStore struct {
	m      *gdata.Manager
	object string
	n      int
}

// NewGdataStore scopes frames under an object named after runID
func NewGdataStore(m *gdata.Manager, runID uuid.UUID) *GdataStore {
	return &GdataStore{m: m, object: "run-" + runID.String()}
}

// OpenGdataStore opens the gdata manager for app and returns a store for runID
func OpenGdataStore(app string, runID uuid.UUID) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return NewGdataStore(m, runID), nil
}

// Object returns the gdata object key holding this run's frames
func (s *GdataStore) Object() string {
	return s.object
}

func (s *GdataStore) Put(index int, img image.Image) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(s.object, FrameFile(index), data); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	s.n = max(s.n, index+1)
	return nil
}

func (s *GdataStore) Raw(index int) ([]byte, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	key := FrameFile(index)
	if !s.m.ObjectPropExists(s.object, key) {
		return nil, fmt.Errorf("%s: %w", FrameKey(index), ErrFrameNotFound)
	}
	data, err := s.m.LoadObjectProp(s.object, key)
	if err != nil {
		return nil, fmt.Errorf("load frame: %w", err)
	}
	return data, nil
}

func (s *GdataStore) Load(index int) (image.Image, error) {
	data, err := s.Raw(index)
	if err != nil {
		return nil, err
	}
	return decodePNG(data)
}

func (s *GdataStore) Len() int {
	return s.n
}

// Clear deletes the run object with all its frames
func (s *GdataStore) Clear() error {
	if err := s.m.DeleteObject(s.object); err != nil {
		return fmt.Errorf("delete run object: %w", err)
	}
	s.n = 0
	return nil
}
