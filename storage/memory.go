package storage

import (
	"fmt"
	"image"
)

// MemStore keeps encoded frames in memory, for short runs and tests
type MemStore struct {
	frames map[int][]byte
	n      int
}

func NewMemStore() *MemStore {
	return &MemStore{frames: make(map[int][]byte)}
}

func (s *MemStore) Put(index int, img image.Image) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	s.frames[index] = data
	s.n = max(s.n, index+1)
	return nil
}

func (s *MemStore) Raw(index int) ([]byte, error) {
	data, ok := s.frames[index]
	if !ok {
		return nil, fmt.Errorf("%s: %w", FrameKey(index), ErrFrameNotFound)
	}
	return data, nil
}

func (s *MemStore) Load(index int) (image.Image, error) {
	data, err := s.Raw(index)
	if err != nil {
		return nil, err
	}
	return decodePNG(data)
}

func (s *MemStore) Len() int {
	return s.n
}

func (s *MemStore) Clear() error {
	clear(s.frames)
	s.n = 0
	return nil
}
