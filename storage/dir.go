package storage

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore writes one PNG file per frame into a directory
type DirStore struct {
	Dir string
	n   int
}

// NewDirStore creates dir if needed
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create frames dir: %w", err)
	}
	return &DirStore{Dir: dir}, nil
}

// Path returns the file path of the frame at index
func (s *DirStore) Path(index int) string {
	return filepath.Join(s.Dir, FrameFile(index))
}

func (s *DirStore) Put(index int, img image.Image) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(index), data, 0644); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	s.n = max(s.n, index+1)
	return nil
}

func (s *DirStore) Raw(index int) ([]byte, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(index))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", FrameKey(index), ErrFrameNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return data, nil
}

func (s *DirStore) Load(index int) (image.Image, error) {
	data, err := s.Raw(index)
	if err != nil {
		return nil, err
	}
	return decodePNG(data)
}

func (s *DirStore) Len() int {
	return s.n
}

// Clear deletes the frame files this store wrote and removes the directory once
// nothing else is left in it. Foreign files keep the directory in place.
func (s *DirStore) Clear() error {
	for i := 0; i < s.n; i++ {
		if err := os.Remove(s.Path(i)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove frame: %w", err)
		}
	}
	s.n = 0

	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read frames dir: %w", err)
	}
	if len(entries) > 0 {
		return nil
	}
	if err := os.Remove(s.Dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove frames dir: %w", err)
	}
	return nil
}
