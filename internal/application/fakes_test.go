package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"ring-inspector/internal/domain/entity"
)

// fakeDetector отдаёт заранее заданные результаты по содержимому изображения.
type fakeDetector struct {
	results map[string]entity.InspectionResult
	calls   int
	mu      sync.Mutex
}

func (d *fakeDetector) Inspect(ctx context.Context, imageData []byte) (*entity.InspectionResult, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	res, ok := d.results[string(imageData)]
	if !ok {
		return nil, errors.New("failed to decode image")
	}
	return &res, nil
}

func (d *fakeDetector) HighlightDefects(imageData []byte, result *entity.InspectionResult) ([]byte, error) {
	return append([]byte("marked:"), imageData...), nil
}

// memStore хранилище изображений в памяти.
type memStore struct {
	files   map[string][]byte
	written map[string][]byte
	mu      sync.Mutex
}

func newMemStore(files map[string][]byte) *memStore {
	return &memStore{files: files, written: make(map[string][]byte)}
}

func (s *memStore) List(paths []string) ([]string, error) {
	if len(paths) == 0 {
		var all []string
		for name := range s.files {
			all = append(all, name)
		}
		sort.Strings(all)
		return all, nil
	}
	return paths, nil
}

func (s *memStore) Read(path string) ([]byte, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: not found", path)
	}
	return data, nil
}

func (s *memStore) Write(name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written[name] = data
	return "out/" + name, nil
}
