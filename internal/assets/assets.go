// Package assets gates asynchronously loaded art behind an explicit
// Loading → Ready state, so the frame loop can start before every image has
// arrived and simply skip drawing entities whose art is still pending.
// A failed load is logged and the entity stays invisible; the game runs on.
package assets

import (
	"log"
	"sync"

	"chosenoffset.com/streetrun/internal/render"
)

// Status of one named asset.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// Store tracks named images and their load status.
type Store struct {
	loader render.ResourceLoader

	mu     sync.Mutex
	images map[string]render.Image
	status map[string]Status
}

// NewStore creates a store loading through the given ResourceLoader.
func NewStore(loader render.ResourceLoader) *Store {
	return &Store{
		loader: loader,
		images: make(map[string]render.Image),
		status: make(map[string]Status),
	}
}

// LoadAsync starts loading path under name and returns immediately. There
// are no retries: a failure is terminal for that one asset.
func (s *Store) LoadAsync(name, path string) {
	s.mu.Lock()
	s.status[name] = StatusLoading
	s.mu.Unlock()

	go func() {
		img, err := s.loader.LoadImage(path)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			log.Printf("assets: failed to load %q from %s: %v", name, path, err)
			s.status[name] = StatusFailed
			return
		}
		s.images[name] = img
		s.status[name] = StatusReady
	}()
}

// Image returns the loaded image, or false while loading or after failure.
func (s *Store) Image(name string) (render.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.images[name]
	return img, ok
}

// Status reports the load state of a named asset. Unknown names report
// StatusLoading so callers treat them as not yet participating.
func (s *Store) Status(name string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.status[name]
	if !ok {
		return StatusLoading
	}
	return st
}

// Settled reports whether every requested asset has finished loading, in
// success or failure. Used by the orchestrator's ready gate.
func (s *Store) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.status {
		if st == StatusLoading {
			return false
		}
	}
	return true
}
