// Package storage is an in-memory store for generated presentations. Decks
// live for the process lifetime only; there is no persistence across
// restarts.
package storage

import (
	"sync"

	"github.com/slidecraft/slidecraft/internal/models"
)

type PresentationStore struct {
	presentations map[string]*models.Presentation
	mu            sync.RWMutex
}

func New() *PresentationStore {
	return &PresentationStore{
		presentations: make(map[string]*models.Presentation),
	}
}

func (s *PresentationStore) Get(id string) (*models.Presentation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, exists := s.presentations[id]
	return p, exists
}

func (s *PresentationStore) Set(id string, p *models.Presentation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentations[id] = p
}

func (s *PresentationStore) GetAll() map[string]*models.Presentation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*models.Presentation, len(s.presentations))
	for k, v := range s.presentations {
		result[k] = v
	}
	return result
}

func (s *PresentationStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.presentations, id)
}
