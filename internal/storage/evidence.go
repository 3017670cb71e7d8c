package storage

import (
	"sync"

	"vakildesk/internal/models"
)

// EvidenceStore holds the in-memory evidence locker contents.
type EvidenceStore struct {
	mu    sync.RWMutex
	items []models.Evidence
}

func NewEvidenceStore(seed []models.Evidence) *EvidenceStore {
	return &EvidenceStore{items: append([]models.Evidence(nil), seed...)}
}

// All returns a copy of every evidence item in insertion order.
func (s *EvidenceStore) All() []models.Evidence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Evidence(nil), s.items...)
}

// UsedMB returns the total stored size. Quota is 512 MB on the free plan and
// 10240 MB on Pro.
func (s *EvidenceStore) UsedMB() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var used float64
	for _, it := range s.items {
		used += it.SizeMB
	}
	return used
}
