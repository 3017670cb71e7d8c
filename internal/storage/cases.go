package storage

import (
	"sync"

	"vakildesk/internal/models"
)

// CaseStore holds the in-memory case collection.
type CaseStore struct {
	mu    sync.RWMutex
	cases []models.Case
}

func NewCaseStore(seed []models.Case) *CaseStore {
	return &CaseStore{cases: append([]models.Case(nil), seed...)}
}

// All returns a copy of every case in insertion order.
func (s *CaseStore) All() []models.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Case(nil), s.cases...)
}

// Refs implements the listCases() picker contract: id and title only.
func (s *CaseStore) Refs() []models.CaseRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := make([]models.CaseRef, 0, len(s.cases))
	for _, c := range s.cases {
		refs = append(refs, models.CaseRef{ID: c.ID, Title: c.Title})
	}
	return refs
}

// Get returns the case with the given id, if present.
func (s *CaseStore) Get(id string) (models.Case, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cases {
		if c.ID == id {
			return c, true
		}
	}
	return models.Case{}, false
}
