package storage

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vakildesk/internal/listview"
	"vakildesk/internal/models"
)

// ClientStore holds the in-memory client collection plus the clients view's
// row selection. Selection is set-based, so it survives filter changes.
type ClientStore struct {
	mu       sync.RWMutex
	clients  []models.Client
	selected listview.Selection
}

func NewClientStore(seed []models.Client) *ClientStore {
	return &ClientStore{
		clients:  append([]models.Client(nil), seed...),
		selected: listview.NewSelection(),
	}
}

// All returns a copy of every client in insertion order.
func (s *ClientStore) All() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Client(nil), s.clients...)
}

// ActiveCount returns the number of clients with Active status.
func (s *ClientStore) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.clients {
		if c.Status == models.ClientActive {
			n++
		}
	}
	return n
}

// Add validates and prepends a new client, mirroring the add-client form:
// new clients start Active with no cases, nothing pending, and last contact
// set to today.
func (s *ClientStore) Add(name, phone, email, address string) (models.Client, error) {
	if strings.TrimSpace(name) == "" {
		return models.Client{}, ErrNameRequired
	}
	if strings.TrimSpace(phone) == "" || strings.TrimSpace(email) == "" {
		return models.Client{}, ErrContactRequired
	}

	client := models.Client{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Phone:       strings.TrimSpace(phone),
		Email:       strings.TrimSpace(email),
		Address:     strings.TrimSpace(address),
		Status:      models.ClientActive,
		LastContact: time.Now().Format("2006-01-02"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append([]models.Client{client}, s.clients...)
	return client, nil
}

// ToggleSelect flips one row in or out of the selection.
func (s *ClientStore) ToggleSelect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected.Toggle(id)
}

// ToggleSelectAll toggles the whole currently filtered set: if every visible
// ID is selected they are all cleared, otherwise all become selected.
func (s *ClientStore) ToggleSelectAll(visible []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected.ToggleAll(visible)
}

// SelectedIDs returns the selected IDs still present in the visible set.
func (s *ClientStore) SelectedIDs(visible []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.IDs(visible)
}
