package storage

import (
	"sync"

	"github.com/google/uuid"

	"vakildesk/internal/models"
)

// NotificationStore holds the in-app notification feed, newest first.
type NotificationStore struct {
	mu    sync.RWMutex
	items []models.Notification
}

func NewNotificationStore(seed []models.Notification) *NotificationStore {
	return &NotificationStore{items: append([]models.Notification(nil), seed...)}
}

// All returns a copy of the feed.
func (s *NotificationStore) All() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.items...)
}

// UnreadCount returns the badge count.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// Push prepends a new notification and returns it.
func (s *NotificationStore) Push(title, message, kind, date string) models.Notification {
	n := models.Notification{
		ID:      uuid.New().String(),
		Title:   title,
		Message: message,
		Type:    kind,
		Date:    date,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Notification{n}, s.items...)
	return n
}

// MarkRead marks a single notification read. An unknown id is a no-op.
func (s *NotificationStore) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return
		}
	}
}

// MarkAllRead clears the badge.
func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Read = true
	}
}

// HasMessage reports whether a notification with this exact message already
// exists. The reminder sweep uses it to stay idempotent across runs.
func (s *NotificationStore) HasMessage(message string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.Message == message {
			return true
		}
	}
	return false
}
