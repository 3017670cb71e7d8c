package storage

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"vakildesk/internal/models"
)

// CaseLister is the read-only case collaborator the calendar consumes: it
// populates the case picker and resolves denormalized case titles.
type CaseLister interface {
	Refs() []models.CaseRef
}

// EventStore holds the in-memory calendar event collection. There is no
// delete operation: saved events can only be edited, matching the product's
// current surface.
type EventStore struct {
	mu     sync.RWMutex
	events []models.CalendarEvent
	cases  CaseLister
}

func NewEventStore(cases CaseLister, seed []models.CalendarEvent) *EventStore {
	return &EventStore{
		events: append([]models.CalendarEvent(nil), seed...),
		cases:  cases,
	}
}

// All returns a copy of every event in insertion order.
func (s *EventStore) All() []models.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CalendarEvent(nil), s.events...)
}

// Save gates and applies the add/edit event form. A draft with an empty ID
// is appended under a fresh ID; a draft carrying an existing ID replaces
// that event in place. CaseTitle is always recomputed from the case
// collaborator, never trusted from the draft. The whole operation is a
// single in-memory replacement, so it either fully happens or not at all.
func (s *EventStore) Save(draft models.EventDraft) (models.CalendarEvent, error) {
	if err := validateDraft(draft); err != nil {
		return models.CalendarEvent{}, err
	}

	ev := models.CalendarEvent{
		ID:          draft.ID,
		Title:       strings.TrimSpace(draft.Title),
		Type:        draft.Type,
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		CaseID:      draft.CaseID,
		CaseTitle:   s.caseTitle(draft.CaseID),
		Description: draft.Description,
		Reminders:   draft.Reminders,
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == ev.ID {
			s.events[i] = ev
			return ev, nil
		}
	}
	s.events = append(s.events, ev)
	return ev, nil
}

func validateDraft(draft models.EventDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return ErrTitleRequired
	}
	if !draft.Type.Valid() {
		return ErrUnknownType
	}
	if draft.Date == "" {
		return ErrDateRequired
	}
	if draft.StartTime == "" || draft.EndTime == "" {
		return ErrTimeRequired
	}
	// Start/end ordering is deliberately unchecked; overnight sittings are
	// allowed.
	if draft.Type.RequiresCase() && draft.CaseID == "" {
		return ErrCaseRequired
	}
	return nil
}

func (s *EventStore) caseTitle(caseID string) string {
	if caseID == "" {
		return ""
	}
	for _, ref := range s.cases.Refs() {
		if ref.ID == caseID {
			return ref.Title
		}
	}
	return ""
}
