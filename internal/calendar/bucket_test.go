package calendar

import (
	"testing"

	"vakildesk/internal/models"
)

func TestBucketGroupsByDate(t *testing.T) {
	events := []models.CalendarEvent{
		{ID: "a", Title: "Bail Hearing", Date: "2023-11-15", StartTime: "14:00"},
		{ID: "b", Title: "Filing", Date: "2023-11-16", StartTime: "09:00"},
		{ID: "c", Title: "Client Meeting", Date: "2023-11-15", StartTime: "10:00"},
	}

	b := Bucket(events)

	day15 := b.On("2023-11-15")
	if len(day15) != 2 {
		t.Fatalf("got %d events on the 15th, want 2", len(day15))
	}
	// Insertion order, not start-time order: "a" (14:00) arrived before
	// "c" (10:00).
	if day15[0].ID != "a" || day15[1].ID != "c" {
		t.Errorf("order = [%s %s], want [a c]", day15[0].ID, day15[1].ID)
	}

	if got := b.On("2023-11-16"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("16th bucket = %v", got)
	}
	if got := b.On("2023-11-17"); len(got) != 0 {
		t.Errorf("empty date returned %d events", len(got))
	}
}

func TestBucketEmptyInput(t *testing.T) {
	if got := Bucket(nil).On("2023-11-15"); len(got) != 0 {
		t.Errorf("nil input produced %d events", len(got))
	}
	if got := Bucket([]models.CalendarEvent{}).On("2023-11-15"); len(got) != 0 {
		t.Errorf("empty input produced %d events", len(got))
	}
}
