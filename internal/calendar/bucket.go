package calendar

import "vakildesk/internal/models"

// Buckets maps an ISO date to the events scheduled on it, preserving the
// order the events arrived in. Build it once per render and look up per
// cell, instead of re-filtering the full event list for every cell.
type Buckets map[string][]models.CalendarEvent

// Bucket groups events by their Date field. An empty or nil input yields an
// empty map.
func Bucket(events []models.CalendarEvent) Buckets {
	b := make(Buckets, len(events))
	for _, ev := range events {
		b[ev.Date] = append(b[ev.Date], ev)
	}
	return b
}

// On returns the events scheduled on date, in insertion order. Missing dates
// yield a nil slice, never an error.
func (b Buckets) On(date string) []models.CalendarEvent {
	return b[date]
}
