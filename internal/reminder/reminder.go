// Package reminder periodically turns upcoming calendar events into in-app
// notifications.
package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"vakildesk/internal/calendar"
	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

// Sweeper scans the event collection and pushes a notification for every
// event happening tomorrow that has its email reminder enabled. The sweep is
// idempotent: an event is only announced once.
type Sweeper struct {
	events        *storage.EventStore
	notifications *storage.NotificationStore
	now           func() time.Time
}

func NewSweeper(events *storage.EventStore, notifications *storage.NotificationStore) *Sweeper {
	return &Sweeper{
		events:        events,
		notifications: notifications,
		now:           time.Now,
	}
}

// Sweep runs one pass and returns how many notifications were pushed.
func (s *Sweeper) Sweep() int {
	tomorrow := s.now().AddDate(0, 0, 1).Format(calendar.DateLayout)
	pushed := 0
	for _, ev := range s.events.All() {
		if ev.Date != tomorrow || !ev.Reminders.Email {
			continue
		}
		message := reminderMessage(ev)
		if s.notifications.HasMessage(message) {
			continue
		}
		s.notifications.Push(ev.Title, message, "hearing", s.now().Format("2006-01-02 15:04"))
		pushed++
	}
	return pushed
}

func reminderMessage(ev models.CalendarEvent) string {
	if ev.CaseTitle != "" {
		return fmt.Sprintf("%s tomorrow at %s (%s)", ev.Type, ev.StartTime, ev.CaseTitle)
	}
	return fmt.Sprintf("%s tomorrow at %s", ev.Type, ev.StartTime)
}

// Start schedules the sweep on the given cron spec and returns the runner so
// the caller can Stop it on shutdown.
func (s *Sweeper) Start(spec string) (*cron.Cron, error) {
	op := "internal/reminder/reminder.go Start"

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 {
			log.Println("reminder sweep pushed", n, "notifications")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: bad cron spec %q: %w", op, spec, err)
	}
	c.Start()
	return c, nil
}
