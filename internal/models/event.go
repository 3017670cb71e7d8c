package models

type EventType string

const (
	EventHearing       EventType = "Hearing"
	EventFiling        EventType = "Filing"
	EventJudgment      EventType = "Judgment"
	EventClientMeeting EventType = "Client Meeting"
	EventEvidence      EventType = "Evidence"
)

// EventTypes lists every supported type in form display order.
var EventTypes = []EventType{
	EventHearing,
	EventFiling,
	EventJudgment,
	EventClientMeeting,
	EventEvidence,
}

// RequiresCase reports whether an event of this type must be linked to a
// case. Only client meetings may stand alone.
func (t EventType) RequiresCase() bool {
	switch t {
	case EventHearing, EventEvidence, EventFiling, EventJudgment:
		return true
	}
	return false
}

// Valid reports whether t is one of the five supported event types.
func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Reminders holds per-event notification channels. SMS and WhatsApp are
// Pro-plan channels; ReminderTime is minutes before the event.
type Reminders struct {
	Email        bool `json:"email" yaml:"email"`
	SMS          bool `json:"sms" yaml:"sms"`
	WhatsApp     bool `json:"whatsapp" yaml:"whatsapp"`
	ReminderTime int  `json:"reminderTime" yaml:"reminder_time"`
}

// CalendarEvent is a scheduled item on the firm calendar. Date is a naive
// ISO calendar date ("2006-01-02") with no time component; StartTime and
// EndTime are "HH:MM" strings kept separately. CaseTitle is a denormalized
// copy of the linked case's title, recomputed on every save.
type CalendarEvent struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Type        EventType `json:"type" yaml:"type"`
	Date        string    `json:"date" yaml:"date"`
	StartTime   string    `json:"startTime" yaml:"start_time"`
	EndTime     string    `json:"endTime" yaml:"end_time"`
	CaseID      string    `json:"caseId,omitempty" yaml:"case_id"`
	CaseTitle   string    `json:"caseTitle,omitempty" yaml:"case_title"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Reminders   Reminders `json:"reminders" yaml:"reminders"`
}

// EventDraft is the in-progress add/edit form payload. An empty ID means a
// new event; a non-empty ID edits the existing event in place.
type EventDraft struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	CaseID      string    `json:"caseId"`
	Description string    `json:"description"`
	Reminders   Reminders `json:"reminders"`
}

// NewEventDraft returns the add-event form defaults for the given viewed day.
func NewEventDraft(viewedDate string) EventDraft {
	return EventDraft{
		Type:      EventHearing,
		Date:      viewedDate,
		StartTime: "09:00",
		EndTime:   "10:00",
		Reminders: Reminders{Email: true, ReminderTime: 60},
	}
}
