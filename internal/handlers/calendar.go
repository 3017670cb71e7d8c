package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"vakildesk/internal/calendar"
	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

type CalendarHandler struct {
	events *storage.EventStore
	cases  *storage.CaseStore
	plan   *storage.PlanStore
}

func NewCalendarHandler(events *storage.EventStore, cases *storage.CaseStore, plan *storage.PlanStore) *CalendarHandler {
	return &CalendarHandler{events: events, cases: cases, plan: plan}
}

type gridResponse struct {
	View      calendar.View                     `json:"view"`
	Reference string                            `json:"reference"`
	Cells     []calendar.Cell                   `json:"cells"`
	Rows      int                               `json:"rows"`
	Events    map[string][]models.CalendarEvent `json:"events"`
	CaseLinks []models.CaseRef                  `json:"caseLinks"`
	ProPlan   bool                              `json:"isProPlan"`
}

// HandleGrid returns the cells for the requested month or week plus every
// event bucketed by date, so the client renders each cell with one map
// lookup. ?date= picks the reference day (default today), ?view= picks
// Month or Week, ?nav=prev|next shifts the reference before generating.
func (h *CalendarHandler) HandleGrid(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/calendar.go HandleGrid"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	now := time.Now()
	ref := now
	if q := r.URL.Query().Get("date"); q != "" {
		parsed, err := time.Parse(calendar.DateLayout, q)
		if err != nil {
			writeValidationError(w, "invalid date, expected YYYY-MM-DD", op)
			return
		}
		ref = parsed
	}

	view := calendar.ViewMonth
	if r.URL.Query().Get("view") == string(calendar.ViewWeek) {
		view = calendar.ViewWeek
	}

	switch r.URL.Query().Get("nav") {
	case "prev":
		if view == calendar.ViewMonth {
			ref = calendar.PrevMonth(ref)
		} else {
			ref = calendar.PrevWeek(ref)
		}
	case "next":
		if view == calendar.ViewMonth {
			ref = calendar.NextMonth(ref)
		} else {
			ref = calendar.NextWeek(ref)
		}
	}

	var cells []calendar.Cell
	if view == calendar.ViewMonth {
		cells = calendar.MonthCells(ref, now)
	} else {
		cells = calendar.WeekCells(ref, now)
	}

	writeJSON(w, http.StatusOK, gridResponse{
		View:      view,
		Reference: ref.Format(calendar.DateLayout),
		Cells:     cells,
		Rows:      calendar.Rows(len(cells)),
		Events:    calendar.Bucket(h.events.All()),
		CaseLinks: h.cases.Refs(),
		ProPlan:   h.plan.IsProPlan(),
	}, op)
}

// HandleSaveEvent gates and applies the add/edit event form. There is no
// delete counterpart.
func (h *CalendarHandler) HandleSaveEvent(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/calendar.go HandleSaveEvent"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var draft models.EventDraft
	if err := decodeBody(w, r, &draft, op); err != nil {
		return
	}

	saved, err := h.events.Save(draft)
	if err != nil {
		log.Println("Event save rejected in ", op, "with error: ", err)
		writeValidationError(w, err.Error(), op)
		return
	}

	writeJSON(w, http.StatusOK, saved, op)
}

// HandleExport serves the whole calendar as an ICS feed. Pro plan only.
func (h *CalendarHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/calendar.go HandleExport"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}
	if !h.plan.IsProPlan() {
		writeUpsell(w, "Calendar export", op)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//VakilDesk//Calendar//EN")

	for _, ev := range h.events.All() {
		vevent := cal.AddEvent(ev.ID + "@vakildesk")
		vevent.SetSummary(ev.Title)
		if start, err := eventTime(ev.Date, ev.StartTime); err == nil {
			vevent.SetStartAt(start)
		}
		if end, err := eventTime(ev.Date, ev.EndTime); err == nil {
			vevent.SetEndAt(end)
		}
		if ev.CaseTitle != "" {
			vevent.SetDescription(string(ev.Type) + " - " + ev.CaseTitle)
		} else {
			vevent.SetDescription(string(ev.Type))
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="vakildesk.ics"`)
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		log.Println("Failed to write ics in ", op, "with error: ", err)
	}
}

// HandleCaseRefs serves the case picker: id and title pairs only.
func (h *CalendarHandler) HandleCaseRefs(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/calendar.go HandleCaseRefs"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}
	writeJSON(w, http.StatusOK, h.cases.Refs(), op)
}

func eventTime(date, hhmm string) (time.Time, error) {
	if date == "" || hhmm == "" {
		return time.Time{}, errors.New("missing date or time")
	}
	return time.Parse("2006-01-02 15:04", date+" "+hhmm)
}
