package handlers

import (
	"net/http"
	"sort"
	"time"

	"vakildesk/internal/calendar"
	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

type DashboardHandler struct {
	cases         *storage.CaseStore
	clients       *storage.ClientStore
	events        *storage.EventStore
	notifications *storage.NotificationStore
}

func NewDashboardHandler(cases *storage.CaseStore, clients *storage.ClientStore, events *storage.EventStore, notifications *storage.NotificationStore) *DashboardHandler {
	return &DashboardHandler{cases: cases, clients: clients, events: events, notifications: notifications}
}

type dashboardResponse struct {
	TotalCases       int                    `json:"totalCases"`
	ActiveClients    int                    `json:"activeClients"`
	UpcomingHearings int                    `json:"upcomingHearings"`
	PendingRevenue   int                    `json:"pendingRevenue"`
	Unread           int                    `json:"unreadNotifications"`
	NextHearings     []models.Case          `json:"nextHearings"`
	MiniCalendar     []calendar.Cell        `json:"miniCalendar"`
	TodayEvents      []models.CalendarEvent `json:"todayEvents"`
}

// HandleStats serves the dashboard stat cards, the next hearings list, and
// the mini-calendar widget (this week's cells sharing the same grid
// generator as the full calendar page).
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/dashboard.go HandleStats"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	now := time.Now()
	today := now.Format(calendar.DateLayout)

	upcoming := 0
	buckets := calendar.Bucket(h.events.All())
	for _, ev := range h.events.All() {
		if ev.Type == models.EventHearing && ev.Date >= today {
			upcoming++
		}
	}

	pending := 0
	for _, c := range h.clients.All() {
		pending += c.PendingAmount
	}

	cases := h.cases.All()
	next := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		// NextHearing is an ISO timestamp string, so lexicographic order is
		// chronological order.
		if c.NextHearing != "" && c.NextHearing >= today {
			next = append(next, c)
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i].NextHearing < next[j].NextHearing })
	if len(next) > 3 {
		next = next[:3]
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		TotalCases:       len(cases),
		ActiveClients:    h.clients.ActiveCount(),
		UpcomingHearings: upcoming,
		PendingRevenue:   pending,
		Unread:           h.notifications.UnreadCount(),
		NextHearings:     next,
		MiniCalendar:     calendar.WeekCells(now, now),
		TodayEvents:      buckets.On(today),
	}, op)
}
