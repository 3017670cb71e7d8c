package handlers

import (
	"net/http"

	"vakildesk/internal/storage"
)

type NotificationsHandler struct {
	notifications *storage.NotificationStore
}

func NewNotificationsHandler(notifications *storage.NotificationStore) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// HandleList serves the notification center feed plus the badge count.
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/notifications.go HandleList"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":  h.notifications.All(),
		"unread": h.notifications.UnreadCount(),
	}, op)
}

// HandleRead marks one notification read, or all of them with {"all": true}.
func (h *NotificationsHandler) HandleRead(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/notifications.go HandleRead"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		ID  string `json:"id"`
		All bool   `json:"all"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	if input.All {
		h.notifications.MarkAllRead()
	} else if input.ID != "" {
		h.notifications.MarkRead(input.ID)
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"unread": h.notifications.UnreadCount(),
	}, op)
}
