package handlers

import (
	"log"
	"net/http"

	"vakildesk/internal/listview"
	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

type ClientsHandler struct {
	clients *storage.ClientStore
	plan    *storage.PlanStore
}

func NewClientsHandler(clients *storage.ClientStore, plan *storage.PlanStore) *ClientsHandler {
	return &ClientsHandler{clients: clients, plan: plan}
}

type clientListResponse struct {
	Items       []models.Client `json:"items"`
	Total       int             `json:"total"`
	ActiveCount int             `json:"activeCount"`
	SelectedIDs []string        `json:"selectedIds"`
	EmptyHint   string          `json:"emptyHint,omitempty"`
}

// HandleList serves the clients view: text search over name, phone, and
// email plus the Active/Inactive status filter. Previously selected rows
// still present in the filtered set come back marked.
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/clients.go HandleList"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")

	filtered := h.filtered(q, status)

	resp := clientListResponse{
		Items:       filtered,
		Total:       len(filtered),
		ActiveCount: h.clients.ActiveCount(),
		SelectedIDs: h.clients.SelectedIDs(ids(filtered)),
	}
	if resp.Total == 0 {
		resp.EmptyHint = "No clients found. Try clearing filters."
	}

	writeJSON(w, http.StatusOK, resp, op)
}

// HandleAdd creates a client from the add-client form.
func (h *ClientsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/clients.go HandleAdd"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	client, err := h.clients.Add(input.Name, input.Phone, input.Email, input.Address)
	if err != nil {
		log.Println("Client add rejected in ", op, "with error: ", err)
		writeValidationError(w, err.Error(), op)
		return
	}

	writeJSON(w, http.StatusCreated, client, op)
}

// HandleSelect toggles row selection. {"id": "..."} flips one row;
// {"all": true} toggles the whole set currently visible under the supplied
// query and status filters (not just the current page).
func (h *ClientsHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/clients.go HandleSelect"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		ID     string `json:"id"`
		All    bool   `json:"all"`
		Query  string `json:"q"`
		Status string `json:"status"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	visible := ids(h.filtered(input.Query, input.Status))
	if input.All {
		h.clients.ToggleSelectAll(visible)
	} else if input.ID != "" {
		h.clients.ToggleSelect(input.ID)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"selectedIds": h.clients.SelectedIDs(visible),
	}, op)
}

// HandleBulk runs a bulk action over the selection. Pro plan only; the free
// plan gets the upsell instead.
func (h *ClientsHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/clients.go HandleBulk"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}
	if !h.plan.IsProPlan() {
		writeUpsell(w, "Bulk client actions", op)
		return
	}

	var input struct {
		Action string `json:"action"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "executed",
		"action": input.Action,
	}, op)
}

func (h *ClientsHandler) filtered(q, status string) []models.Client {
	return listview.Filter(h.clients.All(), func(c models.Client) bool {
		return listview.MatchText(q, c.Name, c.Phone, c.Email) &&
			listview.MatchChoice(status, string(c.Status))
	})
}

func ids(clients []models.Client) []string {
	out := make([]string, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.ID)
	}
	return out
}
