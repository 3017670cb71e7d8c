package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"vakildesk/internal/listview"
	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

type CasesHandler struct {
	cases    *storage.CaseStore
	events   *storage.EventStore
	evidence *storage.EvidenceStore
}

func NewCasesHandler(cases *storage.CaseStore, events *storage.EventStore, evidence *storage.EvidenceStore) *CasesHandler {
	return &CasesHandler{cases: cases, events: events, evidence: evidence}
}

type caseListResponse struct {
	listview.Page[models.Case]
	Query  string `json:"query"`
	Status string `json:"status"`
	Court  string `json:"court"`
	// Hint shown by the empty state when nothing matches.
	EmptyHint string `json:"emptyHint,omitempty"`
}

// HandleList serves the case table: free-text search over title, client
// name, and CNR number, AND-composed with the status and court filters,
// paginated 8 rows per page.
func (h *CasesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/cases.go HandleList"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	court := r.URL.Query().Get("court")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	filtered := listview.Filter(h.cases.All(), func(c models.Case) bool {
		return listview.MatchText(q, c.Title, c.ClientName, c.CNRNumber) &&
			listview.MatchChoice(status, string(c.Status)) &&
			listview.MatchChoice(court, string(c.Court))
	})

	resp := caseListResponse{
		Page:   listview.Paginate(filtered, page, listview.DefaultPageSize),
		Query:  q,
		Status: status,
		Court:  court,
	}
	if resp.Total == 0 {
		resp.EmptyHint = "No cases found matching your search. Try clearing filters."
	}

	writeJSON(w, http.StatusOK, resp, op)
}

type caseDetailResponse struct {
	Case     models.Case            `json:"case"`
	Events   []models.CalendarEvent `json:"events"`
	Evidence []models.Evidence      `json:"evidence"`
}

// HandleDetail serves the per-case view: the case itself plus its linked
// calendar events (the hearing history, oldest entry first as saved) and
// evidence files.
func (h *CasesHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/cases.go HandleDetail"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/cases/")
	c, ok := h.cases.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "case not found"}, op)
		return
	}

	writeJSON(w, http.StatusOK, caseDetailResponse{
		Case: c,
		Events: listview.Filter(h.events.All(), func(ev models.CalendarEvent) bool {
			return ev.CaseID == id
		}),
		Evidence: listview.Filter(h.evidence.All(), func(item models.Evidence) bool {
			return item.CaseID == id
		}),
	}, op)
}
