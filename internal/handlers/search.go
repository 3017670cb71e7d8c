package handlers

import (
	"net/http"
	"strings"

	"vakildesk/internal/listview"
	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

type SearchHandler struct {
	cases    *storage.CaseStore
	clients  *storage.ClientStore
	evidence *storage.EvidenceStore
}

func NewSearchHandler(cases *storage.CaseStore, clients *storage.ClientStore, evidence *storage.EvidenceStore) *SearchHandler {
	return &SearchHandler{cases: cases, clients: clients, evidence: evidence}
}

type searchResponse struct {
	Query   string            `json:"query"`
	Cases   []models.Case     `json:"cases"`
	Clients []models.Client   `json:"clients"`
	Files   []models.Evidence `json:"files"`
	Total   int               `json:"total"`
}

// HandleSearch serves the global header search: one query matched across
// cases, clients, and evidence files, each section using the same matcher
// and field set as its own list view. An empty query returns empty sections
// rather than the whole workspace.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/search.go HandleSearch"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	resp := searchResponse{
		Query:   q,
		Cases:   []models.Case{},
		Clients: []models.Client{},
		Files:   []models.Evidence{},
	}
	if q == "" {
		writeJSON(w, http.StatusOK, resp, op)
		return
	}

	resp.Cases = listview.Filter(h.cases.All(), func(c models.Case) bool {
		return listview.MatchText(q, c.Title, c.ClientName, c.CNRNumber)
	})
	resp.Clients = listview.Filter(h.clients.All(), func(c models.Client) bool {
		return listview.MatchText(q, c.Name, c.Phone, c.Email)
	})
	resp.Files = listview.Filter(h.evidence.All(), func(item models.Evidence) bool {
		fields := append([]string{item.FileName}, item.Tags...)
		return listview.MatchText(q, fields...)
	})
	resp.Total = len(resp.Cases) + len(resp.Clients) + len(resp.Files)

	writeJSON(w, http.StatusOK, resp, op)
}
