package handlers

import (
	"net/http"

	"vakildesk/internal/listview"
	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

type EvidenceHandler struct {
	evidence *storage.EvidenceStore
	plan     *storage.PlanStore
}

func NewEvidenceHandler(evidence *storage.EvidenceStore, plan *storage.PlanStore) *EvidenceHandler {
	return &EvidenceHandler{evidence: evidence, plan: plan}
}

// Locker quota in MB: 0.5 GB free, 10 GB on Pro.
const (
	freeQuotaMB = 512
	proQuotaMB  = 10240
)

type evidenceListResponse struct {
	Items     []models.Evidence `json:"items"`
	Total     int               `json:"total"`
	UsedMB    float64           `json:"usedMB"`
	QuotaMB   float64           `json:"quotaMB"`
	EmptyHint string            `json:"emptyHint,omitempty"`
}

// HandleList serves the evidence locker: text search over file name and
// tags, AND-composed with the type and case filters.
func (h *EvidenceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/evidence.go HandleList"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	q := r.URL.Query().Get("q")
	typeFilter := r.URL.Query().Get("type")
	caseFilter := r.URL.Query().Get("case")

	filtered := listview.Filter(h.evidence.All(), func(item models.Evidence) bool {
		fields := append([]string{item.FileName}, item.Tags...)
		return listview.MatchText(q, fields...) &&
			listview.MatchChoice(typeFilter, item.Type) &&
			listview.MatchChoice(caseFilter, item.CaseID)
	})

	quota := float64(freeQuotaMB)
	if h.plan.IsProPlan() {
		quota = proQuotaMB
	}

	resp := evidenceListResponse{
		Items:   filtered,
		Total:   len(filtered),
		UsedMB:  h.evidence.UsedMB(),
		QuotaMB: quota,
	}
	if resp.Total == 0 {
		resp.EmptyHint = "No files found. Try adjusting filters or upload a new document."
	}

	writeJSON(w, http.StatusOK, resp, op)
}
