package handlers

import (
	"net/http"

	"vakildesk/internal/storage"
)

type BillingHandler struct {
	plan *storage.PlanStore
}

func NewBillingHandler(plan *storage.PlanStore) *BillingHandler {
	return &BillingHandler{plan: plan}
}

// HandleGet serves the current plan and the subscription invoice history.
func (h *BillingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/billing.go HandleGet"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"isProPlan":    h.plan.IsProPlan(),
		"monthlyPrice": storage.ProMonthlyPrice,
		"yearlyPrice":  storage.ProYearlyPrice,
		"invoices":     h.plan.Invoices(),
	}, op)
}

// HandleUpgrade completes the simulated checkout: flips the Pro flag and
// records a paid invoice. There is no real payment gateway behind this.
func (h *BillingHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/billing.go HandleUpgrade"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		Cycle string `json:"cycle"` // monthly or yearly
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}
	if input.Cycle != "yearly" {
		input.Cycle = "monthly"
	}

	invoice := h.plan.Upgrade(input.Cycle)

	writeJSON(w, http.StatusOK, map[string]any{
		"isProPlan": true,
		"invoice":   invoice,
	}, op)
}

// HandleDowngrade drops back to the free plan.
func (h *BillingHandler) HandleDowngrade(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/billing.go HandleDowngrade"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	h.plan.Downgrade()
	writeJSON(w, http.StatusOK, map[string]any{"isProPlan": false}, op)
}
