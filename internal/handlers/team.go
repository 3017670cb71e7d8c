package handlers

import (
	"log"
	"net/http"

	"vakildesk/internal/models"
	"vakildesk/internal/storage"
)

// Free-plan seat limit; inviting beyond it requires Pro.
const freeSeatLimit = 2

type TeamHandler struct {
	team *storage.TeamStore
	plan *storage.PlanStore
}

func NewTeamHandler(team *storage.TeamStore, plan *storage.PlanStore) *TeamHandler {
	return &TeamHandler{team: team, plan: plan}
}

// HandleList serves the team roster.
func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/team.go HandleList"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}
	writeJSON(w, http.StatusOK, h.team.All(), op)
}

// HandleInvite adds an invited member. The free plan is capped at
// freeSeatLimit seats.
func (h *TeamHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/team.go HandleInvite"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}
	if !h.plan.IsProPlan() && h.team.Count() >= freeSeatLimit {
		writeUpsell(w, "Adding more team members", op)
		return
	}

	var input struct {
		Email   string      `json:"email"`
		Role    models.Role `json:"role"`
		Access  string      `json:"access"`
		CaseIDs []string    `json:"caseIds"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}
	if input.Role == "" {
		input.Role = models.RoleAssociate
	}

	member, err := h.team.Invite(input.Email, input.Role, input.Access, input.CaseIDs)
	if err != nil {
		log.Println("Invite rejected in ", op, "with error: ", err)
		writeValidationError(w, err.Error(), op)
		return
	}

	writeJSON(w, http.StatusCreated, member, op)
}

// HandleRemove drops a member from the roster.
func (h *TeamHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/team.go HandleRemove"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		ID string `json:"id"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	if err := h.team.Remove(input.ID); err != nil {
		writeValidationError(w, err.Error(), op)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"}, op)
}

// HandleAccess updates a member's access level and assigned cases.
func (h *TeamHandler) HandleAccess(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/team.go HandleAccess"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		ID      string   `json:"id"`
		Access  string   `json:"access"`
		CaseIDs []string `json:"caseIds"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	member, err := h.team.SetAccess(input.ID, input.Access, input.CaseIDs)
	if err != nil {
		writeValidationError(w, err.Error(), op)
		return
	}

	writeJSON(w, http.StatusOK, member, op)
}
