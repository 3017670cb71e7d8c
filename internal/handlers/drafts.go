package handlers

import (
	"log"
	"net/http"

	"vakildesk/internal/ai"
	"vakildesk/internal/storage"
)

type DraftsHandler struct {
	aiClient *ai.GeminiClient
	plan     *storage.PlanStore
}

func NewDraftsHandler(aiClient *ai.GeminiClient, plan *storage.PlanStore) *DraftsHandler {
	return &DraftsHandler{aiClient: aiClient, plan: plan}
}

// HandleGenerate runs the AI drafter. Pro plan only. A failed external call
// becomes a placeholder error string in the output area, never a crash.
func (h *DraftsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/drafts.go HandleGenerate"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}
	if !h.plan.IsProPlan() {
		writeUpsell(w, "AI legal drafting", op)
		return
	}

	var input struct {
		Category string `json:"category"`
		DocType  string `json:"docType"`
		Parties  string `json:"parties"`
		Facts    string `json:"facts"`
		Language string `json:"language"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	if input.Language != "Hindi" {
		input.Language = "English"
	}

	draft, err := h.aiClient.GenerateDraft(input.Category, input.DocType, input.Parties, input.Facts, input.Language)
	if err != nil {
		log.Println("AI draft failed in ", op, "with error: ", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"draft": "Error connecting to AI service. Please check your API key.",
		}, op)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"draft": draft}, op)
}
