package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any, op string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Failed to encode response in ", op, "with error: ", err)
	}
}

// writeValidationError surfaces a blocking user-facing message. The failed
// operation never proceeds and nothing propagates past the handler.
func writeValidationError(w http.ResponseWriter, msg string, op string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": msg}, op)
}

// writeUpsell rejects a Pro-gated action on the free plan.
func writeUpsell(w http.ResponseWriter, feature string, op string) {
	writeJSON(w, http.StatusPaymentRequired, map[string]any{
		"error":  feature + " is available on the Pro Plan.",
		"upsell": true,
	}, op)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, op string) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Couldnt decode json. Wrong request.", http.StatusBadRequest)
		log.Println("Couldnt decode json. Wrong request ", " in ", op)
		return err
	}
	return nil
}

func requireMethod(w http.ResponseWriter, r *http.Request, method, op string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
		log.Println("Method not Allowed ", r.Method, " in ", op)
		return false
	}
	return true
}
