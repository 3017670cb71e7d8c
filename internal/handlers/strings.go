package handlers

import (
	"net/http"

	"vakildesk/internal/locale"
)

type StringsHandler struct{}

func NewStringsHandler() *StringsHandler {
	return &StringsHandler{}
}

// HandleStrings serves the locale string table. ?lang=hi selects Hindi;
// anything else gets English.
func (h *StringsHandler) HandleStrings(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/strings.go HandleStrings"

	if !requireMethod(w, r, http.MethodGet, op) {
		return
	}

	lang := locale.English
	switch r.URL.Query().Get("lang") {
	case "hi", "Hindi":
		lang = locale.Hindi
	}

	writeJSON(w, http.StatusOK, locale.Strings(lang), op)
}
