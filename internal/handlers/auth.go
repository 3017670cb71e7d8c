package handlers

import (
	"net/http"
	"strings"
)

// AuthHandler simulates the login, signup, and password-reset flows. There
// is no session backend: any well-formed login succeeds, and the only real
// check is the signup password confirmation.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/auth.go HandleLogin"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		writeValidationError(w, "Email and password are required.", op)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, op)
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/auth.go HandleSignup"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		writeValidationError(w, "A valid email address is required.", op)
		return
	}
	if input.Password == "" {
		writeValidationError(w, "Password is required.", op)
		return
	}
	if input.Password != input.ConfirmPassword {
		writeValidationError(w, "Passwords do not match.", op)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"}, op)
}

func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/auth.go HandleForgotPassword"

	if !requireMethod(w, r, http.MethodPost, op) {
		return
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := decodeBody(w, r, &input, op); err != nil {
		return
	}

	// Always reports sent; there is no mail backend.
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"}, op)
}
