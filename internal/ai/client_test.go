package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateDraft(t *testing.T) {
	var gotKey string
	var gotBody geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "IN THE COURT OF [COURT NAME]\n"},
					{"text": "PETITION UNDER SECTION 439 CrPC"},
				}}},
			},
		})
	}))
	defer server.Close()
	SetGeminiAPIURL(server.URL)

	client := NewGeminiClient("test-key")
	draft, err := client.GenerateDraft("Criminal", "Bail Application", "Sharma vs State", "Arrested on 12th", "English")
	if err != nil {
		t.Fatalf("GenerateDraft: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if !strings.Contains(draft, "PETITION UNDER SECTION 439") {
		t.Errorf("draft = %q, parts not concatenated", draft)
	}

	prompt := gotBody.Contents[0].Parts[0].Text
	for _, want := range []string{"Criminal", "Bail Application", "Sharma vs State", "English"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateDraftAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "message": "API key not valid"},
		})
	}))
	defer server.Close()
	SetGeminiAPIURL(server.URL)

	client := NewGeminiClient("bad-key")
	if _, err := client.GenerateDraft("Civil", "Plaint", "A vs B", "facts", "English"); err == nil {
		t.Fatal("expected an error for a rejected key")
	} else if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("err = %v, want the upstream message surfaced", err)
	}
}

func TestGenerateDraftNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()
	SetGeminiAPIURL(server.URL)

	client := NewGeminiClient("test-key")
	if _, err := client.GenerateDraft("Civil", "Plaint", "A vs B", "facts", "English"); err == nil {
		t.Fatal("expected an error for an empty response")
	}
}
