package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// geminiAPIURL is a var so tests can point the client at an httptest server.
var geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

// SetGeminiAPIURL overrides the drafting endpoint. Intended for tests only.
func SetGeminiAPIURL(u string) { geminiAPIURL = u }

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiClient calls the generative drafting API with a locally held key.
// The output is displayed verbatim; nothing here validates or interprets it.
type GeminiClient struct {
	apiKey string
	client *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateDraft produces a legal draft for an Indian court from the form
// fields. language is "English" or "Hindi".
func (gc *GeminiClient) GenerateDraft(category, draftType, parties, keyFacts, language string) (string, error) {
	prompt := buildPrompt(category, draftType, parties, keyFacts, language)
	return gc.generate(prompt)
}

func (gc *GeminiClient) generate(prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("draft marshal failed: %w", err)
	}

	httpReq, err := http.NewRequest("POST", geminiAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("draft request create failed: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", gc.apiKey)

	resp, err := gc.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("draft request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return "", fmt.Errorf("draft read failed: %w", err)
	}

	var draftResp geminiResponse
	if err := json.Unmarshal(body, &draftResp); err != nil {
		return "", fmt.Errorf("draft decode failed (http %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if draftResp.Error != nil {
			return "", fmt.Errorf("gemini error %d: %s", draftResp.Error.Code, draftResp.Error.Message)
		}
		return "", fmt.Errorf("gemini http %d", resp.StatusCode)
	}

	if len(draftResp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var text strings.Builder
	for _, part := range draftResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty draft in response")
	}

	return text.String(), nil
}

func buildPrompt(category, draftType, parties, keyFacts, language string) string {
	return fmt.Sprintf(`You are an expert Indian Lawyer AI assistant.
Task: Draft a legal document for use in an Indian Court.

Parameters:
- Case Category: %s (e.g., Civil, Criminal, Corporate, Family)
- Document Type: %s
- Language: %s
- Parties Involved: %s
- Key Facts/Context: %s

Requirements:
1. Structure: Follow standard Indian legal drafting conventions (Cause Title, Body, Prayer/Relief, Verification).
2. Acts/Sections: Cite relevant Indian laws (IPC, CrPC, CPC, Evidence Act, Hindu Marriage Act, etc.) based on the context provided.
3. Tone: Formal, precise, and authoritative.
4. Placeholders: Use clear placeholders like [DATE], [PLACE], [COURT NAME] where specific info is missing.
5. Language Script: If Hindi is selected, output strictly in formal Hindi legal script (Devanagari). If English, use standard legal English.`,
		category, draftType, language, parties, keyFacts)
}
