package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Skbaji74/scan-nourish-ai/internal/llm"
)

const fencedAnalysis = "```json\n{\"score\":72,\"ingredients\":[\"sugar\",\"salt\"],\"highlights\":[\"High sugar\"],\"summary\":\"Moderate\"}\n```"

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeFoodMissingImage(t *testing.T) {
	vision := &llm.MockVisionClient{Response: fencedAnalysis}
	router := newTestRouter(routerOptions{vision: vision})

	w := postJSON(t, router, "/analyze-food", `{"imageBase64":""}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No image provided") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
	if vision.Calls != 0 {
		t.Fatalf("expected no upstream call, got %d", vision.Calls)
	}
}

func TestAnalyzeFoodHappyPath(t *testing.T) {
	vision := &llm.MockVisionClient{Response: fencedAnalysis}
	router := newTestRouter(routerOptions{vision: vision})

	body := `{"imageBase64":"data:image/jpeg;base64,AAAA","userProfile":{"allergies":["peanuts"],"conditions":[],"preferences":["vegan"]}}`
	w := postJSON(t, router, "/analyze-food", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result struct {
		Score       int      `json:"score"`
		Ingredients []string `json:"ingredients"`
		Highlights  []string `json:"highlights"`
		Summary     string   `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Score != 72 || result.Summary != "Moderate" {
		t.Fatalf("unexpected result %+v", result)
	}
	if !strings.Contains(vision.LastPrompt, "- Allergies: peanuts") {
		t.Fatalf("expected profile forwarded into prompt")
	}
}

func TestAnalyzeFoodUpstreamStatuses(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"rate limited", llm.ErrRateLimited, http.StatusTooManyRequests, "Rate limit exceeded"},
		{"quota exhausted", llm.ErrQuotaExhausted, http.StatusPaymentRequired, "AI credits exhausted"},
		{"upstream failure", &llm.UpstreamError{Status: 500, Body: "gateway exploded"}, http.StatusInternalServerError, "gateway exploded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(routerOptions{vision: &llm.MockVisionClient{Err: tc.err}})

			w := postJSON(t, router, "/analyze-food", `{"imageBase64":"data:image/jpeg;base64,AAAA"}`)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("expected body to contain %q, got %q", tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestAnalyzeFoodMissingCredential(t *testing.T) {
	vision := &llm.MockVisionClient{Response: fencedAnalysis}
	router := newTestRouter(routerOptions{vision: vision, apiKey: " "})

	w := postJSON(t, router, "/analyze-food", `{"imageBase64":"data:image/jpeg;base64,AAAA"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing LOVABLE_API_KEY") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
	if vision.Calls != 0 {
		t.Fatalf("expected no upstream call, got %d", vision.Calls)
	}
}

func TestAnalyzeFoodLocalRateLimit(t *testing.T) {
	vision := &llm.MockVisionClient{Response: fencedAnalysis}
	limiter := &stubLimiter{allow: false}
	router := newTestRouter(routerOptions{vision: vision, limiter: limiter})

	w := postJSON(t, router, "/analyze-food", `{"imageBase64":"data:image/jpeg;base64,AAAA"}`)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if limiter.calls != 1 {
		t.Fatalf("expected limiter consulted once, got %d", limiter.calls)
	}
	if vision.Calls != 0 {
		t.Fatalf("expected no upstream call when limited, got %d", vision.Calls)
	}
}
