package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVisionClientHappyPath(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody visionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"analysis text"}}]}`))
	}))
	defer srv.Close()

	c := NewHTTPVisionClient(srv.URL, "secret", "google/gemini-2.5-flash", nil)

	got, err := c.AnalyzeImage(context.Background(), "analyze this", "data:image/png;base64,AAAA")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "analysis text" {
		t.Fatalf("expected analysis text, got %q", got)
	}

	if gotPath != "/chat/completions" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotBody.Model != "google/gemini-2.5-flash" {
		t.Fatalf("unexpected model %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || len(gotBody.Messages[0].Content) != 2 {
		t.Fatalf("expected one user turn with two parts, got %+v", gotBody.Messages)
	}
	if gotBody.Messages[0].Content[1].ImageURL == nil || gotBody.Messages[0].Content[1].ImageURL.URL != "data:image/png;base64,AAAA" {
		t.Fatalf("expected image part, got %+v", gotBody.Messages[0].Content[1])
	}
}

func TestVisionClientStatusClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"quota exhausted", http.StatusPaymentRequired, ErrQuotaExhausted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := NewHTTPVisionClient(srv.URL, "secret", "m", nil)
			_, err := c.AnalyzeImage(context.Background(), "p", "img")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestVisionClientUpstreamErrorKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("gateway down"))
	}))
	defer srv.Close()

	c := NewHTTPVisionClient(srv.URL, "secret", "m", nil)
	_, err := c.AnalyzeImage(context.Background(), "p", "img")

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusServiceUnavailable || upstream.Body != "gateway down" {
		t.Fatalf("expected status/body preserved, got %+v", upstream)
	}
}

func TestVisionClientEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewHTTPVisionClient(srv.URL, "secret", "m", nil)
	got, err := c.AnalyzeImage(context.Background(), "p", "img")
	if err != nil {
		t.Fatalf("expected no error for empty choices, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty content, got %q", got)
	}
}
