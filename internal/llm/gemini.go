package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	RoleTurnUser  = "user"
	RoleTurnModel = "model"
)

// Content es un turno en el formato contents/parts de la API generateContent.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// ChatClient genera la respuesta de un turno de conversacion.
type ChatClient interface {
	GenerateContent(ctx context.Context, contents []Content) (string, error)
}

// GeminiHTTPClient implementa ChatClient contra la API generateContent.
type GeminiHTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  logger
}

func NewGeminiHTTPClient(baseURL, apiKey, model string, log any) *GeminiHTTPClient {
	l, _ := log.(logger)
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &GeminiHTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  l,
	}
}

// GenerateContent envia los turnos y devuelve el texto del primer candidato,
// concatenando todos sus fragmentos. Sin candidatos devuelve cadena vacia
// sin error; el caller aplica su fallback.
func (c *GeminiHTTPClient) GenerateContent(ctx context.Context, contents []Content) (string, error) {
	bodyBytes, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Printf("chat api error status %d: %s", resp.StatusCode, string(respBody))
		}
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(gr.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

type generateRequest struct {
	Contents []Content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
