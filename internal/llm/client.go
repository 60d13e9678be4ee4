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

// VisionClient genera un analisis a partir de un prompt y una imagen.
type VisionClient interface {
	AnalyzeImage(ctx context.Context, prompt, imageURL string) (string, error)
}

type logger interface {
	Printf(format string, v ...interface{})
}

// HTTPVisionClient implementa VisionClient contra un gateway
// OpenAI-compatible con soporte multimodal.
type HTTPVisionClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  logger
}

// NewHTTPVisionClient construye un cliente apuntando a /chat/completions.
func NewHTTPVisionClient(baseURL, apiKey, model string, log any) *HTTPVisionClient {
	l, _ := log.(logger)
	if baseURL == "" {
		baseURL = "https://ai.gateway.lovable.dev/v1"
	}
	return &HTTPVisionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  l,
	}
}

// AnalyzeImage envia el prompt y la imagen como un unico turno de usuario y
// devuelve el texto crudo de la primera eleccion. Una respuesta 2xx sin
// contenido extraible devuelve cadena vacia sin error: el caller decide el
// fallback.
func (c *HTTPVisionClient) AnalyzeImage(ctx context.Context, prompt, imageURL string) (string, error) {
	reqBody := visionRequest{
		Model: c.model,
		Messages: []visionMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &imageRef{URL: imageURL}},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
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

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ErrQuotaExhausted
	case resp.StatusCode >= 400:
		if c.logger != nil {
			c.logger.Printf("vision gateway error status %d: %s", resp.StatusCode, string(respBody))
		}
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var vr visionResponse
	if err := json.Unmarshal(respBody, &vr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if vr.Error != nil && c.logger != nil {
		c.logger.Printf("vision gateway error payload: %s", vr.Error.Message)
	}

	if len(vr.Choices) == 0 {
		return "", nil
	}
	return vr.Choices[0].Message.Content, nil
}

type visionRequest struct {
	Model    string          `json:"model"`
	Messages []visionMessage `json:"messages"`
}

type visionMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type visionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
