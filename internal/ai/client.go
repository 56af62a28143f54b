// Package ai wraps the external text-generation service behind a single
// Generate call. The backend speaks the OpenAI-compatible Chat Completions
// protocol; nothing else in the application depends on which vendor sits
// behind the base URL.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrUpstream is returned for every generation failure: network errors,
// non-2xx responses, undecodable bodies and an unconfigured backend.
// Callers treat it as retryable and non-fatal.
var ErrUpstream = errors.New("generation service unavailable")

// Client performs HTTP requests against the Chat Completions endpoint of
// the configured backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a Client. An empty baseURL yields a client whose
// Generate always reports ErrUpstream; the rest of the application keeps
// working without the generation features.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends a single-turn prompt and returns the generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.baseURL == "" {
		return "", ErrUpstream
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("ai: request failed: %v", err)
		return "", ErrUpstream
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		log.Printf("ai: backend returned HTTP %d", httpResp.StatusCode)
		return "", ErrUpstream
	}

	var chatResp chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&chatResp); err != nil {
		log.Printf("ai: decode response failed: %v", err)
		return "", ErrUpstream
	}
	if len(chatResp.Choices) == 0 {
		return "", ErrUpstream
	}
	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
