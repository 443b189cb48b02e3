package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ClientError is returned for any failed chat round trip.
type ClientError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Kind + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Kind + ": " + e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

const (
	ErrKindConnection      = "connection"
	ErrKindTimeout         = "timeout"
	ErrKindStatus          = "status"
	ErrKindInvalidResponse = "invalid_response"
)

// ClientConfig configures the chat client of an Ollama-compatible LLM server.
type ClientConfig struct {
	// BaseURL of the server (default: http://127.0.0.1:11434)
	BaseURL string
	// Model name (default: llama3.1:8b)
	Model string
	// Timeout for one chat request (default: 60s)
	Timeout time.Duration
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.BaseURL == "" {
		c.BaseURL = "http://127.0.0.1:11434"
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Model == "" {
		c.Model = "llama3.1:8b"
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type chatResponse struct {
	Model   string      `json:"model"`
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// Client calls POST /api/chat in non-streaming JSON mode.
// It is safe for concurrent use.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ChatJSON sends one system+user exchange and decodes the assistant reply,
// which the server is asked to format as JSON, into out.
func (c *Client) ChatJSON(ctx context.Context, system, user string, out any) error {
	body, err := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return &ClientError{Kind: ErrKindConnection, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return &ClientError{Kind: ErrKindConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &ClientError{Kind: ErrKindTimeout, Message: "chat request timed out", Cause: err}
		}
		return &ClientError{Kind: ErrKindConnection, Message: "chat request failed", Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &ClientError{Kind: ErrKindConnection, Message: "failed to read response", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return &ClientError{Kind: ErrKindStatus, Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, truncate(string(raw), 200))}
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return &ClientError{Kind: ErrKindInvalidResponse, Message: "malformed chat response", Cause: err}
	}
	content := extractJSONObject(chat.Message.Content)
	if content == "" {
		return &ClientError{Kind: ErrKindInvalidResponse, Message: "empty model reply"}
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &ClientError{Kind: ErrKindInvalidResponse, Message: "model reply is not the expected JSON", Cause: err}
	}
	return nil
}

// extractJSONObject strips code fences or prose around the outermost object.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
