// Package aiproxy talks to the chat-completions endpoint that backs the
// classifier, extractor and planner fallbacks.
package aiproxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"swayam-intelligence/internal/common/config"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

var (
	ErrCompletionFailed  = errors.New("AI_COMPLETION_FAILED")
	ErrCompletionTimeout = errors.New("AI_COMPLETION_TIMEOUT")
	ErrNoJSONPayload     = errors.New("AI_NO_JSON_PAYLOAD")
)

// CompletionClient is what the intelligence components depend on. The HTTP
// client below is the production implementation; tests substitute fakes.
type CompletionClient interface {
	Complete(ctx context.Context, messages []models.Message, temperature float64) (string, error)
}

// Client calls the proxy's OpenAI-compatible chat completions route.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(cfg config.AIProxyConfig, log logger.Logger) *Client {
	timeout := config.GetDuration(cfg.Timeout)
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.With(map[string]interface{}{
			"component": "aiproxy",
		}),
	}
}

type chatRequest struct {
	Model       string           `json:"model"`
	Messages    []models.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation to the proxy and returns the raw assistant
// content. The proxy picks the concrete model, hence model "auto".
func (c *Client) Complete(ctx context.Context, messages []models.Message, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, _ := json.Marshal(chatRequest{
		Model:       "auto",
		Messages:    messages,
		Temperature: temperature,
	})

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(500*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ErrCompletionTimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, lastErr = c.httpClient.Do(req)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return "", ErrCompletionTimeout
		}

		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrCompletionTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, lastErr)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: no successful response after retries", ErrCompletionFailed)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode error: %v", ErrCompletionFailed, err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrCompletionFailed)
	}

	return parsed.Choices[0].Message.Content, nil
}

// ExtractJSON returns the first balanced {...} block in a completion. Models
// wrap JSON in prose or markdown fences often enough that a plain
// json.Unmarshal of the whole content is not reliable.
func ExtractJSON(content string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range content {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return content[start : i+1], nil
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}

	return "", ErrNoJSONPayload
}
