// internal/tools/gateway.go

// Package tools executes plan tasks against the tool gateway, the HTTP
// service that fronts the capability packages (compliance-gst, bfc-*, ...).
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	stderrors "swayam-intelligence/internal/common/errors"
	commonhttp "swayam-intelligence/internal/common/http"
	"swayam-intelligence/internal/common/logger"
)

const defaultTimeout = 30 * time.Second

// GatewayExecutor sends one tool invocation per request to the gateway's
// execute route and returns the decoded result payload.
type GatewayExecutor struct {
	baseURL string
	apiKey  string
	client  *commonhttp.Client
	logger  logger.Logger
}

func NewGatewayExecutor(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *GatewayExecutor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GatewayExecutor{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  commonhttp.NewClient(timeout),
		logger: log.With(map[string]interface{}{
			"component": "tool-gateway",
		}),
	}
}

type executeRequest struct {
	Tool   string            `json:"tool"`
	Params map[string]string `json:"params,omitempty"`
}

type executeResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ExecuteTool implements conversation.ToolExecutor.
func (g *GatewayExecutor) ExecuteTool(ctx context.Context, tool string, params map[string]string) (interface{}, error) {
	body, err := json.Marshal(executeRequest{Tool: tool, Params: params})
	if err != nil {
		return nil, stderrors.NewToolExecutionFailedError(tool, err)
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/tools/execute", bytes.NewReader(body))
	if err != nil {
		return nil, stderrors.NewToolExecutionFailedError(tool, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	started := time.Now()
	resp, err := g.client.DoWithContext(ctx, req)
	if err != nil {
		return nil, stderrors.NewToolExecutionFailedError(tool, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stderrors.NewToolExecutionFailedError(tool, fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	var parsed executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, stderrors.NewToolExecutionFailedError(tool, err)
	}
	if !parsed.Success {
		return nil, stderrors.NewToolExecutionFailedError(tool, fmt.Errorf("gateway error: %s", parsed.Error))
	}

	g.logger.Debug("tool executed", map[string]interface{}{
		"tool":     tool,
		"duration": time.Since(started).String(),
	})

	var result interface{}
	if len(parsed.Result) > 0 {
		if err := json.Unmarshal(parsed.Result, &result); err != nil {
			return nil, stderrors.NewToolExecutionFailedError(tool, err)
		}
	}
	return result, nil
}
