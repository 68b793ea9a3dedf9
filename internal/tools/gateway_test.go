package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
)

func TestExecuteToolSuccess(t *testing.T) {
	var gotReq executeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tools/execute", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(executeResponse{
			Success: true,
			Result:  json.RawMessage(`{"valid": true, "legalName": "Acme Traders"}`),
		})
	}))
	defer srv.Close()

	g := NewGatewayExecutor(srv.URL, "secret", time.Second, logger.NewNoOpLogger())
	result, err := g.ExecuteTool(context.Background(), "gst_verify", map[string]string{"gstin": "27AABCU9603R1ZM"})
	require.NoError(t, err)

	assert.Equal(t, "gst_verify", gotReq.Tool)
	assert.Equal(t, "27AABCU9603R1ZM", gotReq.Params["gstin"])

	payload, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, payload["valid"])
	assert.Equal(t, "Acme Traders", payload["legalName"])
}

func TestExecuteToolGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(executeResponse{Success: false, Error: "gstin not registered"})
	}))
	defer srv.Close()

	g := NewGatewayExecutor(srv.URL, "", time.Second, logger.NewNoOpLogger())
	_, err := g.ExecuteTool(context.Background(), "gst_verify", nil)
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeToolExecutionFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "gstin not registered")
}

func TestExecuteToolBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewGatewayExecutor(srv.URL, "", time.Second, logger.NewNoOpLogger())
	_, err := g.ExecuteTool(context.Background(), "hsn_lookup", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOOL_EXECUTION_FAILED")
}

func TestExecuteToolHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGatewayExecutor(srv.URL, "", time.Second, logger.NewNoOpLogger())
	_, err := g.ExecuteTool(ctx, "gst_verify", nil)
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeToolExecutionFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "context canceled")
}

func TestExecuteToolEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(executeResponse{Success: true})
	}))
	defer srv.Close()

	g := NewGatewayExecutor(srv.URL, "", time.Second, logger.NewNoOpLogger())
	result, err := g.ExecuteTool(context.Background(), "lead_create", map[string]string{"phone": "+919876543210"})
	require.NoError(t, err)
	assert.Nil(t, result)
}
