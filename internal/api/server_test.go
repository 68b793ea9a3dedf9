package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/intelligence/catalog"
	"swayam-intelligence/internal/intelligence/conversation"
	"swayam-intelligence/internal/intelligence/entity"
	"swayam-intelligence/internal/intelligence/gamification"
	"swayam-intelligence/internal/intelligence/intent"
	"swayam-intelligence/internal/intelligence/planner"
	"swayam-intelligence/internal/models"
)

type fakeExecutor struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeExecutor) ExecuteTool(_ context.Context, tool string, _ map[string]string) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, tool)
	return map[string]string{"status": "ok"}, nil
}

func newTestServer(t *testing.T) (*Server, *fakeExecutor) {
	t.Helper()
	log := logger.NewTestLogger(t)
	orch := conversation.NewOrchestrator(
		intent.NewClassifier(nil, log),
		entity.NewExtractor(nil, log),
		planner.NewPlanner(nil, log),
		catalog.New(),
		conversation.NewMemoryStore(time.Hour),
		conversation.NewBroadcaster(log),
		nil,
		log,
	)
	executor := &fakeExecutor{}
	return NewServer(Dependencies{
		Orchestrator: orch,
		Executor:     executor,
		Catalog:      catalog.New(),
		Rewards:      gamification.NewEngine(log),
		Logger:       log,
		Version:      "test",
	}), executor
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestAnalyzeEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{
		SessionID: "s1",
		Text:      "mujhe home loan chahiye",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis models.ConversationAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "s1", analysis.SessionID)
	assert.Equal(t, "loan_apply", analysis.Intent.Primary)
	assert.NotNil(t, analysis.SuggestedPlan)
	assert.True(t, analysis.RequiresConfirmation)
}

func TestAnalyzeGeneratesSessionID(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{Text: "namaste"})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis models.ConversationAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.NotEmpty(t, analysis.SessionID)
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{SessionID: "s1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
}

func TestExecutePlanEndpoint(t *testing.T) {
	s, executor := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{
		SessionID: "s2",
		Text:      "invoice banao 27AABCU9603R1ZM ke liye ₹50,000 ka",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/v1/plans/execute", executePlanRequest{SessionID: "s2"})
	require.Equal(t, http.StatusOK, rec.Code)

	var final models.TodoPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &final))
	assert.Equal(t, models.PlanCompleted, final.Status)
	assert.Equal(t, 100, final.Progress)
	assert.NotEmpty(t, executor.calls)
}

func TestExecutePlanWithoutSession(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/plans/execute", executePlanRequest{SessionID: "ghost"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "PLAN_NOT_FOUND", body.Error.Code)
}

func TestExecutePlanIDMismatch(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{
		SessionID: "s3",
		Text:      "invoice banao",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/v1/plans/execute", executePlanRequest{
		SessionID: "s3",
		PlanID:    "plan_wrong",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSessionEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	doJSON(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{SessionID: "s4", Text: "namaste"})

	rec := doJSON(t, s, http.MethodGet, "/v1/sessions/s4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cctx models.ConversationContext
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cctx))
	assert.Equal(t, "s4", cctx.SessionID)
	assert.Len(t, cctx.History, 1)

	rec = doJSON(t, s, http.MethodGet, "/v1/sessions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCapabilitiesEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/capabilities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Summary  catalog.Summary       `json:"summary"`
		Packages []catalog.PackageInfo `json:"packages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Packages)
	assert.Greater(t, body.Summary.Tools, 50)
}

func TestCapabilitiesKeywordSearch(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/capabilities?q=gst+invoice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Packages []catalog.PackageInfo `json:"packages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Packages)
	assert.Equal(t, "compliance-gst", body.Packages[0].Name)
}

func TestProfileEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/profiles/u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.deps.Rewards.RecordOutcome("u1", "loan_apply", true)

	rec = doJSON(t, s, http.MethodGet, "/v1/profiles/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile gamification.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, 30, profile.XP)
	assert.Equal(t, 1, profile.Level)
}

func TestPlanHistoryDisabled(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/plans/plan_x", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/v1/sessions/s1/plans", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
