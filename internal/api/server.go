// internal/api/server.go

// Package api exposes the conversation engine over HTTP.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/history"
	"swayam-intelligence/internal/intelligence/catalog"
	"swayam-intelligence/internal/intelligence/conversation"
	"swayam-intelligence/internal/intelligence/episodes"
	"swayam-intelligence/internal/intelligence/gamification"
	"swayam-intelligence/internal/models"
)

// Dependencies wires the server. History, Recorder and Rewards are
// optional; their endpoints degrade gracefully when absent.
type Dependencies struct {
	Orchestrator *conversation.Orchestrator
	Executor     conversation.ToolExecutor
	Catalog      *catalog.Catalog
	Rewards      *gamification.Engine
	History      *history.Store
	Recorder     *episodes.Recorder
	Logger       logger.Logger
	Version      string
}

type Server struct {
	deps   Dependencies
	router chi.Router
}

func NewServer(deps Dependencies) *Server {
	s := &Server{deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/plans/execute", s.handleExecutePlan)
		r.Get("/plans/{planID}", s.handleGetPlan)
		r.Get("/sessions/{sessionID}", s.handleGetSession)
		r.Get("/sessions/{sessionID}/plans", s.handleRecentPlans)
		r.Get("/capabilities", s.handleCapabilities)
		r.Get("/profiles/{userID}", s.handleGetProfile)
	})

	s.router = r
	return s
}

// Router returns the http handler for mounting or serving.
func (s *Server) Router() http.Handler {
	return s.router
}

type analyzeRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
	Language  string `json:"language,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON")
		return
	}
	if req.Text == "" {
		s.renderError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	analysis := s.deps.Orchestrator.Analyze(r.Context(), req.Text, req.SessionID,
		conversation.AnalyzeOptions{Language: req.Language})

	render.Status(r, http.StatusOK)
	render.JSON(w, r, analysis)
}

type executePlanRequest struct {
	SessionID string `json:"sessionId"`
	PlanID    string `json:"planId,omitempty"`
}

func (s *Server) handleExecutePlan(w http.ResponseWriter, r *http.Request) {
	var req executePlanRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "request body must be JSON")
		return
	}
	if req.SessionID == "" {
		s.renderError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "sessionId is required")
		return
	}

	cctx, err := s.deps.Orchestrator.Session(r.Context(), req.SessionID)
	if err != nil {
		s.renderStandardError(w, r, err)
		return
	}
	if cctx == nil || cctx.CurrentPlan == nil {
		s.renderError(w, r, http.StatusNotFound, string(stderrors.ErrCodePlanNotFound), "no plan pending for this session")
		return
	}
	plan := *cctx.CurrentPlan
	if req.PlanID != "" && req.PlanID != plan.ID {
		s.renderError(w, r, http.StatusNotFound, string(stderrors.ErrCodePlanNotFound), "planId does not match the session's pending plan")
		return
	}

	final, err := s.deps.Orchestrator.ExecutePlan(r.Context(), plan, s.deps.Executor)
	if err != nil {
		s.renderStandardError(w, r, err)
		return
	}

	s.afterExecution(r, cctx, final)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, final)
}

// afterExecution fans the finished plan out to the optional sinks.
// None of them may fail the response.
func (s *Server) afterExecution(r *http.Request, cctx *models.ConversationContext, final models.TodoPlan) {
	ctx := r.Context()

	if s.deps.History != nil {
		if err := s.deps.History.SavePlan(ctx, final); err != nil {
			s.deps.Logger.Error("plan history save failed", map[string]interface{}{
				"planId": final.ID,
				"error":  err.Error(),
			})
		}
	}

	if s.deps.Recorder != nil {
		s.deps.Recorder.Record(ctx, episodes.RecordParams{
			UserID:    final.SessionID,
			SessionID: final.SessionID,
			Intent:    final.Intent,
			Entities:  cctx.Entities,
			Success:   final.Status == models.PlanCompleted,
			Result:    string(final.Status),
		})
	}

	if s.deps.Rewards != nil {
		s.deps.Rewards.AwardPlan(final)
	}
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	if s.deps.History == nil {
		s.renderError(w, r, http.StatusServiceUnavailable, "HISTORY_DISABLED", "plan history is not configured")
		return
	}

	plan, err := s.deps.History.GetPlan(r.Context(), chi.URLParam(r, "planID"))
	if err != nil {
		s.renderStandardError(w, r, err)
		return
	}
	render.JSON(w, r, plan)
}

func (s *Server) handleRecentPlans(w http.ResponseWriter, r *http.Request) {
	if s.deps.History == nil {
		s.renderError(w, r, http.StatusServiceUnavailable, "HISTORY_DISABLED", "plan history is not configured")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	plans, err := s.deps.History.RecentPlans(r.Context(), chi.URLParam(r, "sessionID"), limit)
	if err != nil {
		s.renderStandardError(w, r, err)
		return
	}
	if plans == nil {
		plans = []models.TodoPlan{}
	}
	render.JSON(w, r, map[string]interface{}{"plans": plans})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	cctx, err := s.deps.Orchestrator.Session(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.renderStandardError(w, r, err)
		return
	}
	if cctx == nil {
		s.renderError(w, r, http.StatusNotFound, string(stderrors.ErrCodeSessionNotFound), "session not found")
		return
	}
	render.JSON(w, r, cctx)
}

func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		render.JSON(w, r, map[string]interface{}{"packages": s.deps.Catalog.FindByKeyword(q)})
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"summary":  s.deps.Catalog.Summarize(),
		"packages": s.deps.Catalog.Packages(),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.deps.Rewards == nil {
		s.renderError(w, r, http.StatusServiceUnavailable, "REWARDS_DISABLED", "rewards are not configured")
		return
	}

	profile, ok := s.deps.Rewards.Profile(chi.URLParam(r, "userID"))
	if !ok {
		s.renderError(w, r, http.StatusNotFound, "PROFILE_NOT_FOUND", "no reward profile for this user")
		return
	}
	render.JSON(w, r, profile)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":  "ok",
		"version": s.deps.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// renderStandardError maps engine errors onto HTTP statuses.
func (s *Server) renderStandardError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := stderrors.LogError(s.deps.Logger, r.Method+" "+r.URL.Path, err)

	status := http.StatusInternalServerError
	switch stdErr.Code {
	case stderrors.ErrCodePlanNotFound, stderrors.ErrCodeSessionNotFound:
		status = http.StatusNotFound
	case stderrors.ErrCodePlanValidationFailed, stderrors.ErrCodePlanCycleDetected:
		status = http.StatusUnprocessableEntity
	default:
		if stdErr.Retryable {
			status = http.StatusServiceUnavailable
		}
	}
	s.renderError(w, r, status, string(stdErr.Code), stdErr.Message)
}
