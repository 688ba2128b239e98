package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/evolvedtroglodyte/therabridge/pkg/database"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/version"
)

// createSessionHandler handles POST /api/v1/sessions — the transcript
// hand-off from the transcription pipeline.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	view, err := s.sessionService.CreateSession(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, models.TriggerResponse{
		SessionID: view.ID,
		Status:    string(view.Status),
	})
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	detail, err := s.sessionService.GetSessionDetail(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// getStatusHandler handles GET /api/v1/sessions/:id/status.
func (s *Server) getStatusHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	status, err := s.sessionService.GetStatus(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	filters := models.SessionFilters{
		Status:      c.QueryParam("status"),
		PatientID:   c.QueryParam("patient_id"),
		TherapistID: c.QueryParam("therapist_id"),
		Limit:       20,
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	list, err := s.sessionService.ListSessions(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// analyzeHandler handles POST /api/v1/sessions/:id/analyze — the idempotent
// analysis trigger.
func (s *Server) analyzeHandler(c *echo.Context) error {
	return s.trigger(c, func(ctx context.Context, id string, kinds []models.Kind) (*models.TriggerResponse, error) {
		return s.triggerService.Analyze(ctx, id, kinds)
	})
}

// retryHandler handles POST /api/v1/sessions/:id/retry.
func (s *Server) retryHandler(c *echo.Context) error {
	return s.trigger(c, func(ctx context.Context, id string, kinds []models.Kind) (*models.TriggerResponse, error) {
		return s.triggerService.Retry(ctx, id, kinds)
	})
}

// rerunHandler handles POST /api/v1/sessions/:id/rerun.
func (s *Server) rerunHandler(c *echo.Context) error {
	return s.trigger(c, func(ctx context.Context, id string, kinds []models.Kind) (*models.TriggerResponse, error) {
		return s.triggerService.ForceRerun(ctx, id, kinds)
	})
}

// trigger binds the shared analyze/retry/rerun request shape and returns
// the 202 poll handle.
func (s *Server) trigger(c *echo.Context, fn func(context.Context, string, []models.Kind) (*models.TriggerResponse, error)) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.AnalyzeRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
	}

	resp, err := fn(c.Request().Context(), sessionID, req.Kinds)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, resp)
}

// cancelHandler handles POST /api/v1/sessions/:id/cancel — cancels an
// in-flight run on this pod. Committed artifacts remain.
func (s *Server) cancelHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.workerPool == nil || !s.workerPool.CancelSession(sessionID) {
		return echo.NewHTTPError(http.StatusNotFound, "session is not running on this pod")
	}
	return c.JSON(http.StatusAccepted, models.TriggerResponse{SessionID: sessionID, Status: "cancelling"})
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version"`
	Database      *database.HealthStatus `json:"database,omitempty"`
	WorkerPool    interface{}            `json:"worker_pool,omitempty"`
	Configuration interface{}            `json:"configuration,omitempty"`
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Version:  version.Version,
			Database: dbHealth,
		})
	}

	response := &HealthResponse{
		Status:        "healthy",
		Version:       version.Version,
		Database:      dbHealth,
		Configuration: s.cfg.Stats(),
	}
	if s.workerPool != nil {
		response.WorkerPool = s.workerPool.Health()
	}
	return c.JSON(http.StatusOK, response)
}
