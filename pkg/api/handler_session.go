package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/store"
)

// startSessionResponse is returned by POST /api/v1/sessions.
type startSessionResponse struct {
	SessionID string        `json:"session_id"`
	Status    models.Status `json:"status"`
	Channel   string        `json:"channel"`
}

// continueSessionRequest is the body of POST /api/v1/sessions/:id/continue.
type continueSessionRequest struct {
	AdditionalIterations int `json:"additional_iterations"`
}

// continueSessionResponse returns the new effective iteration budget.
type continueSessionResponse struct {
	SessionID     string `json:"session_id"`
	MaxIterations int    `json:"max_iterations"`
}

// startSessionHandler handles POST /api/v1/sessions.
func (s *Server) startSessionHandler(c *echo.Context) error {
	var req models.StartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	session, err := s.sessionService.Create(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, startSessionResponse{
		SessionID: session.ID,
		Status:    session.Status,
		Channel:   "session:" + session.ID,
	})
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	var filter store.ListFilter

	if v := c.QueryParam("status"); v != "" {
		status := models.Status(v)
		switch status {
		case models.StatusPending, models.StatusPlanning, models.StatusRunning,
			models.StatusCompleted, models.StatusFailed, models.StatusCancelled:
			filter.Status = status
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		} else {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-100")
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		} else {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
	}

	entries, err := s.sessionService.List(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"sessions": entries})
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	session, err := s.sessionService.Get(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// sessionStatusHandler handles GET /api/v1/sessions/:id/status.
func (s *Server) sessionStatusHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	status, err := s.sessionService.Status(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// continueSessionHandler handles POST /api/v1/sessions/:id/continue.
func (s *Server) continueSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req continueSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	newMax, err := s.sessionService.Continue(c.Request().Context(), sessionID, req.AdditionalIterations)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, continueSessionResponse{
		SessionID:     sessionID,
		MaxIterations: newMax,
	})
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.sessionService.Cancel(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"session_id": sessionID, "status": "cancelling"})
}

// deleteSessionHandler handles DELETE /api/v1/sessions/:id.
func (s *Server) deleteSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.sessionService.Delete(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
