package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listVersionsHandler handles GET /api/v1/sessions/:id/versions.
func (s *Server) listVersionsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	versions, err := s.sessionService.ListVersions(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"session_id": sessionID, "versions": versions})
}

// getVersionHandler handles GET /api/v1/sessions/:id/versions/:version.
func (s *Server) getVersionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid version number")
	}

	doc, err := s.sessionService.GetVersion(c.Request().Context(), sessionID, version)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// getReviewsHandler handles GET /api/v1/sessions/:id/reviews.
// An optional ?version= query parameter restricts the result to reviews
// of a single document version.
func (s *Server) getReviewsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	version := 0
	if v := c.QueryParam("version"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid version number")
		}
		version = n
	}

	reviews, err := s.sessionService.GetReviews(c.Request().Context(), sessionID, version)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"session_id": sessionID, "reviews": reviews})
}

// getReportHandler handles GET /api/v1/sessions/:id/report.
func (s *Server) getReportHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	report, err := s.sessionService.GetReport(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, report)
}
