package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/roundtable-ai/roundtable/pkg/database"
	"github.com/roundtable-ai/roundtable/pkg/version"
)

// healthHandler handles GET /api/v1/health. It reports database and
// worker pool health when those components are attached; an embedded
// server without them still answers with service status alone.
func (s *Server) healthHandler(c *echo.Context) error {
	resp := map[string]any{
		"status":  "healthy",
		"service": version.AppName,
		"version": version.Full(),
	}
	code := http.StatusOK

	if s.db != nil {
		dbHealth, err := database.Health(c.Request().Context(), s.db.DB())
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		resp["worker_pool"] = poolHealth
		if !poolHealth.IsHealthy {
			resp["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	return c.JSON(code, resp)
}
