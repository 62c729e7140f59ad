package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mwaters/ec-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, used by orchestrators and monitors.
	e.GET("/status", h.Health.CheckHealth)
}
