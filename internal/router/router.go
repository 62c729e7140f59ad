// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mwaters/ec-api/internal/handler"
	"github.com/mwaters/ec-api/internal/middleware"
	"github.com/mwaters/ec-api/internal/server"
)

// New builds the Echo instance with the full middleware chain, the
// global error handler, and all routes registered.
//
// Middleware order matters: New Relic first so a transaction exists for
// everything downstream, then request id, then the context enhancer
// that builds the request-scoped logger from both.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Tracing.EnhanceTracing())

	registerAPIRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
