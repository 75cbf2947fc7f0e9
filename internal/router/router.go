// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/devanap/fabrismart-full/internal/handler"
	"github.com/devanap/fabrismart-full/internal/middleware"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the middleware chain and every route.
//
// Order matters: RequestID first so every later layer sees the id, New Relic
// before ContextEnhancer so trace ids land on the request logger, and
// Recover innermost so panics still pass through logging and tracing.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerProductRoutes(api, h)
	registerEmployeeRoutes(api, h)
	registerReportRoutes(api, h)

	return router
}
