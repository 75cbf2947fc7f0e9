package router

import (
	"net/http"

	"github.com/devanap/fabrismart-full/internal/handler"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// inventory or staff operations: the index and health checks.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.Home.Handler, h.Home.Info, http.StatusOK, &model.NoParams{}))

	// Health status endpoint (used by monitors and load balancers).
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/api/health", h.Health.CheckHealth)
}
