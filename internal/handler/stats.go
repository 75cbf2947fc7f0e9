package handler

import (
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/service"
	"github.com/labstack/echo/v4"
)

// StatsHandler serves the aggregated inventory and staff report.
type StatsHandler struct {
	Handler
	statsService *service.StatsService
}

func NewStatsHandler(s *server.Server, statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		Handler:      NewHandler(s),
		statsService: statsService,
	}
}

func (h *StatsHandler) Get(c echo.Context, _ *model.NoParams) (*model.StatsReport, error) {
	return h.statsService.Get(c.Request().Context())
}
