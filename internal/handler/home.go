package handler

import (
	"sort"
	"time"

	"github.com/devanap/fabrismart-full/internal/config"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/service"
	"github.com/labstack/echo/v4"
)

// HomeHandler answers the index route with a short description of the
// running service.
type HomeHandler struct {
	Handler
	statsService *service.StatsService
}

func NewHomeHandler(s *server.Server, statsService *service.StatsService) *HomeHandler {
	return &HomeHandler{
		Handler:      NewHandler(s),
		statsService: statsService,
	}
}

func (h *HomeHandler) Info(c echo.Context, _ *model.NoParams) (*model.ServiceInfo, error) {
	report, err := h.statsService.Get(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return &model.ServiceInfo{
		Service:        config.ServiceName,
		Timestamp:      time.Now().UTC(),
		Driver:         string(h.server.DB.Driver()),
		TotalProducts:  report.TotalProducts,
		TotalEmployees: report.TotalEmployees,
		Endpoints:      publicEndpoints(c.Echo()),
	}, nil
}

// publicEndpoints lists the registered routes, except the index, sorted by
// path then method.
func publicEndpoints(e *echo.Echo) []model.Endpoint {
	routes := e.Routes()
	endpoints := make([]model.Endpoint, 0, len(routes))
	for _, r := range routes {
		if r.Path == "/" || r.Path == "/*" {
			continue
		}
		endpoints = append(endpoints, model.Endpoint{Method: r.Method, Path: r.Path})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})
	return endpoints
}
