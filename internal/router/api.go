package router

import (
	"net/http"

	"github.com/devanap/fabrismart-full/internal/handler"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes(api *echo.Group, h *handler.Handlers) {
	p := h.Product
	products := api.Group("/products")

	products.GET("", handler.Handle(p.Handler, p.List, http.StatusOK, &model.NoParams{}))
	products.POST("", handler.Handle(p.Handler, p.Create, http.StatusCreated, &model.CreateProductRequest{}))
	products.GET("/:id", handler.Handle(p.Handler, p.Get, http.StatusOK, &model.IDParam{}))
	products.PUT("/:id", handler.Handle(p.Handler, p.Update, http.StatusOK, &model.UpdateProductRequest{}))
	products.DELETE("/:id", handler.Handle(p.Handler, p.Delete, http.StatusOK, &model.IDParam{}))
}

func registerEmployeeRoutes(api *echo.Group, h *handler.Handlers) {
	e := h.Employee
	employees := api.Group("/employees")

	employees.GET("", handler.Handle(e.Handler, e.List, http.StatusOK, &model.NoParams{}))
	employees.POST("", handler.Handle(e.Handler, e.Create, http.StatusCreated, &model.CreateEmployeeRequest{}))
	employees.GET("/:id", handler.Handle(e.Handler, e.Get, http.StatusOK, &model.IDParam{}))
	employees.PUT("/:id", handler.Handle(e.Handler, e.Update, http.StatusOK, &model.UpdateEmployeeRequest{}))
	employees.DELETE("/:id", handler.Handle(e.Handler, e.Delete, http.StatusOK, &model.IDParam{}))
}

// registerReportRoutes wires the read-only stats report and backups.
func registerReportRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("/stats", handler.Handle(h.Stats.Handler, h.Stats.Get, http.StatusOK, &model.NoParams{}))

	b := h.Backup
	api.GET("/backups/export", handler.HandleFile(b.Handler, b.Download, http.StatusOK, &model.NoParams{},
		"backup.json", echo.MIMEApplicationJSONCharsetUTF8))
	api.POST("/backups", handler.HandleWithStatus(b.Handler, b.Request, handler.BackupStatus, &model.NoParams{}))
}
