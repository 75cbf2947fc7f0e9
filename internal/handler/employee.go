package handler

import (
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/service"
	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct {
	Handler
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:         NewHandler(s),
		employeeService: employeeService,
	}
}

func (h *EmployeeHandler) List(c echo.Context, _ *model.NoParams) ([]model.Employee, error) {
	return h.employeeService.List(c.Request().Context())
}

func (h *EmployeeHandler) Get(c echo.Context, req *model.IDParam) (*model.Employee, error) {
	return h.employeeService.Get(c.Request().Context(), req.ID)
}

func (h *EmployeeHandler) Create(c echo.Context, req *model.CreateEmployeeRequest) (*model.Employee, error) {
	return h.employeeService.Create(c.Request().Context(), req.Input())
}

func (h *EmployeeHandler) Update(c echo.Context, req *model.UpdateEmployeeRequest) (*model.Employee, error) {
	return h.employeeService.Update(c.Request().Context(), req.ID, req.Input())
}

func (h *EmployeeHandler) Delete(c echo.Context, req *model.IDParam) (*model.MessageResponse, error) {
	return h.employeeService.Delete(c.Request().Context(), req.ID)
}
