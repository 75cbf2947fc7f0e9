package handler

import (
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	productService *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

func (h *ProductHandler) List(c echo.Context, _ *model.NoParams) ([]model.Product, error) {
	return h.productService.List(c.Request().Context())
}

func (h *ProductHandler) Get(c echo.Context, req *model.IDParam) (*model.Product, error) {
	return h.productService.Get(c.Request().Context(), req.ID)
}

func (h *ProductHandler) Create(c echo.Context, req *model.CreateProductRequest) (*model.Product, error) {
	return h.productService.Create(c.Request().Context(), req.Input())
}

func (h *ProductHandler) Update(c echo.Context, req *model.UpdateProductRequest) (*model.Product, error) {
	return h.productService.Update(c.Request().Context(), req.ID, req.Input())
}

func (h *ProductHandler) Delete(c echo.Context, req *model.IDParam) (*model.MessageResponse, error) {
	return h.productService.Delete(c.Request().Context(), req.ID)
}
