package service

import (
	"context"

	"github.com/devanap/fabrismart-full/internal/errs"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/rs/zerolog"
)

type ProductService struct {
	server *server.Server
	repo   *repository.ProductRepository
}

func NewProductService(s *server.Server, repo *repository.ProductRepository) *ProductService {
	return &ProductService{
		server: s,
		repo:   repo,
	}
}

func productNotFound() *errs.HTTPError {
	return errs.NewNotFoundError("product not found", true, code("PRODUCT_NOT_FOUND"))
}

func productConflict() *errs.HTTPError {
	return errs.NewConflictError("product already exists in this category", true, code("PRODUCT_ALREADY_EXISTS"))
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "list_products", err, nil)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, "get_product", err, nil)
	}
	if !found {
		return nil, productNotFound()
	}
	return &product, nil
}

// Create inserts the product and returns it as stored.
func (s *ProductService) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, storeError(ctx, "create_product", err, productConflict())
	}

	zerolog.Ctx(ctx).Info().
		Int64("product_id", id).
		Str("category", in.Category).
		Msg("product created")

	return s.Get(ctx, id)
}

// Update rejects unknown ids before writing.
func (s *ProductService) Update(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, storeError(ctx, "update_product", err, productConflict())
	}

	return s.Get(ctx, id)
}

// Delete rejects unknown ids before deleting.
func (s *ProductService) Delete(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(ctx, "delete_product", err, nil)
	}

	zerolog.Ctx(ctx).Info().Int64("product_id", id).Msg("product deleted")

	return &model.MessageResponse{Message: "product deleted successfully"}, nil
}
