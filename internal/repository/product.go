package repository

import (
	"context"
	"fmt"

	"github.com/devanap/fabrismart-full/internal/database"
	"github.com/devanap/fabrismart-full/internal/model"
)

type ProductRepository struct {
	db *database.Database
}

func NewProductRepository(db *database.Database) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, category, quantity, created_at`

// List returns every product ordered by name, then id.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	stmt := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC, id ASC`

	records, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, productFromRecord(rec))
	}
	return products, nil
}

// GetByID returns found=false when no product has the id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (model.Product, bool, error) {
	stmt := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	records, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return model.Product{}, false, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	if len(records) == 0 {
		return model.Product{}, false, nil
	}
	return productFromRecord(records[0]), true, nil
}

// Create inserts a product and returns its new id. A second product with
// the same name and category fails with sqlerr.ErrDuplicateKey.
func (r *ProductRepository) Create(ctx context.Context, in model.ProductInput) (int64, error) {
	stmt := `INSERT INTO products (name, category, quantity) VALUES (?, ?, ?)`

	id, err := r.db.Insert(ctx, stmt, in.Name, in.Category, in.Quantity)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}

// Update overwrites every mutable field. Updating an id that does not
// exist affects nothing and is not an error.
func (r *ProductRepository) Update(ctx context.Context, id int64, in model.ProductInput) error {
	stmt := `UPDATE products SET name = ?, category = ?, quantity = ? WHERE id = ?`

	if _, err := r.db.Exec(ctx, stmt, in.Name, in.Category, in.Quantity, id); err != nil {
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return nil
}

// Delete removes the product; deleting a missing id succeeds.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

func productFromRecord(rec database.Record) model.Product {
	return model.Product{
		ID:        rec.Int64("id"),
		Name:      rec.String("name"),
		Category:  rec.String("category"),
		Quantity:  rec.Int("quantity"),
		CreatedAt: rec.Time("created_at"),
	}
}
