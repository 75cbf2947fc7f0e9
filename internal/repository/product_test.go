package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/devanap/fabrismart-full/internal/database/testutil"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/sqlerr"
)

func TestProductCreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testutil.DB(t))

	inputs := []model.ProductInput{
		{Name: "Notebook Dell", Category: "Electronics", Quantity: 5},
		{Name: "Polo Shirt", Category: "Clothing", Quantity: 0},
		{Name: "Rice 5kg", Category: "Food", Quantity: 50},
	}

	for _, in := range inputs {
		id, err := repo.Create(ctx, in)
		if err != nil {
			t.Fatalf("Create(%+v): %v", in, err)
		}

		got, found, err := repo.GetByID(ctx, id)
		if err != nil || !found {
			t.Fatalf("GetByID(%d) found=%v err=%v", id, found, err)
		}
		if got.ID != id || got.Name != in.Name || got.Category != in.Category || got.Quantity != in.Quantity {
			t.Errorf("GetByID(%d) = %+v, want fields of %+v", id, got, in)
		}
		if got.CreatedAt.IsZero() {
			t.Errorf("GetByID(%d) has no created_at", id)
		}
	}
}

func TestProductDuplicateNameAndCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testutil.DB(t))

	in := model.ProductInput{Name: "Mouse Logitech", Category: "Electronics", Quantity: 15}
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := repo.Create(ctx, in)
	if !errors.Is(err, sqlerr.ErrDuplicateKey) {
		t.Fatalf("second Create err = %v, want ErrDuplicateKey", err)
	}

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("List returned %d products, want 1", len(products))
	}
}

func TestProductUpdateIntoDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testutil.DB(t))

	if _, err := repo.Create(ctx, model.ProductInput{Name: "Mouse", Category: "Electronics", Quantity: 1}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, err := repo.Create(ctx, model.ProductInput{Name: "Keyboard", Category: "Electronics", Quantity: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = repo.Update(ctx, id, model.ProductInput{Name: "Mouse", Category: "Electronics", Quantity: 3})
	if !errors.Is(err, sqlerr.ErrDuplicateKey) {
		t.Fatalf("Update err = %v, want ErrDuplicateKey", err)
	}
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testutil.DB(t))

	id, err := repo.Create(ctx, model.ProductInput{Name: "Jeans", Category: "Clothing", Quantity: 8})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, _, _ := repo.GetByID(ctx, id)

	want := model.ProductInput{Name: "Jeans Slim", Category: "Clothing", Quantity: 12}
	if err := repo.Update(ctx, id, want); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, found, err := repo.GetByID(ctx, id)
	if err != nil || !found {
		t.Fatalf("GetByID found=%v err=%v", found, err)
	}
	if got.Name != want.Name || got.Quantity != want.Quantity {
		t.Errorf("after Update = %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed from %v to %v", before.CreatedAt, got.CreatedAt)
	}

	// A missing id is a silent no-op at this layer.
	if err := repo.Update(ctx, id+1000, want); err != nil {
		t.Fatalf("Update missing id: %v", err)
	}
}

func TestProductDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testutil.DB(t))

	id, err := repo.Create(ctx, model.ProductInput{Name: "Mouse", Category: "Electronics", Quantity: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, err := repo.GetByID(ctx, id); err != nil || found {
		t.Fatalf("GetByID after Delete found=%v err=%v", found, err)
	}

	// Deleting again is idempotent.
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestProductListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testutil.DB(t))

	empty, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("List on empty store = %v, want empty slice", empty)
	}

	for _, in := range []model.ProductInput{
		{Name: "Mouse", Category: "Gadgets", Quantity: 1},
		{Name: "Keyboard", Category: "Electronics", Quantity: 1},
		{Name: "Mouse", Category: "Electronics", Quantity: 1},
	} {
		if _, err := repo.Create(ctx, in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	products, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"Keyboard/Electronics", "Mouse/Gadgets", "Mouse/Electronics"}
	for i, p := range products {
		if got := p.Name + "/" + p.Category; got != want[i] {
			t.Errorf("products[%d] = %s, want %s", i, got, want[i])
		}
	}
}
