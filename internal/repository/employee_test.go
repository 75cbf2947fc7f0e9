package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/devanap/fabrismart-full/internal/database/testutil"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/sqlerr"
)

func strPtr(s string) *string { return &s }

func TestEmployeeCreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(testutil.DB(t))

	id, err := repo.Create(ctx, model.EmployeeInput{Name: "Maria Santos", Email: "maria@empresa.com", Role: strPtr("Manager")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, found, err := repo.GetByID(ctx, id)
	if err != nil || !found {
		t.Fatalf("GetByID found=%v err=%v", found, err)
	}
	if got.Name != "Maria Santos" || got.Email != "maria@empresa.com" {
		t.Errorf("GetByID = %+v", got)
	}
	if got.Role == nil || *got.Role != "Manager" {
		t.Errorf("role = %v, want Manager", got.Role)
	}
}

func TestEmployeeEmptyRoleIsStoredAsNull(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(testutil.DB(t))

	for i, role := range []*string{nil, strPtr("")} {
		email := []string{"a@corp.com", "b@corp.com"}[i]
		id, err := repo.Create(ctx, model.EmployeeInput{Name: "No Role", Email: email, Role: role})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		got, _, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Role != nil {
			t.Errorf("role = %q, want nil", *got.Role)
		}
	}
}

func TestEmployeeDuplicateEmailIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(testutil.DB(t))

	if _, err := repo.Create(ctx, model.EmployeeInput{Name: "Joao", Email: "joao@empresa.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, email := range []string{"joao@empresa.com", "JOAO@Empresa.com"} {
		_, err := repo.Create(ctx, model.EmployeeInput{Name: "Other", Email: email})
		if !errors.Is(err, sqlerr.ErrDuplicateKey) {
			t.Errorf("Create(%s) err = %v, want ErrDuplicateKey", email, err)
		}
	}
}

func TestEmployeeUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(testutil.DB(t))

	id, err := repo.Create(ctx, model.EmployeeInput{Name: "Pedro", Email: "pedro@empresa.com", Role: strPtr("Stocker")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Update(ctx, id, model.EmployeeInput{Name: "Pedro Costa", Email: "pedro.costa@empresa.com"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Pedro Costa" || got.Email != "pedro.costa@empresa.com" || got.Role != nil {
		t.Errorf("after Update = %+v", got)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := repo.GetByID(ctx, id); found {
		t.Fatal("employee still present after Delete")
	}
}
