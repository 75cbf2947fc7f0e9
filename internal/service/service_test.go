package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devanap/fabrismart-full/internal/database/testutil"
	"github.com/devanap/fabrismart-full/internal/errs"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()

	cfg := testutil.Config(t)
	s := &server.Server{
		Config: cfg,
		Logger: testutil.Logger(t),
		DB:     testutil.DBWithConfig(t, cfg),
	}

	services, err := NewServices(s, repository.NewRepositories(s))
	if err != nil {
		t.Fatalf("NewServices: %v", err)
	}
	return services
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != status {
		t.Fatalf("status = %d, want %d (%s)", httpErr.Status, status, httpErr.Message)
	}
	return httpErr
}

func TestProductServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t).Product

	created, err := svc.Create(ctx, model.ProductInput{Name: "Mouse", Category: "Electronics", Quantity: 4})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.Name != "Mouse" || created.CreatedAt.IsZero() {
		t.Fatalf("Create returned %+v", created)
	}

	updated, err := svc.Update(ctx, created.ID, model.ProductInput{Name: "Mouse", Category: "Electronics", Quantity: 40})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Quantity != 40 {
		t.Fatalf("quantity = %d, want 40", updated.Quantity)
	}

	msg, err := svc.Delete(ctx, created.ID)
	if err != nil || msg.Message == "" {
		t.Fatalf("Delete: %v %+v", err, msg)
	}

	_, err = svc.Get(ctx, created.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestProductServiceMissingIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t).Product

	_, err := svc.Update(ctx, 999, model.ProductInput{Name: "Ghost", Category: "None", Quantity: 1})
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.Delete(ctx, 999)
	requireStatus(t, err, http.StatusNotFound)

	// The rejected update must not have created anything.
	products, err := svc.List(ctx)
	if err != nil || len(products) != 0 {
		t.Fatalf("List = %v, %v; want empty", products, err)
	}
}

func TestProductServiceConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t).Product

	in := model.ProductInput{Name: "Mouse", Category: "Electronics", Quantity: 1}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(ctx, in)
	httpErr := requireStatus(t, err, http.StatusConflict)
	if httpErr.Message != "product already exists in this category" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestEmployeeServiceLowercasedEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t).Employee

	req := &model.CreateEmployeeRequest{Name: "  Joao Silva ", Email: " Joao@Empresa.com", Role: ""}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	created, err := svc.Create(ctx, req.Input())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Email != "joao@empresa.com" || got.Name != "Joao Silva" || got.Role != nil {
		t.Fatalf("Get = %+v", got)
	}

	dup := &model.CreateEmployeeRequest{Name: "Other", Email: "JOAO@empresa.com"}
	dup.Sanitize()
	_, err = svc.Create(ctx, dup.Input())
	httpErr := requireStatus(t, err, http.StatusConflict)
	if httpErr.Message != "email already registered" {
		t.Errorf("message = %q", httpErr.Message)
	}

	_, err = svc.Update(ctx, created.ID+50, req.Input())
	requireStatus(t, err, http.StatusNotFound)
}

func TestStatsServiceAfterSeed(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)

	first, err := services.Seed.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if first.ProductsCreated != len(DemoProducts) || first.EmployeesCreated != len(DemoEmployees) || first.Skipped != 0 {
		t.Fatalf("first seed = %+v", first)
	}

	second, err := services.Seed.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if second.Skipped != len(DemoProducts)+len(DemoEmployees) {
		t.Fatalf("second seed = %+v, want everything skipped", second)
	}

	report, err := services.Stats.Get(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if report.TotalProducts != 6 || report.TotalEmployees != 3 || report.DistinctCategories != 3 {
		t.Fatalf("report = %+v", report)
	}
	if report.OutOfStockCount != 1 || report.LowStockCount != 2 || report.NormalStockCount != 3 {
		t.Fatalf("stock = %d/%d/%d", report.OutOfStockCount, report.LowStockCount, report.NormalStockCount)
	}
	if report.ProductsByCategory[0].Category != "Electronics" {
		t.Errorf("largest category = %s, want Electronics", report.ProductsByCategory[0].Category)
	}
}

func TestBackupExport(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)

	if _, err := services.Seed.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	backup := services.Backup
	backup.now = func() time.Time { return time.Date(2024, 1, 31, 15, 45, 0, 0, time.Local) }

	result, err := backup.Request(ctx)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if result.Queued {
		t.Fatal("without a job worker the export runs inline")
	}
	if filepath.Base(result.Path) != "backup_20240131_154500.json" {
		t.Errorf("path = %s", result.Path)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}

	var doc model.Backup
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode backup: %v", err)
	}
	if len(doc.Products) != 6 || len(doc.Employees) != 3 || doc.BackupDate.IsZero() {
		t.Fatalf("backup = %d products, %d employees, date %v", len(doc.Products), len(doc.Employees), doc.BackupDate)
	}

	rendered, err := backup.Render(ctx)
	if err != nil || len(rendered) == 0 {
		t.Fatalf("Render: %v", err)
	}
}
