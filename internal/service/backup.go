package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/devanap/fabrismart-full/internal/errs"
	"github.com/devanap/fabrismart-full/internal/lib/job"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/rs/zerolog"
)

// BackupFileLayout names export files, e.g. backup_20240131_154500.json.
const BackupFileLayout = "backup_20060102_150405.json"

// BackupService exports both collections as one JSON document.
type BackupService struct {
	server    *server.Server
	products  *repository.ProductRepository
	employees *repository.EmployeeRepository

	now func() time.Time
}

func NewBackupService(s *server.Server, products *repository.ProductRepository, employees *repository.EmployeeRepository) *BackupService {
	return &BackupService{
		server:    s,
		products:  products,
		employees: employees,
		now:       time.Now,
	}
}

// FileName returns the name a backup taken now is stored under.
func (s *BackupService) FileName() string {
	return s.now().Format(BackupFileLayout)
}

// Snapshot reads every product and employee.
func (s *BackupService) Snapshot(ctx context.Context) (*model.Backup, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "backup_products", err, nil)
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "backup_employees", err, nil)
	}

	return &model.Backup{
		Products:   products,
		Employees:  employees,
		BackupDate: s.now().UTC(),
	}, nil
}

// Render returns the backup document as indented JSON.
func (s *BackupService) Render(ctx context.Context) ([]byte, error) {
	backup, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Export writes a dated backup file into the configured directory.
func (s *BackupService) Export(ctx context.Context) (*model.BackupResult, error) {
	backup, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	dir := s.server.Config.Backup.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(dir, s.FileName())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write backup file: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("path", path).
		Int("products", len(backup.Products)).
		Int("employees", len(backup.Employees)).
		Msg("backup written")

	return &model.BackupResult{
		Path:      path,
		Products:  len(backup.Products),
		Employees: len(backup.Employees),
	}, nil
}

// Request queues an export when a job worker exists and otherwise writes
// the file before returning.
func (s *BackupService) Request(ctx context.Context) (*model.BackupResult, error) {
	if s.server.Job == nil {
		result, err := s.Export(ctx)
		if err != nil {
			return nil, s.exportError(ctx, err)
		}
		return result, nil
	}

	info, err := s.server.Job.EnqueueBackup(ctx, job.ReasonManual)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to enqueue backup")
		return nil, errs.NewInternalServerError()
	}

	return &model.BackupResult{Queued: true, TaskID: info.ID}, nil
}

func (s *BackupService) exportError(ctx context.Context, err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	zerolog.Ctx(ctx).Error().Err(err).Msg("backup export failed")
	return errs.NewInternalServerError()
}
