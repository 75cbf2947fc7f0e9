package service

import (
	"github.com/devanap/fabrismart-full/internal/lib/job"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
)

type Services struct {
	Product  *ProductService
	Employee *EmployeeService
	Stats    *StatsService
	Backup   *BackupService
	Seed     *SeedService
	Job      *job.JobService
}

// NewServices builds every service and hands the backup service to the job
// worker, when one exists, so queued exports can run.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	backupService := NewBackupService(s, repos.Product, repos.Employee)

	if s.Job != nil {
		s.Job.SetBackupExporter(backupService)
	}

	return &Services{
		Product:  NewProductService(s, repos.Product),
		Employee: NewEmployeeService(s, repos.Employee),
		Stats:    NewStatsService(s, repos.Stats),
		Backup:   backupService,
		Seed:     NewSeedService(s, repos.Product, repos.Employee),
		Job:      s.Job,
	}, nil
}
