package handler

import (
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one value around instead of many.
type Handlers struct {
	Home     *HomeHandler
	Health   *HealthHandler
	Product  *ProductHandler
	Employee *EmployeeHandler
	Stats    *StatsHandler
	Backup   *BackupHandler
}

// NewHandlers constructs the handler container from the services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:     NewHomeHandler(s, services.Stats),
		Health:   NewHealthHandler(s),
		Product:  NewProductHandler(s, services.Product),
		Employee: NewEmployeeHandler(s, services.Employee),
		Stats:    NewStatsHandler(s, services.Stats),
		Backup:   NewBackupHandler(s, services.Backup),
	}
}
