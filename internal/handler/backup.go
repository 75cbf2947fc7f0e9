package handler

import (
	"net/http"

	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/service"
	"github.com/labstack/echo/v4"
)

type BackupHandler struct {
	Handler
	backupService *service.BackupService
}

func NewBackupHandler(s *server.Server, backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{
		Handler:       NewHandler(s),
		backupService: backupService,
	}
}

// Download renders the backup document and names the attachment after the
// current time, the same way exported files are named.
func (h *BackupHandler) Download(c echo.Context, _ *model.NoParams) ([]byte, error) {
	data, err := h.backupService.Render(c.Request().Context())
	if err != nil {
		return nil, err
	}

	SetDownloadName(c, h.backupService.FileName())
	return data, nil
}

// Request writes a backup file, or queues one when background jobs run.
func (h *BackupHandler) Request(c echo.Context, _ *model.NoParams) (*model.BackupResult, error) {
	return h.backupService.Request(c.Request().Context())
}

// BackupStatus is 202 for a queued export and 201 for a written file.
func BackupStatus(result *model.BackupResult) int {
	if result != nil && result.Queued {
		return http.StatusAccepted
	}
	return http.StatusCreated
}
