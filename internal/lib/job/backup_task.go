package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

const (
	// TaskBackupExport is the job type name stored in Redis.
	TaskBackupExport = "backup:export"

	ReasonManual    = "manual"
	ReasonScheduled = "scheduled"
)

// BackupExportPayload is the JSON payload of a backup task.
type BackupExportPayload struct {
	Reason string `json:"reason"`
}

// NewBackupExportTask constructs an Asynq task for writing a backup file.
//
// Options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("low"): backups never compete with interactive work
//   - Timeout(2m): kill the task if the export hangs
func NewBackupExportTask(reason string) (*asynq.Task, error) {
	payload, err := json.Marshal(BackupExportPayload{Reason: reason})
	if err != nil {
		return nil, errors.Wrap(err, "marshalling backup payload")
	}

	return asynq.NewTask(
		TaskBackupExport,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(2*time.Minute),
	), nil
}
