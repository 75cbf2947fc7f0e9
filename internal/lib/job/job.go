// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - You enqueue tasks (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer) using asynq.Server.
//   - An optional scheduler enqueues the backup export on a cron schedule.
//
// The package only exists at runtime when Redis is configured.
package job

import (
	"context"
	"time"

	"github.com/devanap/fabrismart-full/internal/config"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// BackupExporter writes a backup of both collections and reports the file.
type BackupExporter interface {
	Export(ctx context.Context) (*model.BackupResult, error)
}

// JobService holds the Asynq client (enqueue), server (worker execution)
// and optional scheduler.
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server    *asynq.Server
	scheduler *asynq.Scheduler
	schedule  string
	started   bool

	exporter BackupExporter
	logger   *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give "critical" tasks more worker share than "default"
// and "low". Backups run on "low".
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	j := &JobService{
		Client:   asynq.NewClient(redisOpt),
		server:   server,
		schedule: cfg.Backup.Schedule,
		logger:   logger,
	}

	if j.schedule != "" {
		j.scheduler = asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
			Location: time.UTC,
			Logger:   newAsynqLogger(logger),
		})
	}

	return j
}

// SetBackupExporter installs the component that performs backup tasks.
// It must be called before Start.
func (j *JobService) SetBackupExporter(exporter BackupExporter) {
	j.exporter = exporter
}

// Start registers task handlers and starts the worker server and, when a
// schedule is configured, the scheduler. Neither call blocks.
func (j *JobService) Start() error {
	if j.exporter == nil {
		return errors.New("job: backup exporter not set")
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskBackupExport, j.handleBackupExportTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return errors.Wrap(err, "starting job server")
	}
	j.started = true

	if j.scheduler != nil {
		task, err := NewBackupExportTask(ReasonScheduled)
		if err != nil {
			return err
		}

		entryID, err := j.scheduler.Register(j.schedule, task)
		if err != nil {
			return errors.Wrapf(err, "registering backup schedule %q", j.schedule)
		}

		if err := j.scheduler.Start(); err != nil {
			return errors.Wrap(err, "starting job scheduler")
		}

		j.logger.Info().
			Str("schedule", j.schedule).
			Str("entry_id", entryID).
			Msg("Scheduled periodic backups")
	}

	return nil
}

// EnqueueBackup queues a one-off backup export.
func (j *JobService) EnqueueBackup(ctx context.Context, reason string) (*asynq.TaskInfo, error) {
	task, err := NewBackupExportTask(reason)
	if err != nil {
		return nil, err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return nil, errors.Wrap(err, "enqueueing backup export")
	}
	return info, nil
}

// Stop gracefully stops the scheduler and the job server and closes client resources.
func (j *JobService) Stop() {
	if j.started {
		j.logger.Info().Msg("Stopping background job server")
		if j.scheduler != nil {
			j.scheduler.Shutdown()
		}
		j.server.Shutdown()
	}
	j.Client.Close()
}
