package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// handleBackupExportTask writes one backup file.
//
// Returning an error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleBackupExportTask(ctx context.Context, t *asynq.Task) error {
	var p BackupExportPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal backup payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskBackupExport).
		Str("reason", p.Reason).
		Msg("Processing backup export task")

	result, err := j.exporter.Export(ctx)
	if err != nil {
		j.logger.Error().
			Str("type", TaskBackupExport).
			Str("reason", p.Reason).
			Err(err).
			Msg("Failed to export backup")
		return err
	}

	j.logger.Info().
		Str("type", TaskBackupExport).
		Str("path", result.Path).
		Int("products", result.Products).
		Int("employees", result.Employees).
		Msg("Successfully exported backup")

	return nil
}

// asynqLogger routes Asynq's internal logs through zerolog.
type asynqLogger struct {
	logger zerolog.Logger
}

func newAsynqLogger(logger *zerolog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With().Str("component", "asynq").Logger()}
}

func (l *asynqLogger) Debug(args ...any) { l.logger.Debug().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...any)  { l.logger.Info().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...any)  { l.logger.Warn().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...any) { l.logger.Error().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...any) { l.logger.Fatal().Msg(fmt.Sprint(args...)) }
