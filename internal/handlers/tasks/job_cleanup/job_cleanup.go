package job_cleanup

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	CleanupStalePending(ctx context.Context) (int64, error)
}

type JobCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewJobCleanup(log logger.Logger, service Service, interval time.Duration) *JobCleanup {
	return &JobCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (j *JobCleanup) TTL() time.Duration {
	return j.interval
}

func (j *JobCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	rowsAffected, err := j.service.CleanupStalePending(ctxWithTimeout)

	if rowsAffected > 0 {
		j.log.With(
			logger.NewField("cancelled_jobs", rowsAffected),
		).Info("stale job cleanup")
	}

	return err
}

func (j *JobCleanup) Info() string {
	return "stale job cleanup"
}
