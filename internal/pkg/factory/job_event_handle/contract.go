package job_event_handle

import (
	"context"

	"dispatch/internal/entities"
)

// ExecuteFn применяет одно событие внешнего диспетчера к состоянию заказа.
type ExecuteFn func(ctx context.Context, event entities.JobEvent) error

type JobService interface {
	CreateJob(ctx context.Context, jobModify entities.JobModify) (*entities.Job, error)
	CancelJob(ctx context.Context, jobID string) (*entities.Job, error)
}
