//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_test
package job

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, jobModifyEntity entities.JobModify) (*entities.Job, error)
	GetByID(ctx context.Context, jobID string) (*entities.Job, error)

	CancelPending(ctx context.Context, jobID string) (*entities.Job, error)
	CancelPendingCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
