//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=claim_test
package claim

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, jobID string) (*entities.Job, error)

	// AssignPending выполняет атомарный переход pending → assigned одним
	// условным UPDATE. Если условие не прошло, возвращает job.ErrJobNotPending.
	AssignPending(ctx context.Context, jobID string, driverID int64, estimatedCompletionAt time.Time) (*entities.Job, error)
}

type DriverService interface {
	GetDriverByUserID(ctx context.Context, userID string) (*entities.Driver, error)
}

type CompletionEstimator interface {
	EstimateCompletion(baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
