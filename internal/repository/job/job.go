package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/job"
)

const jobColumns = `id, status, assigned_driver_id, pickup_city, estimated_completion_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, jobModify entities.JobModify) (*entities.Job, error) {
	query := `
		INSERT INTO jobs (id, status, pickup_city)
		VALUES ($1, 'pending', $2)
		RETURNING ` + jobColumns

	var jobDB JobDB
	err := r.querier.QueryRow(
		ctx,
		query,
		jobModify.ID,
		jobModify.PickupCity,
	).Scan(
		&jobDB.ID,
		&jobDB.Status,
		&jobDB.AssignedDriverID,
		&jobDB.PickupCity,
		&jobDB.EstimatedCompletionAt,
		&jobDB.CreatedAt,
		&jobDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, job.ErrJobAlreadyExists
		}
		return nil, fmt.Errorf("unexpected job repository create error: %w", err)
	}

	return ToDomain(&jobDB), nil
}

func (r *Repository) GetByID(ctx context.Context, jobID string) (*entities.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1`

	var jobDB JobDB
	err := r.querier.QueryRow(ctx, query, jobID).Scan(
		&jobDB.ID,
		&jobDB.Status,
		&jobDB.AssignedDriverID,
		&jobDB.PickupCity,
		&jobDB.EstimatedCompletionAt,
		&jobDB.CreatedAt,
		&jobDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, job.ErrJobNotFound
		}
		return nil, fmt.Errorf("unexpected job repository get error: %w", err)
	}

	return ToDomain(&jobDB), nil
}

// AssignPending — единственная мутация заказа в заявочном сценарии.
// Предусловие закодировано в самом UPDATE: перехода не будет, если заказ
// уже не pending или у него появился водитель. Отсутствие строки в RETURNING
// трактуется как проигрыш, а не как повод перезаписать состояние.
func (r *Repository) AssignPending(ctx context.Context, jobID string, driverID int64, estimatedCompletionAt time.Time) (*entities.Job, error) {
	query := `
		UPDATE jobs
		SET status = 'assigned',
		    assigned_driver_id = $2,
		    estimated_completion_at = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		  AND assigned_driver_id IS NULL
		RETURNING ` + jobColumns

	var jobDB JobDB
	err := r.querier.QueryRow(ctx, query, jobID, driverID, estimatedCompletionAt).Scan(
		&jobDB.ID,
		&jobDB.Status,
		&jobDB.AssignedDriverID,
		&jobDB.PickupCity,
		&jobDB.EstimatedCompletionAt,
		&jobDB.CreatedAt,
		&jobDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, job.ErrJobNotPending
		}
		return nil, fmt.Errorf("unexpected job repository assign error: %w", err)
	}

	return ToDomain(&jobDB), nil
}

func (r *Repository) CancelPending(ctx context.Context, jobID string) (*entities.Job, error) {
	query := `
		UPDATE jobs
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		  AND assigned_driver_id IS NULL
		RETURNING ` + jobColumns

	var jobDB JobDB
	err := r.querier.QueryRow(ctx, query, jobID).Scan(
		&jobDB.ID,
		&jobDB.Status,
		&jobDB.AssignedDriverID,
		&jobDB.PickupCity,
		&jobDB.EstimatedCompletionAt,
		&jobDB.CreatedAt,
		&jobDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, job.ErrJobNotPending
		}
		return nil, fmt.Errorf("unexpected job repository cancel error: %w", err)
	}

	return ToDomain(&jobDB), nil
}

func (r *Repository) CancelPendingCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE jobs
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE status = 'pending'
		  AND assigned_driver_id IS NULL
		  AND created_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected job repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}
