package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Service struct {
	repository      Repository
	txManager       TxManager
	stalePendingAge time.Duration
}

func New(repository Repository, txManager TxManager, stalePendingAge time.Duration) *Service {
	return &Service{
		repository:      repository,
		txManager:       txManager,
		stalePendingAge: stalePendingAge,
	}
}

// CreateJob регистрирует новый заказ в статусе pending. Заказы приходят от
// внешнего диспетчера, идентификатор задаёт он.
func (s *Service) CreateJob(ctx context.Context, jobModify entities.JobModify) (*entities.Job, error) {
	if jobModify.ID == nil || jobModify.PickupCity == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidJobID(*jobModify.ID) {
		return nil, ErrInvalidJobID
	}
	if !isValidPickupCity(*jobModify.PickupCity) {
		return nil, ErrInvalidPickupCity
	}

	created, err := s.repository.Create(ctx, jobModify)
	if err != nil {
		if errors.Is(err, ErrJobAlreadyExists) {
			return nil, ErrJobAlreadyExists
		}
		return nil, fmt.Errorf("create job: %w", err)
	}

	return created, nil
}

func (s *Service) GetJob(ctx context.Context, jobID string) (*entities.Job, error) {
	if !isValidJobID(jobID) {
		return nil, ErrInvalidJobID
	}

	jobEntity, err := s.repository.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}

	return jobEntity, nil
}

// CancelJob переводит заказ pending → cancelled тем же условным UPDATE, что
// и назначение: отменить можно только заказ, который ещё никому не достался.
func (s *Service) CancelJob(ctx context.Context, jobID string) (*entities.Job, error) {
	if !isValidJobID(jobID) {
		return nil, ErrInvalidJobID
	}

	var cancelled *entities.Job
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		cancelled, err = s.repository.CancelPending(ctx, jobID)
		if err != nil {
			if errors.Is(err, ErrJobNotPending) {
				return s.classifyCancelLoss(ctx, jobID)
			}
			return fmt.Errorf("cancel job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// CleanupStalePending отменяет заказы, зависшие в pending дольше
// настроенного возраста. Возвращает число отменённых строк.
func (s *Service) CleanupStalePending(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.stalePendingAge)

	rowsAffected, err := s.repository.CancelPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return rowsAffected, nil
}

func (s *Service) classifyCancelLoss(ctx context.Context, jobID string) error {
	if _, err := s.repository.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("refetch job after failed cancel: %w", err)
	}
	return ErrJobNotPending
}
