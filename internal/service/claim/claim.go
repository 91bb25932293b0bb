package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	driversvc "dispatch/internal/service/driver"
	jobsvc "dispatch/internal/service/job"
)

type Claim struct {
	repository    Repository
	driverService DriverService
	estimator     CompletionEstimator
	txManager     TxManager
}

func New(
	repository Repository,
	driverService DriverService,
	estimator CompletionEstimator,
	txManager TxManager,
) *Claim {
	return &Claim{
		repository:    repository,
		driverService: driverService,
		estimator:     estimator,
		txManager:     txManager,
	}
}

// ClaimJob пытается закрепить ожидающий заказ за водителем вызвавшего.
// Состояние заказа и профиля читается заново на каждую попытку, кэширования
// между запросами нет. Из N конкурирующих вызовов на один jobID успехом
// завершается ровно один; остальные получают ErrJobUnavailable.
func (c *Claim) ClaimJob(ctx context.Context, userID, jobID string) (*entities.Job, error) {
	if !isValidJobID(jobID) {
		return nil, ErrMissingJobID
	}

	var claimed *entities.Job
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		jobEntity, err := c.repository.GetByID(ctx, jobID)
		if err != nil {
			if errors.Is(err, jobsvc.ErrJobNotFound) {
				return jobsvc.ErrJobNotFound
			}
			return fmt.Errorf("get job: %w", err)
		}

		driverEntity, err := c.driverService.GetDriverByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, driversvc.ErrDriverNotFound) {
				return ErrDriverNotFound
			}
			return fmt.Errorf("get driver profile: %w", err)
		}

		// Предварительная проверка по загруженному состоянию — только
		// короткое замыкание, исход решает условный UPDATE ниже.
		if jobEntity.Status != entities.JobPending || jobEntity.AssignedDriverID != nil {
			return ErrJobUnavailable
		}

		if err := checkEligibility(driverEntity, jobEntity); err != nil {
			return err
		}

		estimatedCompletionAt := c.estimator.EstimateCompletion(time.Now().UTC())

		claimed, err = c.repository.AssignPending(ctx, jobID, driverEntity.ID, estimatedCompletionAt)
		if err != nil {
			if errors.Is(err, jobsvc.ErrJobNotPending) {
				return c.classifyLoss(ctx, jobID)
			}
			if isAmbiguousStoreError(err) {
				return &ambiguousAssignError{driverID: driverEntity.ID, cause: err}
			}
			return fmt.Errorf("assign job: %w", err)
		}
		return nil
	})
	if err != nil {
		var ambiguous *ambiguousAssignError
		if errors.As(err, &ambiguous) {
			return c.resolveAmbiguousAssign(ctx, jobID, ambiguous)
		}
		return nil, err
	}
	return claimed, nil
}

// ambiguousRefetchTimeout ограничивает перечитывание после таймаута UPDATE:
// исходный контекст к этому моменту уже истёк.
const ambiguousRefetchTimeout = 2 * time.Second

type ambiguousAssignError struct {
	driverID int64
	cause    error
}

func (e *ambiguousAssignError) Error() string {
	return "assign outcome ambiguous: " + e.cause.Error()
}

func (e *ambiguousAssignError) Unwrap() error {
	return e.cause
}

func isAmbiguousStoreError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// resolveAmbiguousAssign перечитывает заказ после таймаута условного UPDATE:
// сам запрос мог как примениться, так и откатиться, и без свежего состояния
// ответ будет угадыванием. Повторять UPDATE нельзя — это перезаписало бы
// чужую победу, поэтому исход восстанавливается только чтением. Чтение идёт
// вне откаченной транзакции на отвязанном контексте.
func (c *Claim) resolveAmbiguousAssign(ctx context.Context, jobID string, ambiguous *ambiguousAssignError) (*entities.Job, error) {
	refetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ambiguousRefetchTimeout)
	defer cancel()

	jobEntity, err := c.repository.GetByID(refetchCtx, jobID)
	if err != nil {
		// Состояние так и осталось неопределённым
		return nil, fmt.Errorf("assign outcome unresolved: %w", ambiguous.cause)
	}

	if jobEntity.AssignedDriverID != nil && *jobEntity.AssignedDriverID == ambiguous.driverID {
		return jobEntity, nil
	}
	if jobEntity.Status != entities.JobPending || jobEntity.AssignedDriverID != nil {
		return nil, ErrJobUnavailable
	}

	// Заказ всё ещё pending: UPDATE не применился
	return nil, fmt.Errorf("assign job: %w", ambiguous.cause)
}

// classifyLoss перечитывает заказ после проигранного условного UPDATE, чтобы
// отличить исчезнувший заказ от уже занятого. Ноль затронутых строк —
// окончательный результат, сам UPDATE никогда не повторяется.
func (c *Claim) classifyLoss(ctx context.Context, jobID string) error {
	if _, err := c.repository.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, jobsvc.ErrJobNotFound) {
			return jobsvc.ErrJobNotFound
		}
		return fmt.Errorf("refetch job after lost claim: %w", err)
	}
	return ErrJobUnavailable
}
