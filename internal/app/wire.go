//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	driver_get "dispatch/internal/handlers/rest/driver_get"
	driver_post "dispatch/internal/handlers/rest/driver_post"
	driver_put "dispatch/internal/handlers/rest/driver_put"
	drivers_get "dispatch/internal/handlers/rest/drivers_get"
	job_claim_post "dispatch/internal/handlers/rest/job_claim_post"
	job_get "dispatch/internal/handlers/rest/job_get"
	job_post "dispatch/internal/handlers/rest/job_post"
	"dispatch/internal/handlers/tasks/job_cleanup"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/job_eta"
	"dispatch/internal/pkg/factory/job_event_handle"

	driverRepo "dispatch/internal/repository/driver"
	jobRepo "dispatch/internal/repository/job"
	claimService "dispatch/internal/service/claim"
	driverService "dispatch/internal/service/driver"
	jobService "dispatch/internal/service/job"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval    time.Duration
	StalePendingMaxAge time.Duration
)

type Application struct {
	ServiceClaim      ServiceClaim
	ServiceJob        ServiceJob
	ServiceDriver     ServiceDriver
	BackgroundWorkers *background.Worker
}

type ServiceClaim interface {
	job_claim_post.Service
}

type ServiceJob interface {
	job_post.Service
	job_get.Service
}

type ServiceDriver interface {
	driver_get.Service
	driver_post.Service
	driver_put.Service
	drivers_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideStalePendingMaxAge,

		provideJobRepository,
		provideDriverRepository,

		provideServiceJob,
		provideServiceDriver,
		provideServiceClaim,
		job_eta.New,

		provideJobCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceClaim), new(*claimService.Claim)),
		wire.Bind(new(ServiceJob), new(*jobService.Service)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),

		wire.Bind(new(jobService.Repository), new(*jobRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(claimService.Repository), new(*jobRepo.Repository)),
		wire.Bind(new(claimService.DriverService), new(*driverService.Driver)),
		wire.Bind(new(claimService.CompletionEstimator), new(*job_eta.CompletionTimeFactory)),

		wire.Bind(new(jobService.TxManager), new(*tx.Manager)),
		wire.Bind(new(claimService.TxManager), new(*tx.Manager)),

		wire.Bind(new(job_cleanup.Service), new(*jobService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HandlerFactory *job_event_handle.EventHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-job-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStalePendingMaxAge,

		provideJobRepository,
		provideServiceJob,
		provideEventHandlerFactory,

		wire.Bind(new(jobService.Repository), new(*jobRepo.Repository)),
		wire.Bind(new(jobService.TxManager), new(*tx.Manager)),
		wire.Bind(new(job_event_handle.JobService), new(*jobService.Service)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideJobRepository(querier *querier.Querier) *jobRepo.Repository {
	return jobRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideServiceJob(
	repository jobService.Repository,
	txManager jobService.TxManager,
	maxAge StalePendingMaxAge,
) *jobService.Service {
	return jobService.New(repository, txManager, time.Duration(maxAge))
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceClaim(
	repository claimService.Repository,
	driverService claimService.DriverService,
	estimator claimService.CompletionEstimator,
	txManager claimService.TxManager,
) *claimService.Claim {
	return claimService.New(
		repository,
		driverService,
		estimator,
		txManager,
	)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.StaleJobCleanupInterval)
}

func provideStalePendingMaxAge(cfg *config.Config) StalePendingMaxAge {
	return StalePendingMaxAge(cfg.Tasks.StalePendingMaxAge)
}

func provideEventHandlerFactory(jobService job_event_handle.JobService) *job_event_handle.EventHandlerFactory {
	return job_event_handle.NewEventHandlerFactory(jobService)
}

func provideJobCleanupTask(
	log logger.Logger,
	jobService job_cleanup.Service,
	interval CleanupInterval,
) *job_cleanup.JobCleanup {
	return job_cleanup.NewJobCleanup(log, jobService, time.Duration(interval))
}

func provideTaskList(
	jobCleanupTask *job_cleanup.JobCleanup,
) []background.Task {
	return []background.Task{
		jobCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
