package job_event

import (
	"dispatch/internal/entities"
	"dispatch/internal/pkg/factory/job_event_handle"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(eventType entities.JobEventType) (job_event_handle.ExecuteFn, error)
}
