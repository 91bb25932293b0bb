package job_event_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/job"
)

var ErrUndefinedEvent = errors.New("undefined job event type")

type EventHandlerFactory struct {
	jobService JobService
}

func NewEventHandlerFactory(jobService JobService) *EventHandlerFactory {
	return &EventHandlerFactory{
		jobService: jobService,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType entities.JobEventType) (ExecuteFn, error) {
	switch eventType {
	case entities.JobEventCreated:
		return f.createdHandler, nil
	case entities.JobEventCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUndefinedEvent, eventType)
	}
}

func (f *EventHandlerFactory) createdHandler(ctx context.Context, event entities.JobEvent) error {
	jobModify := entities.JobModify{
		ID:         &event.JobID,
		PickupCity: &event.PickupCity,
	}

	_, err := f.jobService.CreateJob(ctx, jobModify)
	if err != nil {
		// Повторная доставка того же события — не ошибка
		if errors.Is(err, job.ErrJobAlreadyExists) {
			return nil
		}
		return fmt.Errorf("register created job %s: %w", event.JobID, err)
	}
	return nil
}

func (f *EventHandlerFactory) cancelledHandler(ctx context.Context, event entities.JobEvent) error {
	_, err := f.jobService.CancelJob(ctx, event.JobID)
	if err != nil {
		return fmt.Errorf("cancel job %s: %w", event.JobID, err)
	}
	return nil
}
