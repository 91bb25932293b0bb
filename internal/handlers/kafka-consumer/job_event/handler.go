package job_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/factory/job_event_handle"
	jobservice "dispatch/internal/service/job"
	"dispatch/pkg/logger"
)

// jobEventMessage — формат события внешнего диспетчера в топике job.events.
type jobEventMessage struct {
	JobID      string `json:"job_ID"`
	EventType  string `json:"event_type"`
	PickupCity string `json:"pickup_city"`
}

type Handler struct {
	handlerFactory           HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, handlerFactory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		handlerFactory:           handlerFactory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("job.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("job.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event jobEventMessage
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("job.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("job", event.JobID),
		logger.NewField("event_type", event.EventType),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("job.events processing")

	eventType := entities.JobEventType(event.EventType)

	handle, err := h.handlerFactory.GetHandler(eventType)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("job.events handler unknown event type")
		sess.MarkMessage(message, "")
		return false
	}

	err = handle(ctx, entities.JobEvent{
		JobID:      event.JobID,
		Type:       eventType,
		PickupCity: event.PickupCity,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, job_event_handle.ErrUndefinedEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.events handler unknown event type")

		case errors.Is(err, jobservice.ErrJobNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.events handler job not found")

		case errors.Is(err, jobservice.ErrJobNotPending):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.events handler job already left pending")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("job.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("job.events: processed")

	sess.MarkMessage(message, "")
	return false
}
