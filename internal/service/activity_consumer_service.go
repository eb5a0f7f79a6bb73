package service

import (
	"context"

	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// MessageSource is the subscribe side of the in-process bus.
type MessageSource interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

type IActivityConsumerService interface {
	// Consume blocks until ctx is cancelled or the source closes.
	Consume(ctx context.Context) error
}

type activityConsumerService struct {
	source      MessageSource
	activityLog logger.ILogger
	logger      logger.ILogger
}

func NewActivityConsumerService(source MessageSource, activityLog logger.ILogger, log logger.ILogger) IActivityConsumerService {
	return &activityConsumerService{source: source, activityLog: activityLog, logger: log}
}

func (cs *activityConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.source.Subscribe(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			cs.processMessage(msg)
		}
	}
}

func (cs *activityConsumerService) processMessage(msg *message.Message) {
	// Malformed payloads are acked so they are not redelivered forever.
	defer msg.Ack()

	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Warn("ACTIVITY", "Dropping malformed activity message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	details := map[string]interface{}{
		"occurred_at": event.OccurredAt,
	}
	for k, v := range event.Data {
		details[k] = v
	}
	cs.activityLog.Info("ACTIVITY", event.Type, details)
}
