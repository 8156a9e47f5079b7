package service

import (
	"context"
	"encoding/json"
	"time"

	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.BaseEvent)
}

type publisherService struct {
	topicName string
	publisher message.Publisher
	logger    logger.ILogger
}

func NewPublisherService(topicName string, publisher message.Publisher, logger logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
		logger:    logger,
	}
}

// Publish emits evt on the activity topic. Failures are logged, never
// returned. ctx is not attached to the message, which outlives the request.
func (p *publisherService) Publish(_ context.Context, evt events.BaseEvent) {
	if evt.Id == "" {
		evt.Id = watermill.NewUUID()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("Publisher", "Failed to marshal event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
		return
	}

	msg := message.NewMessage(evt.Id, payload)
	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		p.logger.Error("Publisher", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}
}
