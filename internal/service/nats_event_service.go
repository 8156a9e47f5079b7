package service

import (
	"context"
	"time"

	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/pkg/events"
	"lead-generator-be/pkg/leads/usage"
	pktNats "lead-generator-be/pkg/nats"

	"github.com/google/uuid"
)

const natsDurableName = "lead-usage-tracker"

type natsPublisherService struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisherService publishes activity events to JetStream instead of
// the in-process bus.
func NewNatsPublisherService(publisher *pktNats.Publisher, logger logger.ILogger) IPublisherService {
	return &natsPublisherService{publisher: publisher, logger: logger}
}

func (p *natsPublisherService) Publish(ctx context.Context, evt events.BaseEvent) {
	if evt.Id == "" {
		evt.Id = uuid.NewString()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("Publisher", "Failed to publish event", map[string]interface{}{"type": evt.Type, "error": err.Error()})
	}
}

type natsConsumerService struct {
	subscriber *pktNats.Subscriber
	tracker    *usage.Tracker
	logger     logger.ILogger
}

func NewNatsConsumerService(subscriber *pktNats.Subscriber, tracker *usage.Tracker, logger logger.ILogger) IConsumerService {
	return &natsConsumerService{subscriber: subscriber, tracker: tracker, logger: logger}
}

func (cs *natsConsumerService) Consume(ctx context.Context) error {
	return cs.subscriber.Subscribe(ctx, pktNats.SubjectPrefix+".>", natsDurableName, func(_ context.Context, evt events.BaseEvent) error {
		cs.tracker.Record(evt)
		cs.logger.Debug("Consumer", "Activity recorded", map[string]interface{}{
			"type":       evt.Type,
			"session_id": evt.SessionId,
		})
		return nil
	})
}
