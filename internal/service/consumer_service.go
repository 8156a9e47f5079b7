package service

import (
	"context"
	"encoding/json"

	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/pkg/events"
	"lead-generator-be/pkg/leads/usage"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	tracker    *usage.Tracker
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	tracker *usage.Tracker,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		tracker:    tracker,
		logger:     logger,
	}
}

// Consume subscribes to the activity topic and feeds the usage tracker
// until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal event", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		// Ack invalid messages to prevent infinite redelivery
		msg.Ack()
		return
	}

	cs.tracker.Record(evt)
	cs.logger.Debug("Consumer", "Activity recorded", map[string]interface{}{
		"type":       evt.Type,
		"session_id": evt.SessionId,
	})
	msg.Ack()
}
