package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	pkglog "github.com/weiawesome/bestiary-search/pkg/log"
)

// ConfluentConsumer implements BestiaryEventConsumer using confluent-kafka-go.
type ConfluentConsumer struct {
	consumer *kafka.Consumer
	topic    string
	handler  BestiaryEventHandler
	doneCh   chan struct{}
}

// NewConfluentConsumer creates a new Kafka consumer for bestiary events.
func NewConfluentConsumer(brokers, topic, groupID string, handler BestiaryEventHandler) (*ConfluentConsumer, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  brokers,
		"group.id":           groupID,
		"auto.offset.reset":  "latest",
		"enable.auto.commit": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	return &ConfluentConsumer{
		consumer: c,
		topic:    topic,
		handler:  handler,
		doneCh:   make(chan struct{}),
	}, nil
}

// Start subscribes and consumes in the background until ctx is done.
func (cc *ConfluentConsumer) Start(ctx context.Context) error {
	if err := cc.consumer.Subscribe(cc.topic, nil); err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", cc.topic, err)
	}

	l := pkglog.L()
	l.Info().Str(pkglog.FieldTopic, cc.topic).Msg("bestiary event consumer started")

	go cc.consumeLoop(ctx)

	return nil
}

func (cc *ConfluentConsumer) consumeLoop(ctx context.Context) {
	l := pkglog.L()
	defer close(cc.doneCh)

	for {
		select {
		case <-ctx.Done():
			l.Info().Msg("bestiary event consumer shutting down")
			return
		default:
			msg, err := cc.consumer.ReadMessage(100 * time.Millisecond)
			if err != nil {
				var kerr kafka.Error
				if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				l.Error().Err(err).Msg("bestiary event consumer error")
				continue
			}

			processMessage(ctx, cc.handler, msg.Value)
		}
	}
}

func processMessage(ctx context.Context, handler BestiaryEventHandler, value []byte) {
	l := pkglog.L()

	var event BestiaryEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.Error().Err(err).Msg("failed to unmarshal bestiary event")
		return
	}

	l.Info().
		Str("type", event.Type).
		Int64(pkglog.FieldBestiaryID, event.BestiaryID).
		Msg("received bestiary event")

	if err := handler.HandleBestiaryEvent(ctx, &event); err != nil {
		l.Error().Err(err).Int64(pkglog.FieldBestiaryID, event.BestiaryID).Msg("failed to handle bestiary event")
	}
}

// Close waits for the consume loop to exit, then releases the consumer.
// The context passed to Start must be cancelled first.
func (cc *ConfluentConsumer) Close() error {
	<-cc.doneCh
	if err := cc.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	return nil
}
