package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// Consumer drains the booking-events topic. The default handler writes an
// audit line per event; deployments hang SMS or dashboard fan-out off the
// same group.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConsumerConfig contains configuration for the booking-event consumer
type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topic            string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "turfbook-booking-events",
		Topic:            "booking-events",
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     false,
	}
}

// EventHandler processes one booking event. Returning an error leaves the
// message uncommitted for redelivery.
type EventHandler func(ctx context.Context, event *BookingEvent) error

type kafkaConsumer struct {
	group   sarama.ConsumerGroup
	config  *ConsumerConfig
	handler EventHandler
	cancel  context.CancelFunc
}

// NewConsumer creates a new booking-event consumer
func NewConsumer(config *ConsumerConfig, handler EventHandler) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	if handler == nil {
		handler = auditHandler
	}
	return &kafkaConsumer{group: group, config: config, handler: handler}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.group.Errors() {
			log.Printf("Booking-event consumer error: %v", err)
		}
	}()

	go func() {
		for {
			if err := c.group.Consume(ctx, []string{c.config.Topic}, &groupHandler{handler: c.handler}); err != nil {
				log.Printf("Booking-event consume error: %v", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	log.Printf("Booking-event consumer started on topic %s", c.config.Topic)
	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.group.Close()
}

type groupHandler struct {
	handler EventHandler
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		event, err := FromJSON(message.Value)
		if err != nil {
			log.Printf("Skipping malformed booking event at offset %d: %v", message.Offset, err)
			session.MarkMessage(message, "")
			continue
		}

		if err := h.handler(session.Context(), event); err != nil {
			log.Printf("Failed to handle %s for booking %s: %v", event.Type, event.BookingID, err)
			continue
		}
		session.MarkMessage(message, "")
	}
	return nil
}

func auditHandler(_ context.Context, event *BookingEvent) error {
	log.Printf("booking event: %s booking=%s turf=%s %s %s-%s status=%s",
		event.Type, event.BookingID, event.TurfID,
		event.BookingDate, event.StartTime, event.EndTime, event.Status)
	return nil
}
