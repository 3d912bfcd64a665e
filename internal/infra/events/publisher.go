// Package events publishes outbox rows to the configured broker.
package events

import (
	"context"
	"log/slog"
	"strings"

	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/errs"
)

var ErrUnknownBroker = errs.New("unknown events broker")

// Message is one outbox row ready to leave the service.
type Message struct {
	ID      string
	Topic   string
	Key     string
	Payload []byte
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// NewPublisher picks the broker named by cfg.Broker: log, kafka or amqp.
func NewPublisher(cfg config.EventsConfig) (Publisher, error) {
	switch strings.ToLower(cfg.Broker) {
	case "", "log":
		return NewLogPublisher(slog.Default()), nil
	case "kafka":
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.TopicPrefix), nil
	case "amqp":
		return NewAMQPPublisher(cfg.AMQPURL, cfg.TopicPrefix)
	default:
		return nil, errs.Wrapf(ErrUnknownBroker, "%q", cfg.Broker)
	}
}

func qualifiedTopic(prefix, topic string) string {
	if prefix == "" {
		return topic
	}
	return prefix + "." + topic
}

// LogPublisher writes events to the log; used when no broker is deployed.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "event published",
		"topic", msg.Topic,
		"key", msg.Key,
		"payload", string(msg.Payload))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
