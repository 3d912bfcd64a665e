package events

import (
	"context"
	"time"

	"charter-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
	prefix string
}

// NewKafkaPublisher leaves Topic unset on the writer so each message names its own.
func NewKafkaPublisher(brokers []string, prefix string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		WriteTimeout:           10 * time.Second,
		ReadTimeout:            10 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: writer, prefix: prefix}
}

// Publish keys messages by aggregate id so one reservation's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: qualifiedTopic(p.prefix, msg.Topic),
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  time.Now(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to write message to kafka")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
