package events

import (
	"context"
	"sync"
	"time"

	"charter-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher sends each topic to a durable queue of the same name through
// the default exchange. Messages are persistent.
type AMQPPublisher struct {
	url    string
	prefix string

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
}

func NewAMQPPublisher(url, prefix string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, prefix: prefix, declared: map[string]bool{}}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "rabbitmq: dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "rabbitmq: channel open failed")
	}
	p.conn, p.ch = conn, ch
	p.declared = map[string]bool{}
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	queue := qualifiedTopic(p.prefix, msg.Topic)
	if !p.declared[queue] {
		if _, err := p.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return errs.Wrap(err, "rabbitmq: queue declare failed")
		}
		p.declared[queue] = true
	}

	err := p.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     msg.ID,
		CorrelationId: msg.Key,
		Timestamp:     time.Now().UTC(),
		Body:          msg.Payload,
	})
	if err != nil {
		return errs.Wrap(err, "rabbitmq: publish failed")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
