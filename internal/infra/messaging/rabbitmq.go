package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fleet-dispatch/internal/pkg/config"
	"fleet-dispatch/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errPublisherClosed = errs.New("publisher is closed")

// Publisher sends persistent JSON messages to a durable queue. The connection is
// opened lazily and reopened after the broker drops it.
type Publisher struct {
	url   string
	queue string

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

func NewPublisher(cfg config.AMQPConfig) *Publisher {
	return &Publisher{url: cfg.URL, queue: cfg.Queue}
}

// Publish routes body to the queue through the default exchange; topic is
// carried as the message type.
func (p *Publisher) Publish(ctx context.Context, topic string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errPublisherClosed
	}
	if err := p.ensureChannel(); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         topic,
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.reset()
		return errs.Wrap(err, "amqp publish failed")
	}
	return nil
}

func (p *Publisher) ensureChannel() error {
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "amqp dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "amqp channel open failed")
	}
	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "amqp queue declare failed")
	}

	p.conn, p.ch = conn, ch
	return nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.reset()
	slog.Info("amqp publisher closed", slog.String("queue", p.queue))
	return nil
}
