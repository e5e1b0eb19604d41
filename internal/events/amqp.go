package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ricechain/supply-tracker/internal/logger"
	"github.com/ricechain/supply-tracker/internal/models"
)

// AMQPChannel is the subset of *amqp.Channel used by AMQPPublisher.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events as persistent messages to a durable RabbitMQ queue
// through the default exchange.
type AMQPPublisher struct {
	ch    AMQPChannel
	conn  *amqp.Connection
	queue string
	now   func() time.Time
}

func NewAMQPPublisher(ch AMQPChannel, queue string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, queue: queue, now: time.Now}
}

// DialAMQP connects to url, opens a channel and declares queue as durable.
func DialAMQP(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	p := NewAMQPPublisher(ch, queue)
	p.conn = conn
	return p, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event models.BatchEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for AMQP", "event_id", event.EventID, "error", err)
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         event.Type,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		logger.Log.Errorw("failed to publish event to AMQP", "event_id", event.EventID, "queue", p.queue, "error", err)
		return err
	}

	logger.Log.Infow("event published to AMQP", "event_id", event.EventID, "type", event.Type, "queue", p.queue)
	return nil
}

func (p *AMQPPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
