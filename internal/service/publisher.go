// Package service publishes reservation events to RabbitMQ.  Errors are
// logged and returned so callers can ignore failures without interrupting
// the request that triggered the event.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

// EventPublisher announces reservation lifecycle changes.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, res model.Reservation) error
	ReservationCancelled(ctx context.Context, res model.Reservation) error
}

// AMQPPublisher sends events to the reservation.events queue.  Each publish
// opens its own connection, so the publisher holds no broker state.
type AMQPPublisher struct {
	url string
	log *zap.Logger
}

func NewAMQPPublisher(url string, log *zap.Logger) *AMQPPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &AMQPPublisher{url: url, log: log}
}

func (p *AMQPPublisher) ReservationCreated(ctx context.Context, res model.Reservation) error {
	return p.publish(ctx, queue.NewReservationEvent(queue.EventReservationCreated, res))
}

func (p *AMQPPublisher) ReservationCancelled(ctx context.Context, res model.Reservation) error {
	return p.publish(ctx, queue.NewReservationEvent(queue.EventReservationCancelled, res))
}

func (p *AMQPPublisher) publish(ctx context.Context, event queue.ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("rabbitmq: marshal event failed", zap.Error(err))
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq: dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq: channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue.ReservationEventsQueue, // name
		true,                         // durable
		false,                        // autoDelete
		false,                        // exclusive
		false,                        // noWait
		nil,                          // args
	); err != nil {
		p.log.Warn("rabbitmq: queue declare failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         event.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.ReservationEventsQueue, false, false, pub); err != nil {
		p.log.Warn("rabbitmq: publish failed", zap.Error(err), zap.String("event_id", event.EventID))
		return err
	}
	return nil
}

// NopPublisher drops every event.  It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) ReservationCreated(context.Context, model.Reservation) error   { return nil }
func (NopPublisher) ReservationCancelled(context.Context, model.Reservation) error { return nil }
