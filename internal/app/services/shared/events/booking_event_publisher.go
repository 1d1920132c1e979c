package events

import (
	"context"
	"fmt"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Confirmation is the broker confirm of one published message.
type Confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// Channel publishes a message and hands back the confirm bound to its
// delivery tag.
type Channel interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (Confirmation, error)
}

type amqpChannel struct {
	ch *amqp.Channel
}

func (c amqpChannel) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (Confirmation, error) {
	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if confirmation == nil {
		return nil, fmt.Errorf("channel is not in confirm mode")
	}
	return confirmation, nil
}

// Publisher emits lifecycle events on a durable topic exchange and waits for
// the broker confirm of every message.
type Publisher struct {
	ch       Channel
	exchange string
	log      *zap.Logger
}

func NewPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newPublisher(amqpChannel{ch: ch}, exchange, log), nil
}

func newPublisher(ch Channel, exchange string, log *zap.Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		log:      log,
	}
}

var _ contracts.EventPublisher = (*Publisher)(nil)

func (p *Publisher) PublishBookingTransitioned(ctx context.Context, event *models.BookingTransitionedEvent) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Info("Publisher.PublishBookingTransitioned called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
		zap.String(constvars.LoggingActionKey, event.Action),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.publish(ctx, constvars.EventRoutingKeyTransitioned, body, requestID)
	if err != nil {
		p.log.Error("Publisher.PublishBookingTransitioned error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingExchangeKey, p.exchange),
			zap.Error(err),
		)
		return err
	}

	p.log.Info("Publisher.PublishBookingTransitioned succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, constvars.EventRoutingKeyTransitioned),
	)
	return nil
}

func (p *Publisher) publish(ctx context.Context, routingKey string, body []byte, requestID string) error {
	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		CorrelationId: requestID,
	}

	confirmation, err := p.ch.Publish(ctx, p.exchange, routingKey, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}
	if !acked {
		return exceptions.ErrRabbitMQNotConfirmed(fmt.Errorf("broker nacked %s", routingKey), p.exchange)
	}
	return nil
}
