package eventpublisher

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	exchangeKindTopic = "topic"
	contentTypeJSON   = "application/json"
)

var (
	// ErrConnectingBrokerFailed is returned when the AMQP connection or channel cannot be opened.
	ErrConnectingBrokerFailed = errors.New("connecting to message broker failed")

	// ErrPublishingFailed is returned when the broker rejects a message.
	ErrPublishingFailed = errors.New("publishing event failed")
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events to a durable topic exchange, routed by event type.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
}

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Join(ErrConnectingBrokerFailed, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrConnectingBrokerFailed, err)
	}

	if err = ch.ExchangeDeclare(exchange, exchangeKindTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrConnectingBrokerFailed, fmt.Errorf("declare exchange %s: %w", exchange, err))
	}

	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// NewAMQPPublisherWithChannel builds a publisher on an already opened channel.
// The exchange must exist.
func NewAMQPPublisherWithChannel(ch Channel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{channel: ch, exchange: exchange}
}

// Publish sends the event as persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, event core.DomainEvent) error {
	envelope := BuildEnvelope(ctx, event)

	body, err := envelope.Marshal()
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, envelope.EventType, false, false, amqp.Publishing{
		ContentType:   contentTypeJSON,
		DeliveryMode:  amqp.Persistent,
		MessageId:     envelope.Metadata.MessageID,
		CorrelationId: envelope.Metadata.CorrelationID,
		Type:          envelope.EventType,
		Timestamp:     envelope.OccurredAt,
		Body:          body,
	})
	if err != nil {
		return errors.Join(ErrPublishingFailed, err)
	}

	return nil
}

// Close releases the channel and the connection.
func (p *AMQPPublisher) Close() error {
	err := p.channel.Close()

	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}

	return err
}
