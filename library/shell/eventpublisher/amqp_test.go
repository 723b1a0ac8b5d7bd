package eventpublisher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell/eventpublisher"
)

type publishedMessage struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type channelSpy struct {
	published []publishedMessage
	err       error
	closed    bool
}

func (c *channelSpy) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.published = append(c.published, publishedMessage{exchange: exchange, key: key, msg: msg})
	return c.err
}

func (c *channelSpy) Close() error {
	c.closed = true
	return nil
}

type decodedEnvelope struct {
	EventType string                      `json:"eventType"`
	Metadata  eventpublisher.EventMetadata `json:"metadata"`
	Payload   map[string]any              `json:"payload"`
}

func Test_AMQPPublisher_Publish_RoutesByEventType(t *testing.T) {
	// arrange
	ch := &channelSpy{}
	publisher := eventpublisher.NewAMQPPublisherWithChannel(ch, "library.events")
	copyID := uuid.New()
	event := core.BuildBookCopyReturned(copyID, "9780134190440", uuid.New(), time.Now())
	ctx := eventpublisher.WithCorrelationID(context.Background(), "request-42")

	// act
	err := publisher.Publish(ctx, event)

	// assert
	require.NoError(t, err)
	require.Len(t, ch.published, 1)

	message := ch.published[0]
	assert.Equal(t, "library.events", message.exchange)
	assert.Equal(t, core.BookCopyReturnedEventType, message.key)
	assert.Equal(t, "application/json", message.msg.ContentType)
	assert.Equal(t, amqp.Persistent, message.msg.DeliveryMode)
	assert.Equal(t, "request-42", message.msg.CorrelationId)

	var decoded decodedEnvelope
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(message.msg.Body, &decoded))
	assert.Equal(t, core.BookCopyReturnedEventType, decoded.EventType)
	assert.Equal(t, "request-42", decoded.Metadata.CorrelationID)
	assert.Equal(t, "request-42", decoded.Metadata.CausationID)
	assert.Equal(t, message.msg.MessageId, decoded.Metadata.MessageID)
	assert.Equal(t, copyID.String(), decoded.Payload["CopyID"])
}

func Test_AMQPPublisher_Publish_Fails_WhenBrokerRejects(t *testing.T) {
	// arrange
	ch := &channelSpy{err: errors.New("channel closed")}
	publisher := eventpublisher.NewAMQPPublisherWithChannel(ch, "library.events")

	// act
	err := publisher.Publish(context.Background(), core.BuildBookRemovedFromCatalog("9780134190440", time.Now()))

	// assert
	assert.ErrorIs(t, err, eventpublisher.ErrPublishingFailed)
}

func Test_AMQPPublisher_Close_ClosesChannel(t *testing.T) {
	ch := &channelSpy{}
	publisher := eventpublisher.NewAMQPPublisherWithChannel(ch, "library.events")

	assert.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func Test_BuildEnvelope_StartsOwnChain_WithoutCorrelationID(t *testing.T) {
	// act
	envelope := eventpublisher.BuildEnvelope(context.Background(), core.BuildBookRemovedFromCatalog("9780134190440", time.Now()))

	// assert
	assert.NotEmpty(t, envelope.Metadata.MessageID)
	assert.Equal(t, envelope.Metadata.MessageID, envelope.Metadata.CorrelationID)
	assert.Equal(t, envelope.Metadata.MessageID, envelope.Metadata.CausationID)
}

type failingPublisher struct{ calls int }

func (p *failingPublisher) Publish(context.Context, core.DomainEvent) error {
	p.calls++
	return errors.New("unavailable")
}

func Test_Fanout_Publish_ReachesAllPublishers_WhenOneFails(t *testing.T) {
	// arrange
	first := &failingPublisher{}
	ch := &channelSpy{}
	fanout := eventpublisher.Fanout{first, eventpublisher.NewAMQPPublisherWithChannel(ch, "x"), eventpublisher.Noop{}}

	// act
	err := fanout.Publish(context.Background(), core.BuildBookRemovedFromCatalog("9780134190440", time.Now()))

	// assert
	assert.Error(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Len(t, ch.published, 1)
}
