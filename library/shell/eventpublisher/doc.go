// Package eventpublisher announces the domain events of successful commands to other systems.
//
// Events are wrapped into an Envelope with tracking metadata and serialized as JSON.
// The AMQP publisher sends them to a topic exchange with the event type as routing key,
// Noop discards them and Fanout forwards them to several publishers, e.g. the broker
// and the catalog cache invalidation.
package eventpublisher
