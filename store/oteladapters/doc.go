// Package oteladapters implements the observability interfaces of the store package with OpenTelemetry.
//
// SlogBridgeLogger and OTelLogger implement store.ContextualLogger, MetricsCollector implements
// store.ContextualMetricsCollector, TracingCollector implements store.TracingCollector.
// The repository and the command and query handlers accept all of them as options.
package oteladapters
