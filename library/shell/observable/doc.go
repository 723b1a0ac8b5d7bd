// Package observable decorates command and query handlers with metrics, tracing and logging.
//
// The core handlers stay free of infrastructure code: they return a shell.HandlerResult (commands)
// or a read model (queries) and an error, and the wrappers translate both into telemetry.
// The command wrapper also announces the written domain event to the configured shell.EventPublisher.
package observable
