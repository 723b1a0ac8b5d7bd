// Package helper provides test doubles for the observability interfaces of the store package
// and fixtures for tests that run against a temporary SQLite database.
package helper
