// Package shell is the imperative shell around the functional core of the library:
// retry for optimistic concurrency, handler results, shared handler interfaces and
// the observability helpers used by the observable wrappers.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
