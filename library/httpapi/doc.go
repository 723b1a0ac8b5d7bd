// Package httpapi exposes the library over HTTP with JSON bodies.
//
// Every route translates the request into a command or query, runs it through the observable
// handler wrappers and maps the outcome onto a status code. Domain errors become
// {"error": "..."} bodies, validation failures additionally carry a "fields" map.
// Login and logout answer with plain text.
//
// The caller is identified by a signed session cookie issued at login, see SessionManager.
// Authorization itself is decided in the features, the HTTP layer only passes the Actor along.
package httpapi
