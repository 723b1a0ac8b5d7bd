// Package updatebook implements the Update Book use case.
//
// The ISBN identifies the book and cannot change. Title, publication year and the author set are
// replaced as a whole.
package updatebook
