// Package listbooks implements the public catalog listing and search.
//
// Without criteria the whole catalog is listed. Title and author name match case-insensitive
// substrings, ISBN and publication year match exactly. Results are ordered by title and ISBN.
package listbooks
