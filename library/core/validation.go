package core

import (
	"regexp"
	"strings"
)

const (
	minCopyQuantity = 1
	maxCopyQuantity = 100

	msgRequired         = "must not be blank"
	msgInvalidISBN      = "must be a valid ISBN-10 or ISBN-13"
	msgInvalidEmail     = "must be a valid email address"
	msgPositiveYear     = "must be a positive number"
	msgQuantityOutRange = "must be between 1 and 100"
	msgInvalidRole      = "must be LIBRARIAN or CUSTOMER"
	msgAuthorRequired   = "must contain at least one non-blank author name"
)

var (
	isbnPattern  = regexp.MustCompile(`^(?:97[89])?\d{9}[\dX]$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// FieldErrors collects per-field validation messages.
type FieldErrors map[string]string

// Add records msg for field unless the field already has a message.
func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

// Err returns a validation *Error, or nil if nothing was recorded.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}

	return ValidationFailed(f)
}

// IsValidISBN reports whether isbn matches the ISBN-10 or ISBN-13 pattern.
// Only the shape is checked, not the check digit.
func IsValidISBN(isbn string) bool {
	return isbnPattern.MatchString(isbn)
}

// IsValidEmail reports whether email looks like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateISBN records a message for field if isbn is not a valid ISBN.
func (f FieldErrors) ValidateISBN(field, isbn string) {
	if IsBlank(isbn) {
		f.Add(field, msgRequired)
		return
	}

	if !IsValidISBN(isbn) {
		f.Add(field, msgInvalidISBN)
	}
}

// ValidateRequired records a message for field if value is blank.
func (f FieldErrors) ValidateRequired(field, value string) {
	if IsBlank(value) {
		f.Add(field, msgRequired)
	}
}

// ValidateOptionalEmail records a message for field if email is present but malformed.
func (f FieldErrors) ValidateOptionalEmail(field, email string) {
	if email != "" && !IsValidEmail(email) {
		f.Add(field, msgInvalidEmail)
	}
}

// ValidatePublicationYear records a message for field if year is not positive.
func (f FieldErrors) ValidatePublicationYear(field string, year int) {
	if year <= 0 {
		f.Add(field, msgPositiveYear)
	}
}

// ValidateAuthors records a message for field if no author has a non-blank name.
func (f FieldErrors) ValidateAuthors(field string, authors []AuthorNameString) {
	for _, name := range authors {
		if IsBlank(name) {
			f.Add(field, msgAuthorRequired)
			return
		}
	}

	if len(authors) == 0 {
		f.Add(field, msgAuthorRequired)
	}
}

// ValidateCopyQuantity records a message for field if quantity is outside [1,100].
func (f FieldErrors) ValidateCopyQuantity(field string, quantity int) {
	if quantity < minCopyQuantity || quantity > maxCopyQuantity {
		f.Add(field, msgQuantityOutRange)
	}
}

// ValidateRole records a message for field if role is unknown.
func (f FieldErrors) ValidateRole(field string, role Role) {
	if !role.IsValid() {
		f.Add(field, msgInvalidRole)
	}
}

// NormalizeAuthors trims names and removes duplicates, keeping the first occurrence.
func NormalizeAuthors(authors []AuthorNameString) []AuthorNameString {
	seen := make(map[string]struct{}, len(authors))
	normalized := make([]AuthorNameString, 0, len(authors))

	for _, name := range authors {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}

	return normalized
}
