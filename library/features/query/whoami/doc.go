// Package whoami implements the public identity check. It never fails for anonymous callers,
// it answers that they are not authenticated.
package whoami
