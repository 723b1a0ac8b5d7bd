// Package authenticateuser implements the credential check behind login. It answers with the
// Actor that a session is issued for.
package authenticateuser
