// Package session provides the session-scoped key/value store used to hold
// the API credential for the lifetime of the current session. Contents are
// never durable across restarts; ending the process ends the session.
package session
