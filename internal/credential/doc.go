// Package credential owns the lifecycle of the upstream API credential and
// decides whether flashcard generation may proceed. The credential moves
// through three states: absent (no key supplied), active (key accepted and an
// upstream client constructed), and rejected (upstream reported the key
// invalid). A single gate instance guards the single credential slot of the
// session.
package credential
