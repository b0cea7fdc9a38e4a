// Package models defines the data types exchanged between the chat client,
// the transcript, and the remote assistant endpoint.
package models

// Role identifies who authored a transcript message. An explicit enum is used
// instead of inspecting display labels, so rendering never depends on any
// particular label string.
type Role int

const (
	// RoleUser marks a message typed by the local user.
	RoleUser Role = iota
	// RoleAssistant marks a message produced by the remote assistant,
	// including error notices surfaced on the assistant's behalf.
	RoleAssistant
)

// String returns the lowercase name of the role.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAssistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// Label returns the display tag shown next to a message in the transcript.
func (r Role) Label() string {
	switch r {
	case RoleUser:
		return "You"
	default:
		return "Assistant"
	}
}

// Message is a single transcript entry. Messages are ephemeral: they live in
// the transcript for the duration of the process and are never persisted.
type Message struct {
	Role    Role
	Content string
}
