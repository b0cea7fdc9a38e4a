// Package transcript holds the visible conversation history and the rules
// for turning raw message bodies into renderable markup.
//
// The transcript is append-only: entries are added in completion order and
// are never edited or reordered afterwards.
package transcript

import (
	"github.com/diogo/tripchat/internal/models"
)

// Transcript is the ordered history of exchanged messages for one session.
type Transcript struct {
	entries []models.Message
}

// New creates an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// Append adds one entry to the end of the transcript and returns it.
func (t *Transcript) Append(role models.Role, content string) models.Message {
	msg := models.Message{Role: role, Content: content}
	t.entries = append(t.entries, msg)
	return msg
}

// Entries returns the transcript entries in append order. The returned slice
// must not be mutated.
func (t *Transcript) Entries() []models.Message {
	return t.entries
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Last returns the most recent entry, if any.
func (t *Transcript) Last() (models.Message, bool) {
	if len(t.entries) == 0 {
		return models.Message{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// LastByRole returns the most recent entry with the given role, if any.
func (t *Transcript) LastByRole(role models.Role) (models.Message, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Role == role {
			return t.entries[i], true
		}
	}
	return models.Message{}, false
}
