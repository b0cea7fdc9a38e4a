package models

// TurnReply is the parsed server response for one turn.
type TurnReply struct {
	// Text is the reply body to render in the transcript.
	Text string
	// Quit reports a server-declared end-of-session. Once received, the
	// client accepts no further turns until it is restarted.
	Quit bool
}
