package chat

import (
	"campus-assistant/internal/agent"
	"campus-assistant/internal/model"
)

// Attachment is an inline image sent with a turn.
type Attachment struct {
	MIMEType string // e.g., "image/jpeg"
	Data     string // base64-encoded bytes
}

// TurnInput is one user message with optional attachments.
type TurnInput struct {
	Message     string
	Attachments []Attachment
}

// TurnOutput is what the assistant says back: either a slot question or a
// formatted final reply.
type TurnOutput struct {
	Reply string
	Agent agent.Kind

	// AwaitingInput is true when Reply is a slot question and the next
	// message will be consumed as its answer.
	AwaitingInput bool
	SlotKey       string
}

// CreateSessionOutput carries the new session id.
type CreateSessionOutput struct {
	SessionID string
}

// TranscriptOutput is the session history.
type TranscriptOutput struct {
	Agent agent.Kind
	Turns []model.Turn
}
