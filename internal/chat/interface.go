package chat

import (
	"context"

	"campus-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// CreateSession starts a new conversation owned by the general agent.
	CreateSession(ctx context.Context) (CreateSessionOutput, error)

	// ProcessTurn handles one user message: routes it to the owning
	// agent, collects slots, and generates the reply when the agent is
	// ready. It never fails on inference errors; those surface as an
	// apologetic reply.
	ProcessTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)

	// Transcript returns the session's conversation history.
	Transcript(ctx context.Context, sc model.Scope) (TranscriptOutput, error)

	// EndSession destroys the session state.
	EndSession(ctx context.Context, sc model.Scope) error
}
