package usecase

import (
	"context"

	"campus-assistant/internal/chat"
	"campus-assistant/internal/model"
)

// CreateSession starts a new conversation.
func (uc *implUseCase) CreateSession(ctx context.Context) (chat.CreateSessionOutput, error) {
	id, _ := uc.store.Create()
	uc.l.Info(ctx, "session created", "session_id", id)
	return chat.CreateSessionOutput{SessionID: id}, nil
}

// Transcript returns a copy of the session history.
func (uc *implUseCase) Transcript(ctx context.Context, sc model.Scope) (chat.TranscriptOutput, error) {
	state, ok := uc.store.Get(sc.SessionID)
	if !ok {
		return chat.TranscriptOutput{}, chat.ErrSessionNotFound
	}

	state.Lock()
	defer state.Unlock()

	turns := make([]model.Turn, len(state.Transcript))
	copy(turns, state.Transcript)

	return chat.TranscriptOutput{
		Agent: state.ActiveKind,
		Turns: turns,
	}, nil
}

// EndSession destroys the session state.
func (uc *implUseCase) EndSession(ctx context.Context, sc model.Scope) error {
	if _, ok := uc.store.Get(sc.SessionID); !ok {
		return chat.ErrSessionNotFound
	}
	uc.store.Delete(sc.SessionID)
	uc.l.Info(ctx, "session ended", "session_id", sc.SessionID)
	return nil
}
