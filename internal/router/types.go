package router

import (
	"sync"
	"time"

	"campus-assistant/internal/agent"
	"campus-assistant/internal/classifier"
	"campus-assistant/internal/model"
)

// ConversationState is the per-session routing state. One session is
// processed strictly turn-by-turn: callers must hold the state lock for
// the duration of a turn. Independent sessions share nothing mutable.
type ConversationState struct {
	mu sync.Mutex

	// ActiveKind is the agent currently owning the conversation.
	ActiveKind agent.Kind

	// Collected maps slot keys to values gathered so far. Keys are
	// always a subset of the active agent's required-input keys.
	Collected map[string]string

	// AwaitingInput is true iff CurrentInputKey is set.
	AwaitingInput   bool
	CurrentInputKey string

	Transcript []model.Turn
	UpdatedAt  time.Time
}

// NewConversationState returns a fresh state owned by the general agent.
func NewConversationState() *ConversationState {
	return &ConversationState{
		ActiveKind: agent.KindGeneral,
		Collected:  make(map[string]string),
		UpdatedAt:  time.Now(),
	}
}

// Lock acquires the per-session lock for one turn.
func (s *ConversationState) Lock() { s.mu.Lock() }

// Unlock releases the per-session lock.
func (s *ConversationState) Unlock() { s.mu.Unlock() }

// AppendTurn records a transcript entry.
func (s *ConversationState) AppendTurn(role model.Role, content string) {
	now := time.Now()
	s.Transcript = append(s.Transcript, model.Turn{Role: role, Content: content, At: now})
	s.UpdatedAt = now
}

// Action tells the caller what to do with the current turn.
type Action int

const (
	// ActionAskSlot: emit the slot question, no model call this turn.
	ActionAskSlot Action = iota

	// ActionGenerate: all slots filled, invoke the model pipeline.
	ActionGenerate
)

// Decision is the outcome of routing one user message.
type Decision struct {
	Action Action

	// Kind is the active agent after routing.
	Kind agent.Kind

	// SlotKey and Question are set when Action is ActionAskSlot.
	SlotKey  string
	Question string

	// Classification is set when the classifier ran this turn (nil while
	// a pending slot answer was consumed).
	Classification *classifier.Result
}
