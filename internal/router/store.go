package router

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store holds conversation state keyed by session id, with TTL-based
// eviction for abandoned sessions. Safe for concurrent use.
type Store struct {
	sessions *expirable.LRU[string, *ConversationState]
}

// NewStore creates a session store evicting entries after ttl of
// inactivity or when capacity is exceeded (least recently used first).
func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{
		sessions: expirable.NewLRU[string, *ConversationState](
			capacity,
			nil, // No eviction callback
			ttl,
		),
	}
}

// Create starts a new session and returns its id.
func (s *Store) Create() (string, *ConversationState) {
	id := uuid.NewString()
	state := NewConversationState()
	s.sessions.Add(id, state)
	return id, state
}

// Get returns the state for a session id.
func (s *Store) Get(id string) (*ConversationState, bool) {
	return s.sessions.Get(id)
}

// Delete ends a session.
func (s *Store) Delete(id string) {
	s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
