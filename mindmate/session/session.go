// Package session holds per-login UI state. Nothing here is persisted: a
// session exists from login to logout and is dropped wholesale on logout.
package session

import (
	"sync"
	"time"

	"mindmate/mindmate/services/llm"

	"github.com/google/uuid"
)

// State is one user's live session. Submitted tracks the mood flow: false is
// the awaiting-mood stage, true means a mood was submitted and suggestions
// are showing. Transcript is the AI-friend conversation context; it starts
// empty on every login and is never rehydrated from storage.
type State struct {
	ID         string
	Username   string
	Submitted  bool
	Sentiment  string
	Transcript []llm.Message
	CreatedAt  time.Time
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*State)}
}

func (s *Store) Create(username string) *State {
	state := &State{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[state.ID] = state
	s.mu.Unlock()
	return snapshot(state)
}

// Get returns a copy of the session, or nil if it was logged out.
func (s *Store) Get(id string) *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return nil
	}
	return snapshot(state)
}

// SetMood caches the classified sentiment and moves the mood flow to the
// submitted stage.
func (s *Store) SetMood(id, sentiment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return false
	}
	state.Sentiment = sentiment
	state.Submitted = true
	return true
}

// ResetMood is the "start over" transition; the cached sentiment is cleared
// along with the stage. Persisted mood entries are untouched.
func (s *Store) ResetMood(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return false
	}
	state.Submitted = false
	state.Sentiment = ""
	return true
}

// AppendTurn adds one completed exchange to the live transcript.
func (s *Store) AppendTurn(id, userMsg, assistantMsg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	if !ok {
		return false
	}
	state.Transcript = append(state.Transcript,
		llm.Message{Role: "user", Content: userMsg},
		llm.Message{Role: "assistant", Content: assistantMsg},
	)
	return true
}

// Transcript returns a copy of the conversation context.
func (s *Store) Transcript(id string) []llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return nil
	}
	out := make([]llm.Message, len(state.Transcript))
	copy(out, state.Transcript)
	return out
}

// Delete is logout: the whole session disappears at once.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func snapshot(state *State) *State {
	out := *state
	out.Transcript = make([]llm.Message, len(state.Transcript))
	copy(out.Transcript, state.Transcript)
	return &out
}
