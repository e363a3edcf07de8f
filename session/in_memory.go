package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/agentscaffold/core"
)

// InMemoryStore is a volatile core.SessionStore implementation keeping
// sessions in a process local map guarded by an RWMutex. Every session
// handed out is a deep clone and every write allocates a fresh state map, so
// callers can never alias the store's internal records.
//
// Cancellation is checked before the critical section is entered; a
// goroutine already waiting on the mutex is not interruptible. Lock hold
// times are bounded by a single map lookup plus one state-map copy, so this
// is a deliberate simplification, not a correctness gap.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Get returns a snapshot of the stored session or (nil, nil) when no session
// with that id exists. Absence is not an error.
func (s *InMemoryStore) Get(ctx context.Context, id string) (*core.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return sess.Clone(), nil
}

// Save inserts or fully replaces the session with sess.ID. UpdatedAt is
// stamped by the store regardless of what the caller supplied; CreatedAt is
// stored exactly as supplied, even on first save.
func (s *InMemoryStore) Save(ctx context.Context, sess *core.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("save session: %w", core.ErrInvalidArgument)
	}
	cp := sess.Clone()
	cp.UpdatedAt = time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[cp.ID] = cp
	return nil
}

// Delete removes the session if present. The second delete of the same id
// returns false.
func (s *InMemoryStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false, nil
	}
	delete(s.sessions, id)
	return true, nil
}

// ListIDs returns a snapshot of all stored session ids in unspecified order.
func (s *InMemoryStore) ListIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}

// GetValue looks up a single state key. An absent session or key yields
// (nil, false, nil); a stored nil value yields (nil, true, nil).
func (s *InMemoryStore) GetValue(ctx context.Context, id, key string) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false, nil
	}
	v, ok := sess.State[key]
	return v, ok, nil
}

// SetValue atomically sets one state key. An unknown id auto-vivifies a
// session with a fresh CreatedAt. The state map is replaced, never mutated
// in place, so previously returned snapshots keep their value.
func (s *InMemoryStore) SetValue(ctx context.Context, id, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.sessions[id]
	if !ok {
		sess := core.NewSession(id)
		sess.CreatedAt = now
		sess.UpdatedAt = now
		sess.State[key] = value
		s.sessions[id] = sess
		return nil
	}
	state := make(map[string]any, len(old.State)+1)
	for k, v := range old.State {
		state[k] = v
	}
	state[key] = value
	next := *old
	next.State = state
	next.UpdatedAt = now
	s.sessions[id] = &next
	return nil
}
