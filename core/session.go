package core

import (
	"context"
	"fmt"
	"time"
)

// Session is a keyed record of heterogeneous key/value state plus caller
// supplied metadata tags. Instances handed out by a SessionStore are
// snapshots: mutating one never alters what the store holds. The store owns
// all synchronization; Session itself carries no lock.
//
// Contract:
//   - ID is chosen by the caller and never generated by the store. The empty
//     string is a valid id.
//   - CreatedAt is set once and never mutated by SetValue/Save afterwards
//   - UpdatedAt is stamped by the store on every successful mutation
//   - WorkflowID and UserID are opaque tags the store never interprets
type Session struct {
	ID         string         `json:"id"`
	State      map[string]any `json:"state"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	WorkflowID string         `json:"workflow_id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
}

// NewSession creates a session with the given id, an empty state mapping and
// both timestamps set to now.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, State: map[string]any{}, CreatedAt: now, UpdatedAt: now}
}

// Clone returns a deep copy of the session safe for independent mutation.
// The state mapping is cloned too; a shallow copy would alias the stored map.
func (s *Session) Clone() *Session {
	clone := &Session{
		ID:         s.ID,
		State:      make(map[string]any, len(s.State)),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		WorkflowID: s.WorkflowID,
		UserID:     s.UserID,
	}
	for k, v := range s.State {
		clone.State[k] = v
	}
	return clone
}

// SessionStore persists session records and their key/value state. All
// operations are atomic and safe for arbitrary concurrent use; operations
// against the same id are linearizable. Implementations check ctx before
// entering their critical section and propagate ctx.Err() on cancellation.
type SessionStore interface {
	// Get returns a snapshot of the session or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*Session, error)
	// Save inserts or fully replaces the session with sess.ID. The store
	// stamps UpdatedAt itself; the caller's value is ignored. CreatedAt is
	// stored exactly as supplied. A nil session yields ErrInvalidArgument.
	Save(ctx context.Context, sess *Session) error
	// Delete removes the session if present and reports whether a removal
	// occurred. Idempotent.
	Delete(ctx context.Context, id string) (bool, error)
	// ListIDs returns a materialized snapshot of all stored ids in
	// unspecified order.
	ListIDs(ctx context.Context) ([]string, error)
	// GetValue looks up a single state key. Absent session or key is
	// (nil, false, nil), not an error. A stored nil is (nil, true, nil).
	GetValue(ctx context.Context, id, key string) (any, bool, error)
	// SetValue atomically sets one state key, creating the session with a
	// fresh CreatedAt if it does not exist yet.
	SetValue(ctx context.Context, id, key string, value any) error
}

// GetState looks up a state key and asserts the stored value to T. Absent
// session or key returns the zero value of T with ok=false. A value of a
// different dynamic type returns ErrTypeMismatch rather than silently
// coercing. Free function because Go methods cannot take type parameters.
func GetState[T any](ctx context.Context, store SessionStore, id, key string) (T, bool, error) {
	var zero T
	v, ok, err := store.GetValue(ctx, id, key)
	if err != nil || !ok {
		return zero, false, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, true, fmt.Errorf("state key %q: %w: stored %T, want %T", key, ErrTypeMismatch, v, zero)
	}
	return t, true, nil
}

// SetState stores a typed value under a state key, auto-vivifying the
// session. Typed counterpart of SessionStore.SetValue.
func SetState[T any](ctx context.Context, store SessionStore, id, key string, value T) error {
	return store.SetValue(ctx, id, key, value)
}
