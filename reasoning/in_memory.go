package reasoning

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/agentscaffold/core"
)

// InMemoryStore is a process-local core.ReasoningStore keeping an append-only
// step list per session id behind an RWMutex. Steps are copied on read and
// on append so callers never share slices or metadata maps with the store.
type InMemoryStore struct {
	mu    sync.RWMutex
	steps map[string][]core.ReasoningStep // sessionID -> ordered steps
}

// NewInMemoryStore returns an empty in-memory reasoning store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{steps: make(map[string][]core.ReasoningStep)}
}

// Append adds a step to the session's log, creating the log for an unknown
// id. The store assigns the id and timestamp; caller-supplied values for
// those fields are ignored.
func (s *InMemoryStore) Append(ctx context.Context, sessionID string, step core.ReasoningStep) (core.ReasoningStep, error) {
	if err := ctx.Err(); err != nil {
		return core.ReasoningStep{}, err
	}
	step.ID = uuid.NewString()
	step.CreatedAt = time.Now()
	step.Metadata = cloneMetadata(step.Metadata)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps[sessionID] = append(s.steps[sessionID], step)
	return cloneStep(step), nil
}

// List returns a copy of the session's steps in append order. An unknown
// session id yields an empty slice.
func (s *InMemoryStore) List(ctx context.Context, sessionID string) ([]core.ReasoningStep, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.steps[sessionID]
	out := make([]core.ReasoningStep, len(stored))
	for i, st := range stored {
		out[i] = cloneStep(st)
	}
	return out, nil
}

// Clear drops the session's log and reports whether one existed.
func (s *InMemoryStore) Clear(ctx context.Context, sessionID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.steps[sessionID]; !ok {
		return false, nil
	}
	delete(s.steps, sessionID)
	return true, nil
}

func cloneStep(st core.ReasoningStep) core.ReasoningStep {
	st.Metadata = cloneMetadata(st.Metadata)
	return st
}

func cloneMetadata(md map[string]any) map[string]any {
	if md == nil {
		return nil
	}
	cp := make(map[string]any, len(md))
	for k, v := range md {
		cp[k] = v
	}
	return cp
}
