package core

import (
	"context"
	"time"
)

// ReasoningStep is a single labeled entry in a session's reasoning log, e.g.
// a model thought, a tool observation or a final answer. ID and CreatedAt
// are assigned by the store on append.
type ReasoningStep struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ReasoningStore keeps an append-only list of reasoning steps per session id.
// It follows the same concurrency discipline as SessionStore: atomic
// operations, defensive copies on read, ctx checked before the critical
// section.
type ReasoningStore interface {
	// Append adds a step to the session's log, auto-creating the log for an
	// unknown id, and returns the stored step with its assigned id and
	// timestamp.
	Append(ctx context.Context, sessionID string, step ReasoningStep) (ReasoningStep, error)
	// List returns a copy of the session's steps in append order. An unknown
	// session id yields an empty slice, not an error.
	List(ctx context.Context, sessionID string) ([]ReasoningStep, error)
	// Clear drops the session's log entirely and reports whether one
	// existed. Idempotent.
	Clear(ctx context.Context, sessionID string) (bool, error)
}
