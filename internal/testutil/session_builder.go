package testutil

import (
	"github.com/hupe1980/agentscaffold/core"
)

// SessionBuilder helps construct sessions with fluent chaining for tests.
// Example:
//
//	sess := NewSessionBuilder("sess-1").State("k", "v").User("u-1").Build()
type SessionBuilder struct {
	id         string
	state      map[string]any
	workflowID string
	userID     string
}

// NewSessionBuilder creates a new builder for a session with the given id.
// Use chainable methods (State, Workflow, User) then call Build.
func NewSessionBuilder(id string) *SessionBuilder {
	return &SessionBuilder{id: id, state: map[string]any{}}
}

// State sets or overwrites a state key/value pair on the resulting session (chainable).
func (b *SessionBuilder) State(key string, val any) *SessionBuilder {
	b.state[key] = val
	return b
}

// Workflow sets the workflow tag (chainable).
func (b *SessionBuilder) Workflow(id string) *SessionBuilder {
	b.workflowID = id
	return b
}

// User sets the user tag (chainable).
func (b *SessionBuilder) User(id string) *SessionBuilder {
	b.userID = id
	return b
}

// Build returns a *core.Session with pre-populated state and tags.
func (b *SessionBuilder) Build() *core.Session {
	s := core.NewSession(b.id)
	for k, v := range b.state {
		s.State[k] = v
	}
	s.WorkflowID = b.workflowID
	s.UserID = b.userID
	return s
}
