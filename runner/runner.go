package runner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hupe1980/agentscaffold/core"
	"github.com/hupe1980/agentscaffold/logging"
	"github.com/hupe1980/agentscaffold/model"
	"github.com/hupe1980/agentscaffold/reasoning"
	"github.com/hupe1980/agentscaffold/session"
)

// StateKeyLastAnswer is the session state key the runner stores the most
// recent answer under.
const StateKeyLastAnswer = "last_answer"

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Instructions is the system prompt prepended to every model request.
	Instructions string
	// Session management services.
	SessionStore core.SessionStore
	// Reasoning history services.
	ReasoningStore core.ReasoningStore
	// Logging services.
	Logger logging.Logger
}

// Runner coordinates a single-step reasoning loop: prompt in, completion
// out, both recorded. Public methods are safe for concurrent use as long as
// the configured stores are (the in-memory defaults are).
type Runner struct {
	mdl            model.Model
	instructions   string
	sessionStore   core.SessionStore
	reasoningStore core.ReasoningStore
	logger         logging.Logger
}

// Result reports one completed run.
type Result struct {
	RunID  string
	Answer string
	Steps  []core.ReasoningStep
}

// New constructs a Runner with optional overrides. Any unset service is
// initialized with an in-memory implementation.
func New(mdl model.Model, optFns ...func(o *Options)) *Runner {
	opts := Options{
		SessionStore:   session.NewInMemoryStore(),
		ReasoningStore: reasoning.NewInMemoryStore(),
		Logger:         logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{
		mdl:            mdl,
		instructions:   opts.Instructions,
		sessionStore:   opts.SessionStore,
		reasoningStore: opts.ReasoningStore,
		logger:         opts.Logger,
	}
}

// SessionStore returns the configured session store.
func (r *Runner) SessionStore() core.SessionStore { return r.sessionStore }

// ReasoningStore returns the configured reasoning store.
func (r *Runner) ReasoningStore() core.ReasoningStore { return r.reasoningStore }

// Run executes one prompt/completion exchange for the given session. The
// prompt and the completion are appended to the session's reasoning log and
// the answer is stored under StateKeyLastAnswer.
func (r *Runner) Run(ctx context.Context, sessionID, prompt string) (*Result, error) {
	runID := uuid.NewString()
	r.logger.Debug("runner starting", "run_id", runID, "session_id", sessionID)

	promptStep, err := r.reasoningStore.Append(ctx, sessionID, core.ReasoningStep{
		Label:    "prompt",
		Content:  prompt,
		Metadata: map[string]any{"run_id": runID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record prompt: %w", err)
	}

	info := r.mdl.Info()
	resp, err := r.mdl.Complete(ctx, model.Request{
		Instructions: r.instructions,
		Messages:     []model.Message{{Role: "user", Text: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("model completion failed: %w", err)
	}

	answerStep, err := r.reasoningStore.Append(ctx, sessionID, core.ReasoningStep{
		Label:   "completion",
		Content: resp.Text,
		Metadata: map[string]any{
			"run_id":        runID,
			"model":         info.Name,
			"provider":      info.Provider,
			"finish_reason": resp.FinishReason,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	if err := core.SetState(ctx, r.sessionStore, sessionID, StateKeyLastAnswer, resp.Text); err != nil {
		return nil, fmt.Errorf("failed to persist answer: %w", err)
	}

	r.logger.Info("runner completed", "run_id", runID, "session_id", sessionID, "model", info.Name)

	return &Result{
		RunID:  runID,
		Answer: resp.Text,
		Steps:  []core.ReasoningStep{promptStep, answerStep},
	}, nil
}
