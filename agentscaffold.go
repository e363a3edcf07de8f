// Package agentscaffold provides a small façade over the scaffold's service
// abstractions (session state, reasoning history, document reading and
// logging) for learning and prototyping agent frameworks. Most applications
// interact with this package by:
//  1. Creating a Scaffold via New() (optionally overriding default in-memory services)
//  2. Reading documents through ReadDocument and driving the stores directly,
//     or handing the stores to a runner.Runner
//
// All defaults are safe for local development and testing; production
// deployments typically supply durable store implementations and a
// structured logger.
package agentscaffold

import (
	"context"

	"github.com/hupe1980/agentscaffold/core"
	"github.com/hupe1980/agentscaffold/document"
	"github.com/hupe1980/agentscaffold/logging"
	"github.com/hupe1980/agentscaffold/reasoning"
	"github.com/hupe1980/agentscaffold/session"
)

// Options configures the Scaffold instance.
type Options struct {
	// Stores (defaults to in-memory implementations if not provided)
	SessionStore   core.SessionStore
	ReasoningStore core.ReasoningStore

	// Readers dispatches document extraction by file extension (defaults to
	// document.DefaultRegistry()).
	Readers *document.Registry

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Scaffold is the high-level façade aggregating the underlying services.
type Scaffold struct {
	sessionStore   core.SessionStore
	reasoningStore core.ReasoningStore
	readers        *document.Registry
	logger         logging.Logger
}

// New creates a new Scaffold instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Scaffold {
	opts := Options{
		SessionStore:   session.NewInMemoryStore(),
		ReasoningStore: reasoning.NewInMemoryStore(),
		Readers:        document.DefaultRegistry(),
		Logger:         logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Scaffold{
		sessionStore:   opts.SessionStore,
		reasoningStore: opts.ReasoningStore,
		readers:        opts.Readers,
		logger:         opts.Logger,
	}
}

// SessionStore returns the configured session store.
func (s *Scaffold) SessionStore() core.SessionStore { return s.sessionStore }

// ReasoningStore returns the configured reasoning store.
func (s *Scaffold) ReasoningStore() core.ReasoningStore { return s.reasoningStore }

// Readers returns the configured document reader registry.
func (s *Scaffold) Readers() *document.Registry { return s.readers }

// Logger returns the configured logger.
func (s *Scaffold) Logger() logging.Logger { return s.logger }

// ReadDocument extracts the text of the file at path using the reader
// registered for its extension.
func (s *Scaffold) ReadDocument(ctx context.Context, path string) (*core.Document, error) {
	doc, err := s.readers.Read(ctx, path)
	if err != nil {
		s.logger.Warn("document read failed", "path", path, "error", err)
		return nil, err
	}
	s.logger.Debug("document read", "path", path, "size_bytes", doc.SizeBytes)
	return doc, nil
}
