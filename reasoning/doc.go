// Package reasoning contains concrete core.ReasoningStore implementations.
// The step type and the store interface reside in the core package; depend on
// core.ReasoningStore in your code and select an implementation (like the
// in-memory store below) at wiring time.
package reasoning
