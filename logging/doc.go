// Package logging provides a minimal logging interface and adapters for the
// scaffold. The stores never log; the runner and façade accept a Logger so
// applications can observe orchestration without coupling the library to a
// specific logging framework.
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
package logging
