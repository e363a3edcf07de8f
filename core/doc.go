// Package core provides the foundational domain types and contracts used by
// the scaffold. It defines:
//
//   - Sessions (keyed state records with snapshot-isolation semantics)
//   - Reasoning steps (labeled, append-only per-session log entries)
//   - Documents (extracted text plus source metadata)
//   - Pluggable stores for session state and reasoning history, and the
//     reader contract for document-text extraction
//
// The package intentionally keeps implementation concerns (in-memory maps,
// file I/O, provider SDKs) out of scope, exposing small interfaces so custom
// backends can be substituted without touching calling code.
package core
