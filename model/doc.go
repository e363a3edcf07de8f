// Package model defines the provider-agnostic abstractions for interacting
// with language models inside the scaffold.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so higher layers (runner, applications) remain decoupled from
// vendor SDKs. Generation is non-streaming; streaming is the concern of the
// host framework this scaffold teaches toward.
package model
