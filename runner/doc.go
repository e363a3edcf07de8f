// Package runner hosts the minimal reasoning loop tying the scaffold's parts
// together: it sends a prompt to a model, records the exchange as labeled
// reasoning steps and persists the final answer into session state. Larger
// frameworks replace this with a full orchestration engine; the runner exists
// so every store contract is exercised by a realistic consumer.
package runner
