// Package testutil provides shared helpers for building test fixtures.
package testutil
