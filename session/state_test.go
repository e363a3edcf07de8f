package session

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/agentscaffold/core"
)

func TestGetState_SetThenGet(t *testing.T) {
	svc := NewInMemoryStore()
	ctx := context.Background()
	if err := core.SetState(ctx, svc, "s1", "name", "ada"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := core.GetState[string](ctx, svc, "s1", "name")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != "ada" {
		t.Fatalf("expected (ada, true), got (%q, %v)", got, ok)
	}
}

func TestGetState_AbsentSessionAndKey(t *testing.T) {
	svc := NewInMemoryStore()
	ctx := context.Background()
	got, ok, err := core.GetState[int](ctx, svc, "nope", "k")
	if err != nil || ok || got != 0 {
		t.Fatalf("absent session: expected (0, false, nil), got (%v, %v, %v)", got, ok, err)
	}
	if err := core.SetState(ctx, svc, "s1", "other", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err = core.GetState[int](ctx, svc, "s1", "k")
	if err != nil || ok || got != 0 {
		t.Fatalf("absent key: expected (0, false, nil), got (%v, %v, %v)", got, ok, err)
	}
}

func TestGetState_TypeMismatch(t *testing.T) {
	svc := NewInMemoryStore()
	ctx := context.Background()
	if err := core.SetState(ctx, svc, "s1", "count", "not-a-number"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := core.GetState[int](ctx, svc, "s1", "count")
	if !errors.Is(err, core.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if !ok {
		t.Fatal("mismatch must still report the key as present")
	}
	if got != 0 {
		t.Fatalf("expected zero value on mismatch, got %v", got)
	}
}

func TestGetState_StructuredValues(t *testing.T) {
	svc := NewInMemoryStore()
	ctx := context.Background()
	if err := core.SetState(ctx, svc, "s1", "tags", []string{"a", "b"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := core.SetState(ctx, svc, "s1", "opts", map[string]int{"retries": 3}); err != nil {
		t.Fatalf("set: %v", err)
	}
	tags, ok, err := core.GetState[[]string](ctx, svc, "s1", "tags")
	if err != nil || !ok || len(tags) != 2 {
		t.Fatalf("tags: got (%v, %v, %v)", tags, ok, err)
	}
	opts, ok, err := core.GetState[map[string]int](ctx, svc, "s1", "opts")
	if err != nil || !ok || opts["retries"] != 3 {
		t.Fatalf("opts: got (%v, %v, %v)", opts, ok, err)
	}
}
