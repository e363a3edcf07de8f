package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ Model = (*MockModel)(nil)

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("test-model")
	m.AddResponse("hello", "hi there")

	resp, err := m.Complete(context.Background(), Request{
		Messages: []Message{{Role: "user", Text: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestMockModel_FallbackEcho(t *testing.T) {
	m := NewMockModel("test-model")

	resp, err := m.Complete(context.Background(), Request{
		Messages: []Message{{Role: "user", Text: "unseen prompt"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: unseen prompt", resp.Text)
}

func TestMockModel_NoMessages(t *testing.T) {
	m := NewMockModel("test-model")

	_, err := m.Complete(context.Background(), Request{})
	require.Error(t, err)
}

func TestMockModel_Cancelled(t *testing.T) {
	m := NewMockModel("test-model")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, Request{Messages: []Message{{Role: "user", Text: "hello"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockModel_Info(t *testing.T) {
	m := NewMockModel("test-model")
	info := m.Info()
	assert.Equal(t, "test-model", info.Name)
	assert.Equal(t, "mock", info.Provider)
}
