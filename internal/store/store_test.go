package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbastida/mailfind/internal/errors"
)

func TestMessageStore_CreateAssignsMonotonicIDs(t *testing.T) {
	s := NewMessageStore()

	first, err := s.Create("a@x.com", "Hi", "body", "2025-01-01")
	require.NoError(t, err)
	second, err := s.Create("b@x.com", "Yo", "body", "2025-01-02")
	require.NoError(t, err)

	assert.Equal(t, MessageID(1), first.ID)
	assert.Equal(t, MessageID(2), second.ID)
	assert.Equal(t, 2, s.Len())
}

func TestMessageStore_CreateRejectsEmptySender(t *testing.T) {
	s := NewMessageStore()

	_, err := s.Create("", "subject", "body", "2025-01-01")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptySender))
	// A failed validation must not consume an identifier.
	assert.Equal(t, MessageID(1), s.NextID())

	msg, err := s.Create("someone@x.com", "subject", "body", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, MessageID(1), msg.ID)
}

func TestMessageStore_GetRoundTrip(t *testing.T) {
	s := NewMessageStore()
	created, err := s.Create("a@x.com", "Hi", "Hi there", "2025-01-02")
	require.NoError(t, err)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMessageStore_GetUnknownID(t *testing.T) {
	s := NewMessageStore()
	_, err := s.Create("a@x.com", "Hi", "", "2025-01-01")
	require.NoError(t, err)

	tests := []struct {
		name string
		id   MessageID
	}{
		{name: "zero", id: 0},
		{name: "past the end", id: 2},
		{name: "far past the end", id: 1 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Get(tt.id)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeMessageNotFound))
		})
	}
}

func TestMessageStore_Contains(t *testing.T) {
	s := NewMessageStore()
	assert.False(t, s.Contains(1))

	_, err := s.Create("a@x.com", "", "", "2025-01-01")
	require.NoError(t, err)

	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(2))
}

func TestMessage_IndexText(t *testing.T) {
	m := &Message{Subject: "Hi", Body: "there"}
	assert.Equal(t, "Hi there", m.IndexText())

	// Empty subject and body still join with the separator.
	empty := &Message{}
	assert.Equal(t, " ", empty.IndexText())
}
