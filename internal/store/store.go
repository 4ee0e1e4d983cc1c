package store

import (
	"strconv"

	"github.com/mbastida/mailfind/internal/errors"
)

// MessageStore owns every message and is the single source of truth for
// message content. IDs are dense and monotonic from 1, so the store is
// backed by a slice indexed by ID-1 rather than a map.
//
// The store is not safe for concurrent use; the engine serializes access.
type MessageStore struct {
	messages []*Message
}

// NewMessageStore creates an empty message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

// Create validates the sender, assigns the next ID, and stores a new
// immutable message. A failed validation does not consume an ID.
func (s *MessageStore) Create(sender, subject, body, dateKey string) (*Message, error) {
	if sender == "" {
		return nil, errors.New(errors.ErrCodeEmptySender, "message sender must not be empty", nil)
	}

	m := &Message{
		ID:      MessageID(len(s.messages) + 1),
		Sender:  sender,
		Subject: subject,
		Body:    body,
		DateKey: dateKey,
	}
	s.messages = append(s.messages, m)
	return m, nil
}

// Get returns the message with the given ID.
func (s *MessageStore) Get(id MessageID) (*Message, error) {
	if id == 0 || int(id) > len(s.messages) {
		return nil, errors.New(errors.ErrCodeMessageNotFound, "no message with that ID", nil).
			WithDetail("id", strconv.FormatUint(uint64(id), 10))
	}
	return s.messages[id-1], nil
}

// Contains reports whether the given ID has been assigned.
func (s *MessageStore) Contains(id MessageID) bool {
	return id >= 1 && int(id) <= len(s.messages)
}

// Len returns the number of stored messages.
func (s *MessageStore) Len() int {
	return len(s.messages)
}

// NextID returns the ID the next Create call will assign.
func (s *MessageStore) NextID() MessageID {
	return MessageID(len(s.messages) + 1)
}
