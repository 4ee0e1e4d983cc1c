// Package store provides the in-memory index structures backing mailfind:
// the message store, the date-ordered tree, the sender index, and the
// keyword term index. Everything lives for the process duration; there is
// no persistence layer.
package store

import "fmt"

// MessageID identifies a message within one engine instance.
// IDs are assigned monotonically starting at 1 and never reused.
type MessageID = uint32

// Message is one indexed mail message. Messages are immutable once created
// and owned exclusively by the MessageStore; the index structures reference
// them by ID only.
type Message struct {
	ID      MessageID
	Sender  string
	Subject string
	Body    string
	// DateKey is an opaque, lexicographically sortable date string
	// (e.g. "2025-01-02"). It is never parsed as a calendar date.
	DateKey string
}

// IndexText returns the text a message contributes to the term index.
func (m *Message) IndexText() string {
	return m.Subject + " " + m.Body
}

// String returns a compact one-line representation for logs.
func (m *Message) String() string {
	return fmt.Sprintf("message{id=%d sender=%q date=%q}", m.ID, m.Sender, m.DateKey)
}
