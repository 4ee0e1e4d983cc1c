package store

// SenderIndex maps a sender to the IDs of their messages, append-only and
// in insertion order. Senders are opaque identifiers: matching is exact
// and case-sensitive, with no normalization.
type SenderIndex struct {
	bySender map[string][]MessageID
}

// NewSenderIndex creates an empty sender index.
func NewSenderIndex() *SenderIndex {
	return &SenderIndex{
		bySender: make(map[string][]MessageID),
	}
}

// Insert appends id to the sender's sequence, creating it on first use.
func (idx *SenderIndex) Insert(sender string, id MessageID) {
	idx.bySender[sender] = append(idx.bySender[sender], id)
}

// Lookup returns the sender's message IDs in insertion order, or nil for
// an unknown sender. The returned slice is the index's backing storage;
// callers must not mutate it.
func (idx *SenderIndex) Lookup(sender string) []MessageID {
	return idx.bySender[sender]
}

// Senders returns the number of distinct senders seen.
func (idx *SenderIndex) Senders() int {
	return len(idx.bySender)
}
