package store

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// TermIndex is the inverted keyword index: normalized token -> the set of
// message IDs whose subject or body contains that token. Postings are
// roaring bitmaps, so membership is boolean (no frequency, no positions)
// and a message contributes a token at most once however often it repeats.
type TermIndex struct {
	postings map[string]*roaring.Bitmap
}

// NewTermIndex creates an empty term index.
func NewTermIndex() *TermIndex {
	return &TermIndex{
		postings: make(map[string]*roaring.Bitmap),
	}
}

// Insert adds id to the posting set of every token. Duplicate tokens in
// the input are harmless: bitmap insertion is idempotent.
func (idx *TermIndex) Insert(id MessageID, tokens []string) {
	for _, token := range tokens {
		set, ok := idx.postings[token]
		if !ok {
			set = roaring.New()
			idx.postings[token] = set
		}
		set.Add(id)
	}
}

// Lookup returns a lazy sequence over the IDs indexed under token, in
// ascending ID order (which is ingestion order, since IDs are monotonic).
// The query token is normalized with the same lowercasing rule as
// ingestion. Matching is exact token equality only. An unknown token
// yields an empty sequence.
func (idx *TermIndex) Lookup(token string) iter.Seq[MessageID] {
	set := idx.postings[NormalizeToken(token)]
	return func(yield func(MessageID) bool) {
		if set == nil {
			return
		}
		it := set.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Contains reports whether id is indexed under token (normalized first).
func (idx *TermIndex) Contains(token string, id MessageID) bool {
	set := idx.postings[NormalizeToken(token)]
	return set != nil && set.Contains(id)
}

// Terms returns the number of distinct tokens indexed.
func (idx *TermIndex) Terms() int {
	return len(idx.postings)
}
