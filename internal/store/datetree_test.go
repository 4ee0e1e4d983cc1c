package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *DateTree) []MessageID {
	var ids []MessageID
	for id := range t.InOrder() {
		ids = append(ids, id)
	}
	return ids
}

func TestDateTree_InOrderSortsByKey(t *testing.T) {
	tree := NewDateTree()
	tree.Insert("2025-01-02", 1)
	tree.Insert("2025-01-01", 2)
	tree.Insert("2025-01-03", 3)

	assert.Equal(t, []MessageID{2, 1, 3}, collect(tree))
}

func TestDateTree_EqualKeysShareABucket(t *testing.T) {
	// Given: three messages on the same date, one earlier, one later
	tree := NewDateTree()
	tree.Insert("2025-06-15", 1)
	tree.Insert("2025-06-15", 2)
	tree.Insert("2025-01-01", 3)
	tree.Insert("2025-06-15", 4)
	tree.Insert("2025-12-31", 5)

	// Then: bucket members stay in insertion order between neighbors
	assert.Equal(t, []MessageID{3, 1, 2, 4, 5}, collect(tree))
	assert.Equal(t, 5, tree.Len())
}

func TestDateTree_EmptyTree(t *testing.T) {
	tree := NewDateTree()
	assert.Nil(t, collect(tree))
	assert.Equal(t, 0, tree.Len())
}

func TestDateTree_TraversalIsRestartable(t *testing.T) {
	tree := NewDateTree()
	tree.Insert("b", 1)
	tree.Insert("a", 2)
	tree.Insert("c", 3)

	seq := tree.InOrder()
	first := collect(tree)
	var second []MessageID
	for id := range seq {
		second = append(second, id)
	}
	assert.Equal(t, first, second)
}

func TestDateTree_EarlyBreakStopsTraversal(t *testing.T) {
	tree := NewDateTree()
	for i := MessageID(1); i <= 10; i++ {
		tree.Insert(fmt.Sprintf("2025-01-%02d", i), i)
	}

	var seen []MessageID
	for id := range tree.InOrder() {
		seen = append(seen, id)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []MessageID{1, 2, 3}, seen)
}

func TestDateTree_SortedInsertionDegenerates(t *testing.T) {
	// Adversarial sorted input degenerates the tree to a list. The
	// iterative insert and traversal must stay flat on the call stack,
	// so a deep tree must not panic.
	tree := NewDateTree()
	const n = 50_000
	for i := 0; i < n; i++ {
		tree.Insert(fmt.Sprintf("%08d", i), MessageID(i+1))
	}

	require.Equal(t, n, tree.Len())

	count := 0
	last := MessageID(0)
	for id := range tree.InOrder() {
		count++
		require.Equal(t, last+1, id)
		last = id
	}
	assert.Equal(t, n, count)
}

func TestDateTree_LexicographicNotNumeric(t *testing.T) {
	// Keys are opaque strings: "10" sorts before "9".
	tree := NewDateTree()
	tree.Insert("9", 1)
	tree.Insert("10", 2)

	assert.Equal(t, []MessageID{2, 1}, collect(tree))
}
