package store

import "iter"

// dateNode is one tree node: a date key plus the bucket of message IDs
// inserted under exactly that key, in insertion order.
type dateNode struct {
	key    string
	bucket []MessageID
	left   *dateNode
	right  *dateNode
}

// DateTree is a binary search tree keyed by the lexicographic date key.
// Messages sharing a key colocate in one node's bucket instead of being
// pushed to a subtree, so ties never deepen the tree. There is no
// rebalancing: sorted insertion order degenerates the tree to a list,
// which is an accepted property of this structure.
//
// Insert and InOrder are iterative so stack usage stays bounded
// regardless of tree height.
type DateTree struct {
	root *dateNode
	size int
}

// NewDateTree creates an empty tree.
func NewDateTree() *DateTree {
	return &DateTree{}
}

// Insert files id under key. Strictly smaller keys descend left, strictly
// greater keys descend right, and an equal key appends to the existing
// node's bucket.
func (t *DateTree) Insert(key string, id MessageID) {
	t.size++

	if t.root == nil {
		t.root = &dateNode{key: key, bucket: []MessageID{id}}
		return
	}

	node := t.root
	for {
		switch {
		case key < node.key:
			if node.left == nil {
				node.left = &dateNode{key: key, bucket: []MessageID{id}}
				return
			}
			node = node.left
		case key > node.key:
			if node.right == nil {
				node.right = &dateNode{key: key, bucket: []MessageID{id}}
				return
			}
			node = node.right
		default:
			node.bucket = append(node.bucket, id)
			return
		}
	}
}

// Len returns the number of IDs filed in the tree.
func (t *DateTree) Len() int {
	return t.size
}

// InOrder returns a lazy sequence of message IDs in ascending date-key
// order; IDs sharing a key are yielded in insertion order. Each call
// starts a fresh traversal, so the sequence is restartable. The traversal
// uses an explicit stack instead of recursion.
func (t *DateTree) InOrder() iter.Seq[MessageID] {
	return func(yield func(MessageID) bool) {
		var stack []*dateNode
		node := t.root
		for node != nil || len(stack) > 0 {
			for node != nil {
				stack = append(stack, node)
				node = node.left
			}
			node = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, id := range node.bucket {
				if !yield(id) {
					return
				}
			}
			node = node.right
		}
	}
}
