package redblacktree

import (
	"github.com/iotaledger/hive.go/ds/stack"
)

// Iterator walks the Nodes of a Tree in ascending key order. It is lazy (Nodes are visited on demand), finite and
// restartable via Reset. Iterators are created through Tree.Iterator; the zero value is not usable.
type Iterator[K comparable, V comparable] struct {
	tree    *Tree[K, V]
	pending stack.Stack[*Node[K, V]]
}

// Iterator returns an Iterator that walks the Nodes of the Tree in ascending key order.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	iterator := &Iterator[K, V]{
		tree:    t,
		pending: stack.New[*Node[K, V]](),
	}
	iterator.descendLeft(t.root)

	return iterator
}

// HasNext returns true if there is another Node that can be requested via the Next method.
func (i *Iterator[K, V]) HasNext() bool {
	return !i.pending.IsEmpty()
}

// Next returns the next Node in ascending key order and advances the Iterator. The method panics if there is no
// next Node that can be retrieved (always use HasNext to check if another Node can be requested).
func (i *Iterator[K, V]) Next() *Node[K, V] {
	node, exists := i.pending.Pop()
	if !exists {
		panic("no next element found in iterator")
	}
	i.descendLeft(node.right)

	return node
}

// Reset restarts the iteration at the smallest key of the Tree.
func (i *Iterator[K, V]) Reset() {
	i.pending.Clear()
	i.descendLeft(i.tree.root)
}

// descendLeft pushes the left spine starting at the given Node, so that the smallest pending key ends up on top of
// the stack.
func (i *Iterator[K, V]) descendLeft(node *Node[K, V]) {
	for ; node != nil; node = node.left {
		i.pending.Push(node)
	}
}
