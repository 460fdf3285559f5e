package redblacktree

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// Tree is an ordered associative container backed by a self-balancing binary search tree (a red-black tree): it
// maps keys to ordered buckets of values and guarantees logarithmic search, insertion and deletion regardless of
// the order in which the keys arrive.
//
// A Tree is not safe for concurrent use - callers that share one across goroutines have to serialize their
// accesses externally.
type Tree[K comparable, V comparable] struct {
	root       *Node[K, V]
	comparator Comparator[K]
	size       int
}

// New creates a Tree that uses the default NaturalComparator, which restricts the keys to integer types. Use
// NewWith to inject a Comparator for any other kind of key.
func New[K constraints.Integer, V comparable]() *Tree[K, V] {
	return NewWith[K, V](NaturalComparator[K]{})
}

// NewWith creates a Tree that uses the given Comparator to order, compare and validate its keys.
func NewWith[K comparable, V comparable](comparator Comparator[K]) *Tree[K, V] {
	return &Tree[K, V]{
		comparator: comparator,
	}
}

// Add inserts the given value under the given key, appending it to the bucket of an already known key. It returns
// an error wrapping ErrInvalidKey if the comparator's validator rejects the key; the Tree is left untouched in
// that case.
func (t *Tree[K, V]) Add(key K, value V) error {
	if !t.comparator.Validate(key) {
		return ierrors.Wrapf(ErrInvalidKey, "cannot add key %v", key)
	}

	if t.root == nil {
		t.root = &Node[K, V]{key: key, values: []V{value}, color: ColorBlack}
		t.size++

		return nil
	}

	node, parent, direction := t.findSlot(key)
	if node != nil {
		node.values = append(node.values, value)

		return nil
	}

	node = &Node[K, V]{key: key, values: []V{value}, color: ColorRed, parent: parent}
	if direction == Left {
		parent.left = node
	} else {
		parent.right = node
	}
	t.balanceAfterInsert(node)
	t.size++

	return nil
}

// Remove removes the Node belonging to the given key together with all of its values. It returns an error
// wrapping ErrInvalidKey if the validator rejects the key and an error wrapping ErrKeyNotFound if the key does
// not exist - removals are never silent.
func (t *Tree[K, V]) Remove(key K) error {
	if !t.comparator.Validate(key) {
		return ierrors.Wrapf(ErrInvalidKey, "cannot remove key %v", key)
	}

	node := t.Node(key)
	if node == nil {
		return ierrors.Wrapf(ErrKeyNotFound, "cannot remove key %v", key)
	}
	t.RemoveNode(node)

	return nil
}

// RemoveValue removes a single value from the bucket of the given key; removing the last value removes the Node
// itself. A value that is not part of an existing bucket is ignored. The returned errors match the ones of
// Remove.
func (t *Tree[K, V]) RemoveValue(key K, value V) error {
	if !t.comparator.Validate(key) {
		return ierrors.Wrapf(ErrInvalidKey, "cannot remove value of key %v", key)
	}

	node := t.Node(key)
	if node == nil {
		return ierrors.Wrapf(ErrKeyNotFound, "cannot remove value of key %v", key)
	}

	for i, existingValue := range node.values {
		if existingValue == value {
			node.values = append(node.values[:i], node.values[i+1:]...)

			break
		}
	}
	if len(node.values) == 0 {
		t.RemoveNode(node)
	}

	return nil
}

// RemoveNode removes the given Node from the Tree (which can i.e. be useful for modifying the Tree while
// iterating). A Node with two children is spliced with its in-order successor - the successor's key and bucket
// move into the Node and the successor is removed structurally.
func (t *Tree[K, V]) RemoveNode(node *Node[K, V]) {
	if node.ChildrenCount() == 2 {
		successor := node.right.Min()
		node.key = successor.key
		node.values = successor.values
		node = successor
	}

	t.removeWithAtMostOneChild(node)
	t.size--
}

// UpdateKey moves a single value from one key to another. It behaves atomically in its effect: the new key is
// validated before anything is removed, so a rejected new key leaves the Tree untouched.
func (t *Tree[K, V]) UpdateKey(key K, value V, newKey K) error {
	if !t.comparator.Validate(newKey) {
		return ierrors.Wrapf(ErrInvalidKey, "cannot move value to key %v", newKey)
	}

	if err := t.RemoveValue(key, value); err != nil {
		return err
	}

	return t.Add(newKey, value)
}

// Contains returns true if a Node with the given key exists.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Node(key) != nil
}

// Get returns a copy of the bucket of values stored under the given key (with found being false if the key does
// not exist).
func (t *Tree[K, V]) Get(key K) (values []V, found bool) {
	node := t.Node(key)
	if node == nil {
		return nil, false
	}

	return node.Values(), true
}

// Node returns the Node that belongs to the given key (or nil if it doesn't exist). The equality check takes
// precedence over the ordering at every step of the descent, so comparators whose equality is stricter than their
// ordering still match.
func (t *Tree[K, V]) Node(key K) *Node[K, V] {
	for node := t.root; node != nil; {
		switch {
		case t.comparator.Equal(key, node.key):
			return node
		case t.comparator.Less(key, node.key):
			node = node.left
		default:
			node = node.right
		}
	}

	return nil
}

// Min returns the Node with the smallest key (or nil if the Tree is empty).
func (t *Tree[K, V]) Min() *Node[K, V] {
	return t.root.Min()
}

// Max returns the Node with the largest key (or nil if the Tree is empty).
func (t *Tree[K, V]) Max() *Node[K, V] {
	return t.root.Max()
}

// ForEach iterates through the Nodes of the Tree in ascending key order and calls the consumer function for each
// one. The iteration aborts as soon as the consumer returns false.
func (t *Tree[K, V]) ForEach(consumer func(node *Node[K, V]) bool) {
	for iterator := t.Iterator(); iterator.HasNext(); {
		if !consumer(iterator.Next()) {
			break
		}
	}
}

// Keys returns an ordered list of the keys that are stored in the Tree.
func (t *Tree[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, t.size)
	t.ForEach(func(node *Node[K, V]) bool {
		keys = append(keys, node.key)

		return true
	})

	return keys
}

// Values returns the value buckets of all Nodes flattened into a single list, ordered by key.
func (t *Tree[K, V]) Values() []V {
	buckets := make([][]V, 0, t.size)
	t.ForEach(func(node *Node[K, V]) bool {
		buckets = append(buckets, node.values)

		return true
	})

	return lo.Flatten(buckets)
}

// Size returns the number of distinct keys in the Tree (multiple values in one bucket do not count separately).
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Empty returns true if the Tree has no Nodes.
func (t *Tree[K, V]) Empty() bool {
	return t.size == 0
}

// Clear removes all Nodes from the Tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// String returns a human readable version of the Tree.
func (t *Tree[K, V]) String() string {
	return stringify.Struct("Tree",
		stringify.NewStructField("size", t.size),
		stringify.NewStructField("root", t.root),
	)
}

// findSlot descends towards the given key and either returns the matching Node or the parent together with the
// side that a new child would have to be attached to.
func (t *Tree[K, V]) findSlot(key K) (node, parent *Node[K, V], direction Direction) {
	for currentNode := t.root; currentNode != nil; {
		switch {
		case t.comparator.Equal(key, currentNode.key):
			return currentNode, nil, Left
		case t.comparator.Less(key, currentNode.key):
			if currentNode.left == nil {
				return nil, currentNode, Left
			}
			currentNode = currentNode.left
		default:
			if currentNode.right == nil {
				return nil, currentNode, Right
			}
			currentNode = currentNode.right
		}
	}

	return nil, nil, Left
}
