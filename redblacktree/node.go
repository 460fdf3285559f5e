package redblacktree

import (
	"fmt"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"
)

// Node represents a single vertex of the Tree, holding a key together with the ordered bucket of values that were
// added under it. Missing children are represented by nil pointers that behave like black sentinels, so all of the
// color related methods can be called on a nil receiver.
type Node[K comparable, V comparable] struct {
	key    K
	values []V
	color  Color
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
}

// Key returns the key that is used to identify the Node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Values returns a copy of the values that are stored under the Node's key, in insertion order.
func (n *Node[K, V]) Values() []V {
	return lo.CopySlice(n.values)
}

// Color returns the color of the Node (a missing Node reports ColorNil).
func (n *Node[K, V]) Color() Color {
	if n == nil {
		return ColorNil
	}

	return n.color
}

// Parent returns the parent of the Node (or nil if the Node is the root of the Tree).
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Left returns the left child of the Node (or nil if it is missing).
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child of the Node (or nil if it is missing).
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Child returns the child of the Node on the given side (or nil if it is missing).
func (n *Node[K, V]) Child(direction Direction) *Node[K, V] {
	if direction == Left {
		return n.left
	}

	return n.right
}

// IsBlack returns true if the Node is black; missing children count as black sentinels.
func (n *Node[K, V]) IsBlack() bool {
	return n == nil || n.color == ColorBlack
}

// IsRed returns true if the Node is red.
func (n *Node[K, V]) IsRed() bool {
	return n != nil && n.color == ColorRed
}

// IsNil returns true if the Node marks a missing child.
func (n *Node[K, V]) IsNil() bool {
	return n == nil
}

// ChildrenCount returns the number of real (non-sentinel) children of the Node.
func (n *Node[K, V]) ChildrenCount() (count int) {
	if n == nil {
		return 0
	}

	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}

	return count
}

// HasChildren returns true if the Node has at least one real child.
func (n *Node[K, V]) HasChildren() bool {
	return n.ChildrenCount() != 0
}

// GrandParent returns the parent of the parent Node (or nil if it does not exist).
func (n *Node[K, V]) GrandParent() *Node[K, V] {
	if n != nil && n.parent != nil {
		return n.parent.parent
	}

	return nil
}

// Uncle returns the sibling of the parent Node (or nil if it does not exist).
func (n *Node[K, V]) Uncle() *Node[K, V] {
	if n == nil || n.parent == nil || n.parent.parent == nil {
		return nil
	}

	uncle, _ := n.parent.Sibling()

	return uncle
}

// Sibling returns the alternative Node sharing the same parent, together with the side that the sibling sits on.
func (n *Node[K, V]) Sibling() (sibling *Node[K, V], direction Direction) {
	if n == nil || n.parent == nil {
		return nil, Left
	}

	if n == n.parent.left {
		return n.parent.right, Right
	}

	return n.parent.left, Left
}

// Min returns the smallest of all descendants of the Node.
func (n *Node[K, V]) Min() (node *Node[K, V]) {
	if node = n; node == nil {
		return
	}

	for node.left != nil {
		node = node.left
	}

	return
}

// Max returns the largest of all descendants of the Node.
func (n *Node[K, V]) Max() (node *Node[K, V]) {
	if node = n; node == nil {
		return
	}

	for node.right != nil {
		node = node.right
	}

	return
}

// Equal reports whether two Nodes occupy the same logical position: both missing, or carrying the same key and
// color under parents that are themselves both missing or equal by key and color. It compares positions, not
// whole subtrees.
func (n *Node[K, V]) Equal(other *Node[K, V]) bool {
	if n == nil || other == nil {
		return n == nil && other == nil
	}

	if n.key != other.key || n.color != other.color {
		return false
	}

	if n.parent == nil || other.parent == nil {
		return n.parent == nil && other.parent == nil
	}

	return n.parent.key == other.parent.key && n.parent.color == other.parent.color
}

// String returns a human readable version of the Node.
func (n *Node[K, V]) String() string {
	if n == nil {
		return "Node(NIL)"
	}

	return stringify.Struct("Node",
		stringify.NewStructField("key", fmt.Sprintf("%v", n.key)),
		stringify.NewStructField("values", fmt.Sprintf("%v", n.values)),
		stringify.NewStructField("color", n.color.String()),
		stringify.NewStructField("left", n.left),
		stringify.NewStructField("right", n.right),
	)
}
