package redblacktree

import "github.com/iotaledger/hive.go/ierrors"

// Validate checks the red-black invariants of the Tree: a black root, no red Node with a red child, a uniform
// black-height on every path from the root to a sentinel, coherent parent links and ascending key order. It
// exists for tests and self-checks - a correct Tree never fails it.
func (t *Tree[K, V]) Validate() error {
	if t.root.IsRed() {
		return ierrors.New("root is red")
	}
	if t.root != nil && t.root.parent != nil {
		return ierrors.New("root has a parent")
	}

	if _, err := t.validateSubtree(t.root); err != nil {
		return err
	}

	nodeCount := 0
	var previousNode *Node[K, V]
	for iterator := t.Iterator(); iterator.HasNext(); {
		node := iterator.Next()
		if previousNode != nil && t.comparator.Less(node.key, previousNode.key) {
			return ierrors.Errorf("key %v is out of order", node.key)
		}
		previousNode = node
		nodeCount++
	}
	if nodeCount != t.size {
		return ierrors.Errorf("tracked size %d does not match the %d reachable nodes", t.size, nodeCount)
	}

	return nil
}

// validateSubtree recomputes the black-height of the subtree bottom-up while checking the color and parent-link
// invariants on the way.
func (t *Tree[K, V]) validateSubtree(node *Node[K, V]) (blackHeight int, err error) {
	if node == nil {
		return 1, nil
	}

	if node.color != ColorRed && node.color != ColorBlack {
		return 0, ierrors.Errorf("node %v carries the sentinel color", node.key)
	}
	if node.IsRed() && (node.left.IsRed() || node.right.IsRed()) {
		return 0, ierrors.Errorf("red node %v has a red child", node.key)
	}
	if (node.left != nil && node.left.parent != node) || (node.right != nil && node.right.parent != node) {
		return 0, ierrors.Errorf("node %v has a child with a broken parent link", node.key)
	}
	if len(node.values) == 0 {
		return 0, ierrors.Errorf("node %v has an empty value bucket", node.key)
	}

	leftBlackHeight, err := t.validateSubtree(node.left)
	if err != nil {
		return 0, err
	}
	rightBlackHeight, err := t.validateSubtree(node.right)
	if err != nil {
		return 0, err
	}
	if leftBlackHeight != rightBlackHeight {
		return 0, ierrors.Errorf("node %v has mismatching black-heights %d and %d", node.key, leftBlackHeight, rightBlackHeight)
	}

	if node.IsBlack() {
		return leftBlackHeight + 1, nil
	}

	return leftBlackHeight, nil
}
