package redblacktree

// rotate pivots parent into the structural position of grandparent: the subtree that sits between the two nodes
// migrates to the vacated side of grandparent and the great-grandparent's child pointer (or the root of the Tree,
// if grandparent had no parent) is re-targeted at parent. When recolor is set, the insertion-case coloring is
// applied on top (parent black, node and grandparent red); callers pass a nil node for purely structural
// rotations. This single primitive underlies every rotation of both balancers.
func (t *Tree[K, V]) rotate(direction Direction, node, parent, grandparent *Node[K, V], recolor bool) {
	t.replaceChild(grandparent, parent)

	var migrated *Node[K, V]
	if direction == Left {
		migrated = parent.left
		parent.left = grandparent
		grandparent.right = migrated
	} else {
		migrated = parent.right
		parent.right = grandparent
		grandparent.left = migrated
	}
	grandparent.parent = parent
	if migrated != nil {
		migrated.parent = grandparent
	}

	if recolor {
		parent.color = ColorBlack
		node.color = ColorRed
		grandparent.color = ColorRed
	}
}

// replaceChild makes newChild take over the structural position of oldChild, updating the root of the Tree if
// oldChild had no parent. Sides are decided by pointer identity, never by key comparisons, so the helper stays
// correct during splices. The child links of the two nodes are left to the caller.
func (t *Tree[K, V]) replaceChild(oldChild, newChild *Node[K, V]) {
	if newChild != nil {
		newChild.parent = oldChild.parent
	}

	if oldChild.parent == nil {
		t.root = newChild

		return
	}

	if oldChild == oldChild.parent.left {
		oldChild.parent.left = newChild
	} else {
		oldChild.parent.right = newChild
	}
}
