package redblacktree

import "github.com/iotaledger/hive.go/lo"

// balanceAfterInsert restores the red-black invariants after a new red leaf was attached. Red-red violations are
// resolved bottom-up: a red uncle recolors the neighborhood and pushes the violation to the grandparent, while a
// black (or missing) uncle resolves it with one or two rotations, depending on whether node, parent and
// grandparent form a straight line or a zigzag.
func (t *Tree[K, V]) balanceAfterInsert(node *Node[K, V]) {
	for {
		parent := node.Parent()
		grandparent := node.GrandParent()
		if parent == nil || grandparent == nil || !node.IsRed() || !parent.IsRed() {
			return
		}

		if uncle := node.Uncle(); uncle.IsRed() {
			parent.color = ColorBlack
			uncle.color = ColorBlack
			if grandparent != t.root {
				grandparent.color = ColorRed
			}

			node = grandparent

			continue
		}

		nodeDirection := lo.Cond(node == parent.left, Left, Right)
		parentDirection := lo.Cond(parent == grandparent.left, Left, Right)
		switch {
		case nodeDirection == Left && parentDirection == Left:
			t.rotate(Right, node, parent, grandparent, true)
		case nodeDirection == Right && parentDirection == Right:
			t.rotate(Left, node, parent, grandparent, true)
		case nodeDirection == Right && parentDirection == Left:
			// zigzag: the node ends up between parent and grandparent and acts as the parent of the second rotation
			t.rotate(Left, nil, node, parent, false)
			t.rotate(Right, parent, node, grandparent, true)
		default:
			t.rotate(Right, nil, node, parent, false)
			t.rotate(Left, parent, node, grandparent, true)
		}

		return
	}
}
