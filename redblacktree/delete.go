package redblacktree

import "github.com/iotaledger/hive.go/ierrors"

// deleteCase enumerates the states of the double-black resolution. The balancer loops over the classification
// until it reaches one of the terminating cases.
type deleteCase int8

const (
	// deleteCaseImpossible marks a state that is unreachable while the Tree satisfies its invariants.
	deleteCaseImpossible deleteCase = iota

	// deleteCaseRoot absorbs the deficiency at the root, lowering the black-height of the whole Tree.
	deleteCaseRoot

	// deleteCaseRedSibling rotates a red sibling above a black parent so that one of the later cases applies.
	deleteCaseRedSibling

	// deleteCasePushUp recolors an all-black neighborhood and moves the deficiency one level up.
	deleteCasePushUp

	// deleteCaseRedParent swaps the colors of a red parent and its black sibling (terminating).
	deleteCaseRedParent

	// deleteCaseCloserChildRed rotates the sibling's closer red child outward so that deleteCaseOuterChildRed
	// applies next.
	deleteCaseCloserChildRed

	// deleteCaseOuterChildRed rotates the sibling above the parent and settles the colors (terminating).
	deleteCaseOuterChildRed
)

// removeWithAtMostOneChild detaches a Node that has at most one real child, dispatching on the Node's position
// and color: the root is replaced by its child (recolored black), a red Node must be a leaf and is simply
// unlinked, and a black Node either absorbs its red child in place or leaves a double-black deficiency that the
// balancer resolves before the Node is unlinked as a leaf.
func (t *Tree[K, V]) removeWithAtMostOneChild(node *Node[K, V]) {
	child := node.left
	if child == nil {
		child = node.right
	}

	switch {
	case node == t.root:
		t.replaceChild(node, child)
		if child != nil {
			child.color = ColorBlack
		}

	case node.IsRed():
		if node.HasChildren() {
			panic(ierrors.Errorf("red node %v has a child, which violates the black-height invariant", node.key))
		}
		t.replaceChild(node, nil)

	default:
		if node.left.HasChildren() || node.right.HasChildren() {
			panic(ierrors.Errorf("the child of node %v is not a leaf", node.key))
		}

		if child.IsRed() {
			// absorb the red child in place, no rebalancing needed
			node.key = child.key
			node.values = child.values
			node.left = nil
			node.right = nil
		} else {
			t.resolveDoubleBlack(node)
			t.replaceChild(node, nil)
		}
	}
}

// resolveDoubleBlack resolves the deficiency that removing a black Node introduces at the given position. Every
// pass classifies the neighborhood and either terminates or transforms the Tree and classifies again. A state
// that matches none of the cases means the Tree was corrupted before the removal and is treated as fatal.
func (t *Tree[K, V]) resolveDoubleBlack(node *Node[K, V]) {
	for {
		parent := node.Parent()
		sibling, siblingDirection := node.Sibling()

		switch t.classifyDoubleBlack(node, parent, sibling, siblingDirection) {
		case deleteCaseRoot:
			node.color = ColorBlack

			return

		case deleteCaseRedSibling:
			t.rotate(siblingDirection.Opposite(), nil, sibling, parent, false)
			parent.color = ColorRed
			sibling.color = ColorBlack

		case deleteCasePushUp:
			sibling.color = ColorRed
			node = parent

		case deleteCaseRedParent:
			parent.color, sibling.color = sibling.color, parent.color

			return

		case deleteCaseCloserChildRed:
			closerChild := sibling.Child(siblingDirection.Opposite())
			t.rotate(siblingDirection, nil, closerChild, sibling, false)
			closerChild.color = ColorBlack
			sibling.color = ColorRed

		case deleteCaseOuterChildRed:
			parentColor := parent.color
			t.rotate(siblingDirection.Opposite(), nil, sibling, parent, false)
			sibling.color = parentColor
			sibling.left.color = ColorBlack
			sibling.right.color = ColorBlack

			return

		default:
			panic(ierrors.Errorf("node %v matches none of the double-black cases", node.key))
		}
	}
}

// classifyDoubleBlack matches the neighborhood of the deficient Node against the deletion cases, in order.
func (t *Tree[K, V]) classifyDoubleBlack(node, parent, sibling *Node[K, V], siblingDirection Direction) deleteCase {
	if node == t.root {
		return deleteCaseRoot
	}
	if sibling == nil {
		// a missing sibling next to a double-black position already breaks the black-height invariant
		return deleteCaseImpossible
	}

	siblingChildrenBlack := !sibling.left.IsRed() && !sibling.right.IsRed()
	switch {
	case sibling.IsRed() && parent.IsBlack() && siblingChildrenBlack:
		return deleteCaseRedSibling
	case sibling.IsBlack() && parent.IsBlack() && siblingChildrenBlack:
		return deleteCasePushUp
	case parent.IsRed() && sibling.IsBlack() && siblingChildrenBlack:
		return deleteCaseRedParent
	case sibling.IsBlack() && sibling.Child(siblingDirection.Opposite()).IsRed() && !sibling.Child(siblingDirection).IsRed():
		return deleteCaseCloserChildRed
	case sibling.IsBlack() && sibling.Child(siblingDirection).IsRed():
		return deleteCaseOuterChildRed
	default:
		return deleteCaseImpossible
	}
}
