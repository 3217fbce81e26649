package kanren

// node is one binding in a persistent AVL tree keyed on variable index.
// Nodes are never modified once they are reachable from a Substitution;
// insertion copies the path from the root down to the new leaf.
type node struct {
	key   Var
	value Term

	left   *node
	right  *node
	height int
}

func (n *node) copyNode() *node {
	return &node{
		key:    n.key,
		value:  n.value,
		left:   n.left,
		right:  n.right,
		height: n.height,
	}
}

// immutable update. boolean indicates an actual new insertion happened
func (n *node) insert(k Var, v Term) (*node, bool) {
	if n == nil {
		return &node{key: k, value: v, height: 1}, true
	}
	if n.key == k {
		return n, false
	}
	if k < n.key {
		left, inserted := n.left.insert(k, v)
		if !inserted {
			return n, false
		}
		newn := n.copyNode()
		newn.left = left
		return newn.rebalance(), true
	}
	right, inserted := n.right.insert(k, v)
	if !inserted {
		return n, false
	}
	newn := n.copyNode()
	newn.right = right
	return newn.rebalance(), true
}

func (n *node) getHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

// we just copied n and the child we descended into, potentially causing
// imbalance. Only the copied nodes are modified here; the other grandchild
// of a rotation is still shared and has to be copied before relinking.
func (n *node) rebalance() *node {
	imbalance := n.right.getHeight() - n.left.getHeight()
	if imbalance < 2 && imbalance > -2 {
		n.resetHeight()
		return n
	}
	if imbalance == -2 { // left is higher
		child := n.left
		if child.left.getHeight() >= child.right.getHeight() {
			n.left = child.right
			child.right = n
			n.resetHeight()
			child.resetHeight()
			return child
		}
		grandchild := child.right.copyNode()
		child.right = grandchild.left
		grandchild.left = child
		n.left = grandchild.right
		grandchild.right = n
		n.resetHeight()
		child.resetHeight()
		grandchild.resetHeight()
		return grandchild
	}
	// imbalance == 2, right is higher
	child := n.right
	if child.right.getHeight() >= child.left.getHeight() {
		n.right = child.left
		child.left = n
		n.resetHeight()
		child.resetHeight()
		return child
	}
	grandchild := child.left.copyNode()
	child.left = grandchild.right
	grandchild.right = child
	n.right = grandchild.left
	grandchild.left = n
	n.resetHeight()
	child.resetHeight()
	grandchild.resetHeight()
	return grandchild
}

func (n *node) resetHeight() {
	n.height = max(n.left.getHeight(), n.right.getHeight()) + 1
}

func (n *node) lookup(k Var) (Term, bool) {
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	return nil, false
}

func (n *node) each(f func(Var, Term)) {
	if n == nil {
		return
	}
	n.left.each(f)
	f(n.key, n.value)
	n.right.each(f)
}
