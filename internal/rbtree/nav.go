package rbtree

// side selects a child slot of a node.
type side uint8

const (
	left side = iota
	right
)

func (s side) flip() side { return s ^ 1 }

func (s side) String() string {
	if s == left {
		return "left"
	}
	return "right"
}

// The accessors below treat a nil node as a black leaf with no parent
// and no children.

func colorOf[K any](n *Node[K]) Color {
	if n == nil {
		return Black
	}
	return n.color
}

func setColor[K any](n *Node[K], c Color) {
	if n != nil {
		n.color = c
	}
}

func parentOf[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	return n.parent
}

func leftOf[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

func rightOf[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

func childOf[K any](n *Node[K], s side) *Node[K] {
	if s == left {
		return leftOf(n)
	}
	return rightOf(n)
}

// setChild stores c in the s slot of n; n must not be nil.
func setChild[K any](n *Node[K], s side, c *Node[K]) {
	if s == left {
		n.left = c
	} else {
		n.right = c
	}
}

// sideOf reports which child of its parent n is. The root reports left.
func sideOf[K any](n *Node[K]) side {
	if p := parentOf(n); p != nil && p.right == n {
		return right
	}
	return left
}
