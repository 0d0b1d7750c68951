package rbtree

// rotate moves x one level down towards dir and promotes its child on
// the opposite side. Keys keep their in-order sequence. Rotating a nil
// pivot, or one without a child to promote, does nothing.
func (t *Tree[K]) rotate(x *Node[K], dir side) {
	y := childOf(x, dir.flip())
	if x == nil || y == nil {
		return
	}

	inner := childOf(y, dir)
	setChild(x, dir.flip(), inner)
	if inner != nil {
		inner.parent = x
	}

	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else {
		setChild(x.parent, sideOf(x), y)
	}

	setChild(y, dir, x)
	x.parent = y
}

func (t *Tree[K]) rotateLeft(x *Node[K]) {
	/*
		Left rotation around node x:
			    Before:               After:
		          P                    P
		          |                    |
		          x                    y
		         / \                  / \
		        A   y       →        x   C
		           / \              / \
		          B   C            A   B
	*/
	t.rotate(x, left)
}

func (t *Tree[K]) rotateRight(y *Node[K]) {
	/*
		Right rotation around node y:
		    Before:               After:
		       P                    P
		       |                    |
		       y                    x
		      / \                  / \
		     x   C       →        A   y
		    / \                      / \
		   A   B                    B   C
	*/
	t.rotate(y, right)
}
