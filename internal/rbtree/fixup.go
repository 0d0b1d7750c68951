package rbtree

// fixInsert restores the red-black properties after n was attached as
// a red leaf. Both mirrored cases run through the same body: s is the
// side of the grandparent that holds n's parent.
func (t *Tree[K]) fixInsert(n *Node[K]) {
	for n != t.root && colorOf(parentOf(n)) == Red {
		p := parentOf(n)
		g := parentOf(p)
		s := sideOf(p)
		uncle := childOf(g, s.flip())

		if colorOf(uncle) == Red {
			// Recolour only and push the violation up to g.
			setColor(p, Black)
			setColor(uncle, Black)
			setColor(g, Red)
			n = g
			continue
		}

		// Inner grandchild: straighten into the outer case first.
		if n == childOf(p, s.flip()) {
			n = p
			t.rotate(n, s)
		}
		setColor(parentOf(n), Black)
		setColor(parentOf(parentOf(n)), Red)
		t.rotate(parentOf(parentOf(n)), s.flip())
		break
	}
	t.root.color = Black
}
