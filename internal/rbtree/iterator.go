package rbtree

import (
	"iter"
)

// PreOrder yields every node before its left subtree and its left
// subtree before its right. The nodes must not be retained across a
// later Insert if the caller relies on their position.
func (t *Tree[K]) PreOrder() iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		if t.root == nil {
			return
		}
		stack := []*Node[K]{t.root}
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current) {
				return
			}

			if current.right != nil {
				stack = append(stack, current.right)
			}
			if current.left != nil {
				stack = append(stack, current.left)
			}
		}
	}
}

func (t *Tree[K]) inOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := []*Node[K]{}
		current := t.root
		for current != nil || len(stack) > 0 {

			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key) {
				return
			}

			current = current.right
		}
	}
}
