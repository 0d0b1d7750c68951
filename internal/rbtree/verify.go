package rbtree

import (
	"errors"
	"fmt"
)

// Errors returned by Verify.
var (
	ErrRedRoot      = errors.New("root is red")
	ErrRedViolation = errors.New("red node has a red child")
	ErrBlackHeight  = errors.New("black height mismatch")
	ErrOrder        = errors.New("keys out of order")
	ErrParentLink   = errors.New("inconsistent parent link")
	ErrSize         = errors.New("size does not match node count")
)

// Verify validates the Red-Black Tree invariants:
//  1. Root is always black
//  2. Red nodes must have black children
//  3. All paths from a node to its leaves have the same black count
//  4. In-order keys are strictly ascending
//  5. Every child points back at its parent
//  6. Len matches the number of reachable nodes
//
// It returns nil when all of them hold, otherwise an error wrapping
// one of the Err values above.
func (t *Tree[K]) Verify() error {
	if colorOf(t.root) != Black {
		return fmt.Errorf("%w: at key %v", ErrRedRoot, t.root.key)
	}
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root has parent %v", ErrParentLink, t.root.parent.key)
	}

	if _, err := t.checkSubtree(t.root); err != nil {
		return err
	}

	first := true
	var prev K
	count := 0
	for key := range t.inOrder() {
		if !first && t.compare(prev, key) >= 0 {
			return fmt.Errorf("%w: %v then %v", ErrOrder, prev, key)
		}
		first = false
		prev = key
		count++
	}
	if count != t.size {
		return fmt.Errorf("%w: walked %d nodes, size is %d", ErrSize, count, t.size)
	}
	return nil
}

// checkSubtree returns the black height of node, counting the absent
// leaves below it as one.
func (t *Tree[K]) checkSubtree(node *Node[K]) (int, error) {
	if node == nil {
		return 1, nil
	}

	for _, child := range []*Node[K]{node.left, node.right} {
		if child == nil {
			continue
		}
		if child.parent != node {
			return 0, fmt.Errorf("%w: at key %v", ErrParentLink, child.key)
		}
		if node.color == Red && child.color == Red {
			return 0, fmt.Errorf("%w: %v under %v", ErrRedViolation, child.key, node.key)
		}
	}

	leftCount, err := t.checkSubtree(node.left)
	if err != nil {
		return 0, err
	}
	rightCount, err := t.checkSubtree(node.right)
	if err != nil {
		return 0, err
	}
	if leftCount != rightCount {
		return 0, fmt.Errorf("%w: at key %v (%d vs %d)", ErrBlackHeight, node.key, leftCount, rightCount)
	}

	if node.color == Black {
		leftCount++
	}
	return leftCount, nil
}
