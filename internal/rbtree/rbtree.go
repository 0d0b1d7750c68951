// Package rbtree implements a Red-Black Tree ordered set
// with insertion-path rebalancing.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) height. A tree is not safe for concurrent use; callers that
// share one between goroutines must synchronise access themselves.
package rbtree

import (
	"cmp"
)

// Color is the colour tag of a node. The zero value is Black, so an
// absent child reads as black.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Node is a single key in the tree. The parent link is a back-reference
// used only while rebalancing.
type Node[K any] struct {
	key                 K
	color               Color
	left, right, parent *Node[K]
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	var zero K
	if n == nil {
		return zero
	}
	return n.key
}

// Color returns the node colour; an absent node is Black.
func (n *Node[K]) Color() Color { return colorOf(n) }

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] { return leftOf(n) }

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] { return rightOf(n) }

// Tree represents a Red-Black Tree instance.
// Use New() or NewFunc() to create a new tree instance.
type Tree[K any] struct {
	root    *Node[K]
	compare func(a, b K) int
	size    int
}

// New creates and returns a new empty tree ordered by the natural
// ordering of K.
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc(cmp.Compare[K])
}

// NewFunc creates an empty tree ordered by compare, which must return
// a negative number, zero or a positive number when a is less than,
// equal to or greater than b.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	return &Tree[K]{compare: compare}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.size }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Insert adds key to the tree while maintaining Red-Black Tree
// properties. If an equal key is already present the tree is left
// untouched and Insert returns false.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		t.root = &Node[K]{key: key, color: Black}
		t.size++
		return true
	}

	var parent *Node[K]
	dir := left
	current := t.root

	for current != nil {
		parent = current
		switch c := t.compare(key, current.key); {
		case c < 0:
			dir = left
		case c > 0:
			dir = right
		default:
			return false
		}
		current = childOf(current, dir)
	}

	newNode := &Node[K]{
		key:    key,
		color:  Red,
		parent: parent,
	}
	setChild(parent, dir, newNode)
	t.size++

	t.fixInsert(newNode)
	return true
}
