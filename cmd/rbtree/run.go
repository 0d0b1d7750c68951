package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/urfave/cli"

	"github.com/AlonMell/rbtree/internal/rbtree"
	"github.com/AlonMell/rbtree/internal/render"
)

func runInsert(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fmt.Errorf("at least one key is required")
	}

	tree := rbtree.New[int]()
	for _, arg := range c.Args() {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", arg, err)
		}
		if !tree.Insert(key) {
			m.log.Debugf("duplicate key ignored: %d", key)
			continue
		}
		m.log.Debugf("inserted key: %d  size: %d", key, tree.Len())
	}

	if err := printTree(m, tree); err != nil {
		return err
	}
	return verify(m, tree)
}

// keys are drawn from [0, count*10)
const maxRandomCount = math.MaxInt / 10

func runRandom(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count < 0 || count > maxRandomCount {
		return fmt.Errorf("count must be between 0 and %d: %d", maxRandomCount, count)
	}

	r := rand.New(rand.NewSource(c.Int64("seed")))
	tree := rbtree.New[int]()
	duplicates := 0
	for tree.Len() < count {
		key := r.Intn(count * 10)
		if !tree.Insert(key) {
			duplicates += 1
		}
	}

	h := height(tree.Root())
	bound := 2 * math.Log2(float64(tree.Len()+1))
	m.log.Infow("random tree built",
		"size", tree.Len(),
		"duplicates", duplicates,
		"height", h,
		"bound", bound,
	)

	if c.Bool("print") {
		if err := printTree(m, tree); err != nil {
			return err
		}
	}
	if float64(h) > bound {
		return fmt.Errorf("height %d exceeds bound %.2f", h, bound)
	}
	return verify(m, tree)
}

func printTree(m *metadata, tree *rbtree.Tree[int]) error {
	cfg := render.DefaultConfig()
	cfg.ShowColor = m.showColor
	return render.Fprint(m.w, tree, cfg)
}

func verify(m *metadata, tree *rbtree.Tree[int]) error {
	if err := tree.Verify(); err != nil {
		m.log.Errorw("tree properties violated", "error", err)
		return err
	}

	reds := 0
	for n := range tree.PreOrder() {
		if n.Color() == rbtree.Red {
			reds += 1
		}
	}
	m.log.Debugw("tree verified", "size", tree.Len(), "red", reds, "black", tree.Len()-reds)
	return nil
}

func height(n *rbtree.Node[int]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left()), height(n.Right()))
}
