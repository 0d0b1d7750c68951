package render_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlonMell/rbtree/internal/rbtree"
	"github.com/AlonMell/rbtree/internal/render"
)

func build(keys ...int) *rbtree.Tree[int] {
	t := rbtree.New[int]()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func TestFprintScenario(t *testing.T) {
	tree := build(10, 5, 15, 3, 7)

	var sb strings.Builder
	require.NoError(t, render.Fprint(&sb, tree, render.DefaultConfig()))

	want := strings.Join([]string{
		"└─10 (Black)",
		"  ├─5 (Black)",
		"  | ├─3 (Red)",
		"  | └─7 (Red)",
		"  └─15 (Black)",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestFprintWithoutColor(t *testing.T) {
	tree := build(2, 1, 3)
	cfg := render.DefaultConfig()
	cfg.ShowColor = false

	assert.Equal(t, "└─2\n  ├─1\n  └─3\n", render.String(tree, cfg))
}

func TestFprintWideIndent(t *testing.T) {
	tree := build(10, 5, 15, 3, 7)
	cfg := render.DefaultConfig()
	cfg.Indent = "    "

	want := strings.Join([]string{
		"└─10 (Black)",
		"    ├─5 (Black)",
		"    |   ├─3 (Red)",
		"    |   └─7 (Red)",
		"    └─15 (Black)",
		"",
	}, "\n")
	assert.Equal(t, want, render.String(tree, cfg))

	cfg.Indent = ""
	assert.Equal(t, "└─10 (Black)\n├─5 (Black)\n├─3 (Red)\n└─7 (Red)\n└─15 (Black)\n", render.String(tree, cfg))
}

func TestFprintLoneRightChild(t *testing.T) {
	// A right child is always drawn as the last branch, with or
	// without a left sibling.
	tree := build(1, 2)
	assert.Equal(t, "└─1 (Black)\n  └─2 (Red)\n", render.String(tree, nil))
}

func TestFprintEmpty(t *testing.T) {
	assert.Empty(t, render.String(rbtree.New[string](), nil))
}

func TestFprintLineCount(t *testing.T) {
	tree := build(10, 5, 15, 3, 7, 12, 17, 11, 6, 16, 4, 8, 13, 18)
	out := render.String(tree, nil)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, tree.Len())
	assert.Equal(t, "└─"+strconv.Itoa(tree.Root().Key())+" (Black)", lines[0])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFprintWriteError(t *testing.T) {
	tree := build(1, 2, 3)
	err := render.Fprint(failingWriter{}, tree, nil)
	assert.ErrorContains(t, err, "disk full")
}
