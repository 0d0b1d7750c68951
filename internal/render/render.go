// Package render draws a red-black tree as an indented outline, one
// node per line, left subtree before right.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/AlonMell/rbtree/internal/rbtree"
)

const (
	branchMid  = "├─"
	branchLast = "└─"
	guideMark  = "|"
)

// Config holds rendering options.
type Config struct {
	// Append " (Red)" / " (Black)" after each key
	ShowColor bool

	// Padding used below a last child; the guide below other children
	// is "|" padded to the same width
	Indent string
}

// DefaultConfig returns the default rendering configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowColor: true,
		Indent:    "  ",
	}
}

// Fprint writes the outline of t to w. An empty tree writes nothing.
func Fprint[K any](w io.Writer, t *rbtree.Tree[K], cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	p := printer[K]{w: bw, cfg: cfg, guide: guideFor(cfg.Indent)}
	p.node(t.Root(), "", true)
	if p.err != nil {
		return p.err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush tree output: %w", err)
	}
	return nil
}

// String returns the outline of t.
func String[K any](t *rbtree.Tree[K], cfg *Config) string {
	var sb strings.Builder
	_ = Fprint(&sb, t, cfg)
	return sb.String()
}

func guideFor(indent string) string {
	width := utf8.RuneCountInString(indent)
	if width == 0 {
		return ""
	}
	return guideMark + strings.Repeat(" ", width-1)
}

type printer[K any] struct {
	w     *bufio.Writer
	cfg   *Config
	guide string
	err   error
}

func (p *printer[K]) node(n *rbtree.Node[K], indent string, last bool) {
	if n == nil || p.err != nil {
		return
	}

	branch := branchMid
	next := indent + p.guide
	if last {
		branch = branchLast
		next = indent + p.cfg.Indent
	}

	line := indent + branch + fmt.Sprint(n.Key())
	if p.cfg.ShowColor {
		line += " (" + n.Color().String() + ")"
	}
	if _, err := p.w.WriteString(line + "\n"); err != nil {
		p.err = fmt.Errorf("failed to write node %v: %w", n.Key(), err)
		return
	}

	p.node(n.Left(), next, false)
	p.node(n.Right(), next, true)
}
