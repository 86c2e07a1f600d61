// Package ast is the Lingo syntax tree the translator builds out of a handler's
// bytecode, and the renderer that turns it back into source.
package ast

import (
	"strings"

	"github.com/Heliodex/lingodec/lingo"
)

// Node is implemented by every tree node in this package.
//
// Source renders the node. summary asks for a compact one-line version (only
// ifs and loops actually shorten), otherwise the result is full Lingo.
type Node interface {
	Type() string
	Source(summary bool) string
	// Value is the literal datum behind the node, or VOID for anything that
	// isn't a literal.
	Value() *lingo.Datum
	// Parent is the structural parent, nil for the root and for nodes that
	// haven't been attached yet. It never owns anything.
	Parent() Node
	Children() []Node

	setParent(Node)
}

// base for every node
type node struct {
	parent Node
}

func (n *node) Parent() Node        { return n.parent }
func (n *node) setParent(p Node)    { n.parent = p }
func (n *node) Value() *lingo.Datum { return lingo.Void() }
func (n *node) Children() []Node    { return nil }

// adopt points each child's parent link at p.
func adopt(p Node, children ...Node) {
	for _, c := range children {
		if c != nil {
			c.setParent(p)
		}
	}
}

// Handler describes the handler being decompiled. LocalNames is only used by
// the translator to name getlocal/setlocal operands.
type Handler struct {
	Name          string
	ArgumentNames []string
	GlobalNames   []string
	LocalNames    []string
}

// indent prefixes each newline-terminated line of s with one level (two
// spaces). Anything after the last newline is dropped, callers always end
// with one.
func indent(s string) string {
	var b strings.Builder
	for {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			return b.String()
		}
		b.WriteString("  ")
		b.WriteString(s[:i+1])
		s = s[i+1:]
	}
}

// indentStart is for the debug dump, same idea with an arbitrary width and no
// trailing newline.
func indentStart(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", n) + line
	}
	return strings.Join(lines, "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		return s[:i]
	}
	return s
}
