package ast

import (
	"strings"

	"github.com/inconshreveable/log15"
)

// Log gets block stack underflows. It discards everything until a caller
// sets a handler.
var Log = log15.New("pkg", "ast")

func init() {
	Log.SetHandler(log15.DiscardHandler())
}

// AST owns a handler's tree while it's being built. The cursor says where
// AddStatement puts things; EnterBlock/ExitBlock move it and keep a stack of
// the blocks they left, so any depth of nested ifs and loops unwinds
// correctly.
type AST struct {
	Root *HandlerNode

	current *BlockNode
	blocks  []*BlockNode
}

func New(h *Handler) *AST {
	root := NewHandlerNode(h)
	return &AST{
		Root:    root,
		current: root.Block,
	}
}

// Source renders the whole handler.
func (a *AST) Source(summary bool) string {
	return a.Root.Source(summary)
}

// AddStatement appends n to the current block. With no current block (after
// an unbalanced ExitBlock) the statement is dropped.
func (a *AST) AddStatement(n Node) {
	if a.current == nil {
		Log.Debug("statement dropped, no current block", "type", n.Type())
		return
	}
	a.current.AddChild(n)
}

// EnterBlock moves the cursor into b, remembering where it was.
func (a *AST) EnterBlock(b *BlockNode) {
	a.blocks = append(a.blocks, a.current)
	a.current = b
}

// ExitBlock returns the cursor to the block it was in before the last
// EnterBlock. Exiting more often than entering leaves no current block.
func (a *AST) ExitBlock() {
	if len(a.blocks) == 0 {
		Log.Debug("block stack underflow")
		a.current = nil
		return
	}

	last := len(a.blocks) - 1
	a.current = a.blocks[last]
	a.blocks = a.blocks[:last]
}

// CurrentBlock is the cursor, nil once the block stack has underflowed.
func (a *AST) CurrentBlock() *BlockNode {
	return a.current
}

// Depth is how many blocks ExitBlock can still return to.
func (a *AST) Depth() int {
	return len(a.blocks)
}

// String is a debug dump, one node per line with its one-line summary.
func (a *AST) String() string {
	return dump(a.Root) + "\n"
}

func dump(n Node) string {
	var b strings.Builder

	b.WriteString(n.Type())
	switch n := n.(type) {
	case *BlockNode:
		// children say it all
	case *HandlerNode:
		b.WriteString(" " + n.Handler.Name)
	default:
		b.WriteString(" " + firstLine(n.Source(true)))
	}

	for _, c := range n.Children() {
		b.WriteByte('\n')
		b.WriteString(indentStart(dump(c), 4))
	}
	return b.String()
}
