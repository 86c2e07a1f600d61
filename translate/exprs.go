package translate

import (
	"github.com/Heliodex/lingodec/ast"
	"github.com/Heliodex/lingodec/bytecode"
	"github.com/Heliodex/lingodec/lingo"
)

func argCount(inst bytecode.Instruction) int {
	n := int(inst.Operand)
	if n < 0 || n > maxArgs {
		Log.Debug("bad arglist size", "pos", inst.Pos, "size", inst.Operand)
		return 0
	}
	return n
}

// argList folds items into a single datum when they're all literals, which
// is what a list written out in full source looks like.
func argList(kind lingo.DatumType, items []ast.Node) ast.Node {
	datums := make([]*lingo.Datum, len(items))
	for i, item := range items {
		lit, ok := item.(*ast.LiteralNode)
		if !ok {
			return ast.NewListNode(kind, items...)
		}
		datums[i] = lit.Datum
	}

	if kind == lingo.DatumPropList {
		return ast.NewLiteralNode(lingo.PropList(datums...))
	}
	return ast.NewLiteralNode(&lingo.Datum{Type: kind, L: datums})
}

// relist turns the arglist under a pushlist/pushproplist into the list it
// builds.
func relist(kind lingo.DatumType, n ast.Node) ast.Node {
	switch n := n.(type) {
	case *ast.LiteralNode:
		if n.Datum.Type.IsList() {
			if kind == lingo.DatumPropList {
				return ast.NewLiteralNode(lingo.PropList(n.Datum.L...))
			}
			return ast.NewLiteralNode(&lingo.Datum{Type: kind, L: n.Datum.L})
		}
		Log.Debug("list built from a non-list", "want", kind, "datum", n.Datum.Type)
		return ast.NewErrorNode()
	case *ast.ListNode:
		return ast.NewListNode(kind, n.Items...)
	}

	Log.Debug("list built from a non-list", "want", kind, "node", n.Type())
	return ast.NewErrorNode()
}

// isNoRet reports whether args was pushed by pusharglistnoret, making the
// call using it a statement.
func isNoRet(args ast.Node) bool {
	switch args := args.(type) {
	case *ast.LiteralNode:
		return args.Datum.Type == lingo.DatumArgListNoRet
	case *ast.ListNode:
		return args.Kind == lingo.DatumArgListNoRet
	}
	return false
}

func (t *translator) callResult(n ast.Node, args ast.Node) {
	if isNoRet(args) {
		t.a.AddStatement(n)
		return
	}
	t.stack.push(n)
}

func (t *translator) call(name string, args ast.Node) {
	t.callResult(ast.NewCallNode(name, args), args)
}

// objCall splits the receiver off the front of args.
func (t *translator) objCall(name string, args ast.Node) {
	var obj, rest ast.Node
	switch a := args.(type) {
	case *ast.LiteralNode:
		if a.Datum.Type.IsList() && len(a.Datum.L) > 0 {
			obj = ast.NewLiteralNode(a.Datum.L[0])
			rest = ast.NewLiteralNode(&lingo.Datum{Type: a.Datum.Type, L: a.Datum.L[1:]})
		}
	case *ast.ListNode:
		if len(a.Items) > 0 {
			obj = a.Items[0]
			rest = argList(a.Kind, a.Items[1:])
		}
	}

	if obj == nil {
		Log.Debug("object call without a receiver", "name", name)
		obj, rest = ast.NewErrorNode(), args
	}
	t.callResult(ast.NewObjCallNode(obj, name, rest), args)
}

type chunkRef struct {
	kind        lingo.ChunkType
	first, last ast.Node
}

// popChunks pops the eight bounds splitstr and hilitestr take, keeping the
// chunks that are actually used, outermost (line) first.
func (t *translator) popChunks() (refs []chunkRef) {
	for _, kind := range []lingo.ChunkType{lingo.ChunkLine, lingo.ChunkItem, lingo.ChunkWord, lingo.ChunkChar} {
		last := t.stack.pop()
		first := t.stack.pop()
		if !isZero(first) {
			refs = append(refs, chunkRef{kind, first, last})
		}
	}
	return
}

// isZero is true for a literal 0, which marks an unused chunk bound.
func isZero(n ast.Node) bool {
	lit, ok := n.(*ast.LiteralNode)
	if !ok {
		return false
	}

	switch lit.Datum.Type {
	case lingo.DatumInt:
		return lit.Datum.I == 0
	case lingo.DatumFloat:
		return lit.Datum.F == 0
	}
	return false
}

func (t *translator) splitStr() {
	expr := t.stack.pop()
	for _, r := range t.popChunks() {
		expr = ast.NewStringSplitExprNode(r.kind, r.first, r.last, expr)
	}
	t.stack.push(expr)
}

func (t *translator) hiliteStr() {
	var expr ast.Node = ast.NewFieldExprNode(t.stack.pop())
	refs := t.popChunks()
	if len(refs) == 0 {
		Log.Debug("hilite without a chunk")
		t.a.AddStatement(ast.NewErrorNode())
		return
	}

	inner := refs[len(refs)-1]
	for _, r := range refs[:len(refs)-1] {
		expr = ast.NewStringSplitExprNode(r.kind, r.first, r.last, expr)
	}
	t.a.AddStatement(ast.NewStringHiliteStmtNode(inner.kind, inner.first, inner.last, expr))
}
