package ast

import (
	"strings"
	"testing"

	"github.com/Heliodex/lingodec/lingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lit(d *lingo.Datum) *LiteralNode { return NewLiteralNode(d) }
func num(i int32) *LiteralNode        { return lit(lingo.Int(i)) }

type sourceTest struct {
	n   Node
	out string
}

func TestNodeSource(t *testing.T) {
	tests := []sourceTest{
		{NewErrorNode(), "ERROR"},
		{NewCommentNode("hello"), "-- hello"},
		{num(5), "5"},
		{lit(lingo.String("hi")), `"hi"`},
		{NewExitStmtNode(), "exit"},
		{NewInverseOpNode(NewVarNode("x")), "-x"},
		{NewNotOpNode(NewVarNode("x")), "not x"},
		{NewBinaryOpNode(lingo.OpAdd, num(1), num(2)), "1 + 2"},
		{NewBinaryOpNode(lingo.OpJoinPadStr, NewVarNode("a"), lit(lingo.String("b"))), `a && "b"`},
		{NewBinaryOpNode(lingo.OpContains0Str, NewVarNode("a"), NewVarNode("b")), "a starts b"},
		{NewBinaryOpNode(lingo.OpNot, num(1), num(2)), "1 ERROR 2"},
		{NewStringSplitExprNode(lingo.ChunkWord, num(2), num(4), NewVarNode("s")), "s.word[2..4]"},
		{NewStringSplitExprNode(lingo.ChunkWord, num(2), num(0), NewVarNode("s")), "s.word[2]"},
		{NewStringSplitExprNode(lingo.ChunkChar, num(1), NewVarNode("n"), NewVarNode("s")), "s.char[1]"},
		{NewStringSplitExprNode(lingo.ChunkLine, num(1), lit(lingo.Float(2.5)), NewVarNode("s")), "s.line[1..2.500000]"},
		{NewStringSplitExprNode(lingo.ChunkType(7), num(1), num(0), NewVarNode("s")), "s.ERROR[1]"},
		{NewStringHiliteStmtNode(lingo.ChunkChar, num(1), num(3), NewFieldExprNode(num(1))), "field(1).char[1..3].hilite()"},
		{NewSpriteIntersectsExprNode(num(1), num(2)), "sprite(1).intersects(2)"},
		{NewSpriteWithinExprNode(num(1), NewVarNode("b")), "sprite(1).within(b)"},
		{NewFieldExprNode(lit(lingo.String("name"))), `field("name")`},
		{NewVarNode("myVar"), "myVar"},
		{NewAssignmentStmtNode(NewVarNode("x"), num(3)), "x = 3"},
		{NewCallNode("beep", lit(lingo.ArgListNoRet())), "beep()"},
		{NewCallNode("go", lit(lingo.ArgList(num(1).Datum, lingo.String("a")))), `go(1, "a")`},
		{NewObjCallNode(NewVarNode("obj"), "doIt", lit(lingo.ArgList(num(1).Datum))), "obj.doIt(1)"},
		{NewTheExprNode("timer"), "the timer"},
		{NewLastStringChunkExprNode(lingo.ChunkItem, NewVarNode("s")), "the last item in s"},
		{NewStringChunkCountExprNode(lingo.ChunkLine, NewVarNode("s")), "the number of line in s"},
		{NewMenuPropExprNode(num(1), 0x01), "menu(1).name"},
		{NewMenuItemPropExprNode(num(1), num(2), 0x02), "menu(1).item(2).checkMark"},
		{NewSoundPropExprNode(num(1), 0x01), "sound(1).volume"},
		{NewSoundPropExprNode(num(1), 0x02), "sound(1).ERROR"},
		{NewSpritePropExprNode(num(3), 0x0d), "sprite(3).locH"},
		{NewCastPropExprNode(num(4), "name"), "cast(4).name"},
		{NewFieldPropExprNode(num(5), 0x04), "field(5).textFont"},
		{NewObjPropExprNode(NewVarNode("me"), "count"), "me.count"},
		{NewExitRepeatStmtNode(), "exit repeat"},
		{NewNextRepeatStmtNode(), "next repeat"},
		{NewListNode(lingo.DatumList), "[]"},
		{NewListNode(lingo.DatumList, NewVarNode("a"), num(1)), "[a, 1]"},
		{NewListNode(lingo.DatumArgList, NewVarNode("a"), num(1)), "a, 1"},
		{NewListNode(lingo.DatumPropList), "[:]"},
		{NewListNode(lingo.DatumPropList, lit(lingo.Symbol("k")), NewVarNode("v")), "[#k: v]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, tt.n.Source(false), tt.n.Type())
		assert.Equal(t, tt.n.Source(false), tt.n.Source(false), "rendering is repeatable")
	}
}

func TestDefaultValue(t *testing.T) {
	for _, n := range []Node{NewVarNode("x"), NewErrorNode(), NewTheExprNode("timer"), NewBlockNode()} {
		v := n.Value()
		require.NotNil(t, v)
		assert.Equal(t, lingo.DatumVoid, v.Type)
		assert.Equal(t, 0, v.ToInt())
	}

	d := lingo.Int(9)
	assert.Same(t, d, NewLiteralNode(d).Value())
}

func TestHandlerSource(t *testing.T) {
	h := &Handler{Name: "foo", ArgumentNames: []string{"a", "b"}, GlobalNames: []string{"g"}}
	assert.Equal(t, "on foo a, b\n  global g\nend\n", New(h).Source(false))

	bare := New(&Handler{Name: "mouseUp"})
	assert.Equal(t, "on mouseUp\nend\n", bare.Source(false))

	globals := New(&Handler{Name: "x", GlobalNames: []string{"gA", "gB"}})
	assert.Equal(t, "on x\n  global gA, gB\nend\n", globals.Source(false))
}

func ifElse() *IfStmtNode {
	n := NewIfStmtNode(IfElse, NewBinaryOpNode(lingo.OpGt, NewVarNode("x"), num(1)))
	n.Block1.AddChild(NewAssignmentStmtNode(NewVarNode("y"), num(2)))
	n.Block2.AddChild(NewCallNode("beep", lit(lingo.ArgListNoRet())))
	return n
}

func TestIfSource(t *testing.T) {
	n := ifElse()

	summary := n.Source(true)
	assert.Equal(t, "if x > 1 then / else", summary)
	assert.True(t, strings.HasSuffix(summary, " / else"))
	assert.NotContains(t, summary, "y = 2")
	assert.NotContains(t, summary, "beep")

	full := n.Source(false)
	assert.Equal(t, "if x > 1 then\n  y = 2\nelse\n  beep()\nend if", full)
	assert.Contains(t, full, "if ")
	assert.Contains(t, full, " then\n")
	assert.Contains(t, full, n.Block1.Source(false))
	assert.Contains(t, full, "else\n")
	assert.Contains(t, full, n.Block2.Source(false))
	assert.True(t, strings.HasSuffix(full, "end if"))

	plain := NewIfStmtNode(If, NewVarNode("ok"))
	plain.Block1.AddChild(NewExitStmtNode())
	plain.Block2.AddChild(NewExitStmtNode()) // never shown
	assert.Equal(t, "if ok then\n  exit\nend if", plain.Source(false))
	assert.Equal(t, "if ok then", plain.Source(true))

	loop := NewIfStmtNode(RepeatWhile, NewBinaryOpNode(lingo.OpLt, NewVarNode("i"), num(10)))
	loop.Block1.AddChild(NewAssignmentStmtNode(NewVarNode("i"), NewBinaryOpNode(lingo.OpAdd, NewVarNode("i"), num(1))))
	assert.Equal(t, "repeat while i < 10\n  i = i + 1\nend repeat", loop.Source(false))
	assert.Equal(t, "repeat while i < 10", loop.Source(true))
}

func TestHandlerWithBody(t *testing.T) {
	a := New(&Handler{Name: "test"})
	a.AddStatement(ifElse())

	assert.Equal(t, "on test\n  if x > 1 then\n    y = 2\n  else\n    beep()\n  end if\nend\n", a.Source(false))
	assert.Equal(t, "on test\n  if x > 1 then / else\nend\n", a.Source(true))
	assert.Equal(t, a.Source(false), a.Source(false))
	assert.Equal(t, a.Source(true), a.Source(true))
}

func TestParents(t *testing.T) {
	a := New(&Handler{Name: "p"})
	assert.Nil(t, a.Root.Parent())
	assert.Same(t, a.Root, a.Root.Block.Parent())

	n := ifElse()
	a.AddStatement(n)
	assert.Same(t, a.Root.Block, n.Parent())
	assert.Same(t, n, n.Block1.Parent())
	assert.Same(t, n, n.Block2.Parent())
	assert.Same(t, n, n.Condition.Parent())

	stmt := n.Block1.Body[0].(*AssignmentStmtNode)
	assert.Same(t, n.Block1, stmt.Parent())
	assert.Same(t, stmt, stmt.Variable.Parent())
	assert.Same(t, stmt, stmt.Expr.Parent())

	// every child points back at whoever lists it
	var walk func(Node)
	walk = func(p Node) {
		for _, c := range p.Children() {
			assert.Same(t, p, c.Parent(), "%s under %s", c.Type(), p.Type())
			walk(c)
		}
	}
	walk(a.Root)
}

func TestNestedBlocks(t *testing.T) {
	a := New(&Handler{Name: "nest"})

	outer := NewIfStmtNode(If, NewVarNode("a"))
	a.AddStatement(outer)
	a.EnterBlock(outer.Block1)

	loop := NewIfStmtNode(RepeatWhile, NewVarNode("b"))
	a.AddStatement(loop)
	a.EnterBlock(loop.Block1)

	inner := NewIfStmtNode(If, NewVarNode("c"))
	a.AddStatement(inner)
	a.EnterBlock(inner.Block1)
	assert.Equal(t, 3, a.Depth())

	a.AddStatement(NewExitRepeatStmtNode())
	a.ExitBlock()
	assert.Same(t, loop.Block1, a.CurrentBlock())

	a.AddStatement(NewNextRepeatStmtNode())
	a.ExitBlock()
	assert.Same(t, outer.Block1, a.CurrentBlock())

	a.AddStatement(NewAssignmentStmtNode(NewVarNode("d"), num(1)))
	a.ExitBlock()
	assert.Same(t, a.Root.Block, a.CurrentBlock())
	assert.Equal(t, 0, a.Depth())

	a.AddStatement(NewExitStmtNode())

	const want = `on nest
  if a then
    repeat while b
      if c then
        exit repeat
      end if
      next repeat
    end repeat
    d = 1
  end if
  exit
end
`
	assert.Equal(t, want, a.Source(false))
}

func TestExitBlockUnderflow(t *testing.T) {
	a := New(&Handler{Name: "h"})
	a.ExitBlock()
	assert.Nil(t, a.CurrentBlock())

	stmt := NewExitStmtNode()
	a.AddStatement(stmt)
	assert.Nil(t, stmt.Parent())
	assert.Empty(t, a.Root.Block.Body)
	assert.Equal(t, "on h\nend\n", a.Source(false))

	// still nothing to return to
	a.ExitBlock()
	assert.Nil(t, a.CurrentBlock())
}

func TestDump(t *testing.T) {
	a := New(&Handler{Name: "test"})
	a.AddStatement(NewAssignmentStmtNode(NewVarNode("y"), num(2)))

	const want = `HandlerNode test
    BlockNode
        AssignmentStmtNode y = 2
            VarNode y
            LiteralNode 2
`
	assert.Equal(t, want, a.String())
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b\n", indent("a\nb\n"))
	assert.Equal(t, "  a\n", indent("a\ntrailing"))
	assert.Equal(t, "", indent(""))
}
