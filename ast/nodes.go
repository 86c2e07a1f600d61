package ast

import (
	"strings"

	"github.com/Heliodex/lingodec/lingo"
)

// ErrorNode stands in for anything the translator couldn't make sense of.
type ErrorNode struct{ node }

func NewErrorNode() *ErrorNode          { return &ErrorNode{} }
func (n *ErrorNode) Type() string       { return "ErrorNode" }
func (n *ErrorNode) Source(bool) string { return "ERROR" }

type CommentNode struct {
	node
	Text string
}

func NewCommentNode(text string) *CommentNode { return &CommentNode{Text: text} }
func (n *CommentNode) Type() string           { return "CommentNode" }
func (n *CommentNode) Source(bool) string     { return "-- " + n.Text }

// LiteralNode is the only node with a real Value.
type LiteralNode struct {
	node
	Datum *lingo.Datum
}

func NewLiteralNode(d *lingo.Datum) *LiteralNode { return &LiteralNode{Datum: d} }
func (n *LiteralNode) Type() string              { return "LiteralNode" }
func (n *LiteralNode) Value() *lingo.Datum       { return n.Datum }

func (n *LiteralNode) Source(summary bool) string {
	return n.Datum.Source(summary)
}

// BlockNode is an ordered list of statements. Each statement is rendered on
// its own line(s), indented one level.
type BlockNode struct {
	node
	Body []Node
}

func NewBlockNode() *BlockNode        { return &BlockNode{} }
func (n *BlockNode) Type() string     { return "BlockNode" }
func (n *BlockNode) Children() []Node { return n.Body }

func (n *BlockNode) AddChild(child Node) {
	child.setParent(n)
	n.Body = append(n.Body, child)
}

func (n *BlockNode) Source(summary bool) string {
	var b strings.Builder
	for _, child := range n.Body {
		b.WriteString(indent(child.Source(summary) + "\n"))
	}
	return b.String()
}

type HandlerNode struct {
	node
	Handler *Handler
	Block   *BlockNode
}

func NewHandlerNode(h *Handler) *HandlerNode {
	n := &HandlerNode{Handler: h, Block: NewBlockNode()}
	adopt(n, n.Block)
	return n
}

func (n *HandlerNode) Type() string     { return "HandlerNode" }
func (n *HandlerNode) Children() []Node { return []Node{n.Block} }

func (n *HandlerNode) Source(summary bool) string {
	var b strings.Builder

	b.WriteString("on " + n.Handler.Name)
	if len(n.Handler.ArgumentNames) > 0 {
		b.WriteString(" " + strings.Join(n.Handler.ArgumentNames, ", "))
	}
	b.WriteByte('\n')

	if len(n.Handler.GlobalNames) > 0 {
		b.WriteString("  global " + strings.Join(n.Handler.GlobalNames, ", ") + "\n")
	}

	b.WriteString(n.Block.Source(summary))
	b.WriteString("end\n")
	return b.String()
}

type ExitStmtNode struct{ node }

func NewExitStmtNode() *ExitStmtNode       { return &ExitStmtNode{} }
func (n *ExitStmtNode) Type() string       { return "ExitStmtNode" }
func (n *ExitStmtNode) Source(bool) string { return "exit" }

// InverseOpNode is unary minus.
type InverseOpNode struct {
	node
	Operand Node
}

func NewInverseOpNode(operand Node) *InverseOpNode {
	n := &InverseOpNode{Operand: operand}
	adopt(n, operand)
	return n
}

func (n *InverseOpNode) Type() string     { return "InverseOpNode" }
func (n *InverseOpNode) Children() []Node { return []Node{n.Operand} }

func (n *InverseOpNode) Source(summary bool) string {
	return "-" + n.Operand.Source(summary)
}

type NotOpNode struct {
	node
	Operand Node
}

func NewNotOpNode(operand Node) *NotOpNode {
	n := &NotOpNode{Operand: operand}
	adopt(n, operand)
	return n
}

func (n *NotOpNode) Type() string     { return "NotOpNode" }
func (n *NotOpNode) Children() []Node { return []Node{n.Operand} }

func (n *NotOpNode) Source(summary bool) string {
	return "not " + n.Operand.Source(summary)
}

// BinaryOpNode renders its opcode through lingo.BinaryOpNames.
type BinaryOpNode struct {
	node
	Op          lingo.Opcode
	Left, Right Node
}

func NewBinaryOpNode(op lingo.Opcode, left, right Node) *BinaryOpNode {
	n := &BinaryOpNode{Op: op, Left: left, Right: right}
	adopt(n, left, right)
	return n
}

func (n *BinaryOpNode) Type() string     { return "BinaryOpNode" }
func (n *BinaryOpNode) Children() []Node { return []Node{n.Left, n.Right} }

func (n *BinaryOpNode) Source(summary bool) string {
	return n.Left.Source(summary) + " " + lingo.BinaryOpName(n.Op) + " " + n.Right.Source(summary)
}

// chunk renders str.kind[first] or str.kind[first..last]. A last bound is
// only shown when it's a literal with a non-zero integer meaning.
func chunk(kind lingo.ChunkType, str, first, last Node, summary bool) string {
	s := str.Source(summary) + "." + kind.String() + "[" + first.Source(summary)
	if last.Value().ToInt() != 0 {
		s += ".." + last.Source(summary)
	}
	return s + "]"
}

// StringSplitExprNode is a chunk expression, e.g. myString.word[2..4].
type StringSplitExprNode struct {
	node
	Chunk       lingo.ChunkType
	First, Last Node
	String      Node
}

func NewStringSplitExprNode(kind lingo.ChunkType, first, last, str Node) *StringSplitExprNode {
	n := &StringSplitExprNode{Chunk: kind, First: first, Last: last, String: str}
	adopt(n, first, last, str)
	return n
}

func (n *StringSplitExprNode) Type() string { return "StringSplitExprNode" }

func (n *StringSplitExprNode) Children() []Node {
	return []Node{n.String, n.First, n.Last}
}

func (n *StringSplitExprNode) Source(summary bool) string {
	return chunk(n.Chunk, n.String, n.First, n.Last, summary)
}

type StringHiliteStmtNode struct {
	node
	Chunk       lingo.ChunkType
	First, Last Node
	String      Node
}

func NewStringHiliteStmtNode(kind lingo.ChunkType, first, last, str Node) *StringHiliteStmtNode {
	n := &StringHiliteStmtNode{Chunk: kind, First: first, Last: last, String: str}
	adopt(n, first, last, str)
	return n
}

func (n *StringHiliteStmtNode) Type() string { return "StringHiliteStmtNode" }

func (n *StringHiliteStmtNode) Children() []Node {
	return []Node{n.String, n.First, n.Last}
}

func (n *StringHiliteStmtNode) Source(summary bool) string {
	return chunk(n.Chunk, n.String, n.First, n.Last, summary) + ".hilite()"
}

type SpriteIntersectsExprNode struct {
	node
	FirstSprite, SecondSprite Node
}

func NewSpriteIntersectsExprNode(first, second Node) *SpriteIntersectsExprNode {
	n := &SpriteIntersectsExprNode{FirstSprite: first, SecondSprite: second}
	adopt(n, first, second)
	return n
}

func (n *SpriteIntersectsExprNode) Type() string { return "SpriteIntersectsExprNode" }

func (n *SpriteIntersectsExprNode) Children() []Node {
	return []Node{n.FirstSprite, n.SecondSprite}
}

func (n *SpriteIntersectsExprNode) Source(summary bool) string {
	return "sprite(" + n.FirstSprite.Source(summary) + ").intersects(" + n.SecondSprite.Source(summary) + ")"
}

type SpriteWithinExprNode struct {
	node
	FirstSprite, SecondSprite Node
}

func NewSpriteWithinExprNode(first, second Node) *SpriteWithinExprNode {
	n := &SpriteWithinExprNode{FirstSprite: first, SecondSprite: second}
	adopt(n, first, second)
	return n
}

func (n *SpriteWithinExprNode) Type() string { return "SpriteWithinExprNode" }

func (n *SpriteWithinExprNode) Children() []Node {
	return []Node{n.FirstSprite, n.SecondSprite}
}

func (n *SpriteWithinExprNode) Source(summary bool) string {
	return "sprite(" + n.FirstSprite.Source(summary) + ").within(" + n.SecondSprite.Source(summary) + ")"
}

type FieldExprNode struct {
	node
	FieldID Node
}

func NewFieldExprNode(fieldID Node) *FieldExprNode {
	n := &FieldExprNode{FieldID: fieldID}
	adopt(n, fieldID)
	return n
}

func (n *FieldExprNode) Type() string     { return "FieldExprNode" }
func (n *FieldExprNode) Children() []Node { return []Node{n.FieldID} }

func (n *FieldExprNode) Source(summary bool) string {
	return "field(" + n.FieldID.Source(summary) + ")"
}

type VarNode struct {
	node
	Name string
}

func NewVarNode(name string) *VarNode { return &VarNode{Name: name} }
func (n *VarNode) Type() string       { return "VarNode" }
func (n *VarNode) Source(bool) string { return n.Name }

type AssignmentStmtNode struct {
	node
	Variable, Expr Node
}

func NewAssignmentStmtNode(variable, expr Node) *AssignmentStmtNode {
	n := &AssignmentStmtNode{Variable: variable, Expr: expr}
	adopt(n, variable, expr)
	return n
}

func (n *AssignmentStmtNode) Type() string     { return "AssignmentStmtNode" }
func (n *AssignmentStmtNode) Children() []Node { return []Node{n.Variable, n.Expr} }

func (n *AssignmentStmtNode) Source(summary bool) string {
	return n.Variable.Source(summary) + " = " + n.Expr.Source(summary)
}

type IfType uint8

const (
	If IfType = iota
	IfElse
	RepeatWhile
)

// IfStmtNode covers if, if/else, and repeat while, which all come out of a
// jmpifz. Block2 is only rendered for IfElse.
type IfStmtNode struct {
	node
	Kind           IfType
	Condition      Node
	Block1, Block2 *BlockNode
}

func NewIfStmtNode(kind IfType, condition Node) *IfStmtNode {
	n := &IfStmtNode{
		Kind:      kind,
		Condition: condition,
		Block1:    NewBlockNode(),
		Block2:    NewBlockNode(),
	}
	adopt(n, condition, n.Block1, n.Block2)
	return n
}

func (n *IfStmtNode) Type() string { return "IfStmtNode" }

func (n *IfStmtNode) Children() []Node {
	if n.Kind == IfElse {
		return []Node{n.Condition, n.Block1, n.Block2}
	}
	return []Node{n.Condition, n.Block1}
}

func (n *IfStmtNode) Source(summary bool) string {
	var b strings.Builder

	if n.Kind == RepeatWhile {
		b.WriteString("repeat while " + n.Condition.Source(summary))
	} else {
		b.WriteString("if " + n.Condition.Source(summary) + " then")
	}

	if summary {
		if n.Kind == IfElse {
			b.WriteString(" / else")
		}
		return b.String()
	}

	b.WriteByte('\n')
	b.WriteString(n.Block1.Source(summary))
	if n.Kind == IfElse {
		b.WriteString("else\n" + n.Block2.Source(summary))
	}

	if n.Kind == RepeatWhile {
		b.WriteString("end repeat")
	} else {
		b.WriteString("end if")
	}
	return b.String()
}

// CallNode is name(args). Args is normally an arglist literal or ListNode,
// which render without brackets.
type CallNode struct {
	node
	Name string
	Args Node
}

func NewCallNode(name string, args Node) *CallNode {
	n := &CallNode{Name: name, Args: args}
	adopt(n, args)
	return n
}

func (n *CallNode) Type() string     { return "CallNode" }
func (n *CallNode) Children() []Node { return []Node{n.Args} }

func (n *CallNode) Source(summary bool) string {
	return n.Name + "(" + n.Args.Source(summary) + ")"
}

type ObjCallNode struct {
	node
	Obj  Node
	Name string
	Args Node
}

func NewObjCallNode(obj Node, name string, args Node) *ObjCallNode {
	n := &ObjCallNode{Obj: obj, Name: name, Args: args}
	adopt(n, obj, args)
	return n
}

func (n *ObjCallNode) Type() string     { return "ObjCallNode" }
func (n *ObjCallNode) Children() []Node { return []Node{n.Obj, n.Args} }

func (n *ObjCallNode) Source(summary bool) string {
	return n.Obj.Source(summary) + "." + n.Name + "(" + n.Args.Source(summary) + ")"
}

type TheExprNode struct {
	node
	Prop string
}

func NewTheExprNode(prop string) *TheExprNode { return &TheExprNode{Prop: prop} }
func (n *TheExprNode) Type() string           { return "TheExprNode" }
func (n *TheExprNode) Source(bool) string     { return "the " + n.Prop }

type LastStringChunkExprNode struct {
	node
	Chunk  lingo.ChunkType
	String Node
}

func NewLastStringChunkExprNode(kind lingo.ChunkType, str Node) *LastStringChunkExprNode {
	n := &LastStringChunkExprNode{Chunk: kind, String: str}
	adopt(n, str)
	return n
}

func (n *LastStringChunkExprNode) Type() string     { return "LastStringChunkExprNode" }
func (n *LastStringChunkExprNode) Children() []Node { return []Node{n.String} }

func (n *LastStringChunkExprNode) Source(summary bool) string {
	return "the last " + n.Chunk.String() + " in " + n.String.Source(summary)
}

type StringChunkCountExprNode struct {
	node
	Chunk  lingo.ChunkType
	String Node
}

func NewStringChunkCountExprNode(kind lingo.ChunkType, str Node) *StringChunkCountExprNode {
	n := &StringChunkCountExprNode{Chunk: kind, String: str}
	adopt(n, str)
	return n
}

func (n *StringChunkCountExprNode) Type() string     { return "StringChunkCountExprNode" }
func (n *StringChunkCountExprNode) Children() []Node { return []Node{n.String} }

func (n *StringChunkCountExprNode) Source(summary bool) string {
	return "the number of " + n.Chunk.String() + " in " + n.String.Source(summary)
}

// property expressions

type MenuPropExprNode struct {
	node
	MenuID Node
	Prop   uint
}

func NewMenuPropExprNode(menuID Node, prop uint) *MenuPropExprNode {
	n := &MenuPropExprNode{MenuID: menuID, Prop: prop}
	adopt(n, menuID)
	return n
}

func (n *MenuPropExprNode) Type() string     { return "MenuPropExprNode" }
func (n *MenuPropExprNode) Children() []Node { return []Node{n.MenuID} }

func (n *MenuPropExprNode) Source(summary bool) string {
	return "menu(" + n.MenuID.Source(summary) + ")." + lingo.Name(lingo.MenuPropertyNames, n.Prop)
}

type MenuItemPropExprNode struct {
	node
	MenuID, ItemID Node
	Prop           uint
}

func NewMenuItemPropExprNode(menuID, itemID Node, prop uint) *MenuItemPropExprNode {
	n := &MenuItemPropExprNode{MenuID: menuID, ItemID: itemID, Prop: prop}
	adopt(n, menuID, itemID)
	return n
}

func (n *MenuItemPropExprNode) Type() string     { return "MenuItemPropExprNode" }
func (n *MenuItemPropExprNode) Children() []Node { return []Node{n.MenuID, n.ItemID} }

func (n *MenuItemPropExprNode) Source(summary bool) string {
	return "menu(" + n.MenuID.Source(summary) + ").item(" + n.ItemID.Source(summary) + ")." +
		lingo.Name(lingo.MenuItemPropertyNames, n.Prop)
}

type SoundPropExprNode struct {
	node
	SoundID Node
	Prop    uint
}

func NewSoundPropExprNode(soundID Node, prop uint) *SoundPropExprNode {
	n := &SoundPropExprNode{SoundID: soundID, Prop: prop}
	adopt(n, soundID)
	return n
}

func (n *SoundPropExprNode) Type() string     { return "SoundPropExprNode" }
func (n *SoundPropExprNode) Children() []Node { return []Node{n.SoundID} }

func (n *SoundPropExprNode) Source(summary bool) string {
	return "sound(" + n.SoundID.Source(summary) + ")." + lingo.Name(lingo.SoundPropertyNames, n.Prop)
}

type SpritePropExprNode struct {
	node
	SpriteID Node
	Prop     uint
}

func NewSpritePropExprNode(spriteID Node, prop uint) *SpritePropExprNode {
	n := &SpritePropExprNode{SpriteID: spriteID, Prop: prop}
	adopt(n, spriteID)
	return n
}

func (n *SpritePropExprNode) Type() string     { return "SpritePropExprNode" }
func (n *SpritePropExprNode) Children() []Node { return []Node{n.SpriteID} }

func (n *SpritePropExprNode) Source(summary bool) string {
	return "sprite(" + n.SpriteID.Source(summary) + ")." + lingo.Name(lingo.SpritePropertyNames, n.Prop)
}

// CastPropExprNode takes an already resolved property name, since cast
// properties come out of more than one table.
type CastPropExprNode struct {
	node
	CastID Node
	Prop   string
}

func NewCastPropExprNode(castID Node, prop string) *CastPropExprNode {
	n := &CastPropExprNode{CastID: castID, Prop: prop}
	adopt(n, castID)
	return n
}

func (n *CastPropExprNode) Type() string     { return "CastPropExprNode" }
func (n *CastPropExprNode) Children() []Node { return []Node{n.CastID} }

func (n *CastPropExprNode) Source(summary bool) string {
	return "cast(" + n.CastID.Source(summary) + ")." + n.Prop
}

type FieldPropExprNode struct {
	node
	FieldID Node
	Prop    uint
}

func NewFieldPropExprNode(fieldID Node, prop uint) *FieldPropExprNode {
	n := &FieldPropExprNode{FieldID: fieldID, Prop: prop}
	adopt(n, fieldID)
	return n
}

func (n *FieldPropExprNode) Type() string     { return "FieldPropExprNode" }
func (n *FieldPropExprNode) Children() []Node { return []Node{n.FieldID} }

func (n *FieldPropExprNode) Source(summary bool) string {
	return "field(" + n.FieldID.Source(summary) + ")." + lingo.Name(lingo.FieldPropertyNames, n.Prop)
}

// ObjPropExprNode is obj.prop with the name straight from the name table.
type ObjPropExprNode struct {
	node
	Obj  Node
	Prop string
}

func NewObjPropExprNode(obj Node, prop string) *ObjPropExprNode {
	n := &ObjPropExprNode{Obj: obj, Prop: prop}
	adopt(n, obj)
	return n
}

func (n *ObjPropExprNode) Type() string     { return "ObjPropExprNode" }
func (n *ObjPropExprNode) Children() []Node { return []Node{n.Obj} }

func (n *ObjPropExprNode) Source(summary bool) string {
	return n.Obj.Source(summary) + "." + n.Prop
}

type ExitRepeatStmtNode struct{ node }

func NewExitRepeatStmtNode() *ExitRepeatStmtNode { return &ExitRepeatStmtNode{} }
func (n *ExitRepeatStmtNode) Type() string       { return "ExitRepeatStmtNode" }
func (n *ExitRepeatStmtNode) Source(bool) string { return "exit repeat" }

type NextRepeatStmtNode struct{ node }

func NewNextRepeatStmtNode() *NextRepeatStmtNode { return &NextRepeatStmtNode{} }
func (n *NextRepeatStmtNode) Type() string       { return "NextRepeatStmtNode" }
func (n *NextRepeatStmtNode) Source(bool) string { return "next repeat" }

// ListNode is a list, arglist or property list whose items aren't all
// literals, so it can't be folded into a single datum. It renders with the
// same punctuation a datum of Kind would.
type ListNode struct {
	node
	Kind  lingo.DatumType
	Items []Node
}

func NewListNode(kind lingo.DatumType, items ...Node) *ListNode {
	if kind == lingo.DatumPropList {
		items = items[:len(items)&^1]
	}

	n := &ListNode{Kind: kind, Items: items}
	adopt(n, items...)
	return n
}

func (n *ListNode) Type() string     { return "ListNode" }
func (n *ListNode) Children() []Node { return n.Items }

func (n *ListNode) Source(summary bool) string {
	if n.Kind == lingo.DatumPropList {
		if len(n.Items) == 0 {
			return "[:]"
		}

		pairs := make([]string, 0, len(n.Items)/2)
		for i := 0; i+1 < len(n.Items); i += 2 {
			pairs = append(pairs, n.Items[i].Source(summary)+": "+n.Items[i+1].Source(summary))
		}
		return "[" + strings.Join(pairs, ", ") + "]"
	}

	strs := make([]string, len(n.Items))
	for i, item := range n.Items {
		strs[i] = item.Source(summary)
	}

	if n.Kind == lingo.DatumList {
		return "[" + strings.Join(strs, ", ") + "]"
	}
	return strings.Join(strs, ", ")
}
