// Package translate turns a handler's decoded bytecode back into a syntax
// tree by replaying it against a stack of expressions.
package translate

import (
	"fmt"

	"github.com/Heliodex/lingodec/ast"
	"github.com/Heliodex/lingodec/bytecode"
	"github.com/Heliodex/lingodec/lingo"
	"github.com/inconshreveable/log15"
)

// Log gets anything the translator had to guess about. Discarded unless a
// caller sets a handler (see SetLogHandler).
var Log = log15.New("pkg", "translate")

func init() {
	Log.SetHandler(log15.DiscardHandler())
}

// SetLogHandler sends diagnostics from both translation and tree building to h.
func SetLogHandler(h log15.Handler) {
	Log.SetHandler(h)
	ast.Log.SetHandler(h)
}

// arglist operands beyond this are corrupt, not real argument counts
const maxArgs = 1 << 12

// block is an open if or loop body, closed once translation reaches end.
type block struct {
	end uint32

	// loops only: exit repeat jumps to exit, next repeat to start or to the
	// endrepeat at end
	loop        bool
	start, exit uint32

	// set while in the first half of an if/else, which opens its else
	// branch (running until elseEnd) when it closes
	ifElse  *ast.IfStmtNode
	elseEnd uint32
}

type translator struct {
	h     *ast.Handler
	s     Script
	insts []bytecode.Instruction

	a      *ast.AST
	stack  stack
	blocks []block
	// positions of jumps already accounted for by a block
	skip map[uint32]bool
}

// Translate builds the tree for handler h from its instructions, resolving
// names and literals through s. It always returns a tree: anything it can't
// make sense of comes out as a comment or ERROR.
func Translate(h *ast.Handler, insts []bytecode.Instruction, s Script) *ast.AST {
	t := &translator{
		h:     h,
		s:     s,
		insts: insts,
		a:     ast.New(h),
		skip:  make(map[uint32]bool),
	}

	for i, inst := range insts {
		t.closeBlocks(inst.Pos)
		if t.skip[inst.Pos] {
			continue
		}
		t.translate(i, inst)
	}
	return t.a
}

func (t *translator) enter(b *ast.BlockNode, bl block) {
	t.a.EnterBlock(b)
	t.blocks = append(t.blocks, bl)
}

// closeBlocks leaves every block that ends at or before pos.
func (t *translator) closeBlocks(pos uint32) {
	for len(t.blocks) > 0 {
		last := len(t.blocks) - 1
		b := t.blocks[last]
		if pos < b.end {
			return
		}

		t.blocks = t.blocks[:last]
		t.a.ExitBlock()
		if b.ifElse != nil {
			t.enter(b.ifElse.Block2, block{end: b.elseEnd})
		}
	}
}

// loop is the innermost open loop, if any.
func (t *translator) loop() *block {
	for i := len(t.blocks) - 1; i >= 0; i-- {
		if t.blocks[i].loop {
			return &t.blocks[i]
		}
	}
	return nil
}

// endingAt finds the instruction after i that ends right where target
// starts, or -1.
func (t *translator) endingAt(i int, target uint32) int {
	for j := i + 1; j < len(t.insts) && t.insts[j].Pos < target; j++ {
		if t.insts[j].Next() == target {
			return j
		}
	}
	return -1
}

func (t *translator) unknown(inst bytecode.Instruction) {
	Log.Debug("untranslated instruction", "pos", inst.Pos, "op", inst.Name(), "operand", inst.Operand)
	t.a.AddStatement(ast.NewCommentNode(inst.String()))
}

func (t *translator) argName(id int32) string {
	if id >= 0 && int(id) < len(t.h.ArgumentNames) {
		return t.h.ArgumentNames[id]
	}
	return fmt.Sprintf("UNKNOWN_ARG_%d", id)
}

func (t *translator) localName(id int32) string {
	if id >= 0 && int(id) < len(t.h.LocalNames) {
		return t.h.LocalNames[id]
	}
	return fmt.Sprintf("UNKNOWN_LOCAL_%d", id)
}

func (t *translator) assign(variable ast.Node) {
	t.a.AddStatement(ast.NewAssignmentStmtNode(variable, t.stack.pop()))
}

func (t *translator) translate(i int, inst bytecode.Instruction) {
	op := inst.Op
	if lingo.IsBinaryOp(op) {
		right := t.stack.pop()
		left := t.stack.pop()
		t.stack.push(ast.NewBinaryOpNode(op, left, right))
		return
	}

	switch op {
	case lingo.OpRet:
		// every handler ends in one
		if i < len(t.insts)-1 {
			t.a.AddStatement(ast.NewExitStmtNode())
		}

	// literals
	case lingo.OpPushZero:
		t.stack.push(ast.NewLiteralNode(lingo.Int(0)))
	case lingo.OpPushInt01, lingo.OpPushInt2E:
		t.stack.push(ast.NewLiteralNode(lingo.Int(inst.Operand)))
	case lingo.OpPushCons:
		t.stack.push(ast.NewLiteralNode(t.s.Literal(inst.Operand)))
	case lingo.OpPushSymb:
		t.stack.push(ast.NewLiteralNode(lingo.Symbol(t.s.Name(inst.Operand))))

	// unary
	case lingo.OpInv:
		t.stack.push(ast.NewInverseOpNode(t.stack.pop()))
	case lingo.OpNot:
		t.stack.push(ast.NewNotOpNode(t.stack.pop()))

	// lists
	case lingo.OpPushArgList:
		t.stack.push(argList(lingo.DatumArgList, t.stack.popN(argCount(inst))))
	case lingo.OpPushArgListNoRet:
		t.stack.push(argList(lingo.DatumArgListNoRet, t.stack.popN(argCount(inst))))
	case lingo.OpPushList:
		t.stack.push(relist(lingo.DatumList, t.stack.pop()))
	case lingo.OpPushPropList:
		t.stack.push(relist(lingo.DatumPropList, t.stack.pop()))

	// variables
	case lingo.OpGetGlobal, lingo.OpGetProp:
		t.stack.push(ast.NewVarNode(t.s.Name(inst.Operand)))
	case lingo.OpGetParam:
		t.stack.push(ast.NewVarNode(t.argName(inst.Operand)))
	case lingo.OpGetLocal:
		t.stack.push(ast.NewVarNode(t.localName(inst.Operand)))
	case lingo.OpSetGlobal, lingo.OpSetProp:
		t.assign(ast.NewVarNode(t.s.Name(inst.Operand)))
	case lingo.OpSetParam:
		t.assign(ast.NewVarNode(t.argName(inst.Operand)))
	case lingo.OpSetLocal:
		t.assign(ast.NewVarNode(t.localName(inst.Operand)))

	// calls
	case lingo.OpCallExt:
		t.call(t.s.Name(inst.Operand), t.stack.pop())
	case lingo.OpCallLocal:
		t.call(t.s.HandlerName(inst.Operand), t.stack.pop())
	case lingo.OpCallObj:
		t.objCall(t.s.Name(inst.Operand), t.stack.pop())

	// properties
	case lingo.OpGetObjProp:
		t.stack.push(ast.NewObjPropExprNode(t.stack.pop(), t.s.Name(inst.Operand)))
	case lingo.OpSetObjProp:
		value := t.stack.pop()
		prop := ast.NewObjPropExprNode(t.stack.pop(), t.s.Name(inst.Operand))
		t.a.AddStatement(ast.NewAssignmentStmtNode(prop, value))
	case lingo.OpGetMovieProp:
		t.stack.push(ast.NewTheExprNode(t.s.Name(inst.Operand)))
	case lingo.OpSetMovieProp:
		t.assign(ast.NewTheExprNode(t.s.Name(inst.Operand)))
	case lingo.OpGet:
		t.get(inst.Operand)
	case lingo.OpSet:
		t.set(inst.Operand)

	// strings, fields, sprites
	case lingo.OpSplitStr:
		t.splitStr()
	case lingo.OpHiliteStr:
		t.hiliteStr()
	case lingo.OpCastStr:
		t.stack.push(ast.NewFieldExprNode(t.stack.pop()))
	case lingo.OpOntoSpr:
		second := t.stack.pop()
		t.stack.push(ast.NewSpriteIntersectsExprNode(t.stack.pop(), second))
	case lingo.OpIntoSpr:
		second := t.stack.pop()
		t.stack.push(ast.NewSpriteWithinExprNode(t.stack.pop(), second))

	// control flow
	case lingo.OpJmpIfZ:
		t.jmpIfZ(i, inst)
	case lingo.OpJmp:
		t.jmp(inst)

	default:
		t.unknown(inst)
	}
}

// jmpIfZ opens an if, if/else or repeat while, telling them apart by the
// last instruction of the body it jumps over.
func (t *translator) jmpIfZ(i int, inst bytecode.Instruction) {
	cond := t.stack.pop()
	target := inst.Target()

	var end *bytecode.Instruction
	if j := t.endingAt(i, target); j != -1 {
		end = &t.insts[j]
	}

	switch {
	case end != nil && end.Op == lingo.OpEndRepeat && end.Target() <= inst.Pos:
		n := ast.NewIfStmtNode(ast.RepeatWhile, cond)
		t.a.AddStatement(n)
		t.skip[end.Pos] = true
		t.enter(n.Block1, block{
			end:   end.Pos,
			loop:  true,
			start: end.Target(),
			exit:  target,
		})

	case end != nil && end.Op == lingo.OpJmp && end.Target() > target && !t.exitsLoop(end.Target()):
		n := ast.NewIfStmtNode(ast.IfElse, cond)
		t.a.AddStatement(n)
		t.skip[end.Pos] = true
		t.enter(n.Block1, block{
			end:     end.Pos,
			ifElse:  n,
			elseEnd: end.Target(),
		})

	default:
		n := ast.NewIfStmtNode(ast.If, cond)
		t.a.AddStatement(n)
		t.enter(n.Block1, block{end: target})
	}
}

// exitsLoop reports whether a jump to target leaves the innermost loop.
func (t *translator) exitsLoop(target uint32) bool {
	l := t.loop()
	return l != nil && target == l.exit
}

// jmp is only left over for exit repeat and next repeat, the other jumps
// belong to blocks.
func (t *translator) jmp(inst bytecode.Instruction) {
	if l := t.loop(); l != nil {
		switch inst.Target() {
		case l.exit:
			t.a.AddStatement(ast.NewExitRepeatStmtNode())
			return
		case l.start, l.end:
			t.a.AddStatement(ast.NewNextRepeatStmtNode())
			return
		}
	}
	t.unknown(inst)
}
