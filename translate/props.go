package translate

import (
	"github.com/Heliodex/lingodec/ast"
	"github.com/Heliodex/lingodec/lingo"
)

// get and set carry a property category as their operand. The property id is
// on top of the stack, and whatever the property belongs to (a sprite, a
// menu, a string...) is under it.
const (
	propMovie      = 0x00
	propChunkCount = 0x01
	propMenu       = 0x02
	propMenuItem   = 0x03
	propSound      = 0x04
	propSprite     = 0x06
	propMovie07    = 0x07
	propMovie08    = 0x08
	propCast09     = 0x09
	propField      = 0x0a
	propCast0D     = 0x0d
)

// last movie property id in category 0x00; ids past it are "the last chunk"
const lastMovieProp00 = 0x0b

// propertyID reads a property id off n. Anything but a literal number gives
// an id no table knows.
func propertyID(n ast.Node) uint {
	id := n.Value().ToInt()
	if id < 0 || n.Value().Type == lingo.DatumVoid {
		return ^uint(0)
	}
	return uint(id)
}

// propertyExpr pops whatever the property of category cat belongs to and
// builds the expression naming it.
func (t *translator) propertyExpr(cat int32, id uint) ast.Node {
	switch cat {
	case propMovie:
		if id <= lastMovieProp00 {
			return ast.NewTheExprNode(lingo.Name(lingo.MoviePropertyNames00, id))
		}
		return ast.NewLastStringChunkExprNode(lingo.ChunkType(id-lastMovieProp00), t.stack.pop())
	case propChunkCount:
		return ast.NewStringChunkCountExprNode(lingo.ChunkType(id), t.stack.pop())
	case propMenu:
		return ast.NewMenuPropExprNode(t.stack.pop(), id)
	case propMenuItem:
		item := t.stack.pop()
		return ast.NewMenuItemPropExprNode(t.stack.pop(), item, id)
	case propSound:
		return ast.NewSoundPropExprNode(t.stack.pop(), id)
	case propSprite:
		return ast.NewSpritePropExprNode(t.stack.pop(), id)
	case propMovie07:
		return ast.NewTheExprNode(lingo.Name(lingo.MoviePropertyNames07, id))
	case propMovie08:
		return ast.NewTheExprNode(lingo.Name(lingo.MoviePropertyNames08, id))
	case propCast09:
		return ast.NewCastPropExprNode(t.stack.pop(), lingo.Name(lingo.CastPropertyNames09, id))
	case propField:
		return ast.NewFieldPropExprNode(t.stack.pop(), id)
	case propCast0D:
		return ast.NewCastPropExprNode(t.stack.pop(), lingo.Name(lingo.CastPropertyNames0D, id))
	}

	Log.Debug("unknown property category", "category", cat, "id", id)
	return ast.NewErrorNode()
}

func (t *translator) get(cat int32) {
	id := propertyID(t.stack.pop())
	t.stack.push(t.propertyExpr(cat, id))
}

func (t *translator) set(cat int32) {
	id := propertyID(t.stack.pop())
	value := t.stack.pop()
	t.a.AddStatement(ast.NewAssignmentStmtNode(t.propertyExpr(cat, id), value))
}
