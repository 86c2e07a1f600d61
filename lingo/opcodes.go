// Package lingo holds the name tables and value model shared by the decoder,
// translator and AST.
package lingo

import "fmt"

// Opcode is a Lingo bytecode opcode. Wide opcodes (>= 0x40) carry an operand
// and only their low 6 bits pick the operation.
type Opcode uint8

// single-byte
const (
	OpRet          Opcode = 0x01
	OpPushZero     Opcode = 0x03
	OpMul          Opcode = 0x04
	OpAdd          Opcode = 0x05
	OpSub          Opcode = 0x06
	OpDiv          Opcode = 0x07
	OpMod          Opcode = 0x08
	OpInv          Opcode = 0x09
	OpJoinStr      Opcode = 0x0a
	OpJoinPadStr   Opcode = 0x0b
	OpLt           Opcode = 0x0c
	OpLtEq         Opcode = 0x0d
	OpNtEq         Opcode = 0x0e
	OpEq           Opcode = 0x0f
	OpGt           Opcode = 0x10
	OpGtEq         Opcode = 0x11
	OpAnd          Opcode = 0x12
	OpOr           Opcode = 0x13
	OpNot          Opcode = 0x14
	OpContainsStr  Opcode = 0x15
	OpContains0Str Opcode = 0x16
	OpSplitStr     Opcode = 0x17
	OpHiliteStr    Opcode = 0x18
	OpOntoSpr      Opcode = 0x19
	OpIntoSpr      Opcode = 0x1a
	OpCastStr      Opcode = 0x1b
	OpStartObj     Opcode = 0x1c
	OpStopObj      Opcode = 0x1d
	OpPushList     Opcode = 0x1e
	OpPushPropList Opcode = 0x1f
)

// multi-byte
const (
	OpPushInt01        Opcode = 0x41
	OpPushArgListNoRet Opcode = 0x42
	OpPushArgList      Opcode = 0x43
	OpPushCons         Opcode = 0x44
	OpPushSymb         Opcode = 0x45
	OpGetGlobal        Opcode = 0x49
	OpGetProp          Opcode = 0x4a
	OpGetParam         Opcode = 0x4b
	OpGetLocal         Opcode = 0x4c
	OpSetGlobal        Opcode = 0x4f
	OpSetProp          Opcode = 0x50
	OpSetParam         Opcode = 0x51
	OpSetLocal         Opcode = 0x52
	OpJmp              Opcode = 0x53
	OpEndRepeat        Opcode = 0x54
	OpJmpIfZ           Opcode = 0x55
	OpCallLocal        Opcode = 0x56
	OpCallExt          Opcode = 0x57
	OpCallObjOld       Opcode = 0x58
	Op59XX             Opcode = 0x59
	Op5BXX             Opcode = 0x5b
	OpGet              Opcode = 0x5c
	OpSet              Opcode = 0x5d
	OpGetMovieProp     Opcode = 0x5f
	OpSetMovieProp     Opcode = 0x60
	OpGetObjProp       Opcode = 0x61
	OpSetObjProp       Opcode = 0x62
	OpGetMovieInfo     Opcode = 0x64
	OpCallObj          Opcode = 0x67
	OpPushInt2E        Opcode = 0x6e
)

// OpcodeNames maps folded opcodes to their disassembly mnemonics.
var OpcodeNames = map[Opcode]string{
	// single-byte
	OpRet:          "ret",
	OpPushZero:     "pushzero",
	OpMul:          "mul",
	OpAdd:          "add",
	OpSub:          "sub",
	OpDiv:          "div",
	OpMod:          "mod",
	OpInv:          "inv",
	OpJoinStr:      "joinstr",
	OpJoinPadStr:   "joinpadstr",
	OpLt:           "lt",
	OpLtEq:         "lteq",
	OpNtEq:         "nteq",
	OpEq:           "eq",
	OpGt:           "gt",
	OpGtEq:         "gteq",
	OpAnd:          "and",
	OpOr:           "or",
	OpNot:          "not",
	OpContainsStr:  "containsstr",
	OpContains0Str: "contains0str",
	OpSplitStr:     "splitstr",
	OpHiliteStr:    "hilitestr",
	OpOntoSpr:      "ontospr",
	OpIntoSpr:      "intospr",
	OpCastStr:      "caststr",
	OpStartObj:     "startobj",
	OpStopObj:      "stopobj",
	OpPushList:     "pushlist",
	OpPushPropList: "pushproplist",

	// multi-byte
	OpPushInt01:        "pushint01",
	OpPushArgListNoRet: "pusharglistnoret",
	OpPushArgList:      "pusharglist",
	OpPushCons:         "pushcons",
	OpPushSymb:         "pushsymb",
	OpGetGlobal:        "getglobal",
	OpGetProp:          "getprop",
	OpGetParam:         "getparam",
	OpGetLocal:         "getlocal",
	OpSetGlobal:        "setglobal",
	OpSetProp:          "setprop",
	OpSetParam:         "setparam",
	OpSetLocal:         "setlocal",
	OpJmp:              "jmp",
	OpEndRepeat:        "endrepeat",
	OpJmpIfZ:           "jmpifz",
	OpCallLocal:        "localcall",
	OpCallExt:          "extcall",
	OpCallObjOld:       "oldobjcall",
	Op59XX:             "op59xx",
	Op5BXX:             "op5Bxx",
	OpGet:              "get",
	OpSet:              "set",
	OpGetMovieProp:     "getmovieprop",
	OpSetMovieProp:     "setmovieprop",
	OpGetObjProp:       "getobjprop",
	OpSetObjProp:       "setobjprop",
	OpGetMovieInfo:     "getmovieinfo",
	OpCallObj:          "objcall",
	OpPushInt2E:        "pushint2E",
}

// BinaryOpNames maps binary operator opcodes to their source symbols.
var BinaryOpNames = map[Opcode]string{
	OpMul:          "*",
	OpAdd:          "+",
	OpSub:          "-",
	OpDiv:          "/",
	OpMod:          "mod",
	OpJoinStr:      "&",
	OpJoinPadStr:   "&&",
	OpLt:           "<",
	OpLtEq:         "<=",
	OpNtEq:         "<>",
	OpEq:           "=",
	OpGt:           ">",
	OpGtEq:         ">=",
	OpAnd:          "and",
	OpOr:           "or",
	OpContainsStr:  "contains",
	OpContains0Str: "starts",
}

// Fold maps a raw opcode byte onto the opcode it stands for. Anything >= 0x40
// only differs in how wide its operand is.
func Fold(code uint8) Opcode {
	if code >= 0x40 {
		return Opcode(0x40 + code%0x40)
	}
	return Opcode(code)
}

// OpcodeName resolves a raw opcode byte to its mnemonic, or "unkXX" (with the
// unfolded byte) when nothing is known about it.
func OpcodeName(code uint8) string {
	if name, ok := OpcodeNames[Fold(code)]; ok {
		return name
	}
	return fmt.Sprintf("unk%02X", code)
}

// String only makes sense for folded opcodes; raw bytes should go through OpcodeName.
func (op Opcode) String() string {
	return OpcodeName(uint8(op))
}

// IsBinaryOp reports whether op pops two operands and pushes a BinaryOpNode.
func IsBinaryOp(op Opcode) bool {
	_, ok := BinaryOpNames[op]
	return ok
}

// BinaryOpName is the source symbol for op, or "ERROR".
func BinaryOpName(op Opcode) string {
	return Name(BinaryOpNames, op)
}
