package bytecode

import (
	"fmt"
	"strings"

	"github.com/Heliodex/lingodec/lingo"
)

// Instruction is one decoded opcode. Opcode is the raw byte (so unknown ones
// keep the byte they were read as), Op the folded opcode the translator
// switches on.
type Instruction struct {
	Pos, Size uint32
	Opcode    uint8
	Op        lingo.Opcode
	Operand   int32
}

func (i Instruction) Name() string {
	return lingo.OpcodeName(i.Opcode)
}

// Next is the position of the instruction after this one.
func (i Instruction) Next() uint32 {
	return i.Pos + i.Size
}

// IsJump reports whether the instruction transfers control.
func (i Instruction) IsJump() bool {
	switch i.Op {
	case lingo.OpJmp, lingo.OpJmpIfZ, lingo.OpEndRepeat:
		return true
	}
	return false
}

// Target is where a jump lands. jmp and jmpifz count forwards from their own
// position, endrepeat counts backwards.
func (i Instruction) Target() uint32 {
	if i.Op == lingo.OpEndRepeat {
		return i.Pos - uint32(i.Operand)
	}
	return i.Pos + uint32(i.Operand)
}

// String is a disassembly line: position, mnemonic, operand, and for jumps
// where they go.
func (i Instruction) String() string {
	s := fmt.Sprintf("[%3d] %s", i.Pos, i.Name())
	if i.Size > 1 {
		s += fmt.Sprintf(" %d", i.Operand)
	}
	if i.IsJump() {
		s += fmt.Sprintf(" -> [%d]", i.Target())
	}
	return s
}

// Decode reads every instruction in code.
func Decode(code []byte) (insts []Instruction, err error) {
	s := &stream{data: code}
	for !s.done() {
		i, err := s.readInst()
		if err != nil {
			return nil, err
		}
		insts = append(insts, i)
	}
	return
}

// Disassemble lists insts one per line.
func Disassemble(insts []Instruction) string {
	var b strings.Builder
	for _, i := range insts {
		b.WriteString(i.String())
		b.WriteByte('\n')
	}
	return b.String()
}
