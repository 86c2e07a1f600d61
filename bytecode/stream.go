// Package bytecode reads a handler's raw Lingo bytecode into instructions.
package bytecode

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Heliodex/lingodec/lingo"
)

// ErrTruncated means an operand ran past the end of the handler's code.
var ErrTruncated = errors.New("bytecode truncated")

// Lingo bytecode is big-endian (it started out on 68k Macs)
type stream struct {
	data []byte
	pos  uint32
}

func (s *stream) done() bool {
	return s.pos >= uint32(len(s.data))
}

func (s *stream) need(n uint32) error {
	if uint32(len(s.data))-s.pos < n {
		return fmt.Errorf("%w: need %d bytes at %d, have %d", ErrTruncated, n, s.pos, uint32(len(s.data))-s.pos)
	}
	return nil
}

func (s *stream) rByte() (b byte) {
	b = s.data[s.pos]
	s.pos++
	return
}

func (s *stream) rUint16() (w uint16) {
	w = binary.BigEndian.Uint16(s.data[s.pos:])
	s.pos += 2
	return
}

func (s *stream) rUint32() (w uint32) {
	w = binary.BigEndian.Uint32(s.data[s.pos:])
	s.pos += 4
	return
}

// operandSize is how many operand bytes follow an opcode byte. The top two
// bits say it, the bottom six say what the opcode is.
func operandSize(code uint8) uint32 {
	switch {
	case code >= 0xc0:
		return 4
	case code >= 0x80:
		return 2
	case code >= 0x40:
		return 1
	}
	return 0
}

func (s *stream) readInst() (i Instruction, err error) {
	i.Pos = s.pos
	i.Opcode = s.rByte()
	i.Op = lingo.Fold(i.Opcode)

	size := operandSize(i.Opcode)
	if err = s.need(size); err != nil {
		return Instruction{}, fmt.Errorf("reading %s operand: %w", i.Name(), err)
	}

	// pushint operands are signed, everything else is an index or offset
	signed := i.Op == lingo.OpPushInt01 || i.Op == lingo.OpPushInt2E
	switch size {
	case 4:
		i.Operand = int32(s.rUint32())
	case 2:
		if v := s.rUint16(); signed {
			i.Operand = int32(int16(v))
		} else {
			i.Operand = int32(v)
		}
	case 1:
		if v := s.rByte(); signed {
			i.Operand = int32(int8(v))
		} else {
			i.Operand = int32(v)
		}
	}

	i.Size = 1 + size
	return
}
