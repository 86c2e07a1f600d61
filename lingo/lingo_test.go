package lingo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeNames(t *testing.T) {
	tests := []struct {
		code uint8
		name string
	}{
		{0x01, "ret"},
		{0x03, "pushzero"},
		{0x05, "add"},
		{0x1f, "pushproplist"},
		{0x41, "pushint01"},
		{0x81, "pushint01"}, // 2-byte operand
		{0xc1, "pushint01"}, // 4-byte operand
		{0x57, "extcall"},
		{0x97, "extcall"},
		{0x6e, "pushint2E"},
		{0x00, "unk00"},
		{0x02, "unk02"},
		{0x20, "unk20"},
		{0x7f, "unk7F"},
		{0xbf, "unkBF"},
		{0xff, "unkFF"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, OpcodeName(tt.code), "code %#02x", tt.code)
	}
}

func TestWideOpcodeAliasing(t *testing.T) {
	for c := 0x40; c <= 0xff; c++ {
		folded := uint8(0x40 + c%0x40)
		want := OpcodeName(folded)
		got := OpcodeName(uint8(c))

		if _, ok := OpcodeNames[Opcode(folded)]; ok {
			assert.Equal(t, want, got, "code %#02x", c)
		} else {
			// unknown names keep the unfolded byte
			assert.Equal(t, fmt.Sprintf("unk%02X", c), got)
		}
	}
}

func TestPropertyNames(t *testing.T) {
	assert.Equal(t, "locH", Name(SpritePropertyNames, 0x0d))
	assert.Equal(t, "ERROR", Name(SpritePropertyNames, 0x09))
	assert.Equal(t, "number of menuItems", Name(MenuPropertyNames, 0x02))
	assert.Equal(t, "ERROR", Name(MenuPropertyNames, 0x00))
	assert.Equal(t, "checkMark", Name(MenuItemPropertyNames, 0x02))
	assert.Equal(t, "volume", Name(SoundPropertyNames, 0x01))
	assert.Equal(t, "ERROR", Name(SoundPropertyNames, 0x02))
	assert.Equal(t, "long date", Name(MoviePropertyNames00, 0x0b))
	assert.Equal(t, "ERROR", Name(MoviePropertyNames00, 0x0c))
	assert.Equal(t, "timer", Name(MoviePropertyNames07, 0x22))
	assert.Equal(t, "number of castMembers", Name(MoviePropertyNames08, 0x02))
	assert.Equal(t, "backColor", Name(CastPropertyNames09, 0x12))
	assert.Equal(t, "sound", Name(CastPropertyNames0D, 0x01))
	assert.Equal(t, "textSize", Name(FieldPropertyNames, 0x07))
	assert.Equal(t, "ERROR", Name(FieldPropertyNames, 0x01))

	assert.Equal(t, "item", ChunkItem.String())
	assert.Equal(t, "ERROR", ChunkType(9).String())

	assert.Equal(t, "starts", BinaryOpName(OpContains0Str))
	assert.Equal(t, "ERROR", BinaryOpName(OpNot))
	assert.True(t, IsBinaryOp(OpJoinPadStr))
	assert.False(t, IsBinaryOp(OpInv))
}

func TestDatumToInt(t *testing.T) {
	assert.Equal(t, 5, Int(5).ToInt())
	assert.Equal(t, -7, Int(-7).ToInt())
	assert.Equal(t, 3, Float(3.9).ToInt())
	assert.Equal(t, -3, Float(-3.9).ToInt())
	assert.Equal(t, 0, Void().ToInt())
	assert.Equal(t, 0, String("x").ToInt())
	assert.Equal(t, 0, String("12").ToInt())
	assert.Equal(t, 0, Symbol("a").ToInt())
	assert.Equal(t, 0, List(Int(1)).ToInt())
	assert.Equal(t, 0, PropList().ToInt())
}

func TestDatumSource(t *testing.T) {
	tests := []struct {
		d   *Datum
		out string
	}{
		{Void(), "VOID"},
		{Symbol("foo"), "#foo"},
		{String("hi"), `"hi"`},
		{String(`say "hi"`), `"say "hi""`}, // no escaping
		{Int(42), "42"},
		{Int(-1), "-1"},
		{Float(1.5), "1.500000"},
		{Float(0), "0.000000"},
		{List(), "[]"},
		{List(Int(1), String("a"), Symbol("b")), `[1, "a", #b]`},
		{List(List(), List(Int(1))), "[[], [1]]"},
		{ArgList(), ""},
		{ArgList(Int(1), Int(2)), "1, 2"},
		{ArgListNoRet(String("x")), `"x"`},
		{PropList(), "[:]"},
		{PropList(Symbol("a"), Int(1), Symbol("b"), Int(2)), "[#a: 1, #b: 2]"},
		{PropList(String("k"), List(Int(1))), `["k": [1]]`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, tt.d.Source(false))
		assert.Equal(t, tt.out, tt.d.Source(true), "summary doesn't change datums")
		assert.Equal(t, tt.out, tt.d.String())
	}
}

func TestPropListEven(t *testing.T) {
	d := PropList(Symbol("a"), Int(1), Symbol("dangling"))
	assert.Len(t, d.L, 2)
	assert.Equal(t, "[#a: 1]", d.Source(false))
}

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "café", DecodeText([]byte{'c', 'a', 'f', 0x8e}))
	assert.Equal(t, "Ä", DecodeText([]byte{0x80}))
	assert.Equal(t, "plain", DecodeText([]byte("plain")))
	assert.Equal(t, `"café"`, StringFromRaw([]byte{'c', 'a', 'f', 0x8e}).Source(false))
}

func TestDatumTypeNames(t *testing.T) {
	assert.Equal(t, "proplist", DatumPropList.String())
	assert.Equal(t, "arglistnoret", DatumArgListNoRet.String())
	assert.Equal(t, "ERROR", DatumType(99).String())
}
