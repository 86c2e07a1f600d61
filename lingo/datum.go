package lingo

import (
	"math"
	"strconv"
	"strings"
)

type DatumType uint8

const (
	DatumVoid DatumType = iota
	DatumSymbol
	DatumString
	DatumInt
	DatumFloat
	DatumList
	DatumArgList
	DatumArgListNoRet
	DatumPropList
)

var datumTypeNames = map[DatumType]string{
	DatumVoid:         "void",
	DatumSymbol:       "symbol",
	DatumString:       "string",
	DatumInt:          "int",
	DatumFloat:        "float",
	DatumList:         "list",
	DatumArgList:      "arglist",
	DatumArgListNoRet: "arglistnoret",
	DatumPropList:     "proplist",
}

func (t DatumType) String() string {
	return Name(datumTypeNames, t)
}

// IsList reports whether values of this type carry children in L.
func (t DatumType) IsList() bool {
	return t >= DatumList
}

// Datum is a Lingo literal or compound value. Only the field matching Type
// is meaningful. Datums are shared between nodes and must not be mutated once
// built.
type Datum struct {
	Type DatumType
	S    string   // symbol, string
	I    int32    // int
	F    float64  // float
	L    []*Datum // list types; proplists alternate keys and values
}

func Void() *Datum               { return &Datum{} }
func Symbol(s string) *Datum     { return &Datum{Type: DatumSymbol, S: s} }
func String(s string) *Datum     { return &Datum{Type: DatumString, S: s} }
func Int(i int32) *Datum         { return &Datum{Type: DatumInt, I: i} }
func Float(f float64) *Datum     { return &Datum{Type: DatumFloat, F: f} }
func List(l ...*Datum) *Datum    { return &Datum{Type: DatumList, L: l} }
func ArgList(l ...*Datum) *Datum { return &Datum{Type: DatumArgList, L: l} }

func ArgListNoRet(l ...*Datum) *Datum {
	return &Datum{Type: DatumArgListNoRet, L: l}
}

// PropList packs alternating keys and values. A trailing key with no value is
// dropped so the pair count is always whole.
func PropList(kv ...*Datum) *Datum {
	return &Datum{Type: DatumPropList, L: kv[:len(kv)&^1]}
}

// ToInt is the integer meaning of d: ints as-is, floats truncated toward
// zero, 0 for everything else.
func (d *Datum) ToInt() int {
	switch d.Type {
	case DatumInt:
		return int(d.I)
	case DatumFloat:
		if math.IsNaN(d.F) {
			return 0
		}
		return int(max(min(d.F, math.MaxInt32), math.MinInt32))
	}
	return 0
}

// Source renders d as Lingo. Strings are not escaped.
func (d *Datum) Source(summary bool) string {
	switch d.Type {
	case DatumVoid:
		return "VOID"
	case DatumSymbol:
		return "#" + d.S
	case DatumString:
		return "\"" + d.S + "\""
	case DatumInt:
		return strconv.Itoa(int(d.I))
	case DatumFloat:
		return strconv.FormatFloat(d.F, 'f', 6, 64)
	case DatumList:
		return "[" + joinDatums(d.L, summary) + "]"
	case DatumArgList, DatumArgListNoRet:
		return joinDatums(d.L, summary)
	case DatumPropList:
		if len(d.L) == 0 {
			return "[:]"
		}

		pairs := make([]string, 0, len(d.L)/2)
		for i := 0; i+1 < len(d.L); i += 2 {
			pairs = append(pairs, d.L[i].Source(summary)+": "+d.L[i+1].Source(summary))
		}
		return "[" + strings.Join(pairs, ", ") + "]"
	}

	return "ERROR"
}

func (d *Datum) String() string {
	return d.Source(false)
}

func joinDatums(l []*Datum, summary bool) string {
	strs := make([]string, len(l))
	for i, v := range l {
		strs[i] = v.Source(summary)
	}
	return strings.Join(strs, ", ")
}
