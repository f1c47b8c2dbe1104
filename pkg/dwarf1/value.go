package dwarf1

import (
	"fmt"
	"strings"
)

// Value is a decoded attribute value.
type Value interface {
	String() string
}

// Const is an integer valued attribute (addr, ref, data2, data4, data8).
type Const struct {
	Attr Attr
	V    uint64
}

func (v Const) String() string {
	switch v.Attr {
	case AttrLanguage:
		return Lang(v.V).String()
	case AttrFundType:
		return FundType(v.V).String()
	case AttrOrdering:
		return Ordering(v.V).String()
	}
	return fmt.Sprintf("%#x", v.V)
}

// Str is a string valued attribute.
type Str string

func (v Str) String() string {
	return fmt.Sprintf("%q", string(v))
}

// LocOp is one location expression operation.
type LocOp struct {
	Op      Op
	Operand uint32
}

func (o LocOp) String() string {
	if o.Op.HasOperand() {
		return fmt.Sprintf("%s(%#x)", o.Op, o.Operand)
	}
	return o.Op.String()
}

// Location is a location expression block, owned by AttrLocation or AttrReturnAddr.
type Location struct {
	Len uint64
	Ops []LocOp
}

func (v *Location) String() string {
	parts := make([]string, 0, len(v.Ops))
	for _, op := range v.Ops {
		parts = append(parts, op.String())
	}
	return block(v.Len, strings.Join(parts, " "))
}

// ModFundType is a fundamental type with modifiers applied.
type ModFundType struct {
	Len  uint64
	Mods []Modifier
	Type FundType
}

func (v *ModFundType) String() string {
	return block(v.Len, joinMods(v.Mods, v.Type.String()))
}

// ModUserType is a reference to a user defined type with modifiers applied.
type ModUserType struct {
	Len  uint64
	Mods []Modifier
	Ref  uint32
}

func (v *ModUserType) String() string {
	return block(v.Len, joinMods(v.Mods, fmt.Sprintf("%#x", v.Ref)))
}

// Enumerator is one element of an enumeration.
type Enumerator struct {
	Value uint32
	Name  string
}

func (e Enumerator) String() string {
	return fmt.Sprintf("(%d=%q)", e.Value, e.Name)
}

// ElementList is the enumerator list of an enumeration type.
type ElementList struct {
	Len   uint64
	Elems []Enumerator
}

func (v *ElementList) String() string {
	var sb strings.Builder
	for _, e := range v.Elems {
		sb.WriteString(e.String())
	}
	return block(v.Len, sb.String())
}

// Subscript is one array subscript descriptor.
//
// Only FmtET and FmtFtCC are interpreted; every other format is kept as a
// bare selector.
type Subscript struct {
	Format Format
	Elem   *Attribute // FmtET, nil when the nested record did not decode
	Type   FundType   // FmtFtCC
	Lo, Hi uint32     // FmtFtCC
}

func (s Subscript) String() string {
	switch s.Format {
	case FmtET:
		if s.Elem == nil {
			return "ET: ?"
		}
		return "ET: " + s.Elem.Value.String()
	case FmtFtCC:
		return fmt.Sprintf("%s[%d:%d]", s.Type, s.Lo, s.Hi)
	}
	return s.Format.String() + "(unparsed)"
}

// Subscripts is the subscript data block of an array type.
type Subscripts struct {
	Len   uint64
	Items []Subscript
}

func (v *Subscripts) String() string {
	parts := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		parts = append(parts, item.String())
	}
	return block(v.Len, strings.Join(parts, ", "))
}

// Unparsed is a block whose payload is skipped without interpretation.
type Unparsed struct {
	Len uint64
}

func (v *Unparsed) String() string {
	return block(v.Len, "unparsed")
}

func block(n uint64, body string) string {
	if body == "" {
		return fmt.Sprintf("<%d>", n)
	}
	return fmt.Sprintf("<%d> %s", n, body)
}

func joinMods(mods []Modifier, last string) string {
	parts := make([]string, 0, len(mods)+1)
	for _, m := range mods {
		parts = append(parts, m.String())
	}
	return strings.Join(append(parts, last), " ")
}
