package dwarf1

import "fmt"

// Tag classifies a debugging information entry.
type Tag uint16

const (
	TagPadding               Tag = 0x0000
	TagArrayType             Tag = 0x0001
	TagClassType             Tag = 0x0002
	TagEntryPoint            Tag = 0x0003
	TagEnumerationType       Tag = 0x0004
	TagFormalParameter       Tag = 0x0005
	TagGlobalSubroutine      Tag = 0x0006
	TagGlobalVariable        Tag = 0x0007
	TagLabel                 Tag = 0x000a
	TagLexicalBlock          Tag = 0x000b
	TagLocalVariable         Tag = 0x000c
	TagMember                Tag = 0x000d
	TagPointerType           Tag = 0x000f
	TagReferenceType         Tag = 0x0010
	TagCompileUnit           Tag = 0x0011
	TagStringType            Tag = 0x0012
	TagStructureType         Tag = 0x0013
	TagSubroutine            Tag = 0x0014
	TagSubroutineType        Tag = 0x0015
	TagTypedef               Tag = 0x0016
	TagUnionType             Tag = 0x0017
	TagUnspecifiedParameters Tag = 0x0018
	TagVariant               Tag = 0x0019
	TagCommonBlock           Tag = 0x001a
	TagCommonInclusion       Tag = 0x001b
	TagInheritance           Tag = 0x001c
	TagInlinedSubroutine     Tag = 0x001d
	TagModule                Tag = 0x001e
	TagPtrToMemberType       Tag = 0x001f
	TagSetType               Tag = 0x0020
	TagSubrangeType          Tag = 0x0021
	TagWithStmt              Tag = 0x0022
	TagLoUser                Tag = 0x4080
	TagHiUser                Tag = 0xffff
)

var tagNames = map[Tag]string{
	TagPadding:               "padding",
	TagArrayType:             "array_type",
	TagClassType:             "class_type",
	TagEntryPoint:            "entry_point",
	TagEnumerationType:       "enumeration_type",
	TagFormalParameter:       "formal_parameter",
	TagGlobalSubroutine:      "global_subroutine",
	TagGlobalVariable:        "global_variable",
	TagLabel:                 "label",
	TagLexicalBlock:          "lexical_block",
	TagLocalVariable:         "local_variable",
	TagMember:                "member",
	TagPointerType:           "pointer_type",
	TagReferenceType:         "reference_type",
	TagCompileUnit:           "compile_unit",
	TagStringType:            "string_type",
	TagStructureType:         "structure_type",
	TagSubroutine:            "subroutine",
	TagSubroutineType:        "subroutine_type",
	TagTypedef:               "typedef",
	TagUnionType:             "union_type",
	TagUnspecifiedParameters: "unspecified_parameters",
	TagVariant:               "variant",
	TagCommonBlock:           "common_block",
	TagCommonInclusion:       "common_inclusion",
	TagInheritance:           "inheritance",
	TagInlinedSubroutine:     "inlined_subroutine",
	TagModule:                "module",
	TagPtrToMemberType:       "ptr_to_member_type",
	TagSetType:               "set_type",
	TagSubrangeType:          "subrange_type",
	TagWithStmt:              "with_stmt",
	TagLoUser:                "lo_user",
	TagHiUser:                "hi_user",
}

// Known reports whether t is a member of the tag table.
func (t Tag) Known() bool {
	_, ok := tagNames[t]
	return ok
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint16(t))
}

// Form is the value encoding selected by the low 4 bits of an attribute key.
type Form uint8

const (
	FormAddr   Form = 0x1
	FormRef    Form = 0x2
	FormBlock2 Form = 0x3
	FormBlock4 Form = 0x4
	FormData2  Form = 0x5
	FormData4  Form = 0x6
	FormData8  Form = 0x7
	FormString Form = 0x8
)

var formNames = map[Form]string{
	FormAddr:   "addr",
	FormRef:    "ref",
	FormBlock2: "block2",
	FormBlock4: "block4",
	FormData2:  "data2",
	FormData4:  "data4",
	FormData8:  "data8",
	FormString: "string",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint8(f))
}

// Attr is an attribute code, the high 12 bits of an attribute key.
type Attr uint16

const (
	AttrSibling         Attr = 0x0010
	AttrLocation        Attr = 0x0020
	AttrName            Attr = 0x0030
	AttrFundType        Attr = 0x0050
	AttrModFundType     Attr = 0x0060
	AttrUserDefType     Attr = 0x0070
	AttrModUDType       Attr = 0x0080
	AttrOrdering        Attr = 0x0090
	AttrSubscrData      Attr = 0x00a0
	AttrByteSize        Attr = 0x00b0
	AttrBitOffset       Attr = 0x00c0
	AttrBitSize         Attr = 0x00d0
	AttrElementList     Attr = 0x00f0
	AttrStmtList        Attr = 0x0100
	AttrLowPC           Attr = 0x0110
	AttrHighPC          Attr = 0x0120
	AttrLanguage        Attr = 0x0130
	AttrMember          Attr = 0x0140
	AttrDiscr           Attr = 0x0150
	AttrDiscrValue      Attr = 0x0160
	AttrStringLength    Attr = 0x0190
	AttrCommonReference Attr = 0x01a0
	AttrCompDir         Attr = 0x01b0
	AttrConstValue      Attr = 0x01c0
	AttrContainingType  Attr = 0x01d0
	AttrDefaultValue    Attr = 0x01e0
	AttrFriends         Attr = 0x01f0
	AttrInline          Attr = 0x0200
	AttrIsOptional      Attr = 0x0210
	AttrLowerBound      Attr = 0x0220
	AttrProgram         Attr = 0x0230
	AttrPrivate         Attr = 0x0240
	AttrProducer        Attr = 0x0250
	AttrProtected       Attr = 0x0260
	AttrPrototyped      Attr = 0x0270
	AttrPublic          Attr = 0x0280
	AttrPureVirtual     Attr = 0x0290
	AttrReturnAddr      Attr = 0x02a0
	AttrSpecification   Attr = 0x02b0
	AttrStartScope      Attr = 0x02c0
	AttrStrideSize      Attr = 0x02e0
	AttrUpperBound      Attr = 0x02f0
	AttrVirtual         Attr = 0x0300
	AttrLoUser          Attr = 0x2000
	AttrMWCustom        Attr = 0x2340
	AttrHiUser          Attr = 0x3ff0

	// AttrGlobalRef is emitted by Metrowerks compilers inside subroutines to
	// reference a global variable. It has no entry in the attribute table and
	// only appears with FormRef.
	AttrGlobalRef Attr = 0x2020
)

var attrNames = map[Attr]string{
	AttrSibling:         "sibling",
	AttrLocation:        "location",
	AttrName:            "name",
	AttrFundType:        "fund_type",
	AttrModFundType:     "mod_fund_type",
	AttrUserDefType:     "user_def_type",
	AttrModUDType:       "mod_u_d_type",
	AttrOrdering:        "ordering",
	AttrSubscrData:      "subscr_data",
	AttrByteSize:        "byte_size",
	AttrBitOffset:       "bit_offset",
	AttrBitSize:         "bit_size",
	AttrElementList:     "element_list",
	AttrStmtList:        "stmt_list",
	AttrLowPC:           "low_pc",
	AttrHighPC:          "high_pc",
	AttrLanguage:        "language",
	AttrMember:          "member",
	AttrDiscr:           "discr",
	AttrDiscrValue:      "discr_value",
	AttrStringLength:    "string_length",
	AttrCommonReference: "common_reference",
	AttrCompDir:         "comp_dir",
	AttrConstValue:      "const_value",
	AttrContainingType:  "containing_type",
	AttrDefaultValue:    "default_value",
	AttrFriends:         "friends",
	AttrInline:          "inline",
	AttrIsOptional:      "is_optional",
	AttrLowerBound:      "lower_bound",
	AttrProgram:         "program",
	AttrPrivate:         "private",
	AttrProducer:        "producer",
	AttrProtected:       "protected",
	AttrPrototyped:      "prototyped",
	AttrPublic:          "public",
	AttrPureVirtual:     "pure_virtual",
	AttrReturnAddr:      "return_addr",
	AttrSpecification:   "specification",
	AttrStartScope:      "start_scope",
	AttrStrideSize:      "stride_size",
	AttrUpperBound:      "upper_bound",
	AttrVirtual:         "virtual",
	AttrLoUser:          "lo_user",
	AttrMWCustom:        "mw_custom",
	AttrHiUser:          "hi_user",
}

// Known reports whether a is a member of the attribute table.
func (a Attr) Known() bool {
	_, ok := attrNames[a]
	return ok
}

func (a Attr) String() string {
	if name, ok := attrNames[a]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint16(a))
}

// Op is a location expression opcode.
type Op uint8

const (
	OpReg     Op = 0x01
	OpBaseReg Op = 0x02
	OpAddr    Op = 0x03
	OpConst   Op = 0x04
	OpDeref2  Op = 0x05
	OpDeref4  Op = 0x06 // also OP_DEREF
	OpAdd     Op = 0x07
	OpLoUser  Op = 0xe0
	OpHiUser  Op = 0xff
)

var opNames = map[Op]string{
	OpReg:     "reg",
	OpBaseReg: "basereg",
	OpAddr:    "addr",
	OpConst:   "const",
	OpDeref2:  "deref2",
	OpDeref4:  "deref4",
	OpAdd:     "add",
	OpLoUser:  "lo_user",
	OpHiUser:  "hi_user",
}

// Known reports whether o is a member of the opcode table.
func (o Op) Known() bool {
	_, ok := opNames[o]
	return ok
}

// HasOperand reports whether o is followed by a 4-byte operand.
func (o Op) HasOperand() bool {
	switch o {
	case OpReg, OpBaseReg, OpAddr, OpConst:
		return true
	}
	return false
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint8(o))
}

// FundType is a fundamental (built-in) type code.
type FundType uint16

const (
	FtChar             FundType = 0x0001
	FtSignedChar       FundType = 0x0002
	FtUnsignedChar     FundType = 0x0003
	FtShort            FundType = 0x0004
	FtSignedShort      FundType = 0x0005
	FtUnsignedShort    FundType = 0x0006
	FtInteger          FundType = 0x0007
	FtSignedInteger    FundType = 0x0008
	FtUnsignedInteger  FundType = 0x0009
	FtLong             FundType = 0x000a
	FtSignedLong       FundType = 0x000b
	FtUnsignedLong     FundType = 0x000c
	FtPointer          FundType = 0x000d
	FtFloat            FundType = 0x000e
	FtDblPrecFloat     FundType = 0x000f
	FtExtPrecFloat     FundType = 0x0010
	FtComplex          FundType = 0x0011
	FtDblPrecComplex   FundType = 0x0012
	FtVoid             FundType = 0x0014
	FtBoolean          FundType = 0x0015
	FtExtPrecComplex   FundType = 0x0016
	FtLabel            FundType = 0x0017
	FtLoUser           FundType = 0x8000
	FtSignedLongLong   FundType = 0x8008 // Metrowerks
	FtUnsignedLongLong FundType = 0x8208 // Metrowerks
	FtHiUser           FundType = 0xffff
)

var fundTypeNames = map[FundType]string{
	FtChar:             "char",
	FtSignedChar:       "signed_char",
	FtUnsignedChar:     "unsigned_char",
	FtShort:            "short",
	FtSignedShort:      "signed_short",
	FtUnsignedShort:    "unsigned_short",
	FtInteger:          "integer",
	FtSignedInteger:    "signed_integer",
	FtUnsignedInteger:  "unsigned_integer",
	FtLong:             "long",
	FtSignedLong:       "signed_long",
	FtUnsignedLong:     "unsigned_long",
	FtPointer:          "pointer",
	FtFloat:            "float",
	FtDblPrecFloat:     "dbl_prec_float",
	FtExtPrecFloat:     "ext_prec_float",
	FtComplex:          "complex",
	FtDblPrecComplex:   "dbl_prec_complex",
	FtVoid:             "void",
	FtBoolean:          "boolean",
	FtExtPrecComplex:   "ext_prec_complex",
	FtLabel:            "label",
	FtLoUser:           "lo_user",
	FtSignedLongLong:   "signed_long_long",
	FtUnsignedLongLong: "unsigned_long_long",
	FtHiUser:           "hi_user",
}

func (f FundType) String() string {
	if name, ok := fundTypeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint16(f))
}

// Modifier is a type modifier code inside a modified type block.
type Modifier uint8

const (
	ModPointerTo   Modifier = 0x01
	ModReferenceTo Modifier = 0x02
	ModConst       Modifier = 0x03
	ModVolatile    Modifier = 0x04
	ModLoUser      Modifier = 0x80
	ModHiUser      Modifier = 0xff
)

var modifierNames = map[Modifier]string{
	ModPointerTo:   "pointer_to",
	ModReferenceTo: "reference_to",
	ModConst:       "const",
	ModVolatile:    "volatile",
	ModLoUser:      "lo_user",
	ModHiUser:      "hi_user",
}

func (m Modifier) String() string {
	if name, ok := modifierNames[m]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint8(m))
}

// Lang is a source language code.
type Lang uint32

const (
	LangC89       Lang = 0x00000001
	LangC         Lang = 0x00000002
	LangAda83     Lang = 0x00000003
	LangCPlusPlus Lang = 0x00000004
	LangCobol74   Lang = 0x00000005
	LangCobol85   Lang = 0x00000006
	LangFortran77 Lang = 0x00000007
	LangFortran90 Lang = 0x00000008
	LangPascal83  Lang = 0x00000009
	LangModula2   Lang = 0x0000000a
	LangLoUser    Lang = 0x00008000
	LangHiUser    Lang = 0x0000ffff
)

var langNames = map[Lang]string{
	LangC89:       "C89",
	LangC:         "C",
	LangAda83:     "ADA83",
	LangCPlusPlus: "C_PLUS_PLUS",
	LangCobol74:   "COBOL74",
	LangCobol85:   "COBOL85",
	LangFortran77: "FORTRAN77",
	LangFortran90: "FORTRAN90",
	LangPascal83:  "PASCAL83",
	LangModula2:   "MODULA2",
	LangLoUser:    "lo_user",
	LangHiUser:    "hi_user",
}

func (l Lang) String() string {
	if name, ok := langNames[l]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint32(l))
}

// Ordering is the array ordering code of AttrOrdering.
type Ordering uint16

const (
	OrdRowMajor Ordering = 0
	OrdColMajor Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case OrdRowMajor:
		return "row_major"
	case OrdColMajor:
		return "col_major"
	}
	return fmt.Sprintf("%#x", uint16(o))
}

// Format selects the shape of one array subscript descriptor.
type Format uint8

const (
	FmtFtCC Format = 0x0
	FmtFtCX Format = 0x1
	FmtFtXC Format = 0x2
	FmtFtXX Format = 0x3
	FmtUtCC Format = 0x4
	FmtUtCX Format = 0x5
	FmtUtXC Format = 0x6
	FmtUtXX Format = 0x7
	FmtET   Format = 0x8
)

var formatNames = map[Format]string{
	FmtFtCC: "FT_C_C",
	FmtFtCX: "FT_C_X",
	FmtFtXC: "FT_X_C",
	FmtFtXX: "FT_X_X",
	FmtUtCC: "UT_C_C",
	FmtUtCX: "UT_C_X",
	FmtUtXC: "UT_X_C",
	FmtUtXX: "UT_X_X",
	FmtET:   "ET",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("%#x", uint8(f))
}
