package dwarf1

import "fmt"

const (
	attrMask = 0xfff0
	formMask = 0x000f
)

// Key is a raw attribute key: attribute code in the high 12 bits, form in the
// low 4 bits.
type Key uint16

// KeyGlobalRef is the only legal encoding of AttrGlobalRef.
const KeyGlobalRef = Key(uint16(AttrGlobalRef) | uint16(FormRef))

func makeKey(a Attr, f Form) Key {
	return Key(uint16(a) | uint16(f))
}

// Attr returns the attribute code of k.
func (k Key) Attr() Attr {
	return Attr(k & attrMask)
}

// Form returns the value encoding of k.
func (k Key) Form() Form {
	return Form(k & formMask)
}

// Valid reports whether k is a legal (attribute, form) combination.
func (k Key) Valid() bool {
	_, ok := validKeys[k]
	return ok
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Attr(), k.Form())
}

var validKeys = func() map[Key]struct{} {
	m := make(map[Key]struct{})
	add := func(a Attr, forms ...Form) {
		for _, f := range forms {
			m[makeKey(a, f)] = struct{}{}
		}
	}
	userForms := []Form{FormAddr, FormRef, FormBlock2, FormData2, FormData4, FormData8, FormString}

	add(AttrSibling, FormRef)
	add(AttrLocation, FormBlock2)
	add(AttrName, FormString)
	add(AttrFundType, FormData2)
	add(AttrModFundType, FormBlock2)
	add(AttrUserDefType, FormRef)
	add(AttrModUDType, FormBlock2)
	add(AttrOrdering, FormData2)
	add(AttrSubscrData, FormBlock2)
	add(AttrByteSize, FormData4)
	add(AttrBitOffset, FormData2)
	add(AttrBitSize, FormData4)
	add(AttrElementList, FormBlock4)
	add(AttrStmtList, FormData4)
	add(AttrLowPC, FormAddr)
	add(AttrHighPC, FormAddr)
	add(AttrLanguage, FormData4)
	add(AttrMember, FormRef)
	add(AttrDiscr, FormRef)
	add(AttrDiscrValue, FormBlock2)
	add(AttrStringLength, FormBlock2)
	add(AttrCommonReference, FormRef)
	add(AttrCompDir, FormString)
	add(AttrConstValue, FormString, FormData2, FormData4, FormData8, FormBlock2, FormBlock4)
	add(AttrContainingType, FormRef)
	add(AttrDefaultValue, FormAddr, FormData2, FormData8, FormString)
	add(AttrFriends, FormBlock2)
	add(AttrInline, FormString)
	add(AttrIsOptional, FormString)
	add(AttrLowerBound, FormRef, FormData2, FormData4, FormData8)
	add(AttrProgram, FormString)
	add(AttrPrivate, FormString)
	add(AttrProducer, FormString)
	add(AttrProtected, FormString)
	add(AttrPrototyped, FormString)
	add(AttrPublic, FormString)
	add(AttrPureVirtual, FormString)
	add(AttrReturnAddr, FormBlock2)
	add(AttrSpecification, FormRef)
	add(AttrStartScope, FormData4)
	add(AttrStrideSize, FormData4)
	add(AttrUpperBound, FormRef, FormData2, FormData4, FormData8)
	add(AttrVirtual, FormString)
	add(AttrLoUser, userForms...)
	add(AttrMWCustom, FormBlock2)
	add(AttrHiUser, userForms...)
	add(AttrGlobalRef, FormRef)
	return m
}()
