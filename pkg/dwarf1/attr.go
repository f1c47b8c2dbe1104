package dwarf1

import (
	"encoding/binary"
	"io"
	"log/slog"
	"math/bits"
)

// Attribute is one decoded attribute of an entry.
type Attribute struct {
	Key   Key
	Value Value
	// Swapped is set when the key only validated after a byte swap.
	Swapped bool
}

// Name returns the attribute name, or its raw code when it has none.
func (a *Attribute) Name() string {
	return a.Key.Attr().String()
}

func (a *Attribute) String() string {
	return a.Name() + "(" + a.Value.String() + ")"
}

// Sentinel is the out of band result of an attribute decode.
type Sentinel int

const (
	// SentinelNone an attribute was decoded.
	SentinelNone Sentinel = iota
	// SentinelEnd the entry ends here.
	SentinelEnd
	// SentinelForceLE the entry ends here and the next entry length must be
	// read as little endian.
	SentinelForceLE
)

func (s Sentinel) String() string {
	switch s {
	case SentinelEnd:
		return "end"
	case SentinelForceLE:
		return "end+force-le"
	}
	return "none"
}

// decoder decodes attribute records at the cursor position.
type decoder struct {
	c     *Cursor
	order binary.ByteOrder
	log   *slog.Logger
}

// DecodeAttribute decodes one attribute record at c, keys and values read
// with order unless the record only validates byte swapped.
//
// When the returned sentinel is not SentinelNone the attribute is nil and the
// cursor is left at the start of the record.
func DecodeAttribute(c *Cursor, order binary.ByteOrder) (*Attribute, Sentinel, error) {
	d := &decoder{c: c, order: order, log: discardLogger()}
	return d.attribute()
}

// keepsValueOrder reports whether a byte swapped key still carries its value
// in the declared byte order.
func keepsValueOrder(k Key) bool {
	switch {
	case k.Attr() == AttrHighPC, k.Attr() == AttrUserDefType, k == KeyGlobalRef:
		return true
	}
	return false
}

func (d *decoder) attribute() (*Attribute, Sentinel, error) {
	start := d.c.Rel()

	raw, err := d.c.Uint16(d.order)
	if err != nil {
		return nil, SentinelNone, err
	}
	if raw == 0 {
		d.c.Rewind(2)
		return nil, SentinelEnd, nil
	}

	key, swapValue := Key(raw), false
	attr := &Attribute{}
	if !key.Valid() {
		key = Key(bits.ReverseBytes16(raw))
		if !key.Valid() {
			d.c.Rewind(2)
			d.log.Debug("attribute key invalid in both byte orders", "off", start, "raw", raw)
			return nil, SentinelForceLE, nil
		}
		attr.Swapped = true
		swapValue = !keepsValueOrder(key)
		d.log.Debug("attribute key byte swapped", "off", start, "key", key, "swapValue", swapValue)
	}
	attr.Key = key

	var (
		n uint64
		s string
	)
	switch key.Form() {
	case FormAddr, FormRef, FormData4, FormBlock4:
		var v uint32
		v, err = d.c.Uint32(d.order)
		n = uint64(v)
	case FormData2, FormBlock2:
		var v uint16
		v, err = d.c.Uint16(d.order)
		n = uint64(v)
	case FormData8:
		n, err = d.c.Uint64(d.order)
	case FormString:
		s, err = d.c.CString()
	}
	if err != nil {
		return nil, SentinelNone, err
	}

	// a location key followed by a zero length is the first half of a
	// little endian entry length, not an attribute
	if key.Attr() == AttrLocation && n == 0 {
		d.c.Rewind(4)
		d.log.Debug("location/zero collision", "off", start)
		return nil, SentinelForceLE, nil
	}

	if swapValue {
		n = swapWidth(key.Form(), n)
	}

	switch key.Form() {
	case FormString:
		attr.Value = Str(s)
	case FormBlock2, FormBlock4:
		attr.Value, err = d.block(key.Attr(), n)
	default:
		attr.Value = Const{Attr: key.Attr(), V: n}
	}
	if err != nil {
		return nil, SentinelNone, err
	}
	return attr, SentinelNone, nil
}

func swapWidth(f Form, n uint64) uint64 {
	switch f {
	case FormAddr, FormRef, FormData4, FormBlock4:
		return uint64(bits.ReverseBytes32(uint32(n)))
	case FormData2, FormBlock2:
		return uint64(bits.ReverseBytes16(uint16(n)))
	}
	return bits.ReverseBytes64(n)
}

// block decodes the payload of a block form attribute of length n.
func (d *decoder) block(attr Attr, n uint64) (Value, error) {
	switch attr {
	case AttrLocation, AttrReturnAddr:
		return d.location(n)
	case AttrModFundType:
		if n < 2 {
			return d.unparsed(n)
		}
		return d.modFundType(n)
	case AttrModUDType:
		if n < 4 {
			return d.unparsed(n)
		}
		return d.modUserType(n)
	case AttrElementList:
		return d.elementList(n)
	case AttrSubscrData:
		return d.subscripts(n)
	}
	return d.unparsed(n)
}

// smallerUint32 reads a 4-byte operand and keeps the smaller of its two byte
// order readings.
func (d *decoder) smallerUint32() (uint32, error) {
	v, err := d.c.Uint32(d.order)
	if err != nil {
		return 0, err
	}
	return min(v, bits.ReverseBytes32(v)), nil
}

// location decodes a location expression. Unknown opcodes take no operand,
// which may desynchronize the remaining count on malformed input.
func (d *decoder) location(n uint64) (Value, error) {
	loc := &Location{Len: n}
	for i := uint64(0); i < n; i++ {
		b, err := d.c.Uint8()
		if err != nil {
			return nil, err
		}
		op := Op(b)
		if op.HasOperand() {
			v, err := d.smallerUint32()
			if err != nil {
				return nil, err
			}
			loc.Ops = append(loc.Ops, LocOp{Op: op, Operand: v})
			i += 4
			continue
		}
		if !op.Known() {
			d.log.Debug("unknown location opcode", "off", d.c.Rel()-1, "op", b)
		}
		loc.Ops = append(loc.Ops, LocOp{Op: op})
	}
	return loc, nil
}

func (d *decoder) modifiers(n uint64) ([]Modifier, error) {
	mods := make([]Modifier, 0, min(n, uint64(d.c.Len())))
	for i := uint64(0); i < n; i++ {
		b, err := d.c.Uint8()
		if err != nil {
			return nil, err
		}
		mods = append(mods, Modifier(b))
	}
	return mods, nil
}

func (d *decoder) modFundType(n uint64) (Value, error) {
	mods, err := d.modifiers(n - 2)
	if err != nil {
		return nil, err
	}
	ft, err := d.c.Uint16(d.order)
	if err != nil {
		return nil, err
	}
	return &ModFundType{Len: n, Mods: mods, Type: FundType(ft)}, nil
}

func (d *decoder) modUserType(n uint64) (Value, error) {
	mods, err := d.modifiers(n - 4)
	if err != nil {
		return nil, err
	}
	ref, err := d.c.Uint32(d.order)
	if err != nil {
		return nil, err
	}
	return &ModUserType{Len: n, Mods: mods, Ref: ref}, nil
}

func (d *decoder) elementList(n uint64) (Value, error) {
	list := &ElementList{Len: n}
	start := d.c.Pos()
	for uint64(d.c.Pos()-start) < n {
		v, err := d.c.Uint32(d.order)
		if err != nil {
			return nil, err
		}
		name, err := d.c.CString()
		if err != nil {
			return nil, err
		}
		list.Elems = append(list.Elems, Enumerator{Value: v, Name: name})
	}
	return list, nil
}

// subscripts decodes array subscript descriptors. An element type descriptor
// holds one nested attribute record; when that record does not decode, the
// remaining descriptors are skipped with the block.
func (d *decoder) subscripts(n uint64) (Value, error) {
	sub := &Subscripts{Len: n}
	start := d.c.Pos()
	for uint64(d.c.Pos()-start) < n {
		b, err := d.c.Uint8()
		if err != nil {
			return nil, err
		}
		item := Subscript{Format: Format(b)}
		switch item.Format {
		case FmtET:
			elem, sentinel, err := d.attribute()
			if err != nil {
				return nil, err
			}
			if sentinel != SentinelNone {
				// the rest of the block cannot be framed, resume after it
				d.log.Debug("element type record did not decode", "off", d.c.Rel(), "sentinel", sentinel)
				sub.Items = append(sub.Items, item)
				if err := d.c.Skip(int(n - uint64(d.c.Pos()-start))); err != nil {
					return nil, err
				}
				return sub, nil
			}
			item.Elem = elem
		case FmtFtCC:
			ft, err := d.c.Uint16(d.order)
			if err != nil {
				return nil, err
			}
			if item.Lo, err = d.c.Uint32(d.order); err != nil {
				return nil, err
			}
			if item.Hi, err = d.c.Uint32(d.order); err != nil {
				return nil, err
			}
			item.Type = FundType(ft)
		default:
			d.log.Debug("subscript format not interpreted", "off", d.c.Rel()-1, "format", item.Format)
			if err := d.c.Skip(1); err != nil {
				return nil, err
			}
		}
		sub.Items = append(sub.Items, item)
	}
	return sub, nil
}

func (d *decoder) unparsed(n uint64) (Value, error) {
	if n > uint64(d.c.Len()) {
		return nil, &ErrEndOfStream{Off: d.c.Rel(), Need: int(n), End: d.c.Rel() + d.c.Len()}
	}
	if err := d.c.Skip(int(n)); err != nil {
		return nil, err
	}
	return &Unparsed{Len: n}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
