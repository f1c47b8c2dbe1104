package dwarf1

import (
	"encoding/binary"
	"log/slog"
	"math/bits"
)

const (
	lengthSize     = 4 // size of the entry length field
	minEntryLength = 8 // length field + tag + at least one attribute key
)

// Endian is the byte order flag of the object file header.
type Endian uint8

const (
	LittleEndian Endian = 1
	BigEndian    Endian = 2
)

// ByteOrder returns the binary.ByteOrder of e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Opposite returns the other byte order.
func (e Endian) Opposite() Endian {
	if e == LittleEndian {
		return BigEndian
	}
	return LittleEndian
}

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	}
	return "invalid"
}

// Config configures a Reader.
type Config struct {
	// EnableQuirks selects the alternate decoding mode of the command line.
	// It is carried through to the Reader, no decoding rule depends on it.
	EnableQuirks bool
	// Logger receives debug records for every heuristic decision. nil
	// discards them.
	Logger *slog.Logger
}

// Entry is one record of the debug section: a debugging information entry,
// or a terminator when the declared length is 4 or less.
type Entry struct {
	Offset     uint32 // relative to the section start
	Length     uint32
	Tag        Tag
	Attrs      []*Attribute
	Terminator bool
}

// Val returns the value of the first attribute with code a, or nil.
func (e *Entry) Val(a Attr) Value {
	for _, attr := range e.Attrs {
		if attr.Key.Attr() == a {
			return attr.Value
		}
	}
	return nil
}

// Reader walks the entries of a debug section.
type Reader struct {
	c      *Cursor
	d      *decoder
	endian Endian
	quirks bool
	log    *slog.Logger

	// forceLE the previous entry ended on SentinelForceLE
	forceLE bool
	err     error
}

// NewReader returns a Reader over the debug section [off, off+size) of data,
// declared with byte order endian.
func NewReader(data []byte, off, size uint32, endian Endian, cfg Config) (*Reader, error) {
	if uint64(off)+uint64(size) > uint64(len(data)) {
		return nil, ErrSectionBounds
	}
	if endian != LittleEndian && endian != BigEndian {
		return nil, ErrEndian
	}
	log := cfg.Logger
	if log == nil {
		log = discardLogger()
	}
	c := NewCursor(data, int(off), int(size))
	return &Reader{
		c:      c,
		d:      &decoder{c: c, order: endian.ByteOrder(), log: log},
		endian: endian,
		quirks: cfg.EnableQuirks,
		log:    log,
	}, nil
}

// Quirks reports whether the reader was configured with EnableQuirks.
func (r *Reader) Quirks() bool {
	return r.quirks
}

// Next returns the next entry or terminator. Padding is skipped. At the end
// of the section Next returns nil, nil. Once a read crosses the section end
// every call returns the same *ErrEndOfStream.
func (r *Reader) Next() (*Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	for !r.c.AtEnd() {
		e, err := r.parse()
		if err != nil {
			r.err = err
			return nil, err
		}
		if e != nil {
			return e, nil
		}
	}
	return nil, nil
}

// parse decodes the record at the cursor. It returns nil, nil for padding.
func (r *Reader) parse() (*Entry, error) {
	start := r.c.Rel()

	length, err := r.parselength()
	if err != nil {
		return nil, err
	}

	switch {
	case length >= minEntryLength:
		return r.parseEntry(start, length)
	case length > lengthSize:
		r.log.Debug("padding", "off", start, "length", length)
		return nil, r.c.Skip(int(length - lengthSize))
	}
	return &Entry{Offset: uint32(start), Length: length, Terminator: true}, nil
}

// parselength reads an entry length. The length is read in both byte orders
// and the smaller reading wins, unless the previous entry forced a little
// endian reading.
func (r *Reader) parselength() (uint32, error) {
	raw, err := r.c.Uint32(r.endian.ByteOrder())
	if err != nil {
		return 0, err
	}
	swapped := bits.ReverseBytes32(raw)

	if r.forceLE {
		r.forceLE = false
		r.log.Debug("forced little-endian length", "off", r.c.Rel()-lengthSize)
		if r.endian.Opposite() == LittleEndian {
			return swapped, nil
		}
		return raw, nil
	}
	return min(raw, swapped), nil
}

// parseEntry decodes the tag and attributes of an entry of declared length.
// Attributes are decoded while the cursor is before the declared end, until
// a sentinel ends the entry.
func (r *Reader) parseEntry(start int, length uint32) (*Entry, error) {
	raw, err := r.c.Uint16(r.endian.ByteOrder())
	if err != nil {
		return nil, err
	}
	tag := Tag(raw)
	if !tag.Known() {
		tag = Tag(bits.ReverseBytes16(raw))
		r.log.Debug("tag byte swapped", "off", start, "raw", raw, "tag", tag)
	}

	e := &Entry{Offset: uint32(start), Length: length, Tag: tag}
	end := start + int(length)
	for r.c.Rel() < end {
		attr, sentinel, err := r.d.attribute()
		if err != nil {
			return nil, err
		}
		if sentinel != SentinelNone {
			r.forceLE = sentinel == SentinelForceLE
			break
		}
		e.Attrs = append(e.Attrs, attr)
	}
	return e, nil
}

// Decode walks the whole debug section. It returns every entry decoded
// before an error together with the error.
func Decode(data []byte, off, size uint32, endian Endian, cfg Config) ([]*Entry, error) {
	r, err := NewReader(data, off, size, endian, cfg)
	if err != nil {
		return nil, err
	}
	var entries []*Entry
	for {
		e, err := r.Next()
		if err != nil {
			return entries, err
		}
		if e == nil {
			return entries, nil
		}
		entries = append(entries, e)
	}
}
