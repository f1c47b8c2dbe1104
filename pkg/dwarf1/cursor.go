package dwarf1

import (
	"bytes"
	"encoding/binary"
)

// Cursor reads sequentially through the debug section of an object file.
// Reads never cross the section end; Rewind only steps back over bytes
// already consumed.
type Cursor struct {
	data  []byte
	start int
	end   int
	off   int
}

// NewCursor returns a cursor positioned at the first byte of the section
// [start, start+size) of data. The caller guarantees the section lies in data.
func NewCursor(data []byte, start, size int) *Cursor {
	return &Cursor{data: data, start: start, end: start + size, off: start}
}

// Pos returns the absolute file offset of the cursor.
func (c *Cursor) Pos() int {
	return c.off
}

// Rel returns the cursor offset relative to the section start.
func (c *Cursor) Rel() int {
	return c.off - c.start
}

// Len returns the number of unread bytes in the section.
func (c *Cursor) Len() int {
	return c.end - c.off
}

// AtEnd reports whether the whole section has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.off >= c.end
}

func (c *Cursor) next(n int) ([]byte, error) {
	if n < 0 || c.end-c.off < n {
		return nil, &ErrEndOfStream{Off: c.Rel(), Need: n, End: c.end - c.start}
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip consumes n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.next(n)
	return err
}

// Rewind steps back n bytes, never before the section start.
func (c *Cursor) Rewind(n int) {
	c.off -= n
	if c.off < c.start {
		c.off = c.start
	}
}

func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) Uint16(order binary.ByteOrder) (uint16, error) {
	b, err := c.next(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (c *Cursor) Uint32(order binary.ByteOrder) (uint32, error) {
	b, err := c.next(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (c *Cursor) Uint64(order binary.ByteOrder) (uint64, error) {
	b, err := c.next(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

// CString reads a NUL terminated string and consumes the terminator.
func (c *Cursor) CString() (string, error) {
	i := bytes.IndexByte(c.data[c.off:c.end], 0)
	if i < 0 {
		return "", &ErrEndOfStream{Off: c.Rel(), Need: c.Len() + 1, End: c.end - c.start}
	}
	s := string(c.data[c.off : c.off+i])
	c.off += i + 1
	return s, nil
}
