package dwarf1

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	data := []byte{0xff, 0xff, 0x01, 0x02, 0x03, 0x04, 'h', 'i', 0x00, 0xff}
	c := NewCursor(data, 2, 7)

	assert.Equal(t, 2, c.Pos())
	assert.Equal(t, 0, c.Rel())
	assert.Equal(t, 7, c.Len())

	v, err := c.Uint16(binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v)

	c.Rewind(2)
	v, err = c.Uint16(binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), v)

	b, err := c.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x03), b)
	require.NoError(t, c.Skip(1))

	s, err := c.CString()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
	assert.True(t, c.AtEnd())

	_, err = c.Uint8()
	assert.ErrorIs(t, err, ErrUnexpectedEnd, "the byte after the section is not readable")
}

func TestCursorRewindStopsAtSectionStart(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5, 6}, 2, 4)
	require.NoError(t, c.Skip(1))
	c.Rewind(8)
	assert.Equal(t, 0, c.Rel())
	assert.Equal(t, 2, c.Pos())
}

func TestCursorEndOfStream(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3}, 0, 3)

	_, err := c.Uint32(binary.BigEndian)
	var eos *ErrEndOfStream
	require.ErrorAs(t, err, &eos)
	assert.Equal(t, ErrEndOfStream{Off: 0, Need: 4, End: 3}, *eos)
	assert.Equal(t, 0, c.Rel(), "a failed read consumes nothing")

	_, err = c.Uint64(binary.BigEndian)
	assert.ErrorIs(t, err, ErrUnexpectedEnd)

	assert.ErrorIs(t, c.Skip(-1), ErrUnexpectedEnd)

	_, err = c.CString()
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
}
