package elf32_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuigiBlood/dwarfone/internal/testelf"
	"github.com/LuigiBlood/dwarfone/pkg/elf32"
)

var debugBytes = []byte{0x00, 0x00, 0x00, 0x04}

func TestNewFile(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			data := testelf.Build(order,
				testelf.Section{Name: ".text", Data: []byte{0x4e, 0x80, 0x00, 0x20}},
				testelf.Section{Name: ".debug", Data: debugBytes},
			)

			f, err := elf32.NewFile(data)
			require.NoError(t, err)
			assert.Equal(t, order, f.ByteOrder())
			assert.Equal(t, data, f.Data())

			require.Len(t, f.Sections, 4)
			names := []string{}
			for _, s := range f.Sections {
				names = append(names, s.Name)
			}
			assert.Equal(t, []string{"", ".text", ".debug", ".shstrtab"}, names)

			off, size, err := f.Debug()
			require.NoError(t, err)
			assert.Equal(t, uint32(elf32.HeaderSize+4), off)
			assert.Equal(t, uint32(len(debugBytes)), size)
			assert.Equal(t, debugBytes, data[off:off+size])

			assert.NotNil(t, f.Section(".text"))
			assert.Nil(t, f.Section(".data"))
		})
	}
}

func TestEndian(t *testing.T) {
	f, err := elf32.NewFile(testelf.Build(binary.LittleEndian))
	require.NoError(t, err)
	assert.Equal(t, uint8(elf32.DataLSB), f.Endian())

	f, err = elf32.NewFile(testelf.Build(binary.BigEndian))
	require.NoError(t, err)
	assert.Equal(t, uint8(elf32.DataMSB), f.Endian())
}

func TestNewFileErrors(t *testing.T) {
	valid := func() []byte {
		return testelf.Build(binary.BigEndian, testelf.Section{Name: ".debug", Data: debugBytes})
	}

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		want   error
	}{
		{"empty", func([]byte) []byte { return nil }, elf32.ErrNotELF},
		{"bad magic", func(b []byte) []byte { b[1] = 'X'; return b }, elf32.ErrNotELF},
		{"64-bit class", func(b []byte) []byte { b[4] = 2; return b }, elf32.ErrNot32Bit},
		{"byte order 0", func(b []byte) []byte { b[5] = 0; return b }, elf32.ErrBadByteOrder},
		{"byte order 3", func(b []byte) []byte { b[5] = 3; return b }, elf32.ErrBadByteOrder},
		{"short header", func(b []byte) []byte { return b[:40] }, elf32.ErrTruncated},
		{"section table cut", func(b []byte) []byte { return b[:len(b)-8] }, elf32.ErrTruncated},
		{"small section entries", func(b []byte) []byte {
			binary.BigEndian.PutUint16(b[46:], 16)
			return b
		}, elf32.ErrBadSectionTable},
		{"name table index", func(b []byte) []byte {
			binary.BigEndian.PutUint16(b[50:], 9)
			return b
		}, elf32.ErrBadSectionTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := elf32.NewFile(tt.mutate(valid()))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDebugErrors(t *testing.T) {
	f, err := elf32.NewFile(testelf.Build(binary.BigEndian, testelf.Section{Name: ".text", Data: debugBytes}))
	require.NoError(t, err)
	_, _, err = f.Debug()
	assert.ErrorIs(t, err, elf32.ErrNoDebugSection)

	f, err = elf32.NewFile(testelf.Build(binary.BigEndian, testelf.Section{Name: ".debug", Data: debugBytes}))
	require.NoError(t, err)
	f.Section(".debug").Size = 0x10000
	_, _, err = f.Debug()
	assert.ErrorIs(t, err, elf32.ErrTruncated)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.o")
	data := testelf.Build(binary.BigEndian, testelf.Section{Name: ".debug", Data: debugBytes})
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := elf32.Open(path)
	require.NoError(t, err)
	assert.NotNil(t, f.Section(".debug"))

	_, err = elf32.Open(filepath.Join(t.TempDir(), "missing.o"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644))
	_, err = elf32.Open(path)
	assert.ErrorIs(t, err, elf32.ErrNotELF)
	assert.Contains(t, err.Error(), path)
}
