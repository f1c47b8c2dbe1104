// Package testelf builds minimal 32-bit relocatable ELF objects for tests.
package testelf

import (
	"bytes"
	"encoding/binary"

	"github.com/lunixbochs/struc"

	"github.com/LuigiBlood/dwarfone/pkg/elf32"
)

const (
	typeRel      = 1
	machinePPC   = 20
	shtProgbits  = 1
	shtStrtab    = 3
	debugAlign   = 1
	strtabSectNm = ".shstrtab"
)

// Section is one named section of a built object.
type Section struct {
	Name string
	Data []byte
}

// Build lays out a file header, the section contents, a section name table
// and the section header table, in that order. Index 0 is the null section
// and the name table is last.
func Build(order binary.ByteOrder, sections ...Section) []byte {
	var body bytes.Buffer
	names := []byte{0}
	headers := []elf32.SectionHeader{{}}

	addName := func(name string) uint32 {
		off := uint32(len(names))
		names = append(append(names, name...), 0)
		return off
	}

	off := uint32(elf32.HeaderSize)
	for _, s := range sections {
		headers = append(headers, elf32.SectionHeader{
			NameOff:   addName(s.Name),
			Type:      shtProgbits,
			Offset:    off,
			Size:      uint32(len(s.Data)),
			Addralign: debugAlign,
		})
		body.Write(s.Data)
		off += uint32(len(s.Data))
	}

	strtab := elf32.SectionHeader{NameOff: addName(strtabSectNm), Type: shtStrtab, Offset: off}
	strtab.Size = uint32(len(names))
	headers = append(headers, strtab)
	body.Write(names)
	off += uint32(len(names))

	ident := make([]byte, 16)
	copy(ident, []byte{0x7f, 'E', 'L', 'F', elf32.ClassELF32, elf32.DataMSB, 1})
	if order == binary.LittleEndian {
		ident[5] = elf32.DataLSB
	}

	hdr := elf32.Header{
		Ident:     ident,
		Type:      typeRel,
		Machine:   machinePPC,
		Version:   1,
		Shoff:     off,
		Ehsize:    elf32.HeaderSize,
		Shentsize: elf32.SectionHeaderSize,
		Shnum:     uint16(len(headers)),
		Shstrndx:  uint16(len(headers) - 1),
	}

	var out bytes.Buffer
	mustPack(&out, &hdr, order)
	out.Write(body.Bytes())
	for i := range headers {
		mustPack(&out, &headers[i], order)
	}
	return out.Bytes()
}

func mustPack(buf *bytes.Buffer, v interface{}, order binary.ByteOrder) {
	if err := struc.PackWithOrder(buf, v, order); err != nil {
		panic(err)
	}
}
