package elf32

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

const (
	HeaderSize        = 52
	SectionHeaderSize = 40

	ClassELF32 = 1

	DataLSB = 1
	DataMSB = 2

	// DebugSection holds DWARF version 1 debugging entries.
	DebugSection = ".debug"
)

var magic = []byte{0x7f, 'E', 'L', 'F'}

// Header is the 32-bit ELF file header.
type Header struct {
	Ident     []byte `struc:"[16]byte"`
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint32
	Phoff     uint32
	Shoff     uint32
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// SectionHeader is one entry of the 32-bit section header table.
type SectionHeader struct {
	NameOff   uint32
	Type      uint32
	Flags     uint32
	Addr      uint32
	Offset    uint32
	Size      uint32
	Link      uint32
	Info      uint32
	Addralign uint32
	Entsize   uint32
}

// Section is a section header with its resolved name.
type Section struct {
	SectionHeader
	Name string
}

// File is a parsed 32-bit ELF object held in memory.
type File struct {
	Header   Header
	Sections []*Section

	data  []byte
	order binary.ByteOrder
}

// Open reads and parses the object file at path.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	f, err := NewFile(data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return f, nil
}

// NewFile parses the object file held in data.
func NewFile(data []byte) (*File, error) {
	if len(data) < 16 || !bytes.Equal(data[:4], magic) {
		return nil, ErrNotELF
	}
	if data[4] != ClassELF32 {
		return nil, errors.Wrapf(ErrNot32Bit, "class %d", data[4])
	}

	f := &File{data: data}
	switch data[5] {
	case DataLSB:
		f.order = binary.LittleEndian
	case DataMSB:
		f.order = binary.BigEndian
	default:
		return nil, errors.Wrapf(ErrBadByteOrder, "data %d", data[5])
	}

	if len(data) < HeaderSize {
		return nil, errors.Wrap(ErrTruncated, "file header")
	}
	if err := struc.UnpackWithOrder(bytes.NewReader(data[:HeaderSize]), &f.Header, f.order); err != nil {
		return nil, errors.Wrap(err, "unpack file header")
	}

	if err := f.parseSections(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) parseSections() error {
	h := &f.Header
	if h.Shnum == 0 {
		return nil
	}
	if h.Shentsize < SectionHeaderSize {
		return errors.Wrapf(ErrBadSectionTable, "entry size %d", h.Shentsize)
	}

	for i := 0; i < int(h.Shnum); i++ {
		off := uint64(h.Shoff) + uint64(h.Shentsize)*uint64(i)
		if off+SectionHeaderSize > uint64(len(f.data)) {
			return errors.Wrapf(ErrTruncated, "section header %d", i)
		}
		s := &Section{}
		r := bytes.NewReader(f.data[off : off+SectionHeaderSize])
		if err := struc.UnpackWithOrder(r, &s.SectionHeader, f.order); err != nil {
			return errors.Wrapf(err, "unpack section header %d", i)
		}
		f.Sections = append(f.Sections, s)
	}

	if int(h.Shstrndx) >= len(f.Sections) {
		return errors.Wrapf(ErrBadSectionTable, "name table index %d", h.Shstrndx)
	}
	strtab := f.Sections[h.Shstrndx]
	for _, s := range f.Sections {
		s.Name = f.cstring(uint64(strtab.Offset) + uint64(s.NameOff))
	}
	return nil
}

// cstring returns the NUL terminated string at off, empty if off is outside
// the file.
func (f *File) cstring(off uint64) string {
	if off >= uint64(len(f.data)) {
		return ""
	}
	b := f.data[off:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Data returns the whole file contents.
func (f *File) Data() []byte {
	return f.data
}

// Endian returns the byte order flag of the file header, DataLSB or DataMSB.
func (f *File) Endian() uint8 {
	return f.Header.Ident[5]
}

func (f *File) ByteOrder() binary.ByteOrder {
	return f.order
}

// Section returns the first section named name, or nil.
func (f *File) Section(name string) *Section {
	for _, s := range f.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Debug returns the file offset and size of the .debug section.
func (f *File) Debug() (offset, size uint32, err error) {
	s := f.Section(DebugSection)
	if s == nil {
		return 0, 0, ErrNoDebugSection
	}
	if uint64(s.Offset)+uint64(s.Size) > uint64(len(f.data)) {
		return 0, 0, errors.Wrapf(ErrTruncated, "%s at %#x size %#x", DebugSection, s.Offset, s.Size)
	}
	return s.Offset, s.Size, nil
}
