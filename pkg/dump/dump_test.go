package dump

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuigiBlood/dwarfone/internal/testelf"
	"github.com/LuigiBlood/dwarfone/pkg/dwarf1"
	"github.com/LuigiBlood/dwarfone/pkg/elf32"
)

// compileUnit is a big endian compile unit with a location-free subroutine.
func compileUnit() []byte {
	var b []byte
	be := binary.BigEndian
	b = be.AppendUint32(b, 14)
	b = be.AppendUint16(b, uint16(dwarf1.TagCompileUnit))
	b = be.AppendUint16(b, 0x0136)
	b = be.AppendUint32(b, uint32(dwarf1.LangC))

	b = be.AppendUint32(b, 19)
	b = be.AppendUint16(b, uint16(dwarf1.TagGlobalSubroutine))
	b = be.AppendUint16(b, 0x0038)
	b = append(b, "main\x00"...)
	b = be.AppendUint16(b, 0x0111)
	b = be.AppendUint32(b, 0x1000)

	b = be.AppendUint32(b, 4)
	return b
}

func TestRun(t *testing.T) {
	section := compileUnit()
	r, err := dwarf1.NewReader(section, 0, uint32(len(section)), dwarf1.BigEndian, dwarf1.Config{})
	require.NoError(t, err)

	var out bytes.Buffer
	d := New(&out, false)
	d.Header(0x34, uint32(len(section)))
	entries, err := d.Run(r)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	want := "DWARF v1 dump\n" +
		"\n" +
		".debug File Offset: 0x34\n" +
		".debug Size: 0x23\n" +
		"\n" +
		"0: <14> compile_unit\n" +
		"        language(C)\n" +
		"\n" +
		"c: <19> global_subroutine\n" +
		"        name(\"main\")\n" +
		"        low_pc(0x1000)\n" +
		"1f: <4>\n"
	assert.Equal(t, want, out.String())
}

func TestRunStopsOnError(t *testing.T) {
	section := compileUnit()
	section = section[:len(section)-2]
	r, err := dwarf1.NewReader(section, 0, uint32(len(section)), dwarf1.BigEndian, dwarf1.Config{})
	require.NoError(t, err)

	var out bytes.Buffer
	d := New(&out, false)
	entries, err := d.Run(r)
	assert.ErrorIs(t, err, dwarf1.ErrUnexpectedEnd)
	assert.Len(t, entries, 2)
	assert.NotContains(t, out.String(), "error")

	d.Error(err)
	assert.Contains(t, out.String(), "error: unexpected end of debug section")
}

func TestSections(t *testing.T) {
	f, err := elf32.NewFile(testelf.Build(binary.BigEndian,
		testelf.Section{Name: ".debug", Data: compileUnit()},
	))
	require.NoError(t, err)

	var out bytes.Buffer
	New(&out, false).Sections(f.Sections)
	assert.Equal(t, " - Offset: 0x0\n.debug - Offset: 0x34\n.shstrtab - Offset: 0x57\n", out.String())
}

func TestColor(t *testing.T) {
	var plain, colored bytes.Buffer
	New(&plain, false).Error(errors.New("boom"))
	New(&colored, true).Error(errors.New("boom"))

	assert.Equal(t, "error: boom\n", plain.String())
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "boom")
}
