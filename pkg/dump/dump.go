// Package dump renders decoded debug entries as text.
package dump

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/LuigiBlood/dwarfone/pkg/dwarf1"
	"github.com/LuigiBlood/dwarfone/pkg/elf32"
)

const indent = "        "

// Dumper writes a line oriented listing of a debug section.
type Dumper struct {
	out io.Writer

	title  *color.Color
	offset *color.Color
	tag    *color.Color
	attr   *color.Color
	errc   *color.Color
}

// New returns a Dumper writing to w. Colors are only emitted when colored is
// set, whatever the terminal.
func New(w io.Writer, colored bool) *Dumper {
	d := &Dumper{
		out:    w,
		title:  color.New(color.Bold),
		offset: color.New(color.FgYellow),
		tag:    color.New(color.FgCyan, color.Bold),
		attr:   color.New(color.FgGreen),
		errc:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{d.title, d.offset, d.tag, d.attr, d.errc} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return d
}

// Sections lists the section table of the object file.
func (d *Dumper) Sections(secs []*elf32.Section) {
	for _, s := range secs {
		fmt.Fprintf(d.out, "%s - Offset: %s\n", s.Name, d.offset.Sprintf("0x%x", s.Offset))
	}
}

// Header writes the banner and the location of the debug section.
func (d *Dumper) Header(off, size uint32) {
	fmt.Fprintln(d.out, d.title.Sprint("DWARF v1 dump"))
	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, ".debug File Offset: 0x%x\n", off)
	fmt.Fprintf(d.out, ".debug Size: 0x%x\n", size)
}

// Entry writes one entry header line followed by one line per attribute.
func (d *Dumper) Entry(e *dwarf1.Entry) {
	if e.Terminator {
		fmt.Fprintf(d.out, "%s: <%d>\n", d.offset.Sprintf("%x", e.Offset), e.Length)
		return
	}
	fmt.Fprintf(d.out, "\n%s: <%d> %s\n", d.offset.Sprintf("%x", e.Offset), e.Length, d.tag.Sprint(e.Tag))
	for _, a := range e.Attrs {
		fmt.Fprintf(d.out, "%s%s(%s)\n", indent, d.attr.Sprint(a.Name()), a.Value)
	}
}

func (d *Dumper) Error(err error) {
	fmt.Fprintf(d.out, "%s %v\n", d.errc.Sprint("error:"), err)
}

// Run writes every entry of r as it is decoded. It returns the entries
// written, and the error that stopped the walk if any. The error is not
// written.
func (d *Dumper) Run(r *dwarf1.Reader) ([]*dwarf1.Entry, error) {
	var entries []*dwarf1.Entry
	for {
		e, err := r.Next()
		if err != nil {
			return entries, err
		}
		if e == nil {
			return entries, nil
		}
		d.Entry(e)
		entries = append(entries, e)
	}
}
