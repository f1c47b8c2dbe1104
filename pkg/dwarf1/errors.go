package dwarf1

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEnd matches every *ErrEndOfStream with errors.Is.
	ErrUnexpectedEnd = errors.New("unexpected end of debug section")
	// ErrSectionBounds is returned when the section does not lie inside the file data.
	ErrSectionBounds = errors.New("debug section out of file bounds")
	// ErrEndian is returned for a byte order flag other than 1 (LE) or 2 (BE).
	ErrEndian = errors.New("invalid byte order flag")
)

// ErrEndOfStream a read would cross the end of the debug section
type ErrEndOfStream struct {
	Off  int // section relative offset of the read
	Need int // bytes requested
	End  int // section size
}

func (err *ErrEndOfStream) Error() string {
	return fmt.Sprintf("unexpected end of debug section: need %d bytes at %#x, section ends at %#x",
		err.Need, err.Off, err.End)
}

func (err *ErrEndOfStream) Is(target error) bool {
	return target == ErrUnexpectedEnd
}
