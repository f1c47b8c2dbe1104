package elf32

import "github.com/pkg/errors"

var (
	ErrNotELF          = errors.New("not an ELF file")
	ErrNot32Bit        = errors.New("not a 32-bit ELF file")
	ErrBadByteOrder    = errors.New("invalid ELF byte order flag")
	ErrNoDebugSection  = errors.New("no .debug section")
	ErrTruncated       = errors.New("ELF file truncated")
	ErrBadSectionTable = errors.New("invalid section header table")
)
