// Package dwarf1 decodes the .debug section of DWARF version 1, as emitted by
// pre-standard compilers into 32-bit ELF objects.
//
// Producers of this format are inconsistent about byte order, sometimes within
// a single entry. The Reader recovers a usable byte order per record with a
// small set of heuristics:
//
//   - an entry length is read in both byte orders and the smaller reading wins;
//   - a tag that is not in the tag table is byte swapped;
//   - an attribute key that is not a legal (attribute, form) pair is byte
//     swapped, and its value swapped too except for high_pc, user_def_type and
//     the Metrowerks global variable reference;
//   - a key that is illegal in both byte orders, or a location key followed by
//     a zero length, ends the entry and forces the next entry length to be
//     read as little endian.
//
// These rules are heuristics fitted to known producers, not a guarantee of a
// correct parse.
package dwarf1
