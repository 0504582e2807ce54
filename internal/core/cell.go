package core

import "unicode/utf8"

// Cell is a single display glyph stored as its raw UTF-8 bytes.
// The byte length is kept alongside so diffing and output never
// need to decode the glyph again. A valid cell always holds 1-4 bytes.
type Cell struct {
	b [4]byte
	n uint8
}

// Blank is the space glyph every freshly allocated cell starts as.
var Blank = Cell{b: [4]byte{' '}, n: 1}

// GlyphLen returns the length of the UTF-8 sequence announced by a leading byte.
// Continuation bytes and invalid lead bytes report 1 so callers never over-read.
func GlyphLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// DecodeCell reads one glyph from the start of p.
// Truncated or malformed sequences are taken as a single byte.
// Returns the cell and the number of bytes consumed (0 only for empty input).
func DecodeCell(p []byte) (Cell, int) {
	if len(p) == 0 {
		return Blank, 0
	}

	n := GlyphLen(p[0])
	if n > len(p) {
		n = 1
	}
	for i := 1; i < n; i++ {
		if p[i]&0xC0 != 0x80 {
			n = 1
			break
		}
	}

	var c Cell
	copy(c.b[:], p[:n])
	c.n = uint8(n)
	return c, n
}

// GlyphCount returns the number of cells s occupies when drawn with
// DecodeCell boundaries, one cell per glyph.
func GlyphCount(s string) int {
	p := []byte(s)
	n := 0
	for len(p) > 0 {
		_, k := DecodeCell(p)
		p = p[k:]
		n++
	}
	return n
}

// CellFromRune encodes r as a cell. Invalid runes become U+FFFD.
func CellFromRune(r rune) Cell {
	var c Cell
	c.n = uint8(utf8.EncodeRune(c.b[:], r))
	return c
}

// Len returns the number of bytes in the glyph.
func (c Cell) Len() int {
	return int(c.n)
}

// Bytes returns the glyph bytes.
func (c Cell) Bytes() []byte {
	return c.b[:c.n]
}

// AppendTo appends the glyph bytes to dst.
func (c Cell) AppendTo(dst []byte) []byte {
	return append(dst, c.b[:c.n]...)
}

// Equal reports whether both cells hold the same glyph bytes.
func (c Cell) Equal(o Cell) bool {
	if c.n != o.n {
		return false
	}
	for i := uint8(0); i < c.n; i++ {
		if c.b[i] != o.b[i] {
			return false
		}
	}
	return true
}

// String returns the glyph as a string.
func (c Cell) String() string {
	return string(c.b[:c.n])
}
