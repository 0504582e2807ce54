// Package render composes animation frames and turns frame differences
// into terminal output.
package render

import "strconv"

// Pre-allocated ANSI sequences (avoid allocations during render)
var (
	SeqClear        = []byte("\x1b[2J")
	SeqHome         = []byte("\x1b[H")
	SeqCursorHide   = []byte("\x1b[?25l")
	SeqCursorShow   = []byte("\x1b[?25h")
	SeqScrollReset  = []byte("\x1b[r")
	SeqAltScreenOn  = []byte("\x1b[?1049h")
	SeqAltScreenOff = []byte("\x1b[?1049l")
	// DECAWM off keeps a write to the bottom-right cell from scrolling the screen
	SeqAutoWrapOff = []byte("\x1b[?7l")
	SeqAutoWrapOn  = []byte("\x1b[?7h")
	SeqSGR0        = []byte("\x1b[0m")
)

// AppendCursorPos appends ESC[row;colH. row and col are 1-indexed.
func AppendCursorPos(dst []byte, row, col int) []byte {
	dst = append(dst, 0x1b, '[')
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'H')
}

// AppendScrollRegion appends ESC[top;bottomr. Rows are 1-indexed and inclusive.
func AppendScrollRegion(dst []byte, top, bottom int) []byte {
	dst = append(dst, 0x1b, '[')
	dst = strconv.AppendInt(dst, int64(top), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(bottom), 10)
	return append(dst, 'r')
}
