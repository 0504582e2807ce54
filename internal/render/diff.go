package render

import (
	"fmt"
	"io"

	"github.com/vovakirdan/noisefetch/internal/core"
)

// Stats describes the output of one diff pass.
type Stats struct {
	Runs  int // Cursor moves emitted, one per changed run
	Cells int // Changed cells written
	Bytes int // Total bytes produced
}

// DiffRenderer turns the difference between the previous and the current
// frame into the smallest set of cursor moves and glyph writes.
// The output buffer is reused between frames.
type DiffRenderer struct {
	buf []byte
}

// NewDiffRenderer creates a renderer with an output buffer sized for a typical screen.
func NewDiffRenderer() *DiffRenderer {
	return &DiffRenderer{buf: make([]byte, 0, 64*1024)}
}

// Diff scans fb row-major and returns the escape sequences and glyph
// bytes that turn Previous into Current, updating Previous as it goes.
// A run of changed cells never crosses a row boundary. The returned slice
// is only valid until the next call.
func (d *DiffRenderer) Diff(fb *core.FrameBuffer) ([]byte, Stats, error) {
	cur, prev := fb.Current, fb.Previous
	if cur.Rows() != prev.Rows() || cur.Cols() != prev.Cols() {
		return nil, Stats{}, fmt.Errorf("render: diff %dx%d against %dx%d: dimension mismatch",
			cur.Cols(), cur.Rows(), prev.Cols(), prev.Rows())
	}

	var st Stats
	out := d.buf[:0]
	cols := cur.Cols()
	cc, pc := cur.Cells(), prev.Cells()

	for row := 0; row < cur.Rows(); row++ {
		base := row * cols
		col := 0
		for col < cols {
			if cc[base+col].Equal(pc[base+col]) {
				col++
				continue
			}

			// Position cursor once for this dirty run
			out = AppendCursorPos(out, row+1, col+1)
			st.Runs++

			for col < cols {
				i := base + col
				if cc[i].Equal(pc[i]) {
					break
				}
				out = cc[i].AppendTo(out)
				pc[i] = cc[i]
				st.Cells++
				col++
			}
		}
	}

	d.buf = out
	st.Bytes = len(out)
	return out, st, nil
}

// Render diffs fb and writes the result to w in a single call.
// Nothing is written when the frames already match.
func (d *DiffRenderer) Render(w io.Writer, fb *core.FrameBuffer) (Stats, error) {
	out, st, err := d.Diff(fb)
	if err != nil {
		return st, err
	}
	if len(out) == 0 {
		return st, nil
	}
	if _, err := w.Write(out); err != nil {
		return st, fmt.Errorf("render: write frame: %w", err)
	}
	return st, nil
}
