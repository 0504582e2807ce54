package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/noisefetch/internal/core"
)

func newFB(t *testing.T, rows, cols int) *core.FrameBuffer {
	t.Helper()
	fb, err := core.NewFrameBuffer(rows, cols)
	if err != nil {
		t.Fatalf("NewFrameBuffer() failed: %v", err)
	}
	return fb
}

func TestDiffIdenticalEmitsNothing(t *testing.T) {
	fb := newFB(t, 4, 10)
	d := NewDiffRenderer()

	out, st, err := d.Diff(fb)
	if err != nil {
		t.Fatalf("Diff() failed: %v", err)
	}
	if len(out) != 0 || st.Runs != 0 || st.Cells != 0 {
		t.Errorf("identical frames produced %q (%+v)", out, st)
	}
}

func TestDiffSingleRun(t *testing.T) {
	fb := newFB(t, 3, 10)
	fb.Current.DrawText(1, 2, "abc", 10)

	out, st, err := NewDiffRenderer().Diff(fb)
	if err != nil {
		t.Fatalf("Diff() failed: %v", err)
	}
	if string(out) != "\x1b[2;3Habc" {
		t.Errorf("Diff() = %q, expected %q", out, "\x1b[2;3Habc")
	}
	if st.Runs != 1 || st.Cells != 3 || st.Bytes != len(out) {
		t.Errorf("stats = %+v, expected 1 run, 3 cells, %d bytes", st, len(out))
	}
}

func TestDiffRunsDoNotCrossRows(t *testing.T) {
	fb := newFB(t, 2, 4)
	// Last cell of row 0 and first cell of row 1 are adjacent in memory
	fb.Current.Set(0, 3, core.CellFromRune('x'))
	fb.Current.Set(1, 0, core.CellFromRune('y'))

	out, st, _ := NewDiffRenderer().Diff(fb)
	if string(out) != "\x1b[1;4Hx\x1b[2;1Hy" {
		t.Errorf("Diff() = %q", out)
	}
	if st.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", st.Runs)
	}
}

func TestDiffDisjointRunsInRow(t *testing.T) {
	fb := newFB(t, 1, 10)
	fb.Current.DrawText(0, 0, "ab", 10)
	fb.Current.DrawText(0, 5, "cd", 10)

	out, st, _ := NewDiffRenderer().Diff(fb)
	if string(out) != "\x1b[1;1Hab\x1b[1;6Hcd" {
		t.Errorf("Diff() = %q", out)
	}
	if st.Runs != 2 || st.Cells != 4 {
		t.Errorf("stats = %+v, expected 2 runs and 4 cells", st)
	}
}

func TestDiffNeverWritesUnchangedCells(t *testing.T) {
	fb := newFB(t, 5, 20)
	fb.Current.DrawText(0, 0, "hello world", 20)
	fb.Sync()

	// Change one cell; only it may be written
	fb.Current.Set(0, 4, core.CellFromRune('0'))

	out, st, _ := NewDiffRenderer().Diff(fb)
	if string(out) != "\x1b[1;5H0" {
		t.Errorf("Diff() = %q, expected only the changed cell", out)
	}
	if st.Cells != 1 {
		t.Errorf("Cells = %d, expected 1", st.Cells)
	}
}

func TestDiffMultiByteGlyphs(t *testing.T) {
	fb := newFB(t, 1, 4)
	fb.Current.DrawText(0, 1, "░█", 4)

	out, _, _ := NewDiffRenderer().Diff(fb)
	if string(out) != "\x1b[1;2H░█" {
		t.Errorf("Diff() = %q", out)
	}

	// Same byte length but different bytes still counts as a change
	fb.Current.Set(0, 1, core.CellFromRune('▒'))
	out, st, _ := NewDiffRenderer().Diff(fb)
	if string(out) != "\x1b[1;2H▒" || st.Cells != 1 {
		t.Errorf("Diff() = %q (%+v)", out, st)
	}
}

func TestDiffConvergesAndIsIdempotent(t *testing.T) {
	fb := newFB(t, 6, 15)
	for row := 0; row < 6; row++ {
		fb.Current.DrawText(row, row, strings.Repeat("▓x", 4), 15)
	}

	d := NewDiffRenderer()
	if _, _, err := d.Diff(fb); err != nil {
		t.Fatalf("Diff() failed: %v", err)
	}
	if !fb.Converged() {
		t.Fatal("previous should equal current after a pass")
	}

	out, st, _ := d.Diff(fb)
	if len(out) != 0 || st.Runs != 0 {
		t.Errorf("second pass emitted %q (%+v), expected nothing", out, st)
	}
}

func TestDiffFullRepaintAfterResize(t *testing.T) {
	fb := newFB(t, 4, 8)
	if err := fb.Resize(3, 5); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	fb.Current.Fill(core.CellFromRune('#'))

	_, st, _ := NewDiffRenderer().Diff(fb)
	if st.Cells != 15 {
		t.Errorf("Cells = %d, expected every one of the 15 cells", st.Cells)
	}
	if st.Runs != 3 {
		t.Errorf("Runs = %d, expected one per row", st.Runs)
	}
}

func TestDiffDimensionMismatch(t *testing.T) {
	fb := newFB(t, 4, 8)
	other, _ := core.NewGrid(4, 9)
	fb.Previous = other

	if _, _, err := NewDiffRenderer().Diff(fb); err == nil {
		t.Error("Diff() with mismatched buffers should fail")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRender(t *testing.T) {
	fb := newFB(t, 2, 3)
	fb.Current.DrawText(0, 0, "hey", 3)

	var buf bytes.Buffer
	d := NewDiffRenderer()
	st, err := d.Render(&buf, fb)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if buf.String() != "\x1b[1;1Hhey" || st.Bytes != buf.Len() {
		t.Errorf("Render wrote %q (%+v)", buf.String(), st)
	}

	buf.Reset()
	if _, err := d.Render(&buf, fb); err != nil || buf.Len() != 0 {
		t.Errorf("converged Render wrote %q, err %v", buf.String(), err)
	}

	fb.Current.Set(1, 1, core.CellFromRune('!'))
	if _, err := d.Render(failingWriter{}, fb); err == nil {
		t.Error("Render() should report write errors")
	}
}
