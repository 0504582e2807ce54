package core

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCells bounds a single grid allocation. Terminals never get near it;
// a size beyond it means the reported dimensions are garbage.
const MaxCells = 1 << 22

// ErrInvalidSize is returned when a grid cannot be allocated for the requested dimensions.
var ErrInvalidSize = errors.New("core: invalid grid size")

// Grid is a rows x cols matrix of glyph cells stored row-major.
// It decouples frame composition from the terminal: the compositor paints
// into a grid and the diff renderer decides what reaches the screen.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid allocates a grid filled with blanks.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	g.Clear()
	return g, nil
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int {
	return g.cols
}

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{W: g.cols, H: g.rows}
}

// Cells exposes the row-major backing slice. Index is row*Cols()+col.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Clear fills the entire grid with blanks.
func (g *Grid) Clear() {
	g.Fill(Blank)
}

// Fill fills the entire grid with the given cell.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row*g.cols+col] = c
}

// At returns the cell at the given position.
// Returns a blank for out-of-bounds coordinates.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Blank
	}
	return g.cells[row*g.cols+col]
}

// DrawText writes text one glyph per cell starting at (row, col), stopping
// after maxCols cells or at the right edge. Glyph boundaries come from
// DecodeCell, so malformed bytes occupy one cell each.
// Returns the number of cells written.
func (g *Grid) DrawText(row, col int, text string, maxCols int) int {
	if row < 0 || row >= g.rows {
		return 0
	}
	written := 0
	p := []byte(text)
	for len(p) > 0 && written < maxCols {
		c, n := DecodeCell(p)
		p = p[n:]
		x := col + written
		written++
		if x < 0 {
			continue
		}
		if x >= g.cols {
			break
		}
		g.cells[row*g.cols+x] = c
	}
	return written
}

// FillRect fills the part of r that lies inside the grid with c.
func (g *Grid) FillRect(r Rect, c Cell) {
	r = r.Intersect(g.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := g.cells[y*g.cols : (y+1)*g.cols]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
}

// CopyFrom copies src into g. Both grids must have the same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.rows != src.rows || g.cols != src.cols {
		return fmt.Errorf("core: copy %dx%d into %dx%d: dimension mismatch", src.cols, src.rows, g.cols, g.rows)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether both grids have the same size and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// Row returns the specified row as a string.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.rows {
		return strings.Repeat(" ", g.cols)
	}
	var sb strings.Builder
	sb.Grow(g.cols)
	for _, c := range g.cells[row*g.cols : (row+1)*g.cols] {
		sb.Write(c.Bytes())
	}
	return sb.String()
}

// String converts the grid to text, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows*g.cols + g.rows)

	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[y*g.cols : (y+1)*g.cols] {
			sb.Write(c.Bytes())
		}
	}
	return sb.String()
}
