package noise

import (
	"math"
	"slices"

	"github.com/vovakirdan/noisefetch/internal/core"
)

// DefaultRamp is used when a configured ramp has fewer than two glyphs.
const DefaultRamp = " .:-=+*#%@"

// LUTSize is the number of intensity buckets in a GradientLUT.
const LUTSize = 256

// GradientLUT maps an intensity bucket to a glyph cell.
// It is built once and never modified.
type GradientLUT struct {
	ramp    []core.Cell
	entries [LUTSize]core.Cell
}

// NewGradientLUT builds the table from a ramp string ordered dark to bright.
// Glyph boundaries follow core.DecodeCell, so multi-byte glyphs are allowed.
// Bucket i gets the glyph nearest to i/255 along the ramp.
func NewGradientLUT(ramp string) *GradientLUT {
	glyphs := splitGlyphs(ramp)
	if len(glyphs) < 2 {
		glyphs = splitGlyphs(DefaultRamp)
	}
	return buildLUT(glyphs)
}

func buildLUT(glyphs []core.Cell) *GradientLUT {
	lut := &GradientLUT{ramp: glyphs}
	last := len(glyphs) - 1
	for i := range lut.entries {
		lut.entries[i] = glyphs[(i*last+(LUTSize-1)/2)/(LUTSize-1)]
	}
	return lut
}

func splitGlyphs(s string) []core.Cell {
	p := []byte(s)
	glyphs := make([]core.Cell, 0, len(p))
	for len(p) > 0 {
		c, n := core.DecodeCell(p)
		glyphs = append(glyphs, c)
		p = p[n:]
	}
	return glyphs
}

// Inverted returns a table with the ramp reversed, so low intensities get
// the bright end.
func (l *GradientLUT) Inverted() *GradientLUT {
	glyphs := slices.Clone(l.ramp)
	slices.Reverse(glyphs)
	return buildLUT(glyphs)
}

// Len returns the number of glyphs in the ramp.
func (l *GradientLUT) Len() int {
	return len(l.ramp)
}

// Ramp returns the ramp glyph at index i, in lookup order.
func (l *GradientLUT) Ramp(i int) core.Cell {
	return l.ramp[i]
}

// Entry returns the glyph for a table index, clamped to [0,255].
func (l *GradientLUT) Entry(i int) core.Cell {
	return l.entries[core.Clamp(i, 0, LUTSize-1)]
}

// Glyph returns the glyph for an intensity, rounded to the nearest bucket.
// Values outside [0,1] clamp to the end buckets.
func (l *GradientLUT) Glyph(v float64) core.Cell {
	if math.IsNaN(v) {
		v = 0
	}
	return l.Entry(int(core.ClampF(v, 0, 1)*(LUTSize-1) + 0.5))
}
