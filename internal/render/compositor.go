package render

import (
	"github.com/vovakirdan/noisefetch/internal/core"
	"github.com/vovakirdan/noisefetch/internal/noise"
)

// DefaultHUD is the status text drawn on the last screen row.
const DefaultHUD = " press q to quit "

// Compositor paints one complete frame: the noise field, the centred
// overlay box and the HUD row.
type Compositor struct {
	field   *noise.Field
	lut     *noise.GradientLUT
	content *Content
	gap     int
	hud     string
}

// CompositorOption configures a Compositor.
type CompositorOption func(*Compositor)

// WithGap sets the column gap between logo and info lines.
func WithGap(gap int) CompositorOption {
	return func(c *Compositor) {
		if gap >= 0 {
			c.gap = gap
		}
	}
}

// WithHUD sets the text of the bottom row.
func WithHUD(hud string) CompositorOption {
	return func(c *Compositor) {
		c.hud = hud
	}
}

// NewCompositor creates a compositor. A nil content draws no overlay box.
func NewCompositor(field *noise.Field, lut *noise.GradientLUT, content *Content, opts ...CompositorOption) *Compositor {
	if content == nil {
		content = &Content{}
	}
	c := &Compositor{
		field:   field,
		lut:     lut,
		content: content,
		gap:     DefaultGap,
		hud:     DefaultHUD,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Layout returns the overlay placement for a screen size.
func (c *Compositor) Layout(rows, cols int) Layout {
	return ComputeLayout(c.content, c.gap, rows, cols)
}

// Paint fills every cell of g for the given elapsed time in seconds.
func (c *Compositor) Paint(g *core.Grid, elapsed float64) {
	c.paintField(g, elapsed)
	if !c.content.Empty() {
		c.paintOverlay(g)
	}
	c.paintHUD(g)
}

func (c *Compositor) paintField(g *core.Grid, elapsed float64) {
	rows, cols := g.Rows(), g.Cols()
	cells := g.Cells()
	for row := 0; row < rows; row++ {
		line := cells[row*cols : (row+1)*cols]
		for col := range line {
			line[col] = c.lut.Glyph(c.field.At(row, col, elapsed))
		}
	}
}

func (c *Compositor) paintOverlay(g *core.Grid) {
	l := c.Layout(g.Rows(), g.Cols())
	g.FillRect(l.Box, core.Blank)

	for i := 0; i < l.Inner.H; i++ {
		row := l.Inner.Y + i
		if i < len(c.content.Logo) {
			g.DrawText(row, l.LogoCol, c.content.Logo[i], c.content.LogoWidth)
		}
		if i < len(c.content.Info) {
			info := c.content.Info[i]
			g.DrawText(row, l.InfoCol, info.Text, info.Width)
		}
	}
}

func (c *Compositor) paintHUD(g *core.Grid) {
	last := g.Rows() - 1
	g.FillRect(core.NewRect(0, last, g.Cols(), 1), core.Blank)
	g.DrawText(last, 0, c.hud, g.Cols())
}
