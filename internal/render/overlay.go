package render

import "github.com/vovakirdan/noisefetch/internal/core"

// DefaultGap is the number of blank columns between the logo and the info lines.
const DefaultGap = 3

// Line is an info line with its display width in cells.
type Line struct {
	Text  string
	Width int
}

// Content is the static block drawn over the noise: logo lines on the
// left, info lines on the right. It is read-only once built.
type Content struct {
	Logo      []string
	LogoWidth int
	Info      []Line
}

// NewContent builds overlay content. Widths are glyph counts, the same
// cells Grid.DrawText writes, so the box always covers what is drawn.
func NewContent(logo, info []string) *Content {
	c := &Content{
		Logo: append([]string(nil), logo...),
		Info: make([]Line, 0, len(info)),
	}
	for _, l := range logo {
		c.LogoWidth = core.Max(c.LogoWidth, core.GlyphCount(l))
	}
	for _, l := range info {
		c.Info = append(c.Info, Line{Text: l, Width: core.GlyphCount(l)})
	}
	return c
}

// InfoWidth returns the widest info line.
func (c *Content) InfoWidth() int {
	w := 0
	for _, l := range c.Info {
		w = core.Max(w, l.Width)
	}
	return w
}

// Empty reports whether there is nothing to draw.
func (c *Content) Empty() bool {
	return len(c.Logo) == 0 && len(c.Info) == 0
}

// Layout is the placement of the overlay box for one screen size.
type Layout struct {
	Box     core.Rect // Centred box including the one-cell margin
	Inner   core.Rect // Content area inside the margin
	LogoCol int       // First column of the logo lines
	InfoCol int       // First column of the info lines
}

// ComputeLayout centres the overlay on a rows x cols screen.
// The box never starts at a negative offset: when the screen is smaller
// than the box it is pinned to the top-left corner.
func ComputeLayout(c *Content, gap, rows, cols int) Layout {
	logoW := c.LogoWidth
	if len(c.Logo) == 0 {
		logoW = 0
	}
	infoW := c.InfoWidth()

	innerW := logoW + infoW
	if len(c.Logo) > 0 && len(c.Info) > 0 {
		innerW += gap
	}
	innerH := core.Max(len(c.Logo), len(c.Info))

	totalW := innerW + 2
	totalH := innerH + 2
	startRow := core.Max(0, (rows-totalH)/2)
	startCol := core.Max(0, (cols-totalW)/2)

	l := Layout{
		Box:     core.NewRect(startCol, startRow, totalW, totalH),
		Inner:   core.NewRect(startCol+1, startRow+1, innerW, innerH),
		LogoCol: startCol + 1,
		InfoCol: startCol + 1,
	}
	if len(c.Logo) > 0 {
		l.InfoCol += logoW
		if len(c.Info) > 0 {
			l.InfoCol += gap
		}
	}
	return l
}
