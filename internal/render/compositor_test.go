package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/noisefetch/internal/core"
	"github.com/vovakirdan/noisefetch/internal/noise"
)

func newTestCompositor(content *Content, opts ...CompositorOption) *Compositor {
	field := noise.NewField(noise.DefaultParams())
	lut := noise.NewGradientLUT("ab")
	return NewCompositor(field, lut, content, opts...)
}

func TestPaintFillsFieldWithRampGlyphs(t *testing.T) {
	g, _ := core.NewGrid(10, 30)
	c := newTestCompositor(nil, WithHUD(""))
	c.Paint(g, 1.25)

	for row := 0; row < g.Rows()-1; row++ {
		for col := 0; col < g.Cols(); col++ {
			s := g.At(row, col).String()
			if s != "a" && s != "b" {
				t.Fatalf("cell (%d, %d) = %q, expected a ramp glyph", row, col, s)
			}
		}
	}
}

func TestPaintFieldMatchesFieldAt(t *testing.T) {
	p := noise.Params{Scale: 0.1, Speed: 0.5, Octaves: 4, Lacunarity: 2, Gain: 0.5}
	field := noise.NewField(p)
	lut := noise.NewGradientLUT(noise.DefaultRamp)
	c := NewCompositor(field, lut, nil, WithHUD(""))

	g, _ := core.NewGrid(6, 20)
	c.Paint(g, 3.25)
	for row := 0; row < g.Rows()-1; row++ {
		for col := 0; col < g.Cols(); col++ {
			want := lut.Glyph(field.At(row, col, 3.25))
			if !g.At(row, col).Equal(want) {
				t.Fatalf("cell (%d, %d) = %q, expected %q", row, col, g.At(row, col).String(), want.String())
			}
		}
	}
}

func TestPaintIsDeterministic(t *testing.T) {
	a, _ := core.NewGrid(12, 40)
	b, _ := core.NewGrid(12, 40)
	content := NewContent([]string{"/\\", "\\/"}, []string{"OS: Linux"})

	newTestCompositor(content).Paint(a, 2.5)
	newTestCompositor(content).Paint(b, 2.5)
	if !a.Equal(b) {
		t.Error("painting the same instant twice should give identical frames")
	}
}

func TestPaintOverlay(t *testing.T) {
	logo := []string{"LLLL", "LL"}
	info := []string{"OS: Linux", "Host: foo"}
	content := NewContent(logo, info)
	c := newTestCompositor(content, WithGap(2))

	g, _ := core.NewGrid(20, 40)
	c.Paint(g, 0.5)
	l := c.Layout(20, 40)

	// Whole box is blanked except where content is written
	for y := l.Box.Y; y < l.Box.Bottom(); y++ {
		for x := l.Box.X; x < l.Box.Right(); x++ {
			inner := l.Inner.Contains(x, y)
			if !inner && !g.At(y, x).Equal(core.Blank) {
				t.Fatalf("margin cell (%d, %d) = %q, expected blank", x, y, g.At(y, x).String())
			}
		}
	}

	row0 := g.Row(l.Inner.Y)
	want0 := "LLLL" + strings.Repeat(" ", 2) + "OS: Linux"
	if got := row0[l.Inner.X : l.Inner.X+len(want0)]; got != want0 {
		t.Errorf("first overlay row = %q, expected %q", got, want0)
	}

	// Short logo line leaves the rest of its column blank
	row1 := g.Row(l.Inner.Y + 1)
	want1 := "LL" + strings.Repeat(" ", 4) + "Host: foo"
	if got := row1[l.Inner.X : l.Inner.X+len(want1)]; got != want1 {
		t.Errorf("second overlay row = %q, expected %q", got, want1)
	}
}

func TestPaintOverlayRowsBeyondSequenceAreBlank(t *testing.T) {
	content := NewContent([]string{"a", "b", "c"}, []string{"only"})
	c := newTestCompositor(content, WithGap(1))

	g, _ := core.NewGrid(10, 20)
	c.Paint(g, 0)
	l := c.Layout(10, 20)

	for i := 1; i < 3; i++ {
		for x := l.InfoCol; x < l.Inner.Right(); x++ {
			if !g.At(l.Inner.Y+i, x).Equal(core.Blank) {
				t.Errorf("info column row %d should be blank, got %q", i, g.At(l.Inner.Y+i, x).String())
			}
		}
	}
}

func TestPaintHUD(t *testing.T) {
	g, _ := core.NewGrid(6, 12)
	c := newTestCompositor(nil, WithHUD("q: quit"))
	c.Paint(g, 0)

	if got := g.Row(5); got != "q: quit     " {
		t.Errorf("HUD row = %q, expected %q", got, "q: quit     ")
	}
}

func TestPaintHUDTruncated(t *testing.T) {
	g, _ := core.NewGrid(3, 5)
	c := newTestCompositor(nil, WithHUD("press q to quit"))
	c.Paint(g, 0)

	if got := g.Row(2); got != "press" {
		t.Errorf("HUD row = %q, expected truncation to %q", got, "press")
	}
}

func TestPaintSmallScreenDoesNotPanic(t *testing.T) {
	content := NewContent([]string{"#########", "#########"}, []string{"OS: Linux", "Kernel: 6.1"})
	c := newTestCompositor(content)

	for _, sz := range [][2]int{{1, 1}, {2, 3}, {4, 10}} {
		g, _ := core.NewGrid(sz[0], sz[1])
		c.Paint(g, 1)
		l := c.Layout(sz[0], sz[1])
		if l.Box.X != 0 || l.Box.Y != 0 {
			t.Errorf("screen %dx%d: expected box pinned at origin, got (%d, %d)", sz[1], sz[0], l.Box.X, l.Box.Y)
		}
	}
}
