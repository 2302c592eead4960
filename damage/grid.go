// Package damage tracks which cells of a terminal-like character grid have
// changed since the last flush, using a region.Region as the dirty set, and
// renders only the changed spans back out as ANSI.
package damage

import (
	"bytes"
	"fmt"
	"io"

	region "github.com/iskiselev/Graphics.Region"
)

// maxFragments bounds how fragmented the dirty region is allowed to get
// before WriteAt or Erase collapses it to its bounding rectangle. A pathological
// sequence of alternating one-cell writes can otherwise leave the region
// with one rectangle per cell.
const maxFragments = 256

// Grid is a fixed-size buffer of styled runes plus a dirty-region tracker.
// WriteAt and Erase mark cells dirty; Flush renders the accumulated damage
// inside a viewport and clears that part of it.
type Grid struct {
	w, h   int
	chars  [][]rune
	styles [][]Style
	dirty  *region.Region

	cursorX, cursorY int
	lastStyle        Style
	haveLastStyle    bool
}

// NewGrid returns a w x h grid of blank cells in the default style.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic("damage: grid size must be > 0")
	}
	g := &Grid{w: w, h: h, dirty: region.New()}
	g.chars = make([][]rune, h)
	g.styles = make([][]Style, h)
	for y := 0; y < h; y++ {
		g.chars[y] = make([]rune, w)
		g.styles[y] = make([]Style, w)
		for x := 0; x < w; x++ {
			g.chars[y][x] = ' '
			g.styles[y][x] = NewStyle()
		}
	}
	return g
}

// Size returns the grid's width and height.
func (g *Grid) Size() (int, int) { return g.w, g.h }

// Dirty returns the region of cells changed since the last Flush.
func (g *Grid) Dirty() *region.Region { return g.dirty }

func (g *Grid) markDirty(rect region.Rectangle) {
	g.dirty.UnionRect(rect)
	if g.dirty.RectCount() > maxFragments {
		g.dirty.Collapse()
	}
}

// WriteAt writes text starting at (x,y) in the given style, clipping at the
// grid edges and marking the written cells dirty. Each rune occupies one
// cell; combining or wide characters are not handled here.
func (g *Grid) WriteAt(x, y int, text string, style Style) {
	if y < 0 || y >= g.h {
		return
	}
	start, end := x, x
	for _, r := range text {
		if end >= g.w {
			break
		}
		if end >= 0 {
			g.chars[y][end] = r
			g.styles[y][end] = style
		}
		end++
	}
	if start < 0 {
		start = 0
	}
	if end > g.w {
		end = g.w
	}
	if end > start {
		g.markDirty(region.Rect(start, y, end-start, 1))
	}
}

// Erase blanks the given rectangle back to the default style, clipped to
// the grid, and marks it dirty.
func (g *Grid) Erase(r region.Rectangle) {
	b := r.ToBox()
	x1, y1 := max(b.X1, 0), max(b.Y1, 0)
	x2, y2 := min(b.X2, g.w), min(b.Y2, g.h)
	if x2 <= x1 || y2 <= y1 {
		return
	}
	blank := NewStyle()
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			g.chars[y][x] = ' '
			g.styles[y][x] = blank
		}
	}
	g.markDirty(region.Rect(x1, y1, x2-x1, y2-y1))
}

// MoveCursor records the cursor position used by Flush's final placement.
func (g *Grid) MoveCursor(x, y int) {
	g.cursorX, g.cursorY = x, y
}

const (
	ansiSaveCursor    = "\x1b[s"
	ansiRestoreCursor = "\x1b[u"
	ansiReset         = "\x1b[0m"
)

func ansiMoveCursor(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

// Flush renders every dirty cell within viewport to out as a minimal ANSI
// update, then clears that portion of the dirty region. Damage outside
// viewport is left pending for a later Flush against a wider viewport.
// Rectangles are visited in the region's band-major order, so each row
// within a band is written left to right without revisiting earlier bands.
func (g *Grid) Flush(out io.Writer, viewport region.Rectangle) error {
	if !g.dirty.IntersectsRect(viewport) {
		return nil
	}
	visible := g.dirty.Clone()
	visible.IntersectRect(viewport)
	if visible.IsEmpty() {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(ansiSaveCursor)

	for _, rect := range visible.Rects() {
		b := rect.ToBox()
		for y := b.Y1; y < b.Y2; y++ {
			buf.WriteString(ansiMoveCursor(b.X1, y))
			g.writeRowANSI(&buf, y, b.X1, b.X2)
		}
	}

	buf.WriteString(ansiReset)
	buf.WriteString(ansiMoveCursor(g.cursorX, g.cursorY))
	buf.WriteString(ansiRestoreCursor)
	g.haveLastStyle = false

	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("damage: flush: %w", err)
	}
	g.dirty.Subtract(visible)
	return nil
}

func (g *Grid) writeRowANSI(buf *bytes.Buffer, y, x1, x2 int) {
	row := g.chars[y]
	styles := g.styles[y]
	for x := x1; x < x2; x++ {
		style := styles[x]
		if !g.haveLastStyle {
			buf.Write(style.ANSIEscape())
			g.haveLastStyle = true
		} else if seq := style.ANSIEscapeFrom(g.lastStyle); seq != nil {
			buf.Write(seq)
		}
		g.lastStyle = style
		buf.WriteRune(row[x])
	}
}
