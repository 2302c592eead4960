package damage

import (
	"bytes"
	"strings"
	"testing"

	region "github.com/iskiselev/Graphics.Region"
)

func cellText(g *Grid, y int) string {
	return string(g.chars[y])
}

func TestNewGridIsBlank(t *testing.T) {
	g := NewGrid(10, 3)
	for y := 0; y < 3; y++ {
		if cellText(g, y) != strings.Repeat(" ", 10) {
			t.Fatalf("row %d not blank: %q", y, cellText(g, y))
		}
	}
	if !g.Dirty().IsEmpty() {
		t.Fatal("new grid should have no pending damage")
	}
}

func TestWriteAtMarksDirtyAndClips(t *testing.T) {
	g := NewGrid(5, 2)
	g.WriteAt(3, 0, "hello", NewStyle())

	if cellText(g, 0) != "   he" {
		t.Fatalf("row 0 = %q, want clipped write", cellText(g, 0))
	}
	if !g.Dirty().ContainsRect(region.Rect(3, 0, 2, 1)) {
		t.Fatalf("expected dirty region to cover the written span, got %+v", g.Dirty().Rects())
	}
}

func TestWriteAtOffGridIsIgnored(t *testing.T) {
	g := NewGrid(5, 2)
	g.WriteAt(0, 5, "x", NewStyle())
	if !g.Dirty().IsEmpty() {
		t.Fatal("write outside the grid's rows should not dirty anything")
	}
}

func TestEraseBlanksAndClips(t *testing.T) {
	g := NewGrid(5, 5)
	g.WriteAt(0, 0, "abcde", NewStyle())
	g.Erase(region.Rect(-2, -2, 4, 4)) // clipped to [0,2)x[0,2)

	if cellText(g, 0) != "  cde" || cellText(g, 1) != "     " {
		t.Fatalf("erase did not clip correctly: row0=%q row1=%q", cellText(g, 0), cellText(g, 1))
	}
}

func TestFlushRendersDirtyCellsAndClearsDamage(t *testing.T) {
	g := NewGrid(10, 2)
	g.WriteAt(0, 0, "hi", NewStyle())

	var buf bytes.Buffer
	if err := g.Flush(&buf, region.Rect(0, 0, 10, 2)); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "hi") {
		t.Fatalf("flushed output missing written text: %q", out)
	}
	if !g.Dirty().IsEmpty() {
		t.Fatal("Flush should clear the dirty region")
	}
}

func TestFlushClipsToViewport(t *testing.T) {
	g := NewGrid(10, 10)
	g.WriteAt(0, 0, "top", NewStyle())
	g.WriteAt(0, 9, "bottom", NewStyle())

	var buf bytes.Buffer
	if err := g.Flush(&buf, region.Rect(0, 0, 10, 5)); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "bottom") {
		t.Fatalf("flush leaked content outside the viewport: %q", out)
	}
	// Damage outside the viewport is still pending for a later flush of a
	// wider viewport.
	if g.Dirty().IsEmpty() {
		t.Fatal("damage outside the viewport should remain after a clipped flush")
	}
}

func TestFlushWithNoDamageWritesNothing(t *testing.T) {
	g := NewGrid(5, 5)
	var buf bytes.Buffer
	if err := g.Flush(&buf, region.Rect(0, 0, 5, 5)); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for an undamaged grid, got %q", buf.String())
	}
}

func TestMarkDirtyCollapsesPathologicalFragmentation(t *testing.T) {
	g := NewGrid(600, 1)
	// Alternating single-cell writes across a wide row produce one
	// rectangle per write (300 here, more than maxFragments); past
	// maxFragments the dirty region should collapse to a single bounding
	// rectangle rather than grow without bound.
	for x := 0; x < 600; x += 2 {
		g.WriteAt(x, 0, "x", NewStyle())
	}
	if g.Dirty().RectCount() > maxFragments {
		t.Fatalf("dirty region was not collapsed: %d rectangles", g.Dirty().RectCount())
	}
}
