package region

import "testing"

// scenario4 builds the region from spec scenario 4: a 30x30 box with a
// 10x10 hole carved out of its center.
func scenario4() *Region {
	r := NewFromRectangle(Rect(0, 0, 30, 30))
	r.SubtractRect(Rect(10, 10, 10, 10))
	return r
}

func TestContainsScenario4(t *testing.T) {
	r := scenario4()
	cases := []struct {
		x, y int
		want bool
	}{
		{5, 5, true},
		{15, 15, false},
		{25, 25, true},
		{30, 5, false}, // right edge excluded
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestContainsAgreesWithBruteForce(t *testing.T) {
	r := scenario4()
	want := pixelsFromRects(r.Rects())
	e := r.Extent()
	for y := e.Y1 - 2; y < e.Y2+2; y++ {
		for x := e.X1 - 2; x < e.X2+2; x++ {
			got := r.Contains(x, y)
			if got != want[[2]int{x, y}] {
				t.Fatalf("Contains(%d,%d) = %v, want %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestContainsRect(t *testing.T) {
	r := scenario4()
	cases := []struct {
		rect Rectangle
		want bool
	}{
		{Rect(0, 0, 10, 30), true},      // left strip, fully outside the hole
		{Rect(0, 0, 30, 10), true},      // top strip
		{Rect(5, 5, 10, 10), false},     // straddles the hole boundary
		{Rect(10, 10, 10, 10), false},   // exactly the hole
		{Rect(0, 0, 30, 30), false},     // the whole extent, including the hole
		{Rect(0, 0, 0, 0), true},        // empty rectangle is trivially contained
	}
	for _, c := range cases {
		if got := r.ContainsRect(c.rect); got != c.want {
			t.Errorf("ContainsRect(%+v) = %v, want %v", c.rect, got, c.want)
		}
	}
}

func TestContainsRectAgreesWithBruteForce(t *testing.T) {
	r := scenario4()
	e := r.Extent()
	for y := e.Y1; y < e.Y2; y++ {
		for x := e.X1; x < e.X2; x++ {
			rect := Rect(x, y, 2, 2)
			want := true
			b := rect.ToBox()
			for py := b.Y1; py < b.Y2 && want; py++ {
				for px := b.X1; px < b.X2; px++ {
					if !r.Contains(px, py) {
						want = false
						break
					}
				}
			}
			if got := r.ContainsRect(rect); got != want {
				t.Fatalf("ContainsRect(%+v) = %v, want %v", rect, got, want)
			}
		}
	}
}

func TestContainedInRect(t *testing.T) {
	r := NewFromRectangle(Rect(5, 5, 10, 10))
	if !r.ContainedInRect(Rect(0, 0, 20, 20)) {
		t.Error("expected region contained in the larger rectangle")
	}
	if r.ContainedInRect(Rect(0, 0, 10, 10)) {
		t.Error("region should not be contained in a rectangle that doesn't fully cover it")
	}
}

func TestIntersects(t *testing.T) {
	a := NewFromRectangle(Rect(0, 0, 10, 10))
	b := NewFromRectangle(Rect(5, 5, 10, 10))
	c := NewFromRectangle(Rect(20, 20, 10, 10))

	if !a.Intersects(b) {
		t.Error("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Error("expected a and c to be disjoint")
	}
	if !a.IntersectsRect(Rect(9, 9, 5, 5)) {
		t.Error("expected a to intersect the rectangle")
	}
	if a.IntersectsRect(Rect(10, 10, 5, 5)) {
		t.Error("rectangles touching at a corner should not intersect (half-open)")
	}
}
