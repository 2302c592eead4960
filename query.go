package region

// Contains reports whether the point (x, y) lies in r.
//
// It exploits the banded structure: bands are skipped while their y2 is
// at or above the point, the scan stops as soon as a band's y1 passes
// the point (no later band can contain it, by band ordering), and within
// the matching band a single linear scan checks horizontal coverage.
func (r *Region) Contains(x, y int) bool {
	if r.IsEmpty() || !r.extent.Contains(x, y) {
		return false
	}
	n := r.RectCount()
	for i := 0; i < n; i++ {
		b := r.boxAt(i)
		if b.Y2 <= y {
			continue
		}
		if b.Y1 > y {
			return false
		}
		// In the matching band: scan its rectangles.
		bandY1 := b.Y1
		for i < n && r.boxAt(i).Y1 == bandY1 {
			b = r.boxAt(i)
			if x >= b.X1 && x < b.X2 {
				return true
			}
			i++
		}
		return false
	}
	return false
}

// ContainsRect reports whether rect is entirely covered by r: every
// pixel of rect lies in the union of r's member rectangles.
//
// Re-derived directly from the semantics ("rect is a subset of this
// region") rather than ported from any particular reference walk, since
// the historical isInside(rect) implementations are notorious for edge
// case bugs. The algorithm: find the band covering rect's top edge, find
// the single rectangle in that band containing rect's horizontal span
// (there can be at most one, since bands never contain touching
// rectangles), then require the following bands to be vertically
// contiguous and to contain the same horizontal span, until rect's
// bottom edge is reached.
func (r *Region) ContainsRect(rect Rectangle) bool {
	if rect.IsEmpty() {
		return true
	}
	box := rect.ToBox()
	if r.IsEmpty() || !box.ContainedIn(r.extent) {
		return false
	}

	n := r.RectCount()
	y := box.Y1
	i := 0
	for y < box.Y2 {
		// Advance to the band whose y1 <= y < y2, if any.
		for i < n && r.boxAt(i).Y2 <= y {
			i++
		}
		if i >= n {
			return false
		}
		bandY1 := r.boxAt(i).Y1
		bandY2 := r.boxAt(i).Y2
		if bandY1 > y {
			return false
		}

		// Within this band, find the single rectangle containing
		// [box.X1, box.X2).
		found := false
		for i < n && r.boxAt(i).Y1 == bandY1 {
			b := r.boxAt(i)
			if box.X1 >= b.X1 && box.X2 <= b.X2 {
				found = true
				break
			}
			i++
		}
		if !found {
			return false
		}
		y = bandY2
		// Advance i to the first rectangle of the next band for the
		// next iteration's contiguity check.
		for i < n && r.boxAt(i).Y1 == bandY1 {
			i++
		}
	}
	return true
}

// ContainedInRect reports whether r is a subset of rect: equivalent to
// (r subtract rect) being empty.
func (r *Region) ContainedInRect(rect Rectangle) bool {
	if r.IsEmpty() {
		return true
	}
	tmp := r.Clone()
	tmp.SubtractRect(rect)
	return tmp.IsEmpty()
}

// Intersects reports whether r and other share at least one point.
func (r *Region) Intersects(other *Region) bool {
	if r.IsEmpty() || other.IsEmpty() || !r.extent.Overlaps(other.extent) {
		return false
	}
	tmp := r.Clone()
	tmp.Intersect(other)
	return !tmp.IsEmpty()
}

// IntersectsRect reports whether r and rect share at least one point.
func (r *Region) IntersectsRect(rect Rectangle) bool {
	if rect.IsEmpty() {
		return false
	}
	return r.Intersects(NewFromRectangle(rect))
}
