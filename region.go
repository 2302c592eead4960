// Package region implements the classic X11 y-x-banded rectangle list:
// an arbitrary orthogonal planar region together with the constructive
// area geometry operations Union, Intersect, Subtract and Xor.
//
// A Region is represented internally as a sequence of bands, each a
// maximal horizontal strip within which every member rectangle spans the
// same [y1,y2) height; within a band rectangles are sorted left to right
// and never touch (see the invariants documented on Region). All set
// operations route through combine, which walks two banded sequences in
// lockstep and produces a new one that still satisfies every invariant.
package region

// Region is an orthogonal (axis-aligned) subset of the integer plane,
// stored as a y-x banded list of half-open rectangles.
//
// Member rectangles are kept in a flat slice of quadruples, stride 4, in
// (y1, y2, x1, x2) order; this is the same layout the reference X11
// Region.c uses and is what the band walker and coalescer below are
// written against. The rectangle count is simply len(rects)/4 — Go
// slices already track capacity for amortised growth, so there is no
// separate count field the way the C original needs one.
//
// Invariants, holding after every public mutation:
//   - every rectangle has positive width and height;
//   - y1 never decreases from one rectangle to the next, and rectangles
//     with equal y1 form one band and share the same y2;
//   - within a band rectangles are sorted by x and never touch
//     (x2 < next x1);
//   - no two vertically contiguous bands have identical x spans (they
//     would have been merged into one band);
//   - extent is the tight bounding box of the rectangles, or the zero
//     Box when there are none.
//
// The zero value is not a valid *Region; use New or one of the
// NewFrom... constructors. A Region must not be mutated concurrently
// from more than one goroutine; two distinct Regions may always be
// mutated concurrently with each other (no shared state between them).
type Region struct {
	extent Box
	rects  []int

	// scratch is reused across combine calls on this Region to avoid
	// reallocating the output buffer on every set operation.
	scratch []int
}

const stride = 4

// quad field offsets within a quadruple.
const (
	qY1 = 0
	qY2 = 1
	qX1 = 2
	qX2 = 3
)

// New returns an empty Region.
func New() *Region {
	return &Region{}
}

// NewFromRectangle returns a Region covering exactly r (empty if r is
// empty).
func NewFromRectangle(r Rectangle) *Region {
	reg := New()
	reg.SetRect(r)
	return reg
}

// NewFromBox returns a Region covering exactly b (empty if b is empty).
func NewFromBox(b Box) *Region {
	return NewFromRectangle(RectangleFromBox(b))
}

// Clone returns a deep copy of r; the two Regions never share storage.
func (r *Region) Clone() *Region {
	out := &Region{extent: r.extent}
	if len(r.rects) > 0 {
		out.rects = append([]int(nil), r.rects...)
	}
	return out
}

// Set replaces r's contents with a deep copy of other.
func (r *Region) Set(other *Region) {
	if r == other {
		return
	}
	r.extent = other.extent
	r.rects = append(r.rects[:0], other.rects...)
}

// SetRect replaces r's contents with a single rectangle (or empty, if
// rect is empty).
func (r *Region) SetRect(rect Rectangle) {
	r.rects = r.rects[:0]
	if rect.IsEmpty() {
		r.extent = Box{}
		return
	}
	b := rect.ToBox()
	r.rects = append(r.rects, b.Y1, b.Y2, b.X1, b.X2)
	r.extent = b
	r.assertConsistent()
}

// Clear empties r.
func (r *Region) Clear() {
	r.rects = r.rects[:0]
	r.extent = Box{}
}

// IsEmpty reports whether r covers no points.
func (r *Region) IsEmpty() bool {
	return len(r.rects) == 0
}

// Extent returns the bounding Box of r; the zero Box when r is empty.
func (r *Region) Extent() Box {
	return r.extent
}

// RectCount returns the number of member rectangles.
func (r *Region) RectCount() int {
	return len(r.rects) / stride
}

// Rects returns the member rectangles in stable band-major order:
// ascending y1, then ascending y2, and within a band ascending x1.
func (r *Region) Rects() []Rectangle {
	n := r.RectCount()
	if n == 0 {
		return nil
	}
	out := make([]Rectangle, n)
	for i := 0; i < n; i++ {
		out[i] = r.rectAt(i)
	}
	return out
}

// rectAt returns the i'th stored quadruple as a Rectangle.
func (r *Region) rectAt(i int) Rectangle {
	o := i * stride
	return RectangleFromBox(Box{
		Y1: r.rects[o+qY1], Y2: r.rects[o+qY2],
		X1: r.rects[o+qX1], X2: r.rects[o+qX2],
	})
}

// boxAt returns the i'th stored quadruple as a Box.
func (r *Region) boxAt(i int) Box {
	o := i * stride
	return Box{
		Y1: r.rects[o+qY1], Y2: r.rects[o+qY2],
		X1: r.rects[o+qX1], X2: r.rects[o+qX2],
	}
}

// Offset translates every member rectangle and the extent by (dx, dy).
// Translation preserves every structural invariant since it is order-
// and equality-preserving.
func (r *Region) Offset(dx, dy int) {
	for i := 0; i < len(r.rects); i += stride {
		r.rects[i+qY1] += dy
		r.rects[i+qY2] += dy
		r.rects[i+qX1] += dx
		r.rects[i+qX2] += dx
	}
	if !r.IsEmpty() {
		r.extent = r.extent.Offset(dx, dy)
	}
	r.assertConsistent()
}

// Collapse replaces r's contents with a single rectangle equal to its
// extent. It is a lossy escape hatch for pathological fragmentation: the
// result is always a superset of r, not generally equal to it.
func (r *Region) Collapse() {
	if r.IsEmpty() {
		return
	}
	e := r.extent
	r.rects = r.rects[:0]
	r.rects = append(r.rects, e.Y1, e.Y2, e.X1, e.X2)
	r.assertConsistent()
}

// updateExtent recomputes extent from the current rects in O(n).
func (r *Region) updateExtent() {
	n := r.RectCount()
	if n == 0 {
		r.extent = Box{}
		return
	}
	b := r.boxAt(0)
	for i := 1; i < n; i++ {
		c := r.boxAt(i)
		if c.X1 < b.X1 {
			b.X1 = c.X1
		}
		if c.Y1 < b.Y1 {
			b.Y1 = c.Y1
		}
		if c.X2 > b.X2 {
			b.X2 = c.X2
		}
		if c.Y2 > b.Y2 {
			b.Y2 = c.Y2
		}
	}
	r.extent = b
}

// Equal reports whether r and other have identical extents and
// identical rectangle sequences. Because the structural invariants
// force a canonical form, set-equal regions are always
// representation-equal; divergence here means a coalescing bug, not a
// false negative.
func (r *Region) Equal(other *Region) bool {
	if r.extent != other.extent {
		return false
	}
	if len(r.rects) != len(other.rects) {
		return false
	}
	for i := range r.rects {
		if r.rects[i] != other.rects[i] {
			return false
		}
	}
	return true
}
