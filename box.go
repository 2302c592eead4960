package region

// Box is a half-open rectangle: upper-left inclusive, lower-right
// exclusive. It covers the integer points [X1,X2) x [Y1,Y2).
type Box struct {
	X1, Y1, X2, Y2 int
}

// Bx is a convenience constructor for Box.
func Bx(x1, y1, x2, y2 int) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// IsEmpty reports whether the box covers no points.
func (b Box) IsEmpty() bool {
	return b.X2 <= b.X1 || b.Y2 <= b.Y1
}

// Contains reports whether (x, y) lies within the half-open box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X1 && x < b.X2 && y >= b.Y1 && y < b.Y2
}

// ContainedIn reports whether b lies entirely within other.
func (b Box) ContainedIn(other Box) bool {
	return b.X1 >= other.X1 && b.Y1 >= other.Y1 && b.X2 <= other.X2 && b.Y2 <= other.Y2
}

// Overlaps reports whether b and other share at least one point.
func (b Box) Overlaps(other Box) bool {
	return b.X2 > other.X1 && b.Y2 > other.Y1 && b.X1 < other.X2 && b.Y1 < other.Y2
}

// Offset translates b by (dx, dy).
func (b Box) Offset(dx, dy int) Box {
	b.X1 += dx
	b.X2 += dx
	b.Y1 += dy
	b.Y2 += dy
	return b
}

// Rectangle is an origin-and-extent rectangle. Like Box it is empty
// when either dimension is non-positive.
type Rectangle struct {
	X, Y, W, H int
}

// Rect is a convenience constructor for Rectangle.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rectangle) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Expand grows r by dx on each side horizontally and dy on each side
// vertically, keeping the center fixed.
func (r Rectangle) Expand(dx, dy int) Rectangle {
	r.X -= dx
	r.Y -= dy
	r.W += 2 * dx
	r.H += 2 * dy
	return r
}

// CenterX returns the horizontal center, floor-divided toward -Inf.
func (r Rectangle) CenterX() int {
	return r.X + floorDiv(r.W, 2)
}

// CenterY returns the vertical center, floor-divided toward -Inf.
func (r Rectangle) CenterY() int {
	return r.Y + floorDiv(r.H, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// RectangleFromPolyline fits a Rectangle around the given x/y coordinate
// lists, inclusive of the maximum endpoints (hence the +1, unlike Box's
// half-open convention).
func RectangleFromPolyline(xs, ys []int) Rectangle {
	if len(xs) == 0 || len(ys) == 0 {
		return Rectangle{}
	}
	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rectangle{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// ToBox converts r to the equivalent half-open Box.
func (r Rectangle) ToBox() Box {
	return Box{X1: r.X, Y1: r.Y, X2: r.X + r.W, Y2: r.Y + r.H}
}

// RectangleFromBox converts a Box to the equivalent origin/extent
// Rectangle. Round-tripping a Rectangle with W,H >= 0 through ToBox and
// back is the identity.
func RectangleFromBox(b Box) Rectangle {
	return Rectangle{X: b.X1, Y: b.Y1, W: b.X2 - b.X1, H: b.Y2 - b.Y1}
}
