package region

// nonOverlap1 emits the strip [yTop, yBottom) where only A (rects[rStart:rEnd])
// covers the plane. Union and Subtract pass A through unchanged at the
// new height; Intersect contributes nothing, since A-without-B
// intersected with B is empty.
func nonOverlap1(buf []int, rects []int, rStart, rEnd, yTop, yBottom int, op Operation) []int {
	switch op {
	case OpUnion, OpSubtract:
		for i := rStart; i < rEnd; i++ {
			x1, x2 := rects[i*stride+qX1], rects[i*stride+qX2]
			buf = append(buf, yTop, yBottom, x1, x2)
		}
	case OpIntersect:
		// Nothing: B is absent here.
	}
	return buf
}

// nonOverlap2 emits the strip [yTop, yBottom) where only B (rects[rStart:rEnd])
// covers the plane. Only Union contributes: Subtract has nothing of A
// to remove B from, Intersect has nothing of A to intersect with.
func nonOverlap2(buf []int, rects []int, rStart, rEnd, yTop, yBottom int, op Operation) []int {
	switch op {
	case OpUnion:
		for i := rStart; i < rEnd; i++ {
			x1, x2 := rects[i*stride+qX1], rects[i*stride+qX2]
			buf = append(buf, yTop, yBottom, x1, x2)
		}
	case OpSubtract, OpIntersect:
		// Nothing: A is absent here.
	}
	return buf
}

// overlap emits the strip [yTop, yBottom) where both A (a[aStart:aEnd])
// and B (b[bStart:bEnd]) cover the plane, combining their horizontal
// spans according to op. This is the only producer that sees both bands
// at once, so it alone encodes each operation's intersection semantics.
func overlap(buf []int, a []int, aStart, aEnd int, b []int, bStart, bEnd int, yTop, yBottom int, op Operation) []int {
	switch op {
	case OpUnion:
		return unionSpans(buf, a, aStart, aEnd, b, bStart, bEnd, yTop, yBottom)
	case OpIntersect:
		return intersectSpans(buf, a, aStart, aEnd, b, bStart, bEnd, yTop, yBottom)
	case OpSubtract:
		return subtractSpans(buf, a, aStart, aEnd, b, bStart, bEnd, yTop, yBottom)
	}
	return buf
}

// unionSpans merges two sorted, internally non-touching x-interval lists
// into one sorted non-touching list, extending the open span whenever
// the next input's x1 reaches into (or touches) it rather than starting
// a fresh rectangle. This is what keeps invariant 4 within the band.
func unionSpans(buf []int, a []int, i, aEnd int, b []int, j, bEnd int, yTop, yBottom int) []int {
	open := false
	var curX1, curX2 int
	for i < aEnd || j < bEnd {
		var x1, x2 int
		switch {
		case i >= aEnd:
			x1, x2 = b[j*stride+qX1], b[j*stride+qX2]
			j++
		case j >= bEnd:
			x1, x2 = a[i*stride+qX1], a[i*stride+qX2]
			i++
		case a[i*stride+qX1] <= b[j*stride+qX1]:
			x1, x2 = a[i*stride+qX1], a[i*stride+qX2]
			i++
		default:
			x1, x2 = b[j*stride+qX1], b[j*stride+qX2]
			j++
		}

		switch {
		case !open:
			curX1, curX2 = x1, x2
			open = true
		case x1 <= curX2:
			curX2 = max(curX2, x2)
		default:
			buf = append(buf, yTop, yBottom, curX1, curX2)
			curX1, curX2 = x1, x2
		}
	}
	if open {
		buf = append(buf, yTop, yBottom, curX1, curX2)
	}
	return buf
}

// intersectSpans walks both sorted interval lists in x order, emitting
// the overlap of each touching pair and advancing whichever cursor ends
// first (both, if they end together).
func intersectSpans(buf []int, a []int, i, aEnd int, b []int, j, bEnd int, yTop, yBottom int) []int {
	for i < aEnd && j < bEnd {
		ax1, ax2 := a[i*stride+qX1], a[i*stride+qX2]
		bx1, bx2 := b[j*stride+qX1], b[j*stride+qX2]

		x1, x2 := max(ax1, bx1), min(ax2, bx2)
		if x2 > x1 {
			buf = append(buf, yTop, yBottom, x1, x2)
		}

		switch {
		case ax2 < bx2:
			i++
		case bx2 < ax2:
			j++
		default:
			i++
			j++
		}
	}
	return buf
}

// subtractSpans computes A minus B within the band: each B rectangle
// eats whatever of the current A rectangle it covers, flushing the
// portion of A left of B as it goes.
func subtractSpans(buf []int, a []int, i, aEnd int, b []int, j, bEnd int, yTop, yBottom int) []int {
	for i < aEnd {
		ax1, ax2 := a[i*stride+qX1], a[i*stride+qX2]
		left := ax1

		for j < bEnd && b[j*stride+qX1] < ax2 {
			bx1, bx2 := b[j*stride+qX1], b[j*stride+qX2]
			if bx2 <= left {
				j++
				continue
			}
			if bx1 > left {
				buf = append(buf, yTop, yBottom, left, bx1)
			}
			left = max(left, bx2)
			if bx2 >= ax2 {
				// This B rectangle may still overlap the next A
				// rectangle too; don't advance past it yet.
				break
			}
			j++
		}

		if left < ax2 {
			buf = append(buf, yTop, yBottom, left, ax2)
		}
		i++
	}
	return buf
}
