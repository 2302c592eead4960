package region

// Operation selects which constructive area geometry operation combine
// performs while walking two banded rectangle sequences in lockstep.
type Operation int

const (
	OpUnion Operation = iota
	OpIntersect
	OpSubtract
)

// combine walks aRects and bRects (each a valid stride-4 banded
// sequence) band by band and returns a new banded sequence, appended to
// buf[:0], equal to aRects op bRects over the integer plane.
//
// This is the sole place every public set operation routes through; it
// enforces band uniformity (invariant 3) by construction — every append
// happens under one (yTop, yBottom) pair at a time — and monotone
// advancement (invariants 1-2) by only ever moving rA/rB forward.
// Non-touching (invariant 4) is enforced inside the per-band producers;
// maximal coalescing (invariant 5) is enforced by coalesceBands after
// every emission.
func combine(aRects, bRects []int, op Operation, buf []int) []int {
	buf = buf[:0]
	nA := len(aRects) / stride
	nB := len(bRects) / stride
	if nA == 0 && nB == 0 {
		return buf
	}

	rA, rB := 0, 0
	var yBottom int
	switch {
	case nA > 0 && nB > 0:
		yBottom = min(aRects[qY1], bRects[qY1])
	case nA > 0:
		yBottom = aRects[qY1]
	default:
		yBottom = bRects[qY1]
	}

	previousBand := 0

	for rA < nA && rB < nB {
		rAEnd := bandEnd(aRects, rA, nA)
		rBEnd := bandEnd(bRects, rB, nB)

		aY1, aY2 := aRects[rA*stride+qY1], aRects[rA*stride+qY2]
		bY1, bY2 := bRects[rB*stride+qY1], bRects[rB*stride+qY2]

		currentBand := len(buf) / stride
		var yTop int
		switch {
		case aY1 < bY1:
			top, bottom := max(aY1, yBottom), min(aY2, bY1)
			if bottom > top {
				buf = nonOverlap1(buf, aRects, rA, rAEnd, top, bottom, op)
			}
			yTop = bY1
		case bY1 < aY1:
			top, bottom := max(bY1, yBottom), min(bY2, aY1)
			if bottom > top {
				buf = nonOverlap2(buf, bRects, rB, rBEnd, top, bottom, op)
			}
			yTop = aY1
		default:
			yTop = aY1
		}
		if len(buf)/stride > currentBand {
			buf, previousBand = coalesceBands(buf, previousBand, currentBand)
		}

		currentBand = len(buf) / stride
		yBottom = min(aY2, bY2)
		if yBottom > yTop {
			buf = overlap(buf, aRects, rA, rAEnd, bRects, rB, rBEnd, yTop, yBottom, op)
		}
		if len(buf)/stride > currentBand {
			buf, previousBand = coalesceBands(buf, previousBand, currentBand)
		}

		if aY2 == yBottom {
			rA = rAEnd
		}
		if bY2 == yBottom {
			rB = rBEnd
		}
	}

	if rA < nA {
		buf = combineTail(buf, aRects, rA, nA, yBottom, op, true, &previousBand)
	} else if rB < nB {
		buf = combineTail(buf, bRects, rB, nB, yBottom, op, false, &previousBand)
	}

	return buf
}

// combineTail emits whatever remains of one side once the other side's
// rectangles are exhausted. isA selects nonOverlap1 (the side is A) vs
// nonOverlap2 (the side is B). yBottom clips the first remaining band
// against whatever strip the main loop last produced; every band
// (including the tail) is coalesced into previousBand immediately on
// emission, per the universal coalescing mandate.
func combineTail(buf []int, rects []int, start, n, yBottom int, op Operation, isA bool, previousBand *int) []int {
	r := start
	for r < n {
		rEnd := bandEnd(rects, r, n)
		y1, y2 := rects[r*stride+qY1], rects[r*stride+qY2]
		top := max(y1, yBottom)
		if top < y2 {
			currentBand := len(buf) / stride
			if isA {
				buf = nonOverlap1(buf, rects, r, rEnd, top, y2, op)
			} else {
				buf = nonOverlap2(buf, rects, r, rEnd, top, y2, op)
			}
			if len(buf)/stride > currentBand {
				buf, *previousBand = coalesceBands(buf, *previousBand, currentBand)
			}
		}
		yBottom = y2
		r = rEnd
	}
	return buf
}

// bandEnd returns the first rectangle index at or after r whose y1
// differs from rects[r]'s, i.e. one past the end of r's band.
func bandEnd(rects []int, r, n int) int {
	if r >= n {
		return r
	}
	y1 := rects[r*stride+qY1]
	i := r
	for i < n && rects[i*stride+qY1] == y1 {
		i++
	}
	return i
}
