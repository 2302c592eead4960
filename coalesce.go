package region

// coalesceBands attempts to merge the band starting at currentBandStart
// (a rectangle index into buf, running to the end of buf) into the band
// starting at previousBandStart. The merge succeeds iff the two bands
// have the same rectangle count, are vertically contiguous, and every
// rectangle pair at equal index has matching x1/x2.
//
// On success the previous band's y2 is extended to the current band's
// y2, the current band's rectangles are dropped, and the returned band
// index is previousBandStart, so a later call can coalesce the next
// band onto the now-taller predecessor. On failure buf is returned
// unchanged and the returned index is currentBandStart.
//
// This must run after every band emission — the non-overlap pre-pass
// and the overlap pass alike — or invariant 5 (maximal band merge) is
// lost.
func coalesceBands(buf []int, previousBandStart, currentBandStart int) ([]int, int) {
	n := len(buf) / stride
	nPrev := currentBandStart - previousBandStart
	nCurr := n - currentBandStart
	if nPrev != nCurr || nPrev == 0 {
		return buf, currentBandStart
	}

	prevY2 := buf[previousBandStart*stride+qY2]
	currY1 := buf[currentBandStart*stride+qY1]
	if prevY2 != currY1 {
		return buf, currentBandStart
	}

	for k := 0; k < nPrev; k++ {
		pOff := (previousBandStart + k) * stride
		cOff := (currentBandStart + k) * stride
		if buf[pOff+qX1] != buf[cOff+qX1] || buf[pOff+qX2] != buf[cOff+qX2] {
			return buf, currentBandStart
		}
	}

	currY2 := buf[currentBandStart*stride+qY2]
	for k := 0; k < nPrev; k++ {
		buf[(previousBandStart+k)*stride+qY2] = currY2
	}
	buf = buf[:currentBandStart*stride]
	return buf, previousBandStart
}
