package region

import "testing"

// requireValid fails t if r violates any structural invariant, printing
// every violation found (not just the first) to make failures easy to
// diagnose against the triggering operation.
func requireValid(t *testing.T, label string, r *Region) {
	t.Helper()
	violations := r.invariantViolations()
	if len(violations) == 0 {
		return
	}
	t.Errorf("%s: region is inconsistent:", label)
	for _, v := range violations {
		t.Errorf("  - %s", v)
	}
	t.Errorf("  region: %v", r)
}

// pixels brute-force-enumerates every integer point in r's extent that
// r actually covers. It suits small bounded extents only; no test calls
// it at present (the property tests use pixelsFromRects).
func pixels(r *Region) map[[2]int]bool {
	out := make(map[[2]int]bool)
	e := r.Extent()
	for y := e.Y1; y < e.Y2; y++ {
		for x := e.X1; x < e.X2; x++ {
			if r.Contains(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

// pixelsFromRects brute-force-unions a raw rectangle list without going
// through Region at all, as an oracle independent of the engine under
// test.
func pixelsFromRects(rects []Rectangle) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for _, r := range rects {
		b := r.ToBox()
		for y := b.Y1; y < b.Y2; y++ {
			for x := b.X1; x < b.X2; x++ {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}
