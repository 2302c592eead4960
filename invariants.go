package region

import "fmt"

// invariantViolations reports every structural invariant (as documented
// on Region) that r currently violates, or nil if none. It has no build
// constraint so both the region_debug runtime self-checks and the test
// suite can share one definition of "consistent."
func (r *Region) invariantViolations() []string {
	var violations []string
	n := r.RectCount()

	for i := 0; i < n; i++ {
		b := r.boxAt(i)
		if b.Y2 <= b.Y1 || b.X2 <= b.X1 {
			violations = append(violations, fmt.Sprintf("degenerate rectangle at index %d: %+v", i, b))
		}
	}

	for i := 0; i+1 < n; i++ {
		cur, next := r.boxAt(i), r.boxAt(i+1)
		if cur.Y1 > next.Y1 {
			violations = append(violations, fmt.Sprintf("band y1 not non-decreasing at index %d: %+v -> %+v", i, cur, next))
			continue
		}
		if cur.Y1 == next.Y1 {
			if cur.Y2 != next.Y2 {
				violations = append(violations, fmt.Sprintf("band height mismatch within band at index %d: %+v -> %+v", i, cur, next))
			}
			if cur.X2 >= next.X1 {
				violations = append(violations, fmt.Sprintf("touching/overlapping rectangles within band at index %d: %+v -> %+v", i, cur, next))
			}
		}
	}

	if bandStart := 0; n > 0 {
		for i := 1; i <= n; i++ {
			if i < n && r.boxAt(i).Y1 == r.boxAt(bandStart).Y1 {
				continue
			}
			if i >= n {
				break
			}
			nextStart, nextEnd := i, i
			for nextEnd < n && r.boxAt(nextEnd).Y1 == r.boxAt(nextStart).Y1 {
				nextEnd++
			}
			if r.boxAt(bandStart).Y2 == r.boxAt(nextStart).Y1 && (i-bandStart) == (nextEnd-nextStart) {
				same := true
				for k := 0; k < i-bandStart; k++ {
					a, b := r.boxAt(bandStart+k), r.boxAt(nextStart+k)
					if a.X1 != b.X1 || a.X2 != b.X2 {
						same = false
						break
					}
				}
				if same {
					violations = append(violations, fmt.Sprintf("adjacent bands at %d and %d should have been coalesced", bandStart, nextStart))
				}
			}
			bandStart = nextStart
		}
	}

	want := r.extent
	got := Box{}
	if n > 0 {
		got = r.boxAt(0)
		for i := 1; i < n; i++ {
			c := r.boxAt(i)
			got.X1 = min(got.X1, c.X1)
			got.Y1 = min(got.Y1, c.Y1)
			got.X2 = max(got.X2, c.X2)
			got.Y2 = max(got.Y2, c.Y2)
		}
	}
	if want != got {
		violations = append(violations, fmt.Sprintf("extent out of date: stored %+v, recomputed %+v", want, got))
	}

	return violations
}
