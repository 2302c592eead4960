//go:build region_debug

package region

import (
	"fmt"
	"strings"
)

// String renders r as a band-major textual dump, one rectangle per
// bracketed span. It is debug-only (gated the same way as
// assertConsistent) and not part of the stable public surface; spec.md
// §1 excludes debug printing from the core. Under a region_debug build
// this is what %v prints for a *Region, including in test failure
// output.
func (r *Region) String() string {
	if r.IsEmpty() {
		return "Region{empty}"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Region{extent=%+v", r.extent)
	for i := 0; i < r.RectCount(); i++ {
		box := r.boxAt(i)
		fmt.Fprintf(&b, " [%d,%d)x[%d,%d)", box.X1, box.X2, box.Y1, box.Y2)
	}
	b.WriteString("}")
	return b.String()
}
