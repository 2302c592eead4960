//go:build region_debug

package region

import "strings"

// assertConsistent panics if r violates any structural invariant. It is
// not part of the public surface (spec excludes debug printing and
// keeps these out of the ordinary error path) and is compiled in only
// under the region_debug build tag, mirroring the teacher's debug.go
// pattern of cheap-to-disable, verbose-when-enabled diagnostics —
// re-expressed as a build tag instead of a runtime flag.Bool, since this
// package has no CLI surface to parse flags from.
func (r *Region) assertConsistent() {
	if violations := r.invariantViolations(); len(violations) > 0 {
		panic("region: invariant violation(s):\n" + strings.Join(violations, "\n"))
	}
}

const debugAssertsEnabled = true
