//go:build !region_debug

package region

// Release builds compile the consistency checks out entirely; calling
// assertConsistent is then a zero-cost no-op.
func (r *Region) assertConsistent() {}

const debugAssertsEnabled = false
