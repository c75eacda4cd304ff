package gst

// Rates is the fixed GST slab offered on each invoice line, in percent.
var Rates = []int{0, 5, 12, 18, 28}

// IsValidRate reports whether pct is one of the recognised slabs. Advisory:
// the engine computes with whatever rate it is handed; a cleared rate field
// is coerced to 0 at the boundary, never rejected.
func IsValidRate(pct int) bool {
	for _, r := range Rates {
		if r == pct {
			return true
		}
	}
	return false
}
