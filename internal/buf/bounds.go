// Package buf contains overflow-safe offset arithmetic and bounds-checked
// slicing helpers shared by the layout composer and the field accessors.
package buf

import "math"

// Add adds a and b, returning ok = false when the result would overflow int.
// Layout composition uses this so that a pathological field list cannot wrap
// an offset around.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := Add(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
