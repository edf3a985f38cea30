package bytelayout

import "fmt"

// Size is the byte size of a field or layout: either a definite count or
// open-ended, meaning "all remaining buffer bytes". Only a layout's last
// field may be open-ended.
type Size struct {
	n    int
	open bool
}

// FixedSize returns a definite size of n bytes. n must not be negative.
func FixedSize(n int) Size {
	if n < 0 {
		panic(fmt.Sprintf("bytelayout: negative size %d", n))
	}
	return Size{n: n}
}

// OpenSize returns the open-ended size.
func OpenSize() Size {
	return Size{open: true}
}

// IsOpen reports whether the size depends on the buffer length.
func (s Size) IsOpen() bool { return s.open }

// Bytes returns the definite byte count and true, or 0 and false when the
// size is open-ended.
func (s Size) Bytes() (int, bool) {
	if s.open {
		return 0, false
	}
	return s.n, true
}

func (s Size) String() string {
	if s.open {
		return "open-ended"
	}
	return fmt.Sprintf("%d", s.n)
}
