package bytelayout

import "fmt"

// Bytes returns the field's byte range as a sub-slice of b, with no copy in
// either direction: reads see the buffer, writes through the returned slice
// mutate it. Valid for fixed byte arrays, the open-ended tail field, and
// nested fields (whose range covers the embedded layout).
//
// For fixed-size fields a buffer shorter than the range panics; the
// open-ended tail is never "too short" by construction, its length is
// len(b) minus the field's offset.
func (f *Field) Bytes(b []byte) []byte {
	switch f.typ.(type) {
	case arrayType, openType, nestedType:
		return f.region(b)
	default:
		panic(fmt.Sprintf("bytelayout: field %q is %s, not a byte range", f.name, f.typ))
	}
}
