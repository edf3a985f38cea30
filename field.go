package bytelayout

import (
	"fmt"

	"github.com/joshuapare/bytelayout/internal/buf"
)

// Field binds a type to a byte offset inside a layout. A field performs no
// I/O itself; accessors apply its offset and size to a caller-supplied
// buffer. Fields are created by Compose and never change.
type Field struct {
	name   string
	typ    FieldType
	order  ByteOrder
	offset int
	size   Size
	index  int
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// Type returns the field's declared type.
func (f *Field) Type() FieldType { return f.typ }

// Offset returns the zero-based byte position where the field begins.
func (f *Field) Offset() int { return f.offset }

// Size returns the field's byte size.
func (f *Field) Size() Size { return f.size }

// ByteOrder returns the byte order the field's layout was composed with.
func (f *Field) ByteOrder() ByteOrder { return f.order }

// Inner returns the embedded layout of a nested field, or nil for any other
// field type.
func (f *Field) Inner() *Layout {
	if t, ok := f.typ.(nestedType); ok {
		return t.inner
	}
	return nil
}

func (f *Field) String() string {
	return fmt.Sprintf("%s: %s @%d", f.name, f.typ, f.offset)
}

// region slices b down to the field's byte range. A buffer shorter than the
// range is a caller-contract violation and panics; it must never be silently
// truncated.
func (f *Field) region(b []byte) []byte {
	if f.size.IsOpen() {
		if f.offset > len(b) {
			panic(fmt.Sprintf("bytelayout: field %q starts at %d but buffer has %d bytes",
				f.name, f.offset, len(b)))
		}
		return b[f.offset:]
	}
	n, _ := f.size.Bytes()
	s, ok := buf.Slice(b, f.offset, n)
	if !ok {
		panic(fmt.Sprintf("bytelayout: field %q needs bytes [%d,%d) but buffer has %d bytes",
			f.name, f.offset, f.offset+n, len(b)))
	}
	return s
}

// intKind returns the field's integer kind metadata.
func (f *Field) intKind() (intType, bool) {
	t, ok := f.typ.(intType)
	return t, ok
}
