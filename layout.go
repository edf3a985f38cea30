package bytelayout

import (
	"fmt"

	"github.com/joshuapare/bytelayout/internal/buf"
)

// FieldSpec names one field of a layout under composition.
type FieldSpec struct {
	Name string
	Type FieldType
}

// F is shorthand for a FieldSpec.
func F(name string, t FieldType) FieldSpec {
	return FieldSpec{Name: name, Type: t}
}

// Layout is an ordered set of field descriptors covering a contiguous byte
// range from offset 0, plus the byte order used for its numeric fields.
// Layouts are composed once, validated at composition time, and never change
// afterwards; they hold no buffer themselves.
type Layout struct {
	order  ByteOrder
	fields []*Field
	byName map[string]*Field
	size   Size
}

// Compose builds a layout from an ordered field list. Offsets are assigned
// sequentially: the first field starts at 0, every following field starts
// where its predecessor ends. Composition fails when a field other than the
// last has open-ended size (directly, or through a nested layout that ends
// open-ended), when a name is empty or duplicated, or when the total size
// overflows. An empty field list is legal and yields a zero-size layout.
func Compose(order ByteOrder, specs ...FieldSpec) (*Layout, error) {
	l := &Layout{
		order:  order,
		fields: make([]*Field, 0, len(specs)),
		byName: make(map[string]*Field, len(specs)),
	}

	off := 0
	for i, sp := range specs {
		if sp.Name == "" {
			return nil, fmt.Errorf("bytelayout: field %d has no name", i)
		}
		if sp.Type == nil {
			return nil, fmt.Errorf("bytelayout: field %q has no type", sp.Name)
		}
		if _, ok := l.byName[sp.Name]; ok {
			return nil, fmt.Errorf("field %q: %w", sp.Name, ErrDuplicateField)
		}

		sz := sp.Type.Size()
		if sz.IsOpen() && i != len(specs)-1 {
			return nil, fmt.Errorf("field %q: %w", sp.Name, ErrOpenEndedNotLast)
		}

		f := &Field{
			name:   sp.Name,
			typ:    sp.Type,
			order:  order,
			offset: off,
			size:   sz,
			index:  i,
		}
		l.fields = append(l.fields, f)
		l.byName[sp.Name] = f

		if n, ok := sz.Bytes(); ok {
			next, ok := buf.Add(off, n)
			if !ok {
				return nil, fmt.Errorf("bytelayout: field %q: layout size overflows", sp.Name)
			}
			off = next
		}
	}

	if len(l.fields) > 0 && l.fields[len(l.fields)-1].size.IsOpen() {
		l.size = OpenSize()
	} else {
		l.size = FixedSize(off)
	}
	return l, nil
}

// MustCompose is Compose panicking on error, for package-level layouts.
func MustCompose(order ByteOrder, specs ...FieldSpec) *Layout {
	l, err := Compose(order, specs...)
	if err != nil {
		panic(err)
	}
	return l
}

// ByteOrder returns the order used for the layout's numeric fields.
func (l *Layout) ByteOrder() ByteOrder { return l.order }

// Size returns the layout's total size: the sum of all field sizes, or
// open-ended when the last field is open-ended.
func (l *Layout) Size() Size { return l.size }

// NumFields returns the number of fields.
func (l *Layout) NumFields() int { return len(l.fields) }

// Fields returns the field descriptors in layout order. The returned slice is
// a copy; the descriptors themselves are shared and immutable.
func (l *Layout) Fields() []*Field {
	out := make([]*Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// Field looks up a field by name.
func (l *Layout) Field(name string) (*Field, bool) {
	f, ok := l.byName[name]
	return f, ok
}

// MustField is Field panicking on unknown names. Asking for a field the
// layout does not define is a schema mismatch, not bad data.
func (l *Layout) MustField(name string) *Field {
	f, ok := l.byName[name]
	if !ok {
		panic(fmt.Sprintf("bytelayout: layout has no field %q", name))
	}
	return f
}
