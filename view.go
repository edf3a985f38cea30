package bytelayout

import "fmt"

// View binds one storage handle to a layout so fields can be accessed without
// re-passing the buffer. Field accessors alias the view's storage for the
// view's lifetime. Read access is always available; mutation requires the
// storage to be mutable.
type View struct {
	layout *Layout
	s      Storage
}

// NewView binds storage to l.
func NewView(l *Layout, s Storage) *View {
	if l == nil {
		panic("bytelayout: view over nil layout")
	}
	if s == nil {
		panic("bytelayout: view over nil storage")
	}
	return &View{layout: l, s: s}
}

// View is shorthand for NewView(l, s).
func (l *Layout) View(s Storage) *View {
	return NewView(l, s)
}

// Layout returns the layout the view was bound to.
func (v *View) Layout() *Layout { return v.layout }

// Writable reports whether the view's storage accepts mutation.
func (v *View) Writable() bool {
	_, ok := v.s.(MutableStorage)
	return ok
}

// Get reads the named numeric field through the view.
func Get[N Number](v *View, name string) (N, error) {
	return TryRead[N](v.layout.MustField(name), v.s.Bytes())
}

// Set writes the named numeric field through the view. Fails with ErrReadOnly
// when the storage is not mutable.
func Set[N Number](v *View, name string, val N) error {
	f := v.layout.MustField(name)
	m, ok := v.s.(MutableStorage)
	if !ok {
		return fmt.Errorf("field %q: %w", name, ErrReadOnly)
	}
	return TryWrite(f, m.BytesMut(), val)
}

// GetBool reads the named boolean field.
func (v *View) GetBool(name string) (bool, error) {
	return TryReadBool(v.layout.MustField(name), v.s.Bytes())
}

// SetBool writes the named boolean field.
func (v *View) SetBool(name string, val bool) error {
	m, ok := v.s.(MutableStorage)
	if !ok {
		return fmt.Errorf("field %q: %w", name, ErrReadOnly)
	}
	WriteBool(v.layout.MustField(name), m.BytesMut(), val)
	return nil
}

// GetRune reads the named char field.
func (v *View) GetRune(name string) (rune, error) {
	return TryReadRune(v.layout.MustField(name), v.s.Bytes())
}

// SetRune writes the named char field.
func (v *View) SetRune(name string, val rune) error {
	m, ok := v.s.(MutableStorage)
	if !ok {
		return fmt.Errorf("field %q: %w", name, ErrReadOnly)
	}
	return TryWriteRune(v.layout.MustField(name), m.BytesMut(), val)
}

// GetUint128 reads the named 128-bit unsigned field.
func (v *View) GetUint128(name string) (Uint128, error) {
	return TryReadUint128(v.layout.MustField(name), v.s.Bytes())
}

// SetUint128 writes the named 128-bit unsigned field.
func (v *View) SetUint128(name string, val Uint128) error {
	m, ok := v.s.(MutableStorage)
	if !ok {
		return fmt.Errorf("field %q: %w", name, ErrReadOnly)
	}
	return TryWriteUint128(v.layout.MustField(name), m.BytesMut(), val)
}

// GetInt128 reads the named 128-bit signed field.
func (v *View) GetInt128(name string) (Int128, error) {
	return TryReadInt128(v.layout.MustField(name), v.s.Bytes())
}

// SetInt128 writes the named 128-bit signed field.
func (v *View) SetInt128(name string, val Int128) error {
	m, ok := v.s.(MutableStorage)
	if !ok {
		return fmt.Errorf("field %q: %w", name, ErrReadOnly)
	}
	return TryWriteInt128(v.layout.MustField(name), m.BytesMut(), val)
}

// Bytes returns the named byte-range field (array, open-ended, or nested) as
// a read view aliasing the storage.
func (v *View) Bytes(name string) []byte {
	return v.layout.MustField(name).Bytes(v.s.Bytes())
}

// BytesMut returns the named byte-range field as a writable slice. Fails with
// ErrReadOnly when the storage is not mutable.
func (v *View) BytesMut(name string) ([]byte, error) {
	f := v.layout.MustField(name)
	m, ok := v.s.(MutableStorage)
	if !ok {
		return nil, fmt.Errorf("field %q: %w", name, ErrReadOnly)
	}
	return f.Bytes(m.BytesMut()), nil
}

// NestedView returns a view over the named nested field, bound to the inner
// layout. The sub-view borrows the same storage bytes and preserves
// mutability; offsets inside it are relative to where the nested field
// begins.
func (v *View) NestedView(name string) *View {
	f := v.layout.MustField(name)
	inner := f.Inner()
	if inner == nil {
		panic(fmt.Sprintf("bytelayout: field %q is %s, not a nested layout", name, f.typ))
	}
	if m, ok := v.s.(MutableStorage); ok {
		return NewView(inner, BorrowMut(f.Bytes(m.BytesMut())))
	}
	return NewView(inner, Borrow(f.Bytes(v.s.Bytes())))
}

// IntoField consumes the view and narrows its owned storage down to the named
// field's byte range without copying. The storage must be a *Data; borrowed
// storage fails with ErrNotOwned. For the open-ended tail the range runs to
// the end of the window. The view must not be used afterwards.
func (v *View) IntoField(name string) (*Data, error) {
	f := v.layout.MustField(name)
	d, ok := v.s.(*Data)
	if !ok {
		return nil, fmt.Errorf("field %q: %w", name, ErrNotOwned)
	}
	if f.size.IsOpen() {
		return d.SubregionFrom(f.offset)
	}
	n, _ := f.size.Bytes()
	return d.Subregion(f.offset, f.offset+n)
}

// IntoStorage consumes the view and returns the storage handle it was bound
// to.
func (v *View) IntoStorage() Storage { return v.s }
