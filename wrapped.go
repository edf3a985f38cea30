package bytelayout

import "fmt"

// WrapStage tells which stage of a wrapped-field access failed.
type WrapStage int

const (
	// WrapStageRaw means the raw codec stage failed (e.g. a zero byte
	// pattern in a nonzero backing field).
	WrapStageRaw WrapStage = iota
	// WrapStageConvert means the domain conversion stage failed.
	WrapStageConvert
)

func (s WrapStage) String() string {
	if s == WrapStageRaw {
		return "raw"
	}
	return "convert"
}

// WrappedError is returned by wrapped-field accessors. It discriminates a
// raw-codec failure from a domain-conversion failure and unwraps to the
// underlying error.
type WrappedError struct {
	Field string
	Stage WrapStage
	Err   error
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("field %q: %s stage: %v", e.Field, e.Stage, e.Err)
}

func (e *WrappedError) Unwrap() error { return e.Err }

// Adapter converts between a domain type D and the raw primitive R backing it
// in the layout. Either direction may fail independently. Values are copied
// on every access, so adapters suit cheap wrapper types.
type Adapter[D, R any] struct {
	FromRaw func(R) (D, error)
	ToRaw   func(D) (R, error)
}

// Wrapped layers a domain type over a raw numeric field. Offset and size are
// the raw field's; only the value passes through the conversion pair.
type Wrapped[D any, R Number] struct {
	field *Field
	conv  Adapter[D, R]
}

// Wrap binds an adapter to a numeric field. The field's declared kind must
// match R; a mismatch panics at wrap time, before any buffer exists.
func Wrap[D any, R Number](f *Field, conv Adapter[D, R]) Wrapped[D, R] {
	checkNumKind[R](f)
	if conv.FromRaw == nil || conv.ToRaw == nil {
		panic(fmt.Sprintf("bytelayout: field %q wrapped with incomplete adapter", f.name))
	}
	return Wrapped[D, R]{field: f, conv: conv}
}

// Field returns the raw field descriptor.
func (w Wrapped[D, R]) Field() *Field { return w.field }

// TryRead reads the raw field, then converts to the domain type. The returned
// error reports which stage failed.
func (w Wrapped[D, R]) TryRead(b []byte) (D, error) {
	var zero D
	raw, err := TryRead[R](w.field, b)
	if err != nil {
		return zero, &WrappedError{Field: w.field.name, Stage: WrapStageRaw, Err: err}
	}
	v, err := w.conv.FromRaw(raw)
	if err != nil {
		return zero, &WrappedError{Field: w.field.name, Stage: WrapStageConvert, Err: err}
	}
	return v, nil
}

// TryWrite converts the domain value to its raw form, then writes the raw
// field. The returned error reports which stage failed.
func (w Wrapped[D, R]) TryWrite(b []byte, v D) error {
	raw, err := w.conv.ToRaw(v)
	if err != nil {
		return &WrappedError{Field: w.field.name, Stage: WrapStageConvert, Err: err}
	}
	if err := TryWrite(w.field, b, raw); err != nil {
		return &WrappedError{Field: w.field.name, Stage: WrapStageRaw, Err: err}
	}
	return nil
}
