package bytelayout

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Number enumerates the primitive numeric Go types a copy accessor can
// produce. The constraint is exact (no ~): accessors match a field's declared
// kind against the concrete type argument.
type Number interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// numKind returns width and class metadata for the type argument.
func numKind[N Number]() (bits int, signed, isFloat bool) {
	var n N
	switch any(n).(type) {
	case uint8:
		return 8, false, false
	case uint16:
		return 16, false, false
	case uint32:
		return 32, false, false
	case uint64:
		return 64, false, false
	case int8:
		return 8, true, false
	case int16:
		return 16, true, false
	case int32:
		return 32, true, false
	case int64:
		return 64, true, false
	case float32:
		return 32, false, true
	default:
		return 64, false, true
	}
}

// checkNumKind panics unless f's declared kind matches the type argument N.
// A mismatch is a schema bug in the caller, not bad data, so it is fatal.
// Returns the kind so callers can branch on the nonzero constraint.
func checkNumKind[N Number](f *Field) intType {
	bits, signed, isFloat := numKind[N]()
	if isFloat {
		t, ok := f.typ.(floatType)
		if !ok || t.bits != bits {
			panic(fmt.Sprintf("bytelayout: field %q is %s, accessed as float%d", f.name, f.typ, bits))
		}
		return intType{}
	}
	t, ok := f.intKind()
	if !ok || t.bits != bits || t.signed != signed {
		kind := "uint"
		if signed {
			kind = "int"
		}
		panic(fmt.Sprintf("bytelayout: field %q is %s, accessed as %s%d", f.name, f.typ, kind, bits))
	}
	return t
}

// decode reinterprets the field's byte range as N under the field's byte
// order. Plain reinterpretation: float NaN payloads survive unchanged.
func decode[N Number](f *Field, raw []byte) N {
	ord := f.order.order()
	var v N
	switch p := any(&v).(type) {
	case *uint8:
		*p = raw[0]
	case *uint16:
		*p = ord.Uint16(raw)
	case *uint32:
		*p = ord.Uint32(raw)
	case *uint64:
		*p = ord.Uint64(raw)
	case *int8:
		*p = int8(raw[0])
	case *int16:
		*p = int16(ord.Uint16(raw))
	case *int32:
		*p = int32(ord.Uint32(raw))
	case *int64:
		*p = int64(ord.Uint64(raw))
	case *float32:
		*p = math.Float32frombits(ord.Uint32(raw))
	case *float64:
		*p = math.Float64frombits(ord.Uint64(raw))
	}
	return v
}

func encode[N Number](f *Field, raw []byte, v N) {
	ord := f.order.order()
	switch x := any(v).(type) {
	case uint8:
		raw[0] = x
	case uint16:
		ord.PutUint16(raw, x)
	case uint32:
		ord.PutUint32(raw, x)
	case uint64:
		ord.PutUint64(raw, x)
	case int8:
		raw[0] = uint8(x)
	case int16:
		ord.PutUint16(raw, uint16(x))
	case int32:
		ord.PutUint32(raw, uint32(x))
	case int64:
		ord.PutUint64(raw, uint64(x))
	case float32:
		ord.PutUint32(raw, math.Float32bits(x))
	case float64:
		ord.PutUint64(raw, math.Float64bits(x))
	}
}

// TryRead copies the field's byte range out of b and decodes it as N. For
// nonzero integer kinds a zero byte pattern yields ErrZeroValue; plain
// numeric kinds cannot fail. A buffer shorter than the field's range panics.
func TryRead[N Number](f *Field, b []byte) (N, error) {
	t := checkNumKind[N](f)
	v := decode[N](f, f.region(b))
	if t.nonzero {
		var zero N
		if v == zero {
			return zero, fmt.Errorf("field %q: %w", f.name, ErrZeroValue)
		}
	}
	return v, nil
}

// Read is TryRead for fields whose read cannot fail. Calling it on a nonzero
// integer field is a schema bug and panics.
func Read[N Number](f *Field, b []byte) N {
	if t := checkNumKind[N](f); t.nonzero {
		panic(fmt.Sprintf("bytelayout: field %q reads are fallible, use TryRead", f.name))
	}
	return decode[N](f, f.region(b))
}

// TryWrite encodes v into the field's byte range in b. Writing zero into a
// nonzero integer field yields ErrZeroValue; no other write can fail. Exactly
// the field's bytes are mutated.
func TryWrite[N Number](f *Field, b []byte, v N) error {
	t := checkNumKind[N](f)
	if t.nonzero {
		var zero N
		if v == zero {
			return fmt.Errorf("field %q: %w", f.name, ErrZeroValue)
		}
	}
	encode(f, f.region(b), v)
	return nil
}

// Write is TryWrite for fields whose write cannot fail. Calling it on a
// nonzero integer field panics; use TryWrite there.
func Write[N Number](f *Field, b []byte, v N) {
	if t := checkNumKind[N](f); t.nonzero {
		panic(fmt.Sprintf("bytelayout: field %q writes are fallible, use TryWrite", f.name))
	}
	encode(f, f.region(b), v)
}

// checkKind128 panics unless f is a 128-bit integer kind of the requested
// signedness.
func checkKind128(f *Field, signed bool) intType {
	t, ok := f.intKind()
	if !ok || t.bits != 128 || t.signed != signed {
		kind := "uint128"
		if signed {
			kind = "int128"
		}
		panic(fmt.Sprintf("bytelayout: field %q is %s, accessed as %s", f.name, f.typ, kind))
	}
	return t
}

// TryReadUint128 decodes a 128-bit unsigned field.
func TryReadUint128(f *Field, b []byte) (Uint128, error) {
	t := checkKind128(f, false)
	hi, lo := read128(f.region(b), f.order)
	v := Uint128{Hi: hi, Lo: lo}
	if t.nonzero && v.IsZero() {
		return Uint128{}, fmt.Errorf("field %q: %w", f.name, ErrZeroValue)
	}
	return v, nil
}

// ReadUint128 is TryReadUint128 for non-nonzero fields; panics on nonzero kinds.
func ReadUint128(f *Field, b []byte) Uint128 {
	if t := checkKind128(f, false); t.nonzero {
		panic(fmt.Sprintf("bytelayout: field %q reads are fallible, use TryReadUint128", f.name))
	}
	hi, lo := read128(f.region(b), f.order)
	return Uint128{Hi: hi, Lo: lo}
}

// TryWriteUint128 encodes a 128-bit unsigned value; zero into a nonzero field
// yields ErrZeroValue.
func TryWriteUint128(f *Field, b []byte, v Uint128) error {
	t := checkKind128(f, false)
	if t.nonzero && v.IsZero() {
		return fmt.Errorf("field %q: %w", f.name, ErrZeroValue)
	}
	put128(f.region(b), f.order, v.Hi, v.Lo)
	return nil
}

// WriteUint128 writes a 128-bit unsigned value; panics on nonzero kinds.
func WriteUint128(f *Field, b []byte, v Uint128) {
	if t := checkKind128(f, false); t.nonzero {
		panic(fmt.Sprintf("bytelayout: field %q writes are fallible, use TryWriteUint128", f.name))
	}
	put128(f.region(b), f.order, v.Hi, v.Lo)
}

// TryReadInt128 decodes a 128-bit signed field.
func TryReadInt128(f *Field, b []byte) (Int128, error) {
	t := checkKind128(f, true)
	hi, lo := read128(f.region(b), f.order)
	v := Int128{Hi: int64(hi), Lo: lo}
	if t.nonzero && v.IsZero() {
		return Int128{}, fmt.Errorf("field %q: %w", f.name, ErrZeroValue)
	}
	return v, nil
}

// ReadInt128 is TryReadInt128 for non-nonzero fields; panics on nonzero kinds.
func ReadInt128(f *Field, b []byte) Int128 {
	if t := checkKind128(f, true); t.nonzero {
		panic(fmt.Sprintf("bytelayout: field %q reads are fallible, use TryReadInt128", f.name))
	}
	hi, lo := read128(f.region(b), f.order)
	return Int128{Hi: int64(hi), Lo: lo}
}

// TryWriteInt128 encodes a 128-bit signed value; zero into a nonzero field
// yields ErrZeroValue.
func TryWriteInt128(f *Field, b []byte, v Int128) error {
	t := checkKind128(f, true)
	if t.nonzero && v.IsZero() {
		return fmt.Errorf("field %q: %w", f.name, ErrZeroValue)
	}
	put128(f.region(b), f.order, uint64(v.Hi), v.Lo)
	return nil
}

// WriteInt128 writes a 128-bit signed value; panics on nonzero kinds.
func WriteInt128(f *Field, b []byte, v Int128) {
	if t := checkKind128(f, true); t.nonzero {
		panic(fmt.Sprintf("bytelayout: field %q writes are fallible, use TryWriteInt128", f.name))
	}
	put128(f.region(b), f.order, uint64(v.Hi), v.Lo)
}

// TryReadBool decodes a boolean field. Byte 0 is false, byte 1 is true, any
// other byte yields ErrInvalidBool.
func TryReadBool(f *Field, b []byte) (bool, error) {
	mustBeKind(f, boolType{}, "bool")
	switch raw := f.region(b)[0]; raw {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("field %q: byte %#02x: %w", f.name, raw, ErrInvalidBool)
	}
}

// WriteBool writes a boolean field. Booleans always encode as 0 or 1, so the
// write cannot fail.
func WriteBool(f *Field, b []byte, v bool) {
	mustBeKind(f, boolType{}, "bool")
	raw := f.region(b)
	if v {
		raw[0] = 1
	} else {
		raw[0] = 0
	}
}

// TryReadRune decodes a char field. Values that are not Unicode scalar values
// (surrogates, values above U+10FFFF) yield ErrInvalidCodepoint.
func TryReadRune(f *Field, b []byte) (rune, error) {
	mustBeKind(f, charType{}, "char")
	v := f.order.order().Uint32(f.region(b))
	r := rune(v)
	if v > uint32(utf8.MaxRune) || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("field %q: %#08x: %w", f.name, v, ErrInvalidCodepoint)
	}
	return r, nil
}

// TryWriteRune writes a char field. A rune that is not a Unicode scalar value
// yields ErrInvalidCodepoint; Go runes carry no such guarantee, so the check
// sits on the write path.
func TryWriteRune(f *Field, b []byte, r rune) error {
	mustBeKind(f, charType{}, "char")
	if !utf8.ValidRune(r) {
		return fmt.Errorf("field %q: %#08x: %w", f.name, r, ErrInvalidCodepoint)
	}
	f.order.order().PutUint32(f.region(b), uint32(r))
	return nil
}

// ReadUnit accesses a zero-sized unit field. It touches no bytes and cannot
// fail; it still asserts the field's offset is inside the buffer, since a
// unit field past the end is the same contract violation as any other
// out-of-range access.
func ReadUnit(f *Field, b []byte) {
	mustBeKind(f, unitType{}, "unit")
	f.region(b)
}

// WriteUnit writes a zero-sized unit field, leaving the buffer untouched.
func WriteUnit(f *Field, b []byte) {
	mustBeKind(f, unitType{}, "unit")
	f.region(b)
}

func mustBeKind(f *Field, want FieldType, label string) {
	if f.typ != want {
		panic(fmt.Sprintf("bytelayout: field %q is %s, accessed as %s", f.name, f.typ, label))
	}
}
