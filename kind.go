package bytelayout

import "fmt"

// FieldType describes the shape of one field: its size and how accessors must
// treat its bytes. The set of types is closed; values are obtained from the
// constructors below or from Nested.
type FieldType interface {
	// Size returns the field's byte size, open-ended only for Remaining and
	// for nested layouts that themselves end open-ended.
	Size() Size

	String() string
}

// intType covers all integer kinds: 8 to 128 bits, signed or unsigned, with
// an optional nonzero domain constraint.
type intType struct {
	bits    int
	signed  bool
	nonzero bool
}

func (t intType) Size() Size { return FixedSize(t.bits / 8) }

func (t intType) String() string {
	prefix := "uint"
	if t.signed {
		prefix = "int"
	}
	if t.nonzero {
		return fmt.Sprintf("nonzero %s%d", prefix, t.bits)
	}
	return fmt.Sprintf("%s%d", prefix, t.bits)
}

type floatType struct {
	bits int
}

func (t floatType) Size() Size     { return FixedSize(t.bits / 8) }
func (t floatType) String() string { return fmt.Sprintf("float%d", t.bits) }

// unitType occupies zero bytes. Reading and writing it never touches the
// buffer.
type unitType struct{}

func (unitType) Size() Size     { return FixedSize(0) }
func (unitType) String() string { return "unit" }

// boolType is one byte; only the values 0 and 1 decode successfully.
type boolType struct{}

func (boolType) Size() Size     { return FixedSize(1) }
func (boolType) String() string { return "bool" }

// charType is a uint32 holding a Unicode scalar value.
type charType struct{}

func (charType) Size() Size     { return FixedSize(4) }
func (charType) String() string { return "char" }

type arrayType struct {
	n int
}

func (t arrayType) Size() Size     { return FixedSize(t.n) }
func (t arrayType) String() string { return fmt.Sprintf("[%d]byte", t.n) }

// openType matches all buffer bytes from its offset to the end.
type openType struct{}

func (openType) Size() Size     { return OpenSize() }
func (openType) String() string { return "[]byte" }

// nestedType embeds a complete layout as a single field.
type nestedType struct {
	inner *Layout
}

func (t nestedType) Size() Size     { return t.inner.Size() }
func (t nestedType) String() string { return "nested layout" }

// Uint8 is an unsigned 8-bit integer field.
func Uint8() FieldType { return intType{bits: 8} }

// Uint16 is an unsigned 16-bit integer field.
func Uint16() FieldType { return intType{bits: 16} }

// Uint32 is an unsigned 32-bit integer field.
func Uint32() FieldType { return intType{bits: 32} }

// Uint64 is an unsigned 64-bit integer field.
func Uint64() FieldType { return intType{bits: 64} }

// Uint128Type is an unsigned 128-bit integer field, accessed as a Uint128 value.
func Uint128Type() FieldType { return intType{bits: 128} }

// Int8 is a signed 8-bit integer field.
func Int8() FieldType { return intType{bits: 8, signed: true} }

// Int16 is a signed 16-bit integer field.
func Int16() FieldType { return intType{bits: 16, signed: true} }

// Int32 is a signed 32-bit integer field.
func Int32() FieldType { return intType{bits: 32, signed: true} }

// Int64 is a signed 64-bit integer field.
func Int64() FieldType { return intType{bits: 64, signed: true} }

// Int128Type is a signed 128-bit integer field, accessed as an Int128 value.
func Int128Type() FieldType { return intType{bits: 128, signed: true} }

// NonzeroUint8 is a Uint8 whose valid domain excludes zero.
func NonzeroUint8() FieldType { return intType{bits: 8, nonzero: true} }

// NonzeroUint16 is a Uint16 whose valid domain excludes zero.
func NonzeroUint16() FieldType { return intType{bits: 16, nonzero: true} }

// NonzeroUint32 is a Uint32 whose valid domain excludes zero.
func NonzeroUint32() FieldType { return intType{bits: 32, nonzero: true} }

// NonzeroUint64 is a Uint64 whose valid domain excludes zero.
func NonzeroUint64() FieldType { return intType{bits: 64, nonzero: true} }

// NonzeroUint128 is a Uint128 whose valid domain excludes zero.
func NonzeroUint128() FieldType { return intType{bits: 128, nonzero: true} }

// NonzeroInt8 is an Int8 whose valid domain excludes zero.
func NonzeroInt8() FieldType { return intType{bits: 8, signed: true, nonzero: true} }

// NonzeroInt16 is an Int16 whose valid domain excludes zero.
func NonzeroInt16() FieldType { return intType{bits: 16, signed: true, nonzero: true} }

// NonzeroInt32 is an Int32 whose valid domain excludes zero.
func NonzeroInt32() FieldType { return intType{bits: 32, signed: true, nonzero: true} }

// NonzeroInt64 is an Int64 whose valid domain excludes zero.
func NonzeroInt64() FieldType { return intType{bits: 64, signed: true, nonzero: true} }

// NonzeroInt128 is an Int128 whose valid domain excludes zero.
func NonzeroInt128() FieldType { return intType{bits: 128, signed: true, nonzero: true} }

// Float32 is an IEEE 754 single-precision field. Bit patterns round-trip
// exactly, including NaN payloads.
func Float32() FieldType { return floatType{bits: 32} }

// Float64 is an IEEE 754 double-precision field.
func Float64() FieldType { return floatType{bits: 64} }

// Unit is a zero-sized marker field. It contributes nothing to offsets and
// its accessors never touch the buffer.
func Unit() FieldType { return unitType{} }

// Bool is a one-byte boolean; bytes other than 0 and 1 fail to decode.
func Bool() FieldType { return boolType{} }

// Char is a rune stored as a uint32; values that are not Unicode scalar
// values fail to decode.
func Char() FieldType { return charType{} }

// Bytes is a fixed-size byte array of n bytes, accessed as a borrowed
// sub-slice of the buffer.
func Bytes(n int) FieldType {
	if n < 0 {
		panic(fmt.Sprintf("bytelayout: negative array size %d", n))
	}
	return arrayType{n: n}
}

// Remaining is the open-ended byte range covering everything from its offset
// to the end of the buffer. Only valid as a layout's last field.
func Remaining() FieldType { return openType{} }

// Nested embeds inner as a single field. The nested field's size is the inner
// layout's total size; if inner ends open-ended, the nested field is
// open-ended too and must be the outer layout's last field. The inner
// layout's byte order is independent of the outer one.
func Nested(inner *Layout) FieldType {
	if inner == nil {
		panic("bytelayout: nil nested layout")
	}
	return nestedType{inner: inner}
}
