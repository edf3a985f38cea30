package bytelayout

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// utf16le is the stateless encoding descriptor. Decoder and encoder instances
// carry transform state, so each access builds a fresh one; sharing them would
// race across concurrent accesses to independent buffers.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16Field accesses a fixed byte-array field as a NUL-padded UTF-16LE
// string. Shorter strings are zero-filled to the field size; decoding stops
// at the first UTF-16 NUL. Ill-formed input decodes with U+FFFD replacement,
// it is not a data error.
type UTF16Field struct {
	f *Field
}

// UTF16LE wraps a fixed byte-array field of even length as a UTF-16LE string
// field. Any other field type, or an odd length, panics at wrap time.
func UTF16LE(f *Field) UTF16Field {
	t, ok := f.typ.(arrayType)
	if !ok {
		panic(fmt.Sprintf("bytelayout: field %q is %s, not a byte array", f.name, f.typ))
	}
	if t.n%2 != 0 {
		panic(fmt.Sprintf("bytelayout: field %q has odd size %d, cannot hold UTF-16", f.name, t.n))
	}
	return UTF16Field{f: f}
}

// Field returns the raw field descriptor.
func (s UTF16Field) Field() *Field { return s.f }

// TryRead decodes the field's bytes up to the first UTF-16 NUL.
func (s UTF16Field) TryRead(b []byte) (string, error) {
	raw := s.f.Bytes(b)
	end := len(raw)
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == 0 && raw[i+1] == 0 {
			end = i
			break
		}
	}
	decoded, err := utf16le.NewDecoder().Bytes(raw[:end])
	if err != nil {
		return "", fmt.Errorf("field %q: %w", s.f.name, err)
	}
	return string(decoded), nil
}

// TryWrite encodes v as UTF-16LE into the field, zero-filling the remainder.
// An encoding longer than the field yields ErrStringTooLong and leaves the
// buffer unchanged.
func (s UTF16Field) TryWrite(b []byte, v string) error {
	encoded, err := utf16le.NewEncoder().Bytes([]byte(v))
	if err != nil {
		return fmt.Errorf("field %q: %w", s.f.name, err)
	}
	raw := s.f.Bytes(b)
	if len(encoded) > len(raw) {
		return fmt.Errorf("field %q: %d bytes into %d: %w",
			s.f.name, len(encoded), len(raw), ErrStringTooLong)
	}
	n := copy(raw, encoded)
	for i := n; i < len(raw); i++ {
		raw[i] = 0
	}
	return nil
}
